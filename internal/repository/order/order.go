package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"curior/internal/entities"
	"curior/internal/repository"
	"curior/internal/service/order"
)

const orderColumns = `id, order_id, customer_name, shipping_address, items, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	items, err := ItemsFromDomain(orderModify.Items)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	var status *string
	if orderModify.Status != nil {
		s := orderModify.Status.String()
		status = &s
	}

	query := `INSERT INTO orders (id, order_id, customer_name, shipping_address, items, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err = r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		orderModify.OrderID,
		orderModify.CustomerName,
		orderModify.ShippingAddress,
		items,
		status,
	).Scan(
		&orderModel.ID,
		&orderModel.OrderID,
		&orderModel.CustomerName,
		&orderModel.ShippingAddress,
		&orderModel.Items,
		&orderModel.Status,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Order, error) {
	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderModel.ID,
			&orderModel.OrderID,
			&orderModel.CustomerName,
			&orderModel.ShippingAddress,
			&orderModel.Items,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) List(ctx context.Context) ([]entities.Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	ORDER BY created_at DESC, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.OrderID,
			&orderModel.CustomerName,
			&orderModel.ShippingAddress,
			&orderModel.Items,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels)
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	return r.getOne(ctx, query, id, status.String())
}
