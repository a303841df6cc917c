package order

import (
	"context"
	"fmt"

	"curior/internal/entities"
)

type Order struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateOrder registers a new order in the pending status.
func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify, actor entities.RoleType) (*entities.Order, error) {
	if actor != entities.RoleMerchant && actor != entities.RoleAdmin {
		return nil, fmt.Errorf("%w: %s may not create orders", ErrUnauthorized, actor)
	}
	if orderModify.OrderID == nil ||
		orderModify.CustomerName == nil ||
		orderModify.ShippingAddress == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*orderModify.OrderID) ||
		!isValidID(*orderModify.CustomerName) ||
		!isValidID(*orderModify.ShippingAddress) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidItems(orderModify.Items) {
		return nil, ErrInvalidItems
	}

	status := entities.OrderPending
	orderModify.Status = &status

	created, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return found, nil
}

func (s *Order) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus applies one lifecycle transition on behalf of the
// actor, read and commit inside one transaction.
func (s *Order) UpdateStatus(ctx context.Context, id string, target entities.OrderStatusType, actor entities.RoleType) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidStatus(target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		next, err := NextStatus(*current, target, actor)
		if err != nil {
			return err
		}

		updated, err = s.repository.UpdateStatus(ctx, id, next.Status)
		if err != nil {
			return fmt.Errorf("commit status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
