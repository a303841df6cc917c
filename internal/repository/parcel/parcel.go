package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"curior/internal/entities"
	"curior/internal/repository"
	"curior/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, tracking_id, receiver, address, postcode, within_zone, status, assigned_driver_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	query := `INSERT INTO parcels (id, tracking_id, receiver, address, postcode, within_zone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		parcelModifyModel.TrackingID,
		parcelModifyModel.Receiver,
		parcelModifyModel.Address,
		parcelModifyModel.Postcode,
		parcelModifyModel.WithinZone,
		parcelModifyModel.Status,
	).Scan(
		&parcelModel.ID,
		&parcelModel.TrackingID,
		&parcelModel.Receiver,
		&parcelModel.Address,
		&parcelModel.Postcode,
		&parcelModel.WithinZone,
		&parcelModel.Status,
		&parcelModel.AssignedDriverID,
		&parcelModel.CreatedAt,
		&parcelModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrConflict
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	if parcelModifyModel.Receiver != nil {
		builder = builder.Set("receiver", parcelModifyModel.Receiver)
	}
	if parcelModifyModel.Address != nil {
		builder = builder.Set("address", parcelModifyModel.Address)
	}
	if parcelModifyModel.Postcode != nil {
		builder = builder.Set("postcode", parcelModifyModel.Postcode)
	}
	if parcelModifyModel.WithinZone != nil {
		builder = builder.Set("within_zone", parcelModifyModel.WithinZone)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	var parcelModel ParcelDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&parcelModel.ID,
			&parcelModel.TrackingID,
			&parcelModel.Receiver,
			&parcelModel.Address,
			&parcelModel.Postcode,
			&parcelModel.WithinZone,
			&parcelModel.Status,
			&parcelModel.AssignedDriverID,
			&parcelModel.CreatedAt,
			&parcelModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrConflict
		}

		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByTrackingID(ctx context.Context, trackingID string) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE tracking_id = $1`

	return r.getOne(ctx, query, trackingID)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Parcel, error) {
	var parcelModel ParcelDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&parcelModel.ID,
			&parcelModel.TrackingID,
			&parcelModel.Receiver,
			&parcelModel.Address,
			&parcelModel.Postcode,
			&parcelModel.WithinZone,
			&parcelModel.Status,
			&parcelModel.AssignedDriverID,
			&parcelModel.CreatedAt,
			&parcelModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Parcel, error) {
	query := `
	SELECT ` + parcelColumns + `
	FROM parcels
	ORDER BY created_at DESC, id`

	return r.list(ctx, query)
}

func (r *Repository) ListByDriver(ctx context.Context, driverID string) ([]entities.Parcel, error) {
	query := `
	SELECT ` + parcelColumns + `
	FROM parcels
	WHERE assigned_driver_id = $1
	ORDER BY created_at DESC, id`

	return r.list(ctx, query, driverID)
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Parcel, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		err := rows.Scan(
			&parcelModel.ID,
			&parcelModel.TrackingID,
			&parcelModel.Receiver,
			&parcelModel.Address,
			&parcelModel.Postcode,
			&parcelModel.WithinZone,
			&parcelModel.Status,
			&parcelModel.AssignedDriverID,
			&parcelModel.CreatedAt,
			&parcelModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.ParcelStatusType) (*entities.Parcel, error) {
	query := `UPDATE parcels
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + parcelColumns

	return r.getOne(ctx, query, id, status.String())
}

func (r *Repository) UpdateAssignment(ctx context.Context, id, driverID string) (*entities.Parcel, error) {
	query := `UPDATE parcels
		SET assigned_driver_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + parcelColumns

	return r.getOne(ctx, query, id, driverID)
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.ParcelStatusType]int64, error) {
	query := `
	SELECT status, COUNT(*)
	FROM parcels
	GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.ParcelStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository count error: %w", err)
		}
		counts[entities.ParcelStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}

	return counts, nil
}
