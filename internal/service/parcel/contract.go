//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"curior/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	Update(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)

	GetByID(ctx context.Context, id string) (*entities.Parcel, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*entities.Parcel, error)

	List(ctx context.Context) ([]entities.Parcel, error)
	ListByDriver(ctx context.Context, driverID string) ([]entities.Parcel, error)

	UpdateStatus(ctx context.Context, id string, status entities.ParcelStatusType) (*entities.Parcel, error)
	UpdateAssignment(ctx context.Context, id, driverID string) (*entities.Parcel, error)

	CountByStatus(ctx context.Context) (map[entities.ParcelStatusType]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
