//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_get_test
package parcels_get

import (
	"context"

	"curior/internal/entities"
	"curior/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListParcels(ctx context.Context) ([]entities.Parcel, error)
}
