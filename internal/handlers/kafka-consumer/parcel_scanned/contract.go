package parcel_scanned

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
	ProcessScan(ctx context.Context, trackingID string, target entities.ParcelStatusType, actor entities.RoleType) (*entities.Parcel, error)
}
