//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"curior/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
