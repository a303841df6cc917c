//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"curior/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
