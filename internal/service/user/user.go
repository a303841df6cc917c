package user

import (
	"context"
	"fmt"
	"strings"

	"curior/internal/entities"
)

// User accounts are provisioned elsewhere; this service only reads
// them for role lookups and the admin directory view.
type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{repository: repository}
}

func (s *User) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return found, nil
}

func (s *User) ListUsers(ctx context.Context, actor entities.RoleType) ([]entities.User, error) {
	if actor != entities.RoleAdmin {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, actor)
	}

	users, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
