package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"curior/internal/entities"
	"curior/internal/service/user"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT id, name, email, role, created_at
		FROM users
		WHERE id = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.User, error) {
	query := `
	SELECT id, name, email, role, created_at
	FROM users
	ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(userModels), nil
}
