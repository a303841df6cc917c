package session

import (
	"context"

	"curior/internal/entities"
)

// Session is the authenticated caller identity extracted from the
// bearer token. Handlers read it to gate role-bound operations.
type Session struct {
	UserID string
	Role   entities.RoleType
}

type contextKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}
