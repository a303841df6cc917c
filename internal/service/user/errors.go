package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrUserNotFound          = errors.New("user not found")
	ErrUnauthorized          = errors.New("actor role may not list users")
)
