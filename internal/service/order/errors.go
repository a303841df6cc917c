package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidItems          = errors.New("order needs at least one item with quantity >= 1")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("order id already exists")

	ErrInvalidTransition = errors.New("transition not reachable from current status")
	ErrUnauthorized      = errors.New("actor role may not request this transition")
	ErrTerminalState     = errors.New("order is in a terminal status")
)
