package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid parcel status")
	ErrInvalidRole           = errors.New("invalid actor role")

	ErrParcelNotFound = errors.New("parcel not found")
	ErrConflict       = errors.New("tracking id already exists")

	// Lifecycle rejections. These are business outcomes, not faults:
	// callers map them to user-facing messages and status codes.
	ErrInvalidTransition = errors.New("transition not reachable from current status")
	ErrUnauthorized      = errors.New("actor role may not request this transition")
	ErrUnassignedDriver  = errors.New("parcel has no assigned driver")
	ErrTerminalState     = errors.New("parcel is in a terminal status")
	ErrInvalidState      = errors.New("parcel status does not allow driver assignment")
)
