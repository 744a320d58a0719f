package core

import "errors"

// Sentinel errors shared by the services. Handlers map these onto HTTP
// statuses with errors.Is.
var (
	// ErrForbidden is returned when a valid identity lacks the required
	// role or does not own the targeted document.
	ErrForbidden = errors.New("forbidden access")
	// ErrInvalidID is returned when a path or body identifier is not a
	// valid document id.
	ErrInvalidID = errors.New("invalid document id")
	// ErrInvalidRole is returned when a role grant names an unknown role.
	ErrInvalidRole = errors.New("invalid role")

	ErrUserNotFound      = errors.New("user not found")
	ErrClassNotFound     = errors.New("class not found")
	ErrSelectionNotFound = errors.New("selected class not found")
)
