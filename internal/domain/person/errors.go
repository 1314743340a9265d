package person

import "errors"

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrEmailExists    = errors.New("email already registered")
	ErrInvalidRole    = errors.New("invalid role")

	// Access errors used by the role middleware.
	ErrHRAccessRequired     = errors.New("hr access required")
	ErrLeaderAccessRequired = errors.New("leader access required")
)
