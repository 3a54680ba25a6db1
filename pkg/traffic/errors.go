package traffic

import "errors"

// Domain errors. The http layer maps these onto status codes; anything else
// coming out of a service call is a store failure and becomes a 500.
var (
	// ErrNotFound covers both truly absent records and records owned by
	// someone else, so the caller cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrEmailRequired      = errors.New("email must not be empty")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidPage           = errors.New("page must be a positive integer")
	ErrInvalidOrderDirection = errors.New("order_direction must be 'first' or 'last'")

	ErrNegativeCount = errors.New("vehicle counts must not be negative")

	ErrNotAnImage = errors.New("uploaded data is not a valid image")
)
