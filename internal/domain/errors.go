package domain

import "errors"

var (
	// ErrNotFound is the sentinel matched by errors.Is for every
	// missing-resource failure, whatever the resource.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the requester is authenticated but not
	// authorized to act on the resource.
	ErrForbidden = errors.New("Forbidden")

	// ErrInvalidCredentials is returned by login when no user matches
	// the credential/password pair.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// NotFoundError carries the resource type for the client-facing message,
// e.g. "Spot couldn't be found".
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " couldn't be found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError aggregates every field violation found in an input,
// keyed by field name. It is built before any persistence is attempted.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }
