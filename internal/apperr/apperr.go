package apperr

import "errors"

// Sentinel errors for the service's failure taxonomy. Services wrap these
// with fmt.Errorf("...: %w", ...) and the HTTP layer maps them to statuses.
var (
	// ErrNotFound reports that a requested record does not exist in the
	// remote store.
	ErrNotFound = errors.New("not found")

	// ErrUpstream reports a non-success response from an external backend.
	ErrUpstream = errors.New("upstream error")

	// ErrNotConfigured reports that an operation needed the remote store but
	// no endpoint or credential was provided.
	ErrNotConfigured = errors.New("remote store not configured")

	// ErrDuplicate reports a reused idempotency key.
	ErrDuplicate = errors.New("duplicate request")

	// ErrInvalid reports a malformed argument, such as a coordinate pair
	// that is not "lon,lat".
	ErrInvalid = errors.New("invalid argument")
)
