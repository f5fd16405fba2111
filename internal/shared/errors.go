package shared

import "errors"

// Error taxonomy shared by repositories, services and the HTTP layer.
// Callers match with errors.Is; wrapped errors keep the sentinel in the chain.
var (
	// ErrUnauthenticated: no resolvable identity for a gated operation.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidArgument: out-of-range score, empty comment, malformed id.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound: referenced fight/event/user absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a uniqueness violation that an upsert does not absorb (e.g. a taken username).
	ErrConflict = errors.New("conflict")
	// ErrStorageUnavailable: transient I/O failure talking to PostgreSQL or Redis.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
