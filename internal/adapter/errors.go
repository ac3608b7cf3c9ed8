package adapter

import "errors"

// Sentinel errors mapped from transport failures. Callers match them with
// [errors.Is]; the sync store's fallback logic branches over these values
// instead of inspecting status codes.
var (
	// ErrUnavailable indicates the remote store could not be reached or
	// answered with a server-side error. Reads fall back to the local cache
	// and writes are queued for retry.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrNotFound indicates the referenced element does not exist remotely.
	ErrNotFound = errors.New("element not found")

	// ErrRejected indicates the remote store refused a well-formed write for
	// a reason other than availability (e.g. validation). Rejected writes are
	// not retried automatically.
	ErrRejected = errors.New("write rejected by remote store")
)
