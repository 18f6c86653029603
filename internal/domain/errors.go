package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the request clashes with current server state,
	// such as opening a tab for a member who already has one.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates malformed input rejected before any backend call.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates a timeout or connectivity failure talking to
	// the backend. Mutations are not retried on it; held state is unchanged.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrUnauthorized indicates the backend rejected our credentials. Token
	// refresh and re-login are handled by the caller.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBusy rejects an operation attempted while another operation for the
	// same session is still in flight. The caller may retry once it settles.
	ErrBusy = errors.New("operation already in flight")

	// ErrStaleContext marks a response that resolved after the session switched
	// to a different member or PC; the result was discarded, not applied.
	ErrStaleContext = errors.New("stale session context")
)
