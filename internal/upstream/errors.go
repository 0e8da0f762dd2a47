package upstream

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated means the upstream API rejected the session token (or no
// token is stored). The dashboard reacts by clearing the token and sending
// the user back to the login page.
var ErrUnauthenticated = errors.New("not authenticated with the inventory API")

// ErrUnreachable means no response at all was received: DNS failure,
// connection refused, timeout. It is deliberately distinct from an HTTP error
// status so the calendar can tell partial failure from total connectivity
// loss.
var ErrUnreachable = errors.New("inventory API is unreachable")

// ErrNotFound maps upstream 404 responses.
var ErrNotFound = errors.New("resource not found")

// ValidationError carries the per-field messages of a rejected form payload.
// The messages come straight from the upstream validator and are surfaced
// next to the offending fields.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("upstream rejected the payload (%d invalid fields)", len(e.Fields))
}

// StatusError is any other non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inventory API returned status %d", e.StatusCode)
}
