package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals a provider that is not wired or already closed.
var ErrProviderUnavailable = errors.New("provider unavailable")

// UpstreamStatusError captures a non-success HTTP status from the gateway.
type UpstreamStatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamStatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream returned non-success status"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsUpstreamStatusError attempts to unwrap an error into an UpstreamStatusError.
func AsUpstreamStatusError(err error) (*UpstreamStatusError, bool) {
	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
