package domain

import "time"

// UpstreamStatus describes the recent health of upstream fetches for one resource.
type UpstreamStatus struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// Healthy reports whether the upstream is answering. A resource that has
// never been fetched counts as healthy: requests are served either way.
func (s UpstreamStatus) Healthy() bool {
	return s.ConsecutiveFailures < 3
}
