package config

import "time"

const (
	envArchiveBaseURL     = "ARCHIVE_BASE_URL"
	envArchiveTimeout     = "ARCHIVE_TIMEOUT"
	envArchiveRetries     = "ARCHIVE_RETRY_ATTEMPTS"
	envArchiveBackoff     = "ARCHIVE_RETRY_BACKOFF"
	envUpstreamMinGap     = "UPSTREAM_MIN_INTERVAL"

	defaultArchiveBaseURL = "https://gw1v83xpti.execute-api.us-east-1.amazonaws.com/prod"
	defaultArchiveTimeout = 10 * time.Second
	defaultRetryAttempts  = 3
	defaultRetryBackoff   = 200 * time.Millisecond
)

// ArchiveConfig controls how we talk to the archive gateway.
type ArchiveConfig struct {
	BaseURL       string
	Timeout       Duration
	RetryAttempts int
	RetryBackoff  Duration
	// MinInterval, when positive, spaces upstream calls out to protect a
	// struggling origin. Zero disables the limiter.
	MinInterval Duration
}

func loadArchive() ArchiveConfig {
	return ArchiveConfig{
		BaseURL:       envOrDefault(envArchiveBaseURL, defaultArchiveBaseURL),
		Timeout:       durationEnvOrDefault(envArchiveTimeout, defaultArchiveTimeout),
		RetryAttempts: intEnvOrDefault(envArchiveRetries, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envArchiveBackoff, defaultRetryBackoff),
		MinInterval:   durationEnvOrDefault(envUpstreamMinGap, 0),
	}
}
