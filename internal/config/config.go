package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Archive  ArchiveConfig
	Dynamo   DynamoConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Archive:  loadArchive(),
		Dynamo:   loadDynamo(),
		Metrics:  loadMetrics(),
	}
}
