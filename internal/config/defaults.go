package config

import (
	"time"
)

const (
	DefaultBaseURL        = "https://api.jsonbin.io/v3"
	DefaultRequestTimeout = 10 * time.Second
	DefaultBaseBackoff    = time.Second
	DefaultMaxBackoff     = 30 * time.Second
	DefaultMaxRetries     = 5
	DefaultProbeInterval  = 30 * time.Second
	DefaultMaxBinSize     = 100 * 1024
	DefaultCacheTTL       = 5 * time.Minute
	DefaultDotEnvFile     = ".env"
)

// defaultConfig is the lowest-priority layer of the merge.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:   "info",
			MaxBinSize: DefaultMaxBinSize,
		},
		Client: Client{
			DB: ClientDB{DSN: "fitsync.db"},
		},
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Sync: Sync{
			BaseBackoff:   DefaultBaseBackoff,
			MaxBackoff:    DefaultMaxBackoff,
			MaxRetries:    DefaultMaxRetries,
			ProbeInterval: DefaultProbeInterval,
		},
		Storage: Storage{
			Cache: Cache{TTL: DefaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
