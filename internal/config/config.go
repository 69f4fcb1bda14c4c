// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// fitsync client and the bin server. It is populated by merging defaults,
// a .env file, environment variables, command-line flags and an optional
// config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: credentials, logging, limits.
	App App `envPrefix:"APP_"`

	// Client holds settings only the fitsync client reads.
	Client Client `envPrefix:"CLIENT_"`

	// Adapter holds the remote document store endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the retry and connectivity tuning of the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the bin server persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the bin server listener settings.
	Server Server `envPrefix:"SERVER_"`

	// ConfigFilePath is the optional path to a JSON, YAML or TOML config
	// file. The format is chosen by extension.
	// Env: CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey is the JSONBin master or access key. Usually supplied once via
	// `fitsync setup` and persisted in the local store instead.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// BinID pins the remote bin. Usually persisted by `fitsync setup`.
	// Env: APP_BIN_ID
	BinID string `env:"BIN_ID"`

	// LogFile is where the client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel filters log output ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// MasterKeys are the keys the bin server accepts in X-Master-Key.
	// Env: APP_MASTER_KEYS (comma separated)
	MasterKeys []string `env:"MASTER_KEYS" envSeparator:","`

	// MaxBinSize is the largest document the bin server stores, in bytes.
	// Env: APP_MAX_BIN_SIZE
	MaxBinSize int64 `env:"MAX_BIN_SIZE"`

	// Version is reported by the bin server on GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Client holds client-only settings.
type Client struct {
	// DB holds the local SQLite database settings.
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB holds the local database location.
type ClientDB struct {
	// DSN is the SQLite file path (e.g. "~/.fitsync/fitsync.db").
	// Env: CLIENT_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the remote document store endpoint.
type Adapter struct {
	// BaseURL is the JSONBin API root (e.g. "https://api.jsonbin.io/v3").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the sync engine tuning.
type Sync struct {
	// BaseBackoff is the delay before the first retry.
	// Env: SYNC_BASE_BACKOFF
	BaseBackoff time.Duration `env:"BASE_BACKOFF"`

	// MaxBackoff caps the exponential delay.
	// Env: SYNC_MAX_BACKOFF
	MaxBackoff time.Duration `env:"MAX_BACKOFF"`

	// MaxRetries bounds automatic retries after a failed attempt.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// JitterPercent randomises each delay by up to ±N percent. 0 disables it.
	// Env: SYNC_JITTER_PERCENT
	JitterPercent uint64 `env:"JITTER_PERCENT"`

	// ProbeInterval is how often connectivity is checked.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Storage groups the bin server storage backends.
type Storage struct {
	// DB holds the Postgres connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the optional Redis read-through cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the Postgres backend.
type DB struct {
	// DSN is the Postgres connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds Redis settings. An empty RedisAddress disables the cache.
type Cache struct {
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`
	// Env: STORAGE_CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: STORAGE_CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds the bin server listener settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}
