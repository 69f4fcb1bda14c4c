package config

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// APIKey is the remote store key. Empty until `fitsync setup` runs.
	APIKey string
	// BinID pins the remote bin. Empty until `fitsync setup` runs.
	BinID string
	// LogFile is the client log destination. Empty means next to the binary.
	LogFile string
	// LogLevel filters client log output.
	LogLevel string
}

// ClientAdapter holds network settings used by the remote store adapter.
type ClientAdapter struct {
	// BaseURL is the JSONBin-compatible API root.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds the sync engine tuning.
type ClientSync struct {
	BaseBackoff   time.Duration
	MaxBackoff    time.Duration
	MaxRetries    int
	JitterPercent uint64
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. flags carries values bound to CLI flags
// and may be nil.
func GetClientConfig(fs afero.Fs, flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs, flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			APIKey:   cfg.App.APIKey,
			BinID:    cfg.App.BinID,
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Client.DB.DSN},
		},
		Sync: ClientSync{
			BaseBackoff:   cfg.Sync.BaseBackoff,
			MaxBackoff:    cfg.Sync.MaxBackoff,
			MaxRetries:    cfg.Sync.MaxRetries,
			JitterPercent: cfg.Sync.JitterPercent,
			ProbeInterval: cfg.Sync.ProbeInterval,
		},
	}
}
