package config

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
)

// ServerApp holds bin server application settings.
type ServerApp struct {
	MasterKeys []string
	MaxBinSize int64
	Version    string
	LogLevel   string
}

// ServerListener holds the HTTP listener settings.
type ServerListener struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerConfig is the bin server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerListener
	Storage Storage
}

// GetServerConfig parses args as server flags, merges every other source and
// validates the result.
func GetServerConfig(fs afero.Fs, args []string) (*ServerConfig, error) {
	flags, err := ParseServerFlags(args)
	if err != nil {
		return nil, err
	}

	cfg, err := GetStructuredConfig(fs, flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields of cfg relevant to the bin server.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			MasterKeys: cfg.App.MasterKeys,
			MaxBinSize: cfg.App.MaxBinSize,
			Version:    cfg.App.Version,
			LogLevel:   cfg.App.LogLevel,
		},
		Server: ServerListener{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: cfg.Storage,
	}
}
