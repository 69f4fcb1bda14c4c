// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fit-sync/internal/validators"
)

// validate checks the client view before the client starts. The API key is
// optional because it may still come from the local store; a key that is
// present must look like a JSONBin key.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	s := cfg.Sync
	switch {
	case s.BaseBackoff <= 0:
		return fmt.Errorf("%w: base backoff must be positive", ErrInvalidSyncConfigs)
	case s.MaxBackoff < s.BaseBackoff:
		return fmt.Errorf("%w: max backoff below base backoff", ErrInvalidSyncConfigs)
	case s.MaxRetries < 0:
		return fmt.Errorf("%w: max retries is negative", ErrInvalidSyncConfigs)
	case s.JitterPercent > 100:
		return fmt.Errorf("%w: jitter above 100%%", ErrInvalidSyncConfigs)
	case s.ProbeInterval <= 0:
		return fmt.Errorf("%w: probe interval must be positive", ErrInvalidSyncConfigs)
	}

	if cfg.App.APIKey != "" {
		if err := validators.ValidateAPIKey(cfg.App.APIKey); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if len(cfg.App.MasterKeys) == 0 || cfg.App.MaxBinSize <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
