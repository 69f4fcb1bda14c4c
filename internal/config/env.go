// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment.
func parseEnv(cfg *StructuredConfig) error {
	return mapEnv(cfg, nil, "env")
}

// mapEnv maps vars onto cfg through the `env` and `envPrefix` tags of
// [StructuredConfig]. A nil vars map means the process environment.
// source names the origin in the returned error.
func mapEnv(cfg *StructuredConfig, vars map[string]string, source string) error {
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting %s configs: %w", source, err)
	}
	return nil
}
