package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/afero"
)

// configBuilder collects configuration layers and merges them in build.
// Layers appended later override non-zero fields of earlier ones, except the
// config file, which always sits right above the defaults.
type configBuilder struct {
	fs       afero.Fs
	defaults *StructuredConfig
	file     *StructuredConfig
	configs  []*StructuredConfig
	err      error
}

func newConfigBuilder(fs afero.Fs) *configBuilder {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &configBuilder{
		fs:      fs,
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	layers := make([]*StructuredConfig, 0, len(b.configs)+2)
	if b.defaults != nil {
		layers = append(layers, b.defaults)
	}
	if b.file != nil {
		layers = append(layers, b.file)
	}
	layers = append(layers, b.configs...)

	config := new(StructuredConfig)
	for _, cfg := range layers {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

// withDotEnv reads KEY=VALUE pairs from path. A missing file is not an error.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if path == "" {
		return b
	}

	dotEnvCfg, err := parseDotEnv(b.fs, path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if dotEnvCfg != nil {
		b.configs = append(b.configs, dotEnvCfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFlags appends an already parsed flag layer. nil is ignored.
func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags == nil {
		return b
	}
	b.configs = append(b.configs, flags)
	return b
}

// withFile loads the config file named by the last layer that sets
// ConfigFilePath.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(b.fs, path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.file = fileCfg
	return b
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from sources 3-5)
//  3. .env file in the working directory
//  4. Environment variables
//  5. Command-line flags
func GetStructuredConfig(fs afero.Fs, flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder(fs).
		withDefaults().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
