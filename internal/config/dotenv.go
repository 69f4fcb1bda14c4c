package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// parseDotEnv reads a .env file and maps its keys onto a StructuredConfig
// with the same tags the process environment uses. The process environment
// is left untouched. Returns nil, nil when the file does not exist.
func parseDotEnv(fsys afero.Fs, path string) (*StructuredConfig, error) {
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	cfg := &StructuredConfig{}
	if err := mapEnv(cfg, vars, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
