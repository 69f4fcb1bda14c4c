package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors StructuredConfig for config files. Durations are written
// as strings ("30s", "1m").
type fileConfig struct {
	App struct {
		APIKey     string   `json:"api_key" yaml:"api_key" toml:"api_key"`
		BinID      string   `json:"bin_id" yaml:"bin_id" toml:"bin_id"`
		LogFile    string   `json:"log_file" yaml:"log_file" toml:"log_file"`
		LogLevel   string   `json:"log_level" yaml:"log_level" toml:"log_level"`
		MasterKeys []string `json:"master_keys" yaml:"master_keys" toml:"master_keys"`
		MaxBinSize int64    `json:"max_bin_size" yaml:"max_bin_size" toml:"max_bin_size"`
		Version    string   `json:"version" yaml:"version" toml:"version"`
	} `json:"app" yaml:"app" toml:"app"`

	Client struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn" toml:"dsn"`
		} `json:"db" yaml:"db" toml:"db"`
	} `json:"client" yaml:"client" toml:"client"`

	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url" toml:"base_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" yaml:"adapter" toml:"adapter"`

	Sync struct {
		BaseBackoff   Duration `json:"base_backoff" yaml:"base_backoff" toml:"base_backoff"`
		MaxBackoff    Duration `json:"max_backoff" yaml:"max_backoff" toml:"max_backoff"`
		MaxRetries    int      `json:"max_retries" yaml:"max_retries" toml:"max_retries"`
		JitterPercent uint64   `json:"jitter_percent" yaml:"jitter_percent" toml:"jitter_percent"`
		ProbeInterval Duration `json:"probe_interval" yaml:"probe_interval" toml:"probe_interval"`
	} `json:"sync" yaml:"sync" toml:"sync"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn" toml:"dsn"`
		} `json:"db" yaml:"db" toml:"db"`
		Cache struct {
			RedisAddress  string   `json:"redis_address" yaml:"redis_address" toml:"redis_address"`
			RedisPassword string   `json:"redis_password" yaml:"redis_password" toml:"redis_password"`
			RedisDB       int      `json:"redis_db" yaml:"redis_db" toml:"redis_db"`
			TTL           Duration `json:"ttl" yaml:"ttl" toml:"ttl"`
		} `json:"cache" yaml:"cache" toml:"cache"`
	} `json:"storage" yaml:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
	} `json:"server" yaml:"server" toml:"server"`
}

// parseFile decodes a JSON, YAML or TOML config file chosen by extension.
func parseFile(fsys afero.Fs, path string) (*StructuredConfig, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			APIKey:     fc.App.APIKey,
			BinID:      fc.App.BinID,
			LogFile:    fc.App.LogFile,
			LogLevel:   fc.App.LogLevel,
			MasterKeys: fc.App.MasterKeys,
			MaxBinSize: fc.App.MaxBinSize,
			Version:    fc.App.Version,
		},
		Client: Client{
			DB: ClientDB{DSN: fc.Client.DB.DSN},
		},
		Adapter: Adapter{
			BaseURL:        fc.Adapter.BaseURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Sync: Sync{
			BaseBackoff:   time.Duration(fc.Sync.BaseBackoff),
			MaxBackoff:    time.Duration(fc.Sync.MaxBackoff),
			MaxRetries:    fc.Sync.MaxRetries,
			JitterPercent: fc.Sync.JitterPercent,
			ProbeInterval: time.Duration(fc.Sync.ProbeInterval),
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
			Cache: Cache{
				RedisAddress:  fc.Storage.Cache.RedisAddress,
				RedisPassword: fc.Storage.Cache.RedisPassword,
				RedisDB:       fc.Storage.Cache.RedisDB,
				TTL:           time.Duration(fc.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in every supported file format. JSON numbers are read as
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
