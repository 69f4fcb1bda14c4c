package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error, an empty configs slice and falls back to the OS filesystem.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.IsType(t, &afero.OsFs{}, b.fs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(afero.NewMemMapFs()).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(afero.NewMemMapFs())
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that later non-zero fields win and
// zero fields keep the earlier value.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder(afero.NewMemMapFs()).withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Sync: Sync{MaxRetries: 2}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, 2, cfg.Sync.MaxRetries)
	assert.Equal(t, DefaultBaseBackoff, cfg.Sync.BaseBackoff)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder(afero.NewMemMapFs()).withDotEnv(".env")
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_ReadsValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".env", []byte(
		"SYNC_MAX_RETRIES=7\n# comment\nADAPTER_BASE_URL=http://localhost:9000/v3\n",
	), 0o600))

	b := newConfigBuilder(fs).withDotEnv(".env")
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 7, b.configs[0].Sync.MaxRetries)
	assert.Equal(t, "http://localhost:9000/v3", b.configs[0].Adapter.BaseURL)
}

func TestWithDotEnv_EnvironmentWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".env", []byte("SYNC_MAX_RETRIES=7\n"), 0o600))
	t.Setenv("SYNC_MAX_RETRIES", "3")

	cfg, err := newConfigBuilder(fs).withDefaults().withDotEnv(".env").withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder(afero.NewMemMapFs()).withFlags(&StructuredConfig{})
	b.withFile()
	assert.NoError(t, b.err)
	assert.Nil(t, b.file)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder(afero.NewMemMapFs()).
		withFlags(&StructuredConfig{ConfigFilePath: "/etc/fitsync.yaml"}).
		withFile()
	assert.Error(t, b.err)
}

// TestWithFile_BelowFlags verifies that the config file overrides defaults
// but is overridden by flags.
func TestWithFile_BelowFlags(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/fitsync.yaml", []byte(`
sync:
  max_retries: 9
  base_backoff: 2s
adapter:
  base_url: http://file.example/v3
`), 0o600))

	cfg, err := newConfigBuilder(fs).
		withDefaults().
		withFlags(&StructuredConfig{
			ConfigFilePath: "/etc/fitsync.yaml",
			Adapter:        Adapter{BaseURL: "http://flag.example/v3"},
		}).
		withFile().
		build()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Sync.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Sync.BaseBackoff)
	assert.Equal(t, "http://flag.example/v3", cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultMaxBackoff, cfg.Sync.MaxBackoff)
}

// ── GetClientConfig / GetServerConfig ─────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(afero.NewMemMapFs(), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Sync.BaseBackoff)
	assert.Equal(t, 30*time.Second, cfg.Sync.MaxBackoff)
	assert.Equal(t, 5, cfg.Sync.MaxRetries)
	assert.Zero(t, cfg.Sync.JitterPercent)
	assert.Empty(t, cfg.App.APIKey)
}

func TestGetClientConfig_FlagOverrides(t *testing.T) {
	cfg, err := GetClientConfig(afero.NewMemMapFs(), &StructuredConfig{
		App:    App{APIKey: "$2a$10$abcdefghijklmnopqrstuv", BinID: "bin-1"},
		Client: Client{DB: ClientDB{DSN: "/tmp/fit.db"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "bin-1", cfg.App.BinID)
	assert.Equal(t, "/tmp/fit.db", cfg.Storage.DB.DSN)
}

func TestGetClientConfig_InvalidKey(t *testing.T) {
	_, err := GetClientConfig(afero.NewMemMapFs(), &StructuredConfig{App: App{APIKey: "nope"}})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetServerConfig(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/bins")

	cfg, err := GetServerConfig(afero.NewMemMapFs(), []string{
		"-a", "127.0.0.1:9000",
		"-master-keys", "$2a$10$one, $2a$10$two",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"$2a$10$one", "$2a$10$two"}, cfg.App.MasterKeys)
	assert.Equal(t, int64(DefaultMaxBinSize), cfg.App.MaxBinSize)
	assert.Equal(t, "postgres://u:p@localhost/bins", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultCacheTTL, cfg.Storage.Cache.TTL)
}

func TestGetServerConfig_NoMasterKeys(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/bins")

	_, err := GetServerConfig(afero.NewMemMapFs(), nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetServerConfig_BadFlag(t *testing.T) {
	_, err := GetServerConfig(afero.NewMemMapFs(), []string{"-a", "nowhere"})
	assert.Error(t, err)
}
