package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, "http://localhost:3000", cfg.ServerBaseURL)
	require.Equal(t, 10, cfg.PageSize)
	require.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	require.Equal(t, 3*time.Minute, cfg.RequestTimeout)
	require.Equal(t, int64(5<<20), cfg.MaxUploadSize)
	require.NotEmpty(t, cfg.TokenFile)
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"server_base_url":"https://api.ludoan72.vn","page_size":25,"search_debounce":"150ms"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "https://api.ludoan72.vn", cfg.ServerBaseURL)
	require.Equal(t, 25, cfg.PageSize)
	require.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	// Unspecified fields keep their defaults.
	require.Equal(t, 3*time.Minute, cfg.RequestTimeout)
}

func TestLoadConfig_EnvOverridesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url":"https://from-json"}`), 0o600))

	t.Setenv(EnvServerBaseURL, "https://from-env")
	t.Setenv(EnvPageSize, "50")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "https://from-env", cfg.ServerBaseURL)
	require.Equal(t, 50, cfg.PageSize)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_MissingJSONFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestMediaBase_FallsBackToServer(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	require.Equal(t, cfg.ServerBaseURL, cfg.MediaBase())

	cfg.MediaBaseURL = "https://cdn.ludoan72.vn"
	require.Equal(t, "https://cdn.ludoan72.vn", cfg.MediaBase())
}

func TestLoadConfig_IgnoresInvalidNumericEnv(t *testing.T) {
	t.Setenv(EnvPageSize, "banana")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, 10, cfg.PageSize)
}
