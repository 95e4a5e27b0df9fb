package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the newsadmin CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - MediaBaseURL: base used to resolve relative media references. Empty
//     means "same as ServerBaseURL".
//   - TokenFile: where the bearer credential is persisted between runs.
//   - PageSize: default list page size.
//   - SearchDebounce: quiet period before a search keystroke triggers a fetch.
//   - RequestTimeout: per-request ceiling. Deliberately generous so large
//     media uploads are not cut off.
//   - MaxUploadSize: upload staging rejects files larger than this (bytes).
type Config struct {
	ServerBaseURL  string
	MediaBaseURL   string
	TokenFile      string
	PageSize       int
	SearchDebounce time.Duration
	RequestTimeout time.Duration
	MaxUploadSize  int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.MediaBaseURL = ""
	c.TokenFile = defaultTokenFile()
	c.PageSize = 10
	c.SearchDebounce = 300 * time.Millisecond
	c.RequestTimeout = 3 * time.Minute
	c.MaxUploadSize = 5 << 20
}

// MediaBase returns the effective base for resolving relative media paths.
func (c *Config) MediaBase() string {
	if c.MediaBaseURL != "" {
		return c.MediaBaseURL
	}
	return c.ServerBaseURL
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "ludoan72", "token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a JSON file (if jsonPath is non-empty) and environment variables.
// Later sources take precedence over earlier ones. A .env file in the
// working directory is loaded first, best-effort, so environment overlays
// can come from it.
func LoadConfig(jsonPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, jsonPath); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}
