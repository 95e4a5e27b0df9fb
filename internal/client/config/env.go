package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables recognized by the client. They override both the
// defaults and any JSON file.
const (
	EnvServerBaseURL = "NEWSADMIN_API_URL"
	EnvMediaBaseURL  = "NEWSADMIN_MEDIA_URL"
	EnvTokenFile     = "NEWSADMIN_TOKEN_FILE"
	EnvPageSize      = "NEWSADMIN_PAGE_SIZE"
	EnvMaxUploadSize = "NEWSADMIN_MAX_UPLOAD"
	EnvDebounce      = "NEWSADMIN_DEBOUNCE"
	EnvTimeout       = "NEWSADMIN_TIMEOUT"
)

func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(EnvMediaBaseURL); v != "" {
		cfg.MediaBaseURL = v
	}
	if v := os.Getenv(EnvTokenFile); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv(EnvMaxUploadSize); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadSize = n
		}
	}
	parseDurationEnv(EnvDebounce, &cfg.SearchDebounce)
	parseDurationEnv(EnvTimeout, &cfg.RequestTimeout)
}

func parseDurationEnv(key string, into *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*into = d
		}
	}
}
