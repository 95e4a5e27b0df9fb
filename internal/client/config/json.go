package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given as strings like "300ms"; sizes in bytes. Zero values mean "keep the
// current setting", so a partial file only overrides what it names.
type jsonConfig struct {
	ServerBaseURL  string `json:"server_base_url"`
	MediaBaseURL   string `json:"media_base_url"`
	TokenFile      string `json:"token_file"`
	PageSize       int    `json:"page_size"`
	SearchDebounce string `json:"search_debounce"`
	RequestTimeout string `json:"request_timeout"`
	MaxUploadSize  int64  `json:"max_upload_size"`
}

// parseJSON overlays cfg with values loaded from the JSON file at path.
// An empty path means no JSON source is configured and is not an error.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.MediaBaseURL != "" {
		cfg.MediaBaseURL = jc.MediaBaseURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.MaxUploadSize > 0 {
		cfg.MaxUploadSize = jc.MaxUploadSize
	}
	if jc.SearchDebounce != "" {
		d, err := time.ParseDuration(jc.SearchDebounce)
		if err != nil {
			return fmt.Errorf("parse search_debounce: %w", err)
		}
		cfg.SearchDebounce = d
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
