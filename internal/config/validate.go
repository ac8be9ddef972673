// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// TMDB validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	if c.TMDB.BaseURL != "" && !isHTTPURL(c.TMDB.BaseURL) {
		errs = append(errs, fmt.Sprintf("tmdb.base_url: must be an http(s) URL, got %q", c.TMDB.BaseURL))
	}
	if c.TMDB.ImageBaseURL != "" && !isHTTPURL(c.TMDB.ImageBaseURL) {
		errs = append(errs, fmt.Sprintf("tmdb.image_base_url: must be an http(s) URL, got %q", c.TMDB.ImageBaseURL))
	}
	if c.TMDB.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.timeout: must not be negative, got %s", c.TMDB.Timeout))
	}

	// Cache validation
	if c.Cache.Capacity < 0 {
		errs = append(errs, fmt.Sprintf("cache.capacity: must not be negative, got %d", c.Cache.Capacity))
	}

	// Dataset validation
	if c.Dataset.Path != "" {
		if _, err := os.Stat(c.Dataset.Path); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("dataset.path: file %q does not exist", c.Dataset.Path))
		}
	}

	// Metrics validation
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Sprintf("metrics.path: must start with /, got %q", c.Metrics.Path))
	}

	return errs
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
