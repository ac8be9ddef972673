// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied by Load.
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8585
	DefaultLogLevel     = "info"
	DefaultBaseURL      = "https://api.themoviedb.org"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultLanguage     = "en-US"
	DefaultTimeout      = 10 * time.Second
	DefaultCapacity     = 128
	DefaultMetricsPath  = "/metrics"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	TMDB    TMDBConfig    `toml:"tmdb"`
	Cache   CacheConfig   `toml:"cache"`
	Dataset DatasetConfig `toml:"dataset"`
	Metrics MetricsConfig `toml:"metrics"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type TMDBConfig struct {
	APIKey       string        `toml:"api_key"`
	BaseURL      string        `toml:"base_url"`
	ImageBaseURL string        `toml:"image_base_url"`
	Language     string        `toml:"language"`
	Timeout      time.Duration `toml:"timeout"`
}

// CacheConfig sizes the per-operation query caches.
type CacheConfig struct {
	Capacity      int  `toml:"capacity"`
	CacheFailures bool `toml:"cache_failures"`
}

// DatasetConfig points at the precomputed movie listing and similarity
// table. An empty path disables local recommendations.
type DatasetConfig struct {
	Path string `toml:"path"`
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads, substitutes, parses and validates the configuration file.
// Missing environment variables and validation failures are reported
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	cfgErr := &ConfigError{
		Path:    path,
		Missing: missing,
		Errors:  cfg.Validate(),
	}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = DefaultBaseURL
	}
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = DefaultImageBaseURL
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = DefaultLanguage
	}
	if c.TMDB.Timeout == 0 {
		c.TMDB.Timeout = DefaultTimeout
	}
	if c.Cache.Capacity == 0 {
		c.Cache.Capacity = DefaultCapacity
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment variable references.
// Unresolved references are left in place and reported in missing; a
// ${VAR:?message} reference reports "VAR: message".
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
