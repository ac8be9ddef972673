package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Error_Empty(t *testing.T) {
	e := &ConfigError{Path: "/etc/cinebrowse/config.toml"}
	assert.Empty(t, e.Error())
	assert.False(t, e.HasErrors())
}

func TestConfigError_Error_MissingVars(t *testing.T) {
	e := &ConfigError{
		Path:    "/etc/cinebrowse/config.toml",
		Missing: []string{"TMDB_API_KEY", "CINEBROWSE_DATASET"},
	}
	got := e.Error()
	assert.Contains(t, got, "config /etc/cinebrowse/config.toml:")
	assert.Contains(t, got, "missing environment variables: TMDB_API_KEY, CINEBROWSE_DATASET")
}

func TestConfigError_Error_GroupsBySection(t *testing.T) {
	e := &ConfigError{
		Errors: []string{
			"tmdb.api_key: required",
			"server.port: must be between 1 and 65535, got 0",
			"tmdb.timeout: must not be negative, got -1s",
		},
	}
	want := "validation failed:\n" +
		"  [server]\n" +
		"    - port: must be between 1 and 65535, got 0\n" +
		"  [tmdb]\n" +
		"    - api_key: required\n" +
		"    - timeout: must not be negative, got -1s"
	assert.Equal(t, want, e.Error())
}

func TestConfigError_Error_Both(t *testing.T) {
	e := &ConfigError{
		Missing: []string{"TMDB_API_KEY"},
		Errors:  []string{"cache.capacity: must not be negative, got -1"},
	}
	got := e.Error()
	assert.Contains(t, got, "missing environment variables")
	assert.Contains(t, got, "[cache]")
}

func TestConfigError_BySection(t *testing.T) {
	e := &ConfigError{
		Errors: []string{
			"metrics.path: must start with /, got \"metrics\"",
			"dataset.path: file \"x.db\" does not exist",
			"something odd happened",
			"dataset.extra: unexpected",
		},
	}

	assert.Equal(t, map[string][]string{
		"metrics": {"path: must start with /, got \"metrics\""},
		"dataset": {"path: file \"x.db\" does not exist", "extra: unexpected"},
		"config":  {"something odd happened"},
	}, e.BySection())
	assert.Equal(t, []string{"dataset", "metrics", "config"}, e.Sections())
}
