package config

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigError aggregates everything wrong with one config file: unresolved
// environment references and validation failures. Validation messages are
// prefixed with their key ("tmdb.api_key: required") so they can be
// reported per TOML table.
type ConfigError struct {
	Path    string   // Config file path
	Missing []string // Unresolved environment variables
	Errors  []string // Validation errors, "section.key: message"
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("config %s:", e.Path))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing environment variables: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Errors) > 0 {
		parts = append(parts, "validation failed:")
		bySection := e.BySection()
		for _, section := range e.Sections() {
			parts = append(parts, fmt.Sprintf("  [%s]", section))
			for _, msg := range bySection[section] {
				parts = append(parts, fmt.Sprintf("    - %s", msg))
			}
		}
	}
	return strings.Join(parts, "\n")
}

// HasErrors returns true if there are any errors.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

// BySection groups validation errors by TOML table. The section prefix is
// stripped from each message; errors without a prefix land under "config".
func (e *ConfigError) BySection() map[string][]string {
	out := make(map[string][]string)
	for _, msg := range e.Errors {
		section, rest := splitSection(msg)
		out[section] = append(out[section], rest)
	}
	return out
}

// Sections lists the tables with validation errors in file order
// (server, tmdb, cache, dataset, metrics); unknown tables sort last.
func (e *ConfigError) Sections() []string {
	seen := make(map[string]bool)
	var sections []string
	for _, msg := range e.Errors {
		section, _ := splitSection(msg)
		if !seen[section] {
			seen[section] = true
			sections = append(sections, section)
		}
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sectionRank(sections[i]) < sectionRank(sections[j])
	})
	return sections
}

var sectionOrder = []string{"server", "tmdb", "cache", "dataset", "metrics"}

func sectionRank(section string) int {
	for i, s := range sectionOrder {
		if s == section {
			return i
		}
	}
	return len(sectionOrder)
}

// splitSection turns "tmdb.api_key: required" into ("tmdb", "api_key: required").
func splitSection(msg string) (string, string) {
	key, _, found := strings.Cut(msg, ":")
	if !found {
		return "config", msg
	}
	section, _, found := strings.Cut(key, ".")
	if !found || strings.ContainsAny(section, " \t") {
		return "config", msg
	}
	return section, strings.TrimPrefix(msg, section+".")
}
