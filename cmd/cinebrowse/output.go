package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// printWarnings reports failed upstream fetches. The rest of the output
// shows the fallback values the server substituted.
func printWarnings(w io.Writer, warnings []Warning) {
	for _, warn := range warnings {
		if warn.Key != "" {
			fmt.Fprintf(w, "warning: %s %s: %s\n", warn.Op, warn.Key, warn.Message)
			continue
		}
		fmt.Fprintf(w, "warning: %s: %s\n", warn.Op, warn.Message)
	}
}

func parseMovieID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie ID: %s", s)
	}
	return id, nil
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func yearOf(m *Movie) string {
	year := m.Year()
	if year == 0 {
		return "----"
	}
	return strconv.Itoa(year)
}
