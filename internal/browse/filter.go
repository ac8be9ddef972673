package browse

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/cinebrowse/internal/tmdb"
)

// foldTitle lowercases s and strips accents so "Amélie" matches "amelie".
// Casers and transformers are stateful, so both are built per call.
func foldTitle(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(strings.TrimSpace(stripped))
}

// FilterByTitle keeps movies whose title contains query, ignoring case and
// accents. An empty query keeps everything.
func FilterByTitle(movies []tmdb.MovieSummary, query string) []tmdb.MovieSummary {
	q := foldTitle(query)
	if q == "" {
		return movies
	}

	out := make([]tmdb.MovieSummary, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(foldTitle(m.Title), q) {
			out = append(out, m)
		}
	}
	return out
}

// FindByTitle returns the first movie whose title equals title, ignoring
// case and accents.
func FindByTitle(movies []tmdb.MovieSummary, title string) (tmdb.MovieSummary, bool) {
	want := foldTitle(title)
	for _, m := range movies {
		if foldTitle(m.Title) == want {
			return m, true
		}
	}
	return tmdb.MovieSummary{}, false
}
