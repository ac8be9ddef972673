// internal/api/v1/types.go
package v1

import (
	"github.com/vmunix/cinebrowse/internal/browse"
	"github.com/vmunix/cinebrowse/internal/catalog"
	"github.com/vmunix/cinebrowse/internal/dataset"
	"github.com/vmunix/cinebrowse/internal/tmdb"
)

// Warnings list failed upstream fetches. Responses carrying warnings hold
// the documented fallback values and are still served with 200.

// genresResponse is the response for GET /genres.
type genresResponse struct {
	Genres   []tmdb.Genre    `json:"genres"`
	Warnings []browse.Notice `json:"warnings,omitempty"`
}

// moviesResponse is the response for GET /movies.
type moviesResponse struct {
	Category string              `json:"category,omitempty"`
	GenreID  int                 `json:"genre_id,omitempty"`
	Query    string              `json:"query,omitempty"`
	Movies   []tmdb.MovieSummary `json:"movies"`
	Warnings []browse.Notice     `json:"warnings,omitempty"`
}

// movieResponse is the response for GET /movies/{id}.
type movieResponse struct {
	ID        int64           `json:"id"`
	PosterURL *string         `json:"poster_url,omitempty"`
	Overview  string          `json:"overview"`
	Warnings  []browse.Notice `json:"warnings,omitempty"`
}

// castResponse is the response for GET /movies/{id}/cast.
type castResponse struct {
	ID       int64            `json:"id"`
	Cast     []tmdb.CastEntry `json:"cast"`
	Warnings []browse.Notice  `json:"warnings,omitempty"`
}

// similarResponse is the response for GET /movies/{id}/similar.
type similarResponse struct {
	ID       int64               `json:"id"`
	Movies   []tmdb.MovieSummary `json:"movies"`
	Warnings []browse.Notice     `json:"warnings,omitempty"`
}

// recommendationsResponse is the response for GET /movies/{id}/recommendations.
type recommendationsResponse struct {
	Movie           dataset.Movie            `json:"movie"`
	Recommendations []dataset.Recommendation `json:"recommendations"`
}

// searchResponse is the response for GET /dataset/search.
type searchResponse struct {
	Query      string          `json:"query"`
	Matches    []dataset.Movie `json:"matches"`
	Exact      *dataset.Movie  `json:"exact,omitempty"`
	Suggestion *suggestion     `json:"suggestion,omitempty"`
}

type suggestion struct {
	dataset.Movie
	Score float64 `json:"score"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status        string              `json:"status"`
	Version       string              `json:"version,omitempty"`
	UptimeSeconds int64               `json:"uptime_seconds"`
	DatasetLoaded bool                `json:"dataset_loaded"`
	DatasetMovies int                 `json:"dataset_movies"`
	Caches        []catalog.CacheStat `json:"caches"`
}
