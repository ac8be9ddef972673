// Package dataset loads the local movie listing and precomputed
// similarity table. A loaded Dataset is immutable.
package dataset

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/sahilm/fuzzy"
	_ "modernc.org/sqlite"
)

// Schema is the DDL of the artifact file.
//
//go:embed sql/schema.sql
var Schema string

// closestThreshold is the minimum Jaro-Winkler similarity for Closest.
const closestThreshold = 0.85

// ErrNotFound indicates a movie id absent from the listing.
var ErrNotFound = errors.New("movie not in dataset")

// Movie is one entry of the local listing.
type Movie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Recommendation is a similar movie with its precomputed score.
type Recommendation struct {
	Movie
	Score float64 `json:"score"`
}

// Dataset is the in-memory copy of the artifact file.
// All methods are safe for concurrent use.
type Dataset struct {
	movies      []Movie
	lowerTitles []string
	byID        map[int64]int
	byTitle     map[string]int
	similar     map[int64][]Recommendation
}

// Open loads the artifact file at path. The file must already exist.
func Open(ctx context.Context, path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = db.Close() }()

	return Load(ctx, db)
}

// Load reads the movie listing and similarity table from db.
func Load(ctx context.Context, db *sql.DB) (*Dataset, error) {
	d := &Dataset{
		byID:    make(map[int64]int),
		byTitle: make(map[string]int),
		similar: make(map[int64][]Recommendation),
	}

	rows, err := db.QueryContext(ctx, "SELECT id, title FROM movies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.ID, &m.Title); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		d.add(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}

	simRows, err := db.QueryContext(ctx, "SELECT movie_id, similar_id, score FROM similarity")
	if err != nil {
		return nil, fmt.Errorf("load similarity: %w", err)
	}
	defer func() { _ = simRows.Close() }()

	for simRows.Next() {
		var movieID, similarID int64
		var score float64
		if err := simRows.Scan(&movieID, &similarID, &score); err != nil {
			return nil, fmt.Errorf("scan similarity: %w", err)
		}
		idx, ok := d.byID[similarID]
		if !ok || movieID == similarID {
			continue
		}
		d.similar[movieID] = append(d.similar[movieID], Recommendation{Movie: d.movies[idx], Score: score})
	}
	if err := simRows.Err(); err != nil {
		return nil, fmt.Errorf("load similarity: %w", err)
	}

	for id, recs := range d.similar {
		sort.SliceStable(recs, func(i, j int) bool {
			if recs[i].Score != recs[j].Score {
				return recs[i].Score > recs[j].Score
			}
			return recs[i].ID < recs[j].ID
		})
		d.similar[id] = recs
	}

	return d, nil
}

func (d *Dataset) add(m Movie) {
	d.byID[m.ID] = len(d.movies)
	key := strings.ToLower(m.Title)
	if _, dup := d.byTitle[key]; !dup {
		d.byTitle[key] = len(d.movies)
	}
	d.movies = append(d.movies, m)
	d.lowerTitles = append(d.lowerTitles, key)
}

// Len returns the number of movies in the listing.
func (d *Dataset) Len() int { return len(d.movies) }

// Movies returns a copy of the listing ordered by id.
func (d *Dataset) Movies() []Movie {
	out := make([]Movie, len(d.movies))
	copy(out, d.movies)
	return out
}

// Lookup returns the movie with the given id.
func (d *Dataset) Lookup(id int64) (Movie, bool) {
	idx, ok := d.byID[id]
	if !ok {
		return Movie{}, false
	}
	return d.movies[idx], true
}

// FindByTitle returns the first movie whose title equals title, ignoring case.
func (d *Dataset) FindByTitle(title string) (Movie, bool) {
	idx, ok := d.byTitle[strings.ToLower(title)]
	if !ok {
		return Movie{}, false
	}
	return d.movies[idx], true
}

// Closest returns the movie whose title is most similar to title, for
// "did you mean" hints. ok is false when nothing scores above the threshold.
func (d *Dataset) Closest(title string) (m Movie, score float64, ok bool) {
	want := strings.ToLower(strings.TrimSpace(title))
	if want == "" {
		return Movie{}, 0, false
	}

	best := -1
	for i, candidate := range d.lowerTitles {
		s := float64(edlib.JaroWinklerSimilarity(want, candidate))
		if s > score {
			score = s
			best = i
		}
	}
	if best < 0 || score < closestThreshold {
		return Movie{}, score, false
	}
	return d.movies[best], score, true
}

// titleSource adapts the listing to fuzzy.Source.
type titleSource []string

func (s titleSource) String(i int) string { return s[i] }
func (s titleSource) Len() int            { return len(s) }

// Search ranks movies by fuzzy title match. limit <= 0 returns all matches.
func (d *Dataset) Search(query string, limit int) []Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, titleSource(d.lowerTitles))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Movie, 0, len(matches))
	for _, m := range matches {
		out = append(out, d.movies[m.Index])
	}
	return out
}

// Recommend returns up to n movies most similar to movieID, best first.
// n <= 0 returns all of them.
func (d *Dataset) Recommend(movieID int64, n int) ([]Recommendation, error) {
	if _, ok := d.byID[movieID]; !ok {
		return nil, fmt.Errorf("recommend %d: %w", movieID, ErrNotFound)
	}

	recs := d.similar[movieID]
	if n > 0 && len(recs) > n {
		recs = recs[:n]
	}
	out := make([]Recommendation, len(recs))
	copy(out, recs)
	return out, nil
}
