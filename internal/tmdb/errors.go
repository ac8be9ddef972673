package tmdb

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCategory indicates a category outside the known listings.
	// No request is issued for it.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrFetchFailure matches every *FetchError.
	ErrFetchFailure = errors.New("fetch failed")

	// ErrNotFound is returned (wrapped in a FetchError) when TMDB answers 404.
	ErrNotFound = errors.New("movie not found")
)

// Operation names carried by FetchError.
const (
	OpGenres   = "genres"
	OpCategory = "category"
	OpGenre    = "genre"
	OpPoster   = "poster"
	OpSimilar  = "similar"
	OpCast     = "cast"
)

// InvalidCategoryError reports the rejected category value.
type InvalidCategoryError struct {
	Value string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q", e.Value)
}

func (e *InvalidCategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("TMDB API error: %s", e.Status)
}

// FetchError reports a failed query for one operation and key.
// The operation that produced it has already returned its fallback value.
type FetchError struct {
	Op  string
	Key string // empty for genres
	Err error
}

func (e *FetchError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fetch %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailure
}

// IsFetchFailure reports whether err carries a FetchError and returns it.
func IsFetchFailure(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
