// Package tmdb provides a read-only client for The Movie Database API.
package tmdb

import (
	"strconv"
	"strings"
)

// Fallback values used when the remote record omits a field.
const (
	NoDescription = "No description available."
	NoName        = "No Name"
	NoRole        = "No Role"
	NoJob         = "No Job"
)

// Category is one of the curated movie listings.
type Category string

const (
	CategoryPopular  Category = "Popular"
	CategoryTrending Category = "Trending"
	CategoryTopRated Category = "Top Rated"
	CategoryUpcoming Category = "Upcoming"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryPopular, CategoryTrending, CategoryTopRated, CategoryUpcoming}

// categoryPaths maps each category to its listing endpoint.
var categoryPaths = map[Category]string{
	CategoryPopular:  "/3/movie/popular",
	CategoryTrending: "/3/trending/movie/week",
	CategoryTopRated: "/3/movie/top_rated",
	CategoryUpcoming: "/3/movie/upcoming",
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryPaths[c]
	return ok
}

func (c Category) String() string { return string(c) }

// ParseCategory resolves a user-supplied category name.
// Matching ignores case, spaces, underscores and dashes, so "top_rated",
// "TopRated" and "Top Rated" are equivalent.
func ParseCategory(s string) (Category, error) {
	want := squash(s)
	for _, c := range Categories {
		if squash(string(c)) == want {
			return c, nil
		}
	}
	return "", &InvalidCategoryError{Value: s}
}

func squash(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Genre represents a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieSummary is one entry of a category, genre or similar-movies listing.
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"` // "2024-03-01"
	PosterPath  string  `json:"poster_path,omitempty"`  // "/abc123.jpg"
	GenreIDs    []int   `json:"genre_ids,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	VoteCount   int     `json:"vote_count,omitempty"`
}

// Year extracts the year from ReleaseDate.
func (m *MovieSummary) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// MovieDetail is the poster and synopsis of a single movie.
type MovieDetail struct {
	PosterURL *string `json:"poster_url,omitempty"`
	Overview  string  `json:"overview"`
}

// fallbackDetail is returned when no usable detail record is available.
func fallbackDetail() MovieDetail {
	return MovieDetail{Overview: NoDescription}
}

// CreditKind tells cast members apart from crew members.
type CreditKind string

const (
	CreditCast CreditKind = "cast"
	CreditCrew CreditKind = "crew"
)

// CastEntry is one credited person. Role is the character name for cast
// members and the job title for crew members.
type CastEntry struct {
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	ProfileURL *string    `json:"profile_url,omitempty"`
	Kind       CreditKind `json:"kind"`
}

// maxCreditsPerKind bounds how many cast and crew entries are kept.
const maxCreditsPerKind = 5

// DTOs for the raw API envelopes. They never leave this package.

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

type movieListResponse struct {
	Results []movieDTO `json:"results"`
}

type movieDTO struct {
	ID          int64    `json:"id"`
	Title       *string  `json:"title"`
	Overview    *string  `json:"overview"`
	ReleaseDate *string  `json:"release_date"`
	PosterPath  *string  `json:"poster_path"`
	GenreIDs    []int    `json:"genre_ids"`
	Popularity  *float64 `json:"popularity"`
	VoteAverage *float64 `json:"vote_average"`
	VoteCount   *int     `json:"vote_count"`
}

type creditsResponse struct {
	Cast []personDTO `json:"cast"`
	Crew []personDTO `json:"crew"`
}

type personDTO struct {
	Name        *string `json:"name"`
	Character   *string `json:"character"`
	Job         *string `json:"job"`
	ProfilePath *string `json:"profile_path"`
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func (d movieDTO) summary() MovieSummary {
	return MovieSummary{
		ID:          d.ID,
		Title:       deref(d.Title, ""),
		Overview:    deref(d.Overview, ""),
		ReleaseDate: deref(d.ReleaseDate, ""),
		PosterPath:  deref(d.PosterPath, ""),
		GenreIDs:    d.GenreIDs,
		Popularity:  deref(d.Popularity, 0),
		VoteAverage: deref(d.VoteAverage, 0),
		VoteCount:   deref(d.VoteCount, 0),
	}
}

func summaries(dtos []movieDTO) []MovieSummary {
	out := make([]MovieSummary, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.summary())
	}
	return out
}
