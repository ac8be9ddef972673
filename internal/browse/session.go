// Package browse assembles page models from catalog results and manages
// navigation between the home and details pages.
package browse

import (
	"fmt"

	"github.com/vmunix/cinebrowse/internal/tmdb"
)

// Page selects which view is shown.
type Page int

const (
	PageHome Page = iota
	PageDetails
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageDetails:
		return "details"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// AllGenres is the GenreID meaning no genre filter.
const AllGenres = 0

// Session is the navigation state of one user. It is a value: transitions
// return a new Session and never mutate the receiver.
type Session struct {
	Page     Page
	Category tmdb.Category
	GenreID  int
	Query    string
	Selected *tmdb.MovieSummary
}

// NewSession returns the initial state: the home page of the first category.
func NewSession() Session {
	return Session{Page: PageHome, Category: tmdb.Categories[0], GenreID: AllGenres}
}

// Select navigates to the details page of m.
func (s Session) Select(m tmdb.MovieSummary) Session {
	s.Page = PageDetails
	s.Selected = &m
	return s
}

// Back returns to the home page, keeping category, genre and query.
func (s Session) Back() Session {
	s.Page = PageHome
	return s
}

// WithCategory switches category and clears the genre filter.
func (s Session) WithCategory(c tmdb.Category) Session {
	s.Category = c
	s.GenreID = AllGenres
	return s
}

// WithGenre filters the home listing by genre; AllGenres removes the filter.
func (s Session) WithGenre(genreID int) Session {
	s.GenreID = genreID
	return s
}

// WithQuery sets the title search query.
func (s Session) WithQuery(q string) Session {
	s.Query = q
	return s
}
