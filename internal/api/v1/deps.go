package v1

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmunix/cinebrowse/internal/browse"
	"github.com/vmunix/cinebrowse/internal/catalog"
	"github.com/vmunix/cinebrowse/internal/dataset"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/vmunix/cinebrowse/internal/api/v1 Catalog,Pages,Dataset

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Catalog is the memoized TMDB catalog.
type Catalog interface {
	browse.Catalog
	Stats() []catalog.CacheStat
}

// Pages assembles the browse pages.
type Pages interface {
	Home(ctx context.Context, s browse.Session) (browse.HomeView, error)
	Details(ctx context.Context, s browse.Session) (browse.DetailsView, error)
}

// Dataset is the local movie listing and similarity table.
type Dataset interface {
	Len() int
	Lookup(id int64) (dataset.Movie, bool)
	FindByTitle(title string) (dataset.Movie, bool)
	Closest(title string) (dataset.Movie, float64, bool)
	Search(query string, limit int) []dataset.Movie
	Recommend(movieID int64, n int) ([]dataset.Recommendation, error)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Catalog Catalog
	Pages   Pages

	// Optional dependencies (nil if not configured)
	Dataset Dataset
	Logger  *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	if d.Pages == nil {
		return errors.New("pages assembler is required")
	}
	return nil
}
