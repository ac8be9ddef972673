// Package catalog memoizes TMDB queries for the lifetime of the process.
package catalog

import (
	"context"
	"log/slog"

	"github.com/vmunix/cinebrowse/internal/memo"
	"github.com/vmunix/cinebrowse/internal/tmdb"
)

// Source is the remote catalog queried on cache misses.
// *tmdb.Client satisfies it.
type Source interface {
	Genres(ctx context.Context) (map[int]string, error)
	MoviesByCategory(ctx context.Context, category tmdb.Category) ([]tmdb.MovieSummary, error)
	MoviesByGenre(ctx context.Context, genreID int) ([]tmdb.MovieSummary, error)
	MovieDetail(ctx context.Context, movieID int64) (tmdb.MovieDetail, error)
	SimilarMovies(ctx context.Context, movieID int64) ([]tmdb.MovieSummary, error)
	Cast(ctx context.Context, movieID int64) ([]tmdb.CastEntry, error)
}

// FailureRecorder counts fetch failures per operation.
type FailureRecorder interface {
	FetchFailed(op string)
}

// Config controls the per-operation caches.
type Config struct {
	Capacity      int  // distinct keys per operation; 0 uses memo.DefaultCapacity
	CacheFailures bool // memoize fallback values of failed fetches
}

// CacheStat describes one operation cache.
type CacheStat struct {
	Name     string `json:"name"`
	Entries  int    `json:"entries"`
	Capacity int    `json:"capacity"`
}

type none struct{}

// Service exposes the TMDB operations behind one LRU cache per operation.
// It is safe for concurrent use. Returned slices and maps are shared with
// the cache and must not be modified.
type Service struct {
	source   Source
	log      *slog.Logger
	failures FailureRecorder

	genres   *memo.Cache[none, map[int]string]
	category *memo.Cache[tmdb.Category, []tmdb.MovieSummary]
	genre    *memo.Cache[int, []tmdb.MovieSummary]
	detail   *memo.Cache[int64, tmdb.MovieDetail]
	similar  *memo.Cache[int64, []tmdb.MovieSummary]
	cast     *memo.Cache[int64, []tmdb.CastEntry]
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	observer memo.Observer
	failures FailureRecorder
}

// WithObserver reports cache hits, misses and evictions.
func WithObserver(obs memo.Observer) Option {
	return func(o *serviceOptions) {
		o.observer = obs
	}
}

// WithFailureRecorder reports fetch failures.
func WithFailureRecorder(r FailureRecorder) Option {
	return func(o *serviceOptions) {
		o.failures = r
	}
}

// New creates a catalog service over source.
func New(source Source, cfg Config, log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.Default()
	}
	var so serviceOptions
	for _, opt := range opts {
		opt(&so)
	}

	cacheOpts := []memo.Option{
		memo.WithCapacity(cfg.Capacity),
		memo.WithCacheFailures(cfg.CacheFailures),
	}
	if so.observer != nil {
		cacheOpts = append(cacheOpts, memo.WithObserver(so.observer))
	}

	return &Service{
		source:   source,
		log:      log,
		failures: so.failures,
		genres:   memo.New[none, map[int]string](tmdb.OpGenres, cacheOpts...),
		category: memo.New[tmdb.Category, []tmdb.MovieSummary](tmdb.OpCategory, cacheOpts...),
		genre:    memo.New[int, []tmdb.MovieSummary](tmdb.OpGenre, cacheOpts...),
		detail:   memo.New[int64, tmdb.MovieDetail](tmdb.OpPoster, cacheOpts...),
		similar:  memo.New[int64, []tmdb.MovieSummary](tmdb.OpSimilar, cacheOpts...),
		cast:     memo.New[int64, []tmdb.CastEntry](tmdb.OpCast, cacheOpts...),
	}
}

// Genres returns all genres as an id to name mapping.
func (s *Service) Genres(ctx context.Context) (map[int]string, error) {
	genres, err := s.genres.Get(ctx, none{}, s.source.Genres)
	return genres, s.report(err)
}

// MoviesByCategory returns a curated listing. Unknown categories fail with
// tmdb.ErrInvalidCategory and are neither fetched nor cached.
func (s *Service) MoviesByCategory(ctx context.Context, category tmdb.Category) ([]tmdb.MovieSummary, error) {
	if !category.Valid() {
		return []tmdb.MovieSummary{}, &tmdb.InvalidCategoryError{Value: string(category)}
	}
	movies, err := s.category.Get(ctx, category, func(ctx context.Context) ([]tmdb.MovieSummary, error) {
		return s.source.MoviesByCategory(ctx, category)
	})
	return movies, s.report(err)
}

// MoviesByGenre returns the discovery listing for one genre.
func (s *Service) MoviesByGenre(ctx context.Context, genreID int) ([]tmdb.MovieSummary, error) {
	movies, err := s.genre.Get(ctx, genreID, func(ctx context.Context) ([]tmdb.MovieSummary, error) {
		return s.source.MoviesByGenre(ctx, genreID)
	})
	return movies, s.report(err)
}

// MovieDetail returns the poster URL and overview of a movie.
func (s *Service) MovieDetail(ctx context.Context, movieID int64) (tmdb.MovieDetail, error) {
	detail, err := s.detail.Get(ctx, movieID, func(ctx context.Context) (tmdb.MovieDetail, error) {
		return s.source.MovieDetail(ctx, movieID)
	})
	return detail, s.report(err)
}

// SimilarMovies returns TMDB's recommendations for a movie.
func (s *Service) SimilarMovies(ctx context.Context, movieID int64) ([]tmdb.MovieSummary, error) {
	movies, err := s.similar.Get(ctx, movieID, func(ctx context.Context) ([]tmdb.MovieSummary, error) {
		return s.source.SimilarMovies(ctx, movieID)
	})
	return movies, s.report(err)
}

// Cast returns up to five cast members followed by up to five crew members.
func (s *Service) Cast(ctx context.Context, movieID int64) ([]tmdb.CastEntry, error) {
	entries, err := s.cast.Get(ctx, movieID, func(ctx context.Context) ([]tmdb.CastEntry, error) {
		return s.source.Cast(ctx, movieID)
	})
	return entries, s.report(err)
}

// Stats reports the size of every operation cache.
func (s *Service) Stats() []CacheStat {
	return []CacheStat{
		stat(s.genres),
		stat(s.category),
		stat(s.genre),
		stat(s.detail),
		stat(s.similar),
		stat(s.cast),
	}
}

type sizer interface {
	Name() string
	Len() int
	Capacity() int
}

func stat(c sizer) CacheStat {
	return CacheStat{Name: c.Name(), Entries: c.Len(), Capacity: c.Capacity()}
}

// report logs fetch failures and passes err through unchanged.
func (s *Service) report(err error) error {
	if err == nil {
		return nil
	}
	if fe, ok := tmdb.IsFetchFailure(err); ok {
		s.log.Warn("tmdb fetch failed", "op", fe.Op, "key", fe.Key, "error", fe.Err)
		if s.failures != nil {
			s.failures.FetchFailed(fe.Op)
		}
	}
	return err
}
