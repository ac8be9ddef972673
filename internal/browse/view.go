package browse

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/vmunix/cinebrowse/internal/dataset"
	"github.com/vmunix/cinebrowse/internal/tmdb"
)

// Messages shown in place of missing content.
const (
	MsgNoMovies        = "No movies found."
	MsgNoSelection     = "No movie selected."
	MsgNotFound        = "Movie not found in the dataset."
	PlaceholderProfile = "https://via.placeholder.com/100x150?text=No+Image"
)

const (
	rowSize         = 5
	maxSimilar      = 5
	maxRecommended  = 5
	allGenresOption = "All"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/vmunix/cinebrowse/internal/browse Catalog,Recommender

// Catalog is the cache-wrapped TMDB client.
type Catalog interface {
	Genres(ctx context.Context) (map[int]string, error)
	MoviesByCategory(ctx context.Context, category tmdb.Category) ([]tmdb.MovieSummary, error)
	MoviesByGenre(ctx context.Context, genreID int) ([]tmdb.MovieSummary, error)
	MovieDetail(ctx context.Context, movieID int64) (tmdb.MovieDetail, error)
	SimilarMovies(ctx context.Context, movieID int64) ([]tmdb.MovieSummary, error)
	Cast(ctx context.Context, movieID int64) ([]tmdb.CastEntry, error)
}

// Recommender serves the precomputed similarity table.
type Recommender interface {
	Recommend(movieID int64, n int) ([]dataset.Recommendation, error)
}

// Notice is a failed fetch surfaced to the user instead of an error page.
type Notice struct {
	Op      string `json:"op"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

// GenreOption is one entry of the genre selector. ID 0 is "All".
type GenreOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Tile is a movie in a grid, with its poster when one exists.
type Tile struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	PosterURL *string `json:"poster_url,omitempty"`
}

// CastCard is a person in the cast and crew grid.
type CastCard struct {
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	ImageURL string          `json:"image_url"`
	Kind     tmdb.CreditKind `json:"kind"`
}

// HomeView is the model of the home page.
type HomeView struct {
	Categories []string      `json:"categories"`
	Category   string        `json:"category"`
	Genres     []GenreOption `json:"genres"`
	GenreID    int           `json:"genre_id"`
	Query      string        `json:"query,omitempty"`
	Movies     []Tile        `json:"movies"`
	Message    string        `json:"message,omitempty"`
	Notices    []Notice      `json:"notices,omitempty"`
}

// DetailsView is the model of the details page. When Found is false only
// Message is meaningful.
type DetailsView struct {
	Found           bool                     `json:"found"`
	Message         string                   `json:"message,omitempty"`
	Movie           Tile                     `json:"movie"`
	Overview        string                   `json:"overview,omitempty"`
	CastRows        [][]CastCard             `json:"cast_rows,omitempty"`
	Similar         []Tile                   `json:"similar,omitempty"`
	Recommendations []dataset.Recommendation `json:"recommendations,omitempty"`
	Notices         []Notice                 `json:"notices,omitempty"`
}

// Assembler builds page models. Fetches run sequentially in page order.
type Assembler struct {
	catalog     Catalog
	recommender Recommender
	log         *slog.Logger
}

// NewAssembler creates an assembler. recommender may be nil when no
// similarity table is loaded.
func NewAssembler(catalog Catalog, recommender Recommender, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{catalog: catalog, recommender: recommender, log: log}
}

// Home builds the home page for s. The only error is an invalid category,
// rejected even while a genre filter hides the category listing; fetch
// failures become notices.
func (a *Assembler) Home(ctx context.Context, s Session) (HomeView, error) {
	if !s.Category.Valid() {
		return HomeView{}, &tmdb.InvalidCategoryError{Value: string(s.Category)}
	}

	view := HomeView{
		Categories: categoryNames(),
		Category:   string(s.Category),
		GenreID:    s.GenreID,
		Query:      s.Query,
		Movies:     []Tile{},
	}

	genres, err := a.catalog.Genres(ctx)
	view.Notices = AppendNotice(view.Notices, err)
	view.Genres = genreOptions(genres)

	movies, notices, err := a.listing(ctx, s)
	if err != nil {
		return HomeView{}, err
	}
	view.Notices = append(view.Notices, notices...)

	for _, m := range movies {
		tile, err := a.tile(ctx, m)
		view.Notices = AppendNotice(view.Notices, err)
		view.Movies = append(view.Movies, tile)
	}
	if len(view.Movies) == 0 {
		view.Message = MsgNoMovies
	}
	return view, nil
}

// Details builds the details page for the selected movie. The selection is
// resolved against the current listing first so the freshest listing record
// wins; a selection carrying an id is used as is when the listing lacks it.
func (a *Assembler) Details(ctx context.Context, s Session) (DetailsView, error) {
	if s.Selected == nil {
		return DetailsView{Message: MsgNoSelection}, nil
	}

	movies, notices, err := a.listing(ctx, s)
	if err != nil {
		return DetailsView{}, err
	}

	movie, ok := FindByTitle(movies, s.Selected.Title)
	if !ok {
		if s.Selected.ID == 0 {
			return DetailsView{Message: MsgNotFound, Notices: notices}, nil
		}
		movie = *s.Selected
	}

	view := DetailsView{
		Found:   true,
		Movie:   Tile{ID: movie.ID, Title: movie.Title},
		Notices: notices,
	}

	detail, err := a.catalog.MovieDetail(ctx, movie.ID)
	view.Notices = AppendNotice(view.Notices, err)
	view.Movie.PosterURL = detail.PosterURL
	view.Overview = detail.Overview

	cast, err := a.catalog.Cast(ctx, movie.ID)
	view.Notices = AppendNotice(view.Notices, err)
	view.CastRows = castRows(cast)

	similar, err := a.catalog.SimilarMovies(ctx, movie.ID)
	view.Notices = AppendNotice(view.Notices, err)
	for _, m := range head(similar, maxSimilar) {
		tile, err := a.tile(ctx, m)
		view.Notices = AppendNotice(view.Notices, err)
		view.Similar = append(view.Similar, tile)
	}

	if a.recommender != nil {
		recs, err := a.recommender.Recommend(movie.ID, maxRecommended)
		switch {
		case err == nil:
			view.Recommendations = recs
		case errors.Is(err, dataset.ErrNotFound):
			a.log.Debug("movie not in similarity table", "movie_id", movie.ID)
		default:
			a.log.Warn("local recommendations failed", "movie_id", movie.ID, "error", err)
		}
	}

	return view, nil
}

// listing returns the movies of the current category, or of the genre when
// one is selected, filtered by the search query.
func (a *Assembler) listing(ctx context.Context, s Session) ([]tmdb.MovieSummary, []Notice, error) {
	var (
		movies []tmdb.MovieSummary
		err    error
	)
	if s.GenreID != AllGenres {
		movies, err = a.catalog.MoviesByGenre(ctx, s.GenreID)
	} else {
		movies, err = a.catalog.MoviesByCategory(ctx, s.Category)
	}
	if errors.Is(err, tmdb.ErrInvalidCategory) {
		return nil, nil, err
	}
	notices := AppendNotice(nil, err)
	return FilterByTitle(movies, s.Query), notices, nil
}

func (a *Assembler) tile(ctx context.Context, m tmdb.MovieSummary) (Tile, error) {
	detail, err := a.catalog.MovieDetail(ctx, m.ID)
	return Tile{ID: m.ID, Title: m.Title, PosterURL: detail.PosterURL}, err
}

// AppendNotice appends a notice for err, which is usually a *tmdb.FetchError.
// A nil err leaves notices unchanged.
func AppendNotice(notices []Notice, err error) []Notice {
	if err == nil {
		return notices
	}
	n := Notice{Message: err.Error()}
	if fe, ok := tmdb.IsFetchFailure(err); ok {
		n.Op = fe.Op
		n.Key = fe.Key
	}
	return append(notices, n)
}

func categoryNames() []string {
	names := make([]string, len(tmdb.Categories))
	for i, c := range tmdb.Categories {
		names[i] = string(c)
	}
	return names
}

// genreOptions returns "All" followed by the genres sorted by name.
func genreOptions(genres map[int]string) []GenreOption {
	opts := make([]GenreOption, 0, len(genres)+1)
	for id, name := range genres {
		opts = append(opts, GenreOption{ID: id, Name: name})
	}
	sort.Slice(opts, func(i, j int) bool {
		if opts[i].Name != opts[j].Name {
			return opts[i].Name < opts[j].Name
		}
		return opts[i].ID < opts[j].ID
	})
	return append([]GenreOption{{ID: AllGenres, Name: allGenresOption}}, opts...)
}

// GenreByName resolves a genre selector entry, ignoring case. "All" maps to
// AllGenres; ok is false for unknown names.
func GenreByName(genres map[int]string, name string) (id int, ok bool) {
	if strings.EqualFold(name, allGenresOption) {
		return AllGenres, true
	}
	for id, n := range genres {
		if strings.EqualFold(n, name) {
			return id, true
		}
	}
	return AllGenres, false
}

// castRows groups cast and crew into rows of five.
func castRows(entries []tmdb.CastEntry) [][]CastCard {
	var rows [][]CastCard
	for i, e := range entries {
		if i%rowSize == 0 {
			rows = append(rows, make([]CastCard, 0, rowSize))
		}
		img := PlaceholderProfile
		if e.ProfileURL != nil {
			img = *e.ProfileURL
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], CastCard{
			Name:     e.Name,
			Role:     e.Role,
			ImageURL: img,
			Kind:     e.Kind,
		})
	}
	return rows
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
