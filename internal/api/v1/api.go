// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/cinebrowse/internal/browse"
	"github.com/vmunix/cinebrowse/internal/dataset"
	"github.com/vmunix/cinebrowse/internal/tmdb"
)

const (
	defaultRecommendLimit = 5
	maxRecommendLimit     = 50
	defaultSearchLimit    = 10
	maxSearchLimit        = 100
)

// Config holds API server configuration.
type Config struct {
	Version   string
	StartedAt time.Time
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// New creates a v1 API server. It fails with ErrMissingDependency when a
// required dependency is nil.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	if cfg.StartedAt.IsZero() {
		cfg.StartedAt = time.Now()
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Catalog
	mux.HandleFunc("GET /api/v1/genres", s.listGenres)
	mux.HandleFunc("GET /api/v1/movies", s.listMovies)
	mux.HandleFunc("GET /api/v1/movies/{id}", s.getMovie)
	mux.HandleFunc("GET /api/v1/movies/{id}/cast", s.getCast)
	mux.HandleFunc("GET /api/v1/movies/{id}/similar", s.getSimilar)

	// Dataset
	mux.HandleFunc("GET /api/v1/movies/{id}/recommendations", s.requireDataset(s.getRecommendations))
	mux.HandleFunc("GET /api/v1/dataset/search", s.requireDataset(s.searchDataset))

	// Pages
	mux.HandleFunc("GET /api/v1/pages/home", s.homePage)
	mux.HandleFunc("GET /api/v1/pages/details", s.detailsPage)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts a positive integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, idStr)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, id)
	}
	return id, nil
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, val)
	}
	return i, nil
}

// sessionFromQuery builds a browse session from category, genre and q.
func sessionFromQuery(r *http.Request) (browse.Session, error) {
	s := browse.NewSession()
	q := r.URL.Query()

	if raw := q.Get("category"); raw != "" {
		category, err := tmdb.ParseCategory(raw)
		if err != nil {
			return s, err
		}
		s = s.WithCategory(category)
	}

	genre, err := queryInt(r, "genre", browse.AllGenres)
	if err != nil {
		return s, err
	}
	return s.WithGenre(genre).WithQuery(q.Get("q")), nil
}

// writeSessionError maps a session parse error to a 400 response.
func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, tmdb.ErrInvalidCategory) {
		writeError(w, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "INVALID_GENRE", err.Error())
}

func (s *Server) listGenres(w http.ResponseWriter, r *http.Request) {
	byID, err := s.deps.Catalog.Genres(r.Context())

	genres := make([]tmdb.Genre, 0, len(byID))
	for id, name := range byID {
		genres = append(genres, tmdb.Genre{ID: id, Name: name})
	}
	sort.Slice(genres, func(i, j int) bool {
		if genres[i].Name != genres[j].Name {
			return genres[i].Name < genres[j].Name
		}
		return genres[i].ID < genres[j].ID
	})

	writeJSON(w, http.StatusOK, genresResponse{
		Genres:   genres,
		Warnings: browse.AppendNotice(nil, err),
	})
}

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromQuery(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	resp := moviesResponse{GenreID: session.GenreID, Query: session.Query}

	var movies []tmdb.MovieSummary
	if session.GenreID != browse.AllGenres {
		movies, err = s.deps.Catalog.MoviesByGenre(r.Context(), session.GenreID)
	} else {
		resp.Category = string(session.Category)
		movies, err = s.deps.Catalog.MoviesByCategory(r.Context(), session.Category)
	}
	if errors.Is(err, tmdb.ErrInvalidCategory) {
		writeError(w, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
		return
	}

	resp.Movies = browse.FilterByTitle(movies, session.Query)
	if resp.Movies == nil {
		resp.Movies = []tmdb.MovieSummary{}
	}
	resp.Warnings = browse.AppendNotice(nil, err)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	detail, err := s.deps.Catalog.MovieDetail(r.Context(), id)
	writeJSON(w, http.StatusOK, movieResponse{
		ID:        id,
		PosterURL: detail.PosterURL,
		Overview:  detail.Overview,
		Warnings:  browse.AppendNotice(nil, err),
	})
}

func (s *Server) getCast(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	cast, err := s.deps.Catalog.Cast(r.Context(), id)
	if cast == nil {
		cast = []tmdb.CastEntry{}
	}
	writeJSON(w, http.StatusOK, castResponse{
		ID:       id,
		Cast:     cast,
		Warnings: browse.AppendNotice(nil, err),
	})
}

func (s *Server) getSimilar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	movies, err := s.deps.Catalog.SimilarMovies(r.Context(), id)
	if movies == nil {
		movies = []tmdb.MovieSummary{}
	}
	writeJSON(w, http.StatusOK, similarResponse{
		ID:       id,
		Movies:   movies,
		Warnings: browse.AppendNotice(nil, err),
	})
}

func (s *Server) getRecommendations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	limit, err := queryInt(r, "limit", defaultRecommendLimit)
	if err != nil || limit < 1 || limit > maxRecommendLimit {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT",
			fmt.Sprintf("limit must be between 1 and %d", maxRecommendLimit))
		return
	}

	recs, err := s.deps.Dataset.Recommend(id, limit)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found in the dataset")
			return
		}
		s.log.Error("recommendations failed", "movie_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "DATASET_ERROR", err.Error())
		return
	}

	movie, _ := s.deps.Dataset.Lookup(id)
	if recs == nil {
		recs = []dataset.Recommendation{}
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{Movie: movie, Recommendations: recs})
}

func (s *Server) searchDataset(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "MISSING_QUERY", "q is required")
		return
	}
	limit, err := queryInt(r, "limit", defaultSearchLimit)
	if err != nil || limit < 1 || limit > maxSearchLimit {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT",
			fmt.Sprintf("limit must be between 1 and %d", maxSearchLimit))
		return
	}

	resp := searchResponse{
		Query:   query,
		Matches: s.deps.Dataset.Search(query, limit),
	}
	if resp.Matches == nil {
		resp.Matches = []dataset.Movie{}
	}
	if m, ok := s.deps.Dataset.FindByTitle(query); ok {
		resp.Exact = &m
	} else if m, score, ok := s.deps.Dataset.Closest(query); ok {
		resp.Suggestion = &suggestion{Movie: m, Score: score}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) homePage(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromQuery(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	view, err := s.deps.Pages.Home(r.Context(), session)
	if err != nil {
		if errors.Is(err, tmdb.ErrInvalidCategory) {
			writeError(w, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// detailsPage selects the movie named by title, or by id when only the id
// is given. Without either the page reports that nothing is selected.
func (s *Server) detailsPage(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromQuery(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	id, err := queryInt(r, "id", 0)
	if err != nil || id < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", fmt.Sprintf("invalid id %q", r.URL.Query().Get("id")))
		return
	}
	title := r.URL.Query().Get("title")
	if title != "" || id != 0 {
		session = session.Select(tmdb.MovieSummary{ID: int64(id), Title: title})
	}

	view, err := s.deps.Pages.Details(r.Context(), session)
	if err != nil {
		if errors.Is(err, tmdb.ErrInvalidCategory) {
			writeError(w, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:        "ok",
		Version:       s.cfg.Version,
		UptimeSeconds: int64(time.Since(s.cfg.StartedAt).Seconds()),
		Caches:        s.deps.Catalog.Stats(),
	}
	if s.deps.Dataset != nil {
		resp.DatasetLoaded = true
		resp.DatasetMovies = s.deps.Dataset.Len()
	}
	writeJSON(w, http.StatusOK, resp)
}
