package v1

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vmunix/cinebrowse/internal/browse"
	"github.com/vmunix/cinebrowse/internal/catalog"
	"github.com/vmunix/cinebrowse/internal/dataset"
	"github.com/vmunix/cinebrowse/internal/tmdb"
)

// TMDBMock serves a small fixed catalog and counts requests per path.
type TMDBMock struct {
	t     *testing.T
	calls map[string]*atomic.Int32
	fail  map[string]bool
}

func NewTMDBMock(t *testing.T) *TMDBMock {
	t.Helper()
	return &TMDBMock{t: t, calls: map[string]*atomic.Int32{}, fail: map[string]bool{}}
}

// WithFailure makes path answer 500.
func (m *TMDBMock) WithFailure(path string) *TMDBMock {
	m.fail[path] = true
	return m
}

// Calls returns how many requests path received.
func (m *TMDBMock) Calls(path string) int {
	if c, ok := m.calls[path]; ok {
		return int(c.Load())
	}
	return 0
}

// Build creates the httptest.Server.
func (m *TMDBMock) Build() *httptest.Server {
	m.t.Helper()

	bodies := map[string]string{
		"/3/genre/movie/list": `{"genres":[{"id":28,"name":"Action"},{"id":18,"name":"Drama"}]}`,
		"/3/movie/popular": `{"results":[
			{"id":550,"title":"Fight Club","poster_path":"/fc.jpg"},
			{"id":13,"title":"Forrest Gump"}]}`,
		"/3/movie/550":         `{"id":550,"poster_path":"/fc.jpg","overview":"An insomniac office worker."}`,
		"/3/movie/13":          `{"id":13,"poster_path":null,"overview":"Life is a box of chocolates."}`,
		"/3/movie/807":         `{"id":807,"poster_path":"/se7en.jpg","overview":"Two detectives."}`,
		"/3/movie/550/similar": `{"results":[{"id":807,"title":"Se7en"}]}`,
		"/3/movie/550/credits": `{"cast":[{"name":"Edward Norton","character":"The Narrator"}],
			"crew":[{"name":"David Fincher","job":"Director","profile_path":"/df.jpg"}]}`,
	}
	for path := range bodies {
		m.calls[path] = &atomic.Int32{}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := m.calls[r.URL.Path]; ok {
			c.Add(1)
		}
		if m.fail[r.URL.Path] {
			http.Error(w, "upstream down", http.StatusInternalServerError)
			return
		}
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	m.t.Cleanup(srv.Close)
	return srv
}

func loadTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(dataset.Schema)
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO movies (id, title) VALUES (550, 'Fight Club'), (807, 'Se7en'), (13, 'Forrest Gump');
		INSERT INTO similarity (movie_id, similar_id, score) VALUES (550, 807, 0.82), (550, 13, 0.31);
	`)
	require.NoError(t, err)

	ds, err := dataset.Load(context.Background(), db)
	require.NoError(t, err)
	return ds
}

func newIntegrationServer(t *testing.T, mock *TMDBMock) *http.ServeMux {
	t.Helper()
	upstream := mock.Build()

	client := tmdb.NewClient("test-key",
		tmdb.WithBaseURL(upstream.URL),
		tmdb.WithImageBaseURL("https://img.test/t/p"),
	)
	cat := catalog.New(client, catalog.Config{}, nil)
	ds := loadTestDataset(t)

	srv, err := New(ServerDeps{
		Catalog: cat,
		Pages:   browse.NewAssembler(cat, ds, nil),
		Dataset: ds,
	}, Config{})
	require.NoError(t, err)

	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	return mux
}

func getJSON(t *testing.T, mux *http.ServeMux, target string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	return w.Code
}

func TestIntegration_HomeAndDetails(t *testing.T) {
	mock := NewTMDBMock(t)
	mux := newIntegrationServer(t, mock)

	var home browse.HomeView
	require.Equal(t, http.StatusOK, getJSON(t, mux, "/api/v1/pages/home", &home))
	assert.Equal(t, []browse.GenreOption{{ID: 0, Name: "All"}, {ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}, home.Genres)
	require.Len(t, home.Movies, 2)
	require.NotNil(t, home.Movies[0].PosterURL)
	assert.Equal(t, "https://img.test/t/p/w500/fc.jpg", *home.Movies[0].PosterURL)
	assert.Nil(t, home.Movies[1].PosterURL)

	var details browse.DetailsView
	require.Equal(t, http.StatusOK, getJSON(t, mux, "/api/v1/pages/details?title=fight+club", &details))
	assert.True(t, details.Found)
	assert.Equal(t, "An insomniac office worker.", details.Overview)
	require.Len(t, details.CastRows, 1)
	assert.Len(t, details.CastRows[0], 2)
	require.Len(t, details.Similar, 1)
	assert.Equal(t, "Se7en", details.Similar[0].Title)
	require.Len(t, details.Recommendations, 2)
	assert.Equal(t, int64(807), details.Recommendations[0].ID)
	assert.Empty(t, details.Notices)

	// Every query is memoized: revisiting both pages hits TMDB no further.
	require.Equal(t, http.StatusOK, getJSON(t, mux, "/api/v1/pages/home", &home))
	require.Equal(t, http.StatusOK, getJSON(t, mux, "/api/v1/pages/details?title=Fight+Club", &details))
	assert.Equal(t, 1, mock.Calls("/3/genre/movie/list"))
	assert.Equal(t, 1, mock.Calls("/3/movie/popular"))
	assert.Equal(t, 1, mock.Calls("/3/movie/550"))
	assert.Equal(t, 1, mock.Calls("/3/movie/550/credits"))

	var status statusResponse
	require.Equal(t, http.StatusOK, getJSON(t, mux, "/api/v1/status", &status))
	assert.Equal(t, 3, status.DatasetMovies)
	assert.Len(t, status.Caches, 6)
}

func TestIntegration_UpstreamFailure(t *testing.T) {
	mock := NewTMDBMock(t).WithFailure("/3/movie/popular")
	mux := newIntegrationServer(t, mock)

	var movies moviesResponse
	require.Equal(t, http.StatusOK, getJSON(t, mux, "/api/v1/movies", &movies))
	assert.Empty(t, movies.Movies)
	require.Len(t, movies.Warnings, 1)
	assert.Equal(t, tmdb.OpCategory, movies.Warnings[0].Op)

	// Failures are not memoized, so the next request retries.
	require.Equal(t, http.StatusOK, getJSON(t, mux, "/api/v1/movies", &movies))
	assert.Equal(t, 2, mock.Calls("/3/movie/popular"))
}
