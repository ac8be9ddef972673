package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vmunix/cinebrowse/internal/tmdb"
)

// Client wraps HTTP calls to the cinebrowse server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new cinebrowse API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// API response types (mirror server types)

// Warning is an upstream fetch that failed; the response still holds
// the fallback values.
type Warning struct {
	Op      string `json:"op"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GenresResponse struct {
	Genres   []Genre   `json:"genres"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Movie is a listing entry as served by the API.
type Movie = tmdb.MovieSummary

type MoviesResponse struct {
	Category string    `json:"category,omitempty"`
	GenreID  int       `json:"genre_id,omitempty"`
	Query    string    `json:"query,omitempty"`
	Movies   []Movie   `json:"movies"`
	Warnings []Warning `json:"warnings,omitempty"`
}

type MovieResponse struct {
	ID        int64     `json:"id"`
	PosterURL *string   `json:"poster_url,omitempty"`
	Overview  string    `json:"overview"`
	Warnings  []Warning `json:"warnings,omitempty"`
}

type CastEntry struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	ProfileURL *string `json:"profile_url,omitempty"`
	Kind       string  `json:"kind"`
}

type CastResponse struct {
	ID       int64       `json:"id"`
	Cast     []CastEntry `json:"cast"`
	Warnings []Warning   `json:"warnings,omitempty"`
}

type SimilarResponse struct {
	ID       int64     `json:"id"`
	Movies   []Movie   `json:"movies"`
	Warnings []Warning `json:"warnings,omitempty"`
}

type DatasetMovie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Recommendation struct {
	DatasetMovie
	Score float64 `json:"score"`
}

type RecommendationsResponse struct {
	Movie           DatasetMovie     `json:"movie"`
	Recommendations []Recommendation `json:"recommendations"`
}

type SearchResponse struct {
	Query      string          `json:"query"`
	Matches    []DatasetMovie  `json:"matches"`
	Exact      *DatasetMovie   `json:"exact,omitempty"`
	Suggestion *Recommendation `json:"suggestion,omitempty"`
}

type CacheStat struct {
	Name     string `json:"name"`
	Entries  int    `json:"entries"`
	Capacity int    `json:"capacity"`
}

type StatusResponse struct {
	Status        string      `json:"status"`
	Version       string      `json:"version"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	DatasetLoaded bool        `json:"dataset_loaded"`
	DatasetMovies int         `json:"dataset_movies"`
	Caches        []CacheStat `json:"caches"`
}

// Client methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Genres() (*GenresResponse, error) {
	var resp GenresResponse
	if err := c.get("/api/v1/genres", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Movies lists a category, or a genre when genreID is non-zero, filtered
// by query.
func (c *Client) Movies(category string, genreID int, query string) (*MoviesResponse, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if genreID != 0 {
		params.Set("genre", strconv.Itoa(genreID))
	}
	if query != "" {
		params.Set("q", query)
	}
	path := "/api/v1/movies"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp MoviesResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Movie(id int64) (*MovieResponse, error) {
	var resp MovieResponse
	if err := c.get(fmt.Sprintf("/api/v1/movies/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Cast(id int64) (*CastResponse, error) {
	var resp CastResponse
	if err := c.get(fmt.Sprintf("/api/v1/movies/%d/cast", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Similar(id int64) (*SimilarResponse, error) {
	var resp SimilarResponse
	if err := c.get(fmt.Sprintf("/api/v1/movies/%d/similar", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Recommendations(id int64, limit int) (*RecommendationsResponse, error) {
	var resp RecommendationsResponse
	path := fmt.Sprintf("/api/v1/movies/%d/recommendations?limit=%d", id, limit)
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(query string, limit int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var resp SearchResponse
	if err := c.get("/api/v1/dataset/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
