package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL      = "https://api.themoviedb.org"
	defaultImageBaseURL = "https://image.tmdb.org/t/p"
	defaultLanguage     = "en-US"
	defaultTimeout      = 10 * time.Second

	posterSize  = "w500"
	profileSize = "w500"
)

// Client is a TMDB API client. Every method issues exactly one GET and
// never returns partial results: on failure it returns the documented
// fallback value together with a *FetchError.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithImageBaseURL sets the base used to build poster and profile URLs.
func WithImageBaseURL(url string) Option {
	return func(c *Client) {
		c.imageBaseURL = strings.TrimRight(url, "/")
	}
}

// WithLanguage sets the language parameter sent with localized queries.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		imageBaseURL: defaultImageBaseURL,
		language:     defaultLanguage,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Genres fetches all movie genres as an id to name mapping.
func (c *Client) Genres(ctx context.Context) (map[int]string, error) {
	var resp genreListResponse
	if err := c.get(ctx, "/3/genre/movie/list", true, nil, &resp); err != nil {
		return map[int]string{}, &FetchError{Op: OpGenres, Err: err}
	}

	genres := make(map[int]string, len(resp.Genres))
	for _, g := range resp.Genres {
		genres[g.ID] = g.Name
	}
	return genres, nil
}

// MoviesByCategory fetches one of the curated listings.
// An unknown category returns ErrInvalidCategory without a request.
func (c *Client) MoviesByCategory(ctx context.Context, category Category) ([]MovieSummary, error) {
	path, ok := categoryPaths[category]
	if !ok {
		return []MovieSummary{}, &InvalidCategoryError{Value: string(category)}
	}

	var resp movieListResponse
	if err := c.get(ctx, path, true, nil, &resp); err != nil {
		return []MovieSummary{}, &FetchError{Op: OpCategory, Key: string(category), Err: err}
	}
	return summaries(resp.Results), nil
}

// MoviesByGenre discovers movies tagged with a single genre.
func (c *Client) MoviesByGenre(ctx context.Context, genreID int) ([]MovieSummary, error) {
	params := url.Values{"with_genres": {strconv.Itoa(genreID)}}

	var resp movieListResponse
	if err := c.get(ctx, "/3/discover/movie", false, params, &resp); err != nil {
		return []MovieSummary{}, &FetchError{Op: OpGenre, Key: strconv.Itoa(genreID), Err: err}
	}
	return summaries(resp.Results), nil
}

// MovieDetail fetches the poster URL and overview of a movie.
// Without a poster path the overview is always the fallback text.
func (c *Client) MovieDetail(ctx context.Context, movieID int64) (MovieDetail, error) {
	var dto movieDTO
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", movieID), true, nil, &dto); err != nil {
		return fallbackDetail(), &FetchError{Op: OpPoster, Key: formatID(movieID), Err: err}
	}

	poster := c.imageURL(posterSize, deref(dto.PosterPath, ""))
	if poster == nil {
		return fallbackDetail(), nil
	}

	overview := deref(dto.Overview, "")
	if overview == "" {
		overview = NoDescription
	}
	return MovieDetail{PosterURL: poster, Overview: overview}, nil
}

// SimilarMovies fetches TMDB's similar-movie list for a movie.
func (c *Client) SimilarMovies(ctx context.Context, movieID int64) ([]MovieSummary, error) {
	var resp movieListResponse
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d/similar", movieID), true, nil, &resp); err != nil {
		return []MovieSummary{}, &FetchError{Op: OpSimilar, Key: formatID(movieID), Err: err}
	}
	return summaries(resp.Results), nil
}

// Cast fetches up to five cast members followed by up to five crew members.
func (c *Client) Cast(ctx context.Context, movieID int64) ([]CastEntry, error) {
	var resp creditsResponse
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d/credits", movieID), true, nil, &resp); err != nil {
		return []CastEntry{}, &FetchError{Op: OpCast, Key: formatID(movieID), Err: err}
	}

	entries := make([]CastEntry, 0, 2*maxCreditsPerKind)
	for _, p := range head(resp.Cast, maxCreditsPerKind) {
		entries = append(entries, CastEntry{
			Name:       deref(p.Name, NoName),
			Role:       deref(p.Character, NoRole),
			ProfileURL: c.imageURL(profileSize, deref(p.ProfilePath, "")),
			Kind:       CreditCast,
		})
	}
	for _, p := range head(resp.Crew, maxCreditsPerKind) {
		entries = append(entries, CastEntry{
			Name:       deref(p.Name, NoName),
			Role:       deref(p.Job, NoJob),
			ProfileURL: c.imageURL(profileSize, deref(p.ProfilePath, "")),
			Kind:       CreditCrew,
		})
	}
	return entries, nil
}

func (c *Client) imageURL(size, path string) *string {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return nil
	}
	u := c.imageBaseURL + "/" + size + "/" + path
	return &u
}

// get performs one GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, localized bool, params url.Values, out any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)
	if localized && c.language != "" {
		q.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
