// Package catalog provides movie metadata: an OMDB-style HTTP client,
// a Redis read-through cache for search results, and a composite that
// falls back to the local seed catalog when the external service has
// nothing.  The dialogue engine only ever sees the Client interface.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

// ErrNotFound is returned by Details when the catalog has no entry
// for the requested ID.
var ErrNotFound = errors.New("movie not found in catalog")

// Client is the catalog contract the dialogue engine consumes.
// Search returns an empty slice, not an error, when nothing matches;
// errors mean the collaborator itself failed and callers degrade to
// the local fallback.
type Client interface {
	Search(ctx context.Context, query string) ([]model.Movie, error)
	Details(ctx context.Context, id string) (model.Movie, error)
}

// searchLimit caps how many search hits get a follow-up details
// request, mirroring the reference client.
const searchLimit = 5

// OMDBClient talks to an OMDB-compatible HTTP API.  Responses use the
// OMDB envelope: a "Response" field of "True"/"False" plus either the
// payload or an "Error" message.
type OMDBClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewOMDBClient builds a client for the given endpoint.  A reasonable
// request timeout is applied so a slow catalog can never stall a
// dialogue turn for long.
func NewOMDBClient(baseURL, apiKey string) *OMDBClient {
	return &OMDBClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// omdbMovie is the wire shape shared by search hits and details.
type omdbMovie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	ImdbID     string `json:"imdbID"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	ImdbRating string `json:"imdbRating"`
}

func (m omdbMovie) toModel() model.Movie {
	return model.Movie{
		ID:       m.ImdbID,
		Title:    m.Title,
		Year:     m.Year,
		Genre:    m.Genre,
		Director: m.Director,
		Actors:   m.Actors,
		Plot:     m.Plot,
		Rating:   m.ImdbRating,
	}
}

// Search queries the catalog by title and resolves full details for
// the first few hits.  An empty result is not an error.
func (c *OMDBClient) Search(ctx context.Context, query string) ([]model.Movie, error) {
	var envelope struct {
		Response string      `json:"Response"`
		Search   []omdbMovie `json:"Search"`
	}
	params := url.Values{"apikey": {c.apiKey}, "s": {query}, "type": {"movie"}}
	if err := c.get(ctx, params, &envelope); err != nil {
		return nil, err
	}
	if envelope.Response != "True" {
		return nil, nil
	}
	hits := envelope.Search
	if len(hits) > searchLimit {
		hits = hits[:searchLimit]
	}
	movies := make([]model.Movie, 0, len(hits))
	for _, hit := range hits {
		detailed, err := c.Details(ctx, hit.ImdbID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		movies = append(movies, detailed)
	}
	return movies, nil
}

// Details fetches the full record for one movie ID.
func (c *OMDBClient) Details(ctx context.Context, id string) (model.Movie, error) {
	var envelope struct {
		Response string `json:"Response"`
		omdbMovie
	}
	params := url.Values{"apikey": {c.apiKey}, "i": {id}, "plot": {"full"}}
	if err := c.get(ctx, params, &envelope); err != nil {
		return model.Movie{}, err
	}
	if envelope.Response != "True" {
		return model.Movie{}, ErrNotFound
	}
	return envelope.omdbMovie.toModel(), nil
}

func (c *OMDBClient) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
