package catalog

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-booking-assistant/internal/config"
	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

// CachedClient wraps a catalog client with a Redis read-through
// cache.  Only successful lookups are cached; empty results and
// errors always go back to the upstream, since a transient catalog
// outage should not be pinned for the TTL.  Redis being down degrades
// to uncached pass-through rather than failing the turn.
type CachedClient struct {
	next Client
	rdb  *redis.Client
	cfg  config.CatalogCacheConfig
}

// NewCachedClient wraps next with caching.  A nil Redis client or a
// disabled config returns next unchanged.
func NewCachedClient(next Client, rdb *redis.Client, cfg config.CatalogCacheConfig) Client {
	if rdb == nil || !cfg.Enabled {
		return next
	}
	return &CachedClient{next: next, rdb: rdb, cfg: cfg}
}

// Search serves a query from cache when possible, otherwise asks the
// upstream and stores a non-empty result under the query's key.
func (c *CachedClient) Search(ctx context.Context, query string) ([]model.Movie, error) {
	key := c.key("search", strings.ToLower(strings.TrimSpace(query)))
	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var movies []model.Movie
		if json.Unmarshal(raw, &movies) == nil {
			return movies, nil
		}
	}
	movies, err := c.next.Search(ctx, query)
	if err != nil || len(movies) == 0 {
		return movies, err
	}
	c.put(ctx, key, movies)
	return movies, nil
}

// Details serves a movie record from cache when possible.
func (c *CachedClient) Details(ctx context.Context, id string) (model.Movie, error) {
	key := c.key("details", id)
	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var m model.Movie
		if json.Unmarshal(raw, &m) == nil {
			return m, nil
		}
	}
	m, err := c.next.Details(ctx, id)
	if err != nil {
		return model.Movie{}, err
	}
	c.put(ctx, key, m)
	return m, nil
}

func (c *CachedClient) put(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.cfg.TTL).Err(); err != nil {
		log.Printf("catalog-cache: set %s failed: %v", key, err)
	}
}

// key hashes the lookup tail so arbitrary queries produce bounded,
// collision-resistant Redis keys under the configured prefix.
func (c *CachedClient) key(kind, tail string) string {
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%s:%x", c.cfg.Prefix, kind, sum[:])
}
