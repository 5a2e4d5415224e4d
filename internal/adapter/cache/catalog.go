// Package cache puts a Redis read-through cache in front of the catalog's
// exact identifier lookup. Ranking and substring queries are passed through.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

const (
	asinKeyPrefix = "catalog:asin:"
	DefaultTTL    = 10 * time.Minute
)

// Catalog is the lookup surface being cached.
type Catalog interface {
	FindByExactIdentifier(ctx context.Context, asin string) (*domain.Product, error)
	RankBySimilarity(ctx context.Context, query string, limit int) ([]domain.ScoredProduct, error)
	SearchByContains(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

// CachedCatalog serves ASIN lookups from Redis when possible. Redis failures
// are logged and the inner catalog is queried instead.
type CachedCatalog struct {
	inner  Catalog
	client redis.UniversalClient
	ttl    time.Duration
	log    *slog.Logger
}

// NewCachedCatalog wraps inner. A non-positive ttl uses DefaultTTL.
func NewCachedCatalog(inner Catalog, client redis.UniversalClient, ttl time.Duration, log *slog.Logger) *CachedCatalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedCatalog{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    log.With("component", "catalog_cache"),
	}
}

func asinKey(asin string) string {
	return asinKeyPrefix + strings.ToUpper(strings.TrimSpace(asin))
}

// FindByExactIdentifier returns the cached product for asin, loading and
// caching it on a miss. Not-found results are not cached.
func (c *CachedCatalog) FindByExactIdentifier(ctx context.Context, asin string) (*domain.Product, error) {
	key := asinKey(asin)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.Product
		if jerr := json.Unmarshal(raw, &p); jerr == nil {
			return &p, nil
		}
		c.log.WarnContext(ctx, "discarding corrupt cache entry", slog.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		c.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	p, err := c.inner.FindByExactIdentifier(ctx, asin)
	if err != nil {
		return nil, err
	}

	if data, jerr := json.Marshal(p); jerr == nil {
		if serr := c.client.Set(ctx, key, data, c.ttl).Err(); serr != nil {
			c.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", serr.Error()))
		}
	}
	return p, nil
}

// RankBySimilarity is not cached.
func (c *CachedCatalog) RankBySimilarity(ctx context.Context, query string, limit int) ([]domain.ScoredProduct, error) {
	return c.inner.RankBySimilarity(ctx, query, limit)
}

// SearchByContains is not cached.
func (c *CachedCatalog) SearchByContains(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	return c.inner.SearchByContains(ctx, query, limit)
}

// Ping reports whether Redis is reachable.
func (c *CachedCatalog) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// NewClient connects to Redis at addr and pings it.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}
