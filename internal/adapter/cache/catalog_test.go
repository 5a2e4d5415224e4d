package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

var (
	redisOnce sync.Once
	redisAddr string
	redisErr  error
)

// newRedis returns a client for a shared Redis container, skipping the test
// when no container runtime is available.
func newRedis(t *testing.T) *redis.Client {
	t.Helper()

	redisOnce.Do(func() {
		redisAddr, redisErr = startRedis()
	})
	if redisErr != nil {
		t.Skipf("redis not available: %v", redisErr)
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func startRedis() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}
	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

type countingCatalog struct {
	lookups  atomic.Int32
	products map[string]domain.Product
}

func (c *countingCatalog) FindByExactIdentifier(_ context.Context, asin string) (*domain.Product, error) {
	c.lookups.Add(1)
	p, ok := c.products[asin]
	if !ok {
		return nil, fmt.Errorf("product_listing %s: %w", asin, domain.ErrNotFound)
	}
	return &p, nil
}

func (c *countingCatalog) RankBySimilarity(context.Context, string, int) ([]domain.ScoredProduct, error) {
	return nil, nil
}

func (c *countingCatalog) SearchByContains(context.Context, string, int) ([]domain.Product, error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func uniqueASIN() string {
	return "B0" + uuid.New().String()[:8]
}

func TestCachedCatalog_HitAfterMiss(t *testing.T) {
	t.Parallel()
	client := newRedis(t)
	ctx := context.Background()

	asin := uniqueASIN()
	inner := &countingCatalog{products: map[string]domain.Product{asin: {ID: 42, Title: "Cached Kettle"}}}
	c := NewCachedCatalog(inner, client, time.Minute, testLogger())

	for i := 0; i < 3; i++ {
		p, err := c.FindByExactIdentifier(ctx, asin)
		if err != nil {
			t.Fatalf("lookup %d: unexpected error: %v", i, err)
		}
		if p.ID != 42 || p.Title != "Cached Kettle" {
			t.Errorf("lookup %d: got %+v", i, p)
		}
	}
	if n := inner.lookups.Load(); n != 1 {
		t.Errorf("inner lookups = %d, want 1", n)
	}

	ttl, err := client.TTL(ctx, asinKey(asin)).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %v, want (0, 1m]", ttl)
	}
}

func TestCachedCatalog_NotFoundIsNotCached(t *testing.T) {
	t.Parallel()
	client := newRedis(t)
	ctx := context.Background()

	inner := &countingCatalog{products: map[string]domain.Product{}}
	c := NewCachedCatalog(inner, client, time.Minute, testLogger())
	asin := uniqueASIN()

	for i := 0; i < 2; i++ {
		if _, err := c.FindByExactIdentifier(ctx, asin); err == nil {
			t.Fatalf("lookup %d: expected error", i)
		}
	}
	if n := inner.lookups.Load(); n != 2 {
		t.Errorf("inner lookups = %d, want 2", n)
	}
	if n, _ := client.Exists(ctx, asinKey(asin)).Result(); n != 0 {
		t.Errorf("not-found result was cached")
	}
}

func TestCachedCatalog_RedisDownFallsThrough(t *testing.T) {
	t.Parallel()

	// Nothing listens on this port.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	inner := &countingCatalog{products: map[string]domain.Product{"B07XYZ1234": {ID: 1}}}
	c := NewCachedCatalog(inner, client, time.Minute, testLogger())

	p, err := c.FindByExactIdentifier(context.Background(), "B07XYZ1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("got %+v", p)
	}
	if err := c.Ping(context.Background()); err == nil {
		t.Error("expected ping to fail")
	}
}

func TestAsinKey_Normalizes(t *testing.T) {
	t.Parallel()

	if got, want := asinKey(" b07xyz1234 "), "catalog:asin:B07XYZ1234"; got != want {
		t.Errorf("asinKey = %q, want %q", got, want)
	}
}
