package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/returns-backend/internal/adapter/cache"
	"github.com/heartmarshall/returns-backend/internal/adapter/labelstore"
	"github.com/heartmarshall/returns-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/returns-backend/internal/adapter/postgres/audit"
	catalogrepo "github.com/heartmarshall/returns-backend/internal/adapter/postgres/catalog"
	inventoryrepo "github.com/heartmarshall/returns-backend/internal/adapter/postgres/inventory"
	returnsrepo "github.com/heartmarshall/returns-backend/internal/adapter/postgres/returns"
	"github.com/heartmarshall/returns-backend/internal/config"
	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/export"
	"github.com/heartmarshall/returns-backend/internal/matcher"
	"github.com/heartmarshall/returns-backend/internal/pdftext"
	"github.com/heartmarshall/returns-backend/internal/service/importer"
	"github.com/heartmarshall/returns-backend/internal/service/inventory"
	"github.com/heartmarshall/returns-backend/internal/service/returns"
)

type labelSaver interface {
	Save(ctx context.Context, batchID uuid.UUID, filename string, data []byte) (string, error)
}

// Services holds the wired application services shared by the HTTP server
// and the CLI.
type Services struct {
	Pool      *pgxpool.Pool
	Returns   *returns.Service
	Inventory *inventory.Service
	Importer  *importer.Service
	Export    *export.Service
	// Cache is nil when no Redis address is configured.
	Cache *cache.CachedCatalog

	redis *redis.Client
}

// NewServices connects to PostgreSQL (and Redis, when configured) and
// builds every service. Call Close when done.
func NewServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	s, err := NewServicesWithPool(ctx, pool, cfg, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewServicesWithPool builds every service over an existing pool. Close
// releases the pool too.
func NewServicesWithPool(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	s := &Services{Pool: pool}

	txm := postgres.NewTxManager(pool)
	returnRepo := returnsrepo.New(pool)
	inventoryRepo := inventoryrepo.New(pool)
	auditRepo := auditrepo.New(pool)

	products := catalogrepo.New(pool)
	var catalog matcher.Catalog = products
	if cfg.Cache.Enabled() {
		client, err := cache.NewClient(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			return nil, err
		}
		s.redis = client
		s.Cache = cache.NewCachedCatalog(catalog, client, cfg.Cache.TTL, logger)
		catalog = s.Cache
	}

	var labels labelSaver
	if cfg.Storage.Enabled() {
		store, err := labelstore.New(cfg.Storage.LabelDir)
		if err != nil {
			if s.redis != nil {
				_ = s.redis.Close()
			}
			return nil, err
		}
		labels = store
	}

	s.Returns = returns.NewService(logger, returnRepo, inventoryRepo, products, auditRepo, txm)
	s.Inventory = inventory.NewService(
		logger,
		inventoryRepo,
		inventory.NewReconciler(logger, returnRepo, auditRepo, txm),
		auditRepo,
		txm,
	)

	extractor := pdftext.New(pdftext.Config{
		Pdftotext: cfg.Import.PdftotextPath,
		Timeout:   cfg.Import.ExtractTimeout,
	}, nil, logger)
	productMatcher := matcher.New(catalog, matcher.Config{
		SimilarityThreshold: cfg.Matching.SimilarityThreshold,
		RankLimit:           cfg.Matching.RankLimit,
		SubstringConfidence: cfg.Matching.SubstringConfidence,
	}, logger)

	s.Importer = importer.NewService(logger, importer.Config{
		Workers:           cfg.Import.Workers,
		MaxFileSize:       cfg.Import.MaxFileSize,
		DefaultReturnType: domain.ReturnType(cfg.Import.DefaultReturnType),
	}, extractor, productMatcher, s.Returns, labels)

	s.Export = export.NewService(logger, returnRepo)

	logger.Info("services initialized",
		slog.Bool("cache", s.Cache != nil),
		slog.Bool("label_storage", labels != nil),
		slog.Int("import_workers", cfg.Import.Workers),
	)
	return s, nil
}

// Close releases the database pool and the Redis client.
func (s *Services) Close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.Pool != nil {
		s.Pool.Close()
	}
}
