// Package catalog implements the read-only product catalog queries used for
// return matching. Catalog rows are owned by the catalog service; this
// package never writes them.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/returns-backend/internal/adapter/postgres"
	"github.com/heartmarshall/returns-backend/internal/domain"
)

// Repo provides catalog lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const findByASINSQL = `
SELECT p.id, p.title, p.sku
FROM product_listings l
JOIN products p ON p.id = l.product_id
WHERE upper(l.asin) = upper($1)
LIMIT 1`

// rankBySimilaritySQL needs the pg_trgm extension.
const rankBySimilaritySQL = `
SELECT p.id, p.title, p.sku, similarity(p.title, $1) AS similarity
FROM products p
ORDER BY similarity DESC, p.id ASC
LIMIT $2`

const searchByContainsSQL = `
SELECT p.id, p.title, p.sku
FROM products p
WHERE p.title ILIKE '%' || $1 || '%' ESCAPE '\'
ORDER BY length(p.title) ASC, p.id ASC
LIMIT $2`

const getProductSQL = `SELECT id, title, sku FROM products WHERE id = $1`

type productRow struct {
	ID    int64   `db:"id"`
	Title string  `db:"title"`
	SKU   *string `db:"sku"`
}

type scoredRow struct {
	ID         int64   `db:"id"`
	Title      string  `db:"title"`
	SKU        *string `db:"sku"`
	Similarity float64 `db:"similarity"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{ID: r.ID, Title: r.Title, SKU: r.SKU}
}

// FindByExactIdentifier returns the product owning a listing with the given
// ASIN. The comparison ignores case. Returns domain.ErrNotFound when no
// listing matches.
func (r *Repo) FindByExactIdentifier(ctx context.Context, asin string) (*domain.Product, error) {
	var row productRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, findByASINSQL, strings.TrimSpace(asin))
	if err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "product_listing", asin)
	}
	p := row.toDomain()
	return &p, nil
}

// RankBySimilarity returns up to limit products ordered by trigram
// similarity of their title to query.
func (r *Repo) RankBySimilarity(ctx context.Context, query string, limit int) ([]domain.ScoredProduct, error) {
	var rows []scoredRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, rankBySimilaritySQL, query, limit); err != nil {
		return nil, fmt.Errorf("rank products by similarity: %w", err)
	}

	result := make([]domain.ScoredProduct, len(rows))
	for i, row := range rows {
		result[i] = domain.ScoredProduct{
			Product:    domain.Product{ID: row.ID, Title: row.Title, SKU: row.SKU},
			Similarity: row.Similarity,
		}
	}
	return result, nil
}

// SearchByContains returns up to limit products whose title contains query,
// case-insensitively, shortest title first.
func (r *Repo) SearchByContains(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	var rows []productRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, searchByContainsSQL, escapeLike(query), limit); err != nil {
		return nil, fmt.Errorf("search products by title: %w", err)
	}

	result := make([]domain.Product, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}

// GetProduct returns a product by id.
func (r *Repo) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var row productRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, getProductSQL, id); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "product", id)
	}
	p := row.toDomain()
	return &p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
