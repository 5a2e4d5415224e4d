// Package inventory implements inventory item persistence using PostgreSQL.
// Only the receipt path is covered: creating an item and reading it back.
package inventory

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/returns-backend/internal/adapter/postgres"
	"github.com/heartmarshall/returns-backend/internal/domain"
)

// Repo provides inventory item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, product_id, client_id, quantity, location, received_at, received_by`

const createSQL = `
INSERT INTO inventory_items (product_id, client_id, quantity, location, received_at, received_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM inventory_items WHERE id = $1`

type itemRow struct {
	ID         int64      `db:"id"`
	ProductID  int64      `db:"product_id"`
	ClientID   *int64     `db:"client_id"`
	Quantity   int        `db:"quantity"`
	Location   *string    `db:"location"`
	ReceivedAt time.Time  `db:"received_at"`
	ReceivedBy *uuid.UUID `db:"received_by"`
}

func (r itemRow) toDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:         r.ID,
		ProductID:  r.ProductID,
		ClientID:   r.ClientID,
		Quantity:   r.Quantity,
		Location:   r.Location,
		ReceivedAt: r.ReceivedAt,
		ReceivedBy: r.ReceivedBy,
	}
}

// Create inserts an inventory item. An unknown product or client maps to
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	receivedAt := item.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	var row itemRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, createSQL,
		item.ProductID, item.ClientID, item.Quantity, item.Location, receivedAt, item.ReceivedBy,
	)
	if err != nil {
		return nil, postgres.MapError(err, "inventory_item", "new")
	}
	return row.toDomain(), nil
}

// GetByID returns an inventory item by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, getByIDSQL, id); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "inventory_item", id)
	}
	return row.toDomain(), nil
}
