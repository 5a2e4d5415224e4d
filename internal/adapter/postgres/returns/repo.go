// Package returns implements the Return repository using PostgreSQL.
// Fixed queries are raw SQL; list filters and field patches are built with squirrel.
package returns

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/returns-backend/internal/adapter/postgres"
	"github.com/heartmarshall/returns-backend/internal/domain"
)

const table = "returns"

// Repo provides return persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new return repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const columns = `id, product_id, inventory_item_id, client_id, return_type, status, quantity,
       label_url, label_uploaded_at, carrier, tracking_number, return_by_date,
       source_identifier, parsed_product_name, match_confidence,
       client_notes, warehouse_notes, import_batch_id, original_filename,
       created_at, created_by, updated_at, shipped_at, shipped_by, completed_at, cancelled_at`

const createSQL = `
INSERT INTO returns (
    product_id, inventory_item_id, client_id, return_type, status, quantity,
    label_url, label_uploaded_at, carrier, tracking_number, return_by_date,
    source_identifier, parsed_product_name, match_confidence,
    client_notes, warehouse_notes, import_batch_id, original_filename,
    created_at, created_by, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11,
    $12, $13, $14,
    $15, $16, $17, $18,
    $19, $20, $19
)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM returns WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`

// findOpenPreReceiptSQL picks the oldest-due open pre-receipt return for a
// product. Rows locked by a concurrent receipt are skipped so two receipts
// never link the same return.
const findOpenPreReceiptSQL = `
SELECT ` + columns + `
FROM returns
WHERE product_id = $1
  AND return_type = 'pre_receipt'
  AND status IN ('pending', 'unmatched')
  AND inventory_item_id IS NULL
ORDER BY return_by_date ASC NULLS LAST, created_at ASC, id ASC
LIMIT 1
FOR UPDATE SKIP LOCKED`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a return by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Return, error) {
	return r.getOne(ctx, id, getByIDSQL, id)
}

// GetByIDForUpdate returns a return and locks its row until the enclosing
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Return, error) {
	return r.getOne(ctx, id, getByIDForUpdateSQL, id)
}

// FindOpenPreReceipt returns the open pre-receipt return that should be
// linked to the next inventory receipt of productID, locking it.
// Returns domain.ErrNotFound when there is none.
func (r *Repo) FindOpenPreReceipt(ctx context.Context, productID int64) (*domain.Return, error) {
	return r.getOne(ctx, productID, findOpenPreReceiptSQL, productID)
}

// List returns returns matching the filter together with the total count.
func (r *Repo) List(ctx context.Context, filter domain.ReturnFilter) ([]*domain.Return, int, error) {
	filter.Normalize()
	where := filterConditions(filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count returns: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count returns: %w", err)
	}

	sel := postgres.Builder().Select(columns).From(table).Where(where).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	if filter.MaxConfidence != nil {
		sel = sel.OrderBy("match_confidence ASC NULLS FIRST", "created_at ASC", "id ASC")
	} else {
		sel = sel.OrderBy("created_at DESC", "id DESC")
	}

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list returns: %w", err)
	}

	var rows []returnRow
	if err := pgxscan.Select(ctx, q, &rows, sqlStr, args...); err != nil {
		return nil, 0, fmt.Errorf("list returns: %w", err)
	}

	result := make([]*domain.Return, len(rows))
	for i := range rows {
		result[i] = rows[i].toDomain()
	}
	return result, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new return and returns the persisted row.
func (r *Repo) Create(ctx context.Context, ret *domain.Return) (*domain.Return, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := ret.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var row returnRow
	err := pgxscan.Get(ctx, q, &row, createSQL,
		ret.ProductID, ret.InventoryItemID, ret.ClientID, string(ret.ReturnType), string(ret.Status), ret.Quantity,
		ret.LabelURL, ret.LabelUploadedAt, ret.Carrier, ret.TrackingNumber, ret.ReturnByDate,
		ret.SourceIdentifier, ret.ParsedProductName, ret.MatchConfidence,
		ret.ClientNotes, ret.WarehouseNotes, ret.ImportBatchID, ret.OriginalFilename,
		createdAt, ret.CreatedBy,
	)
	if err != nil {
		return nil, postgres.MapError(notFound(err), "return", "new")
	}
	return row.toDomain(), nil
}

// Update applies changes to the return with the given id and returns the
// updated row. shipped_at and shipped_by keep their first value.
func (r *Repo) Update(ctx context.Context, id int64, c domain.ReturnChanges) (*domain.Return, error) {
	if c.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table).Set("updated_at", squirrel.Expr("now()"))

	if c.Status != nil {
		b = b.Set("status", string(*c.Status))
	}
	if c.ProductID != nil {
		b = b.Set("product_id", *c.ProductID)
	}
	if c.InventoryItemID != nil {
		b = b.Set("inventory_item_id", *c.InventoryItemID)
	}
	if c.ClientID != nil {
		b = b.Set("client_id", *c.ClientID)
	}
	if c.MatchConfidence != nil {
		b = b.Set("match_confidence", *c.MatchConfidence)
	}
	if c.Quantity != nil {
		b = b.Set("quantity", *c.Quantity)
	}

	switch {
	case c.ClearLabel:
		b = b.Set("label_url", nil).Set("label_uploaded_at", nil)
	case c.LabelURL != nil:
		uploadedAt := time.Now().UTC()
		if c.LabelUploadedAt != nil {
			uploadedAt = *c.LabelUploadedAt
		}
		b = b.Set("label_url", *c.LabelURL).Set("label_uploaded_at", uploadedAt)
	}

	b = setText(b, "carrier", c.Carrier)
	b = setText(b, "tracking_number", c.TrackingNumber)
	b = setText(b, "client_notes", c.ClientNotes)
	b = setText(b, "warehouse_notes", c.WarehouseNotes)

	if c.ReturnByDate != nil {
		b = b.Set("return_by_date", *c.ReturnByDate)
	}
	if c.ShippedAt != nil {
		b = b.Set("shipped_at", squirrel.Expr("COALESCE(shipped_at, ?)", *c.ShippedAt))
	}
	if c.ShippedBy != nil {
		b = b.Set("shipped_by", squirrel.Expr("COALESCE(shipped_by, ?)", *c.ShippedBy))
	}
	if c.CompletedAt != nil {
		b = b.Set("completed_at", *c.CompletedAt)
	}
	if c.CancelledAt != nil {
		b = b.Set("cancelled_at", *c.CancelledAt)
	}

	sqlStr, args, err := b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + columns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update return: %w", err)
	}

	var row returnRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sqlStr, args...); err != nil {
		return nil, postgres.MapError(notFound(err), "return", id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, key int64, sql string, args ...any) (*domain.Return, error) {
	var row returnRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		return nil, postgres.MapError(notFound(err), "return", key)
	}
	return row.toDomain(), nil
}

// setText sets a nullable text column. An empty string stores NULL.
func setText(b squirrel.UpdateBuilder, col string, v *string) squirrel.UpdateBuilder {
	if v == nil {
		return b
	}
	if *v == "" {
		return b.Set(col, nil)
	}
	return b.Set(col, *v)
}

// notFound normalizes scany's no-rows error to pgx.ErrNoRows for MapError.
func notFound(err error) error {
	if pgxscan.NotFound(err) {
		return pgx.ErrNoRows
	}
	return err
}

func filterConditions(f domain.ReturnFilter) squirrel.And {
	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.ReturnType != nil {
		where = append(where, squirrel.Eq{"return_type": string(*f.ReturnType)})
	}
	if f.ProductID != nil {
		where = append(where, squirrel.Eq{"product_id": *f.ProductID})
	}
	if f.ClientID != nil {
		where = append(where, squirrel.Eq{"client_id": *f.ClientID})
	}
	if f.ImportBatchID != nil {
		where = append(where, squirrel.Eq{"import_batch_id": *f.ImportBatchID})
	}
	if f.MaxConfidence != nil {
		where = append(where, squirrel.Or{
			squirrel.Eq{"match_confidence": nil},
			squirrel.Lt{"match_confidence": *f.MaxConfidence},
		})
	}
	return where
}

// returnRow is the scan target for the returns table.
type returnRow struct {
	ID                int64      `db:"id"`
	ProductID         *int64     `db:"product_id"`
	InventoryItemID   *int64     `db:"inventory_item_id"`
	ClientID          *int64     `db:"client_id"`
	ReturnType        string     `db:"return_type"`
	Status            string     `db:"status"`
	Quantity          int        `db:"quantity"`
	LabelURL          *string    `db:"label_url"`
	LabelUploadedAt   *time.Time `db:"label_uploaded_at"`
	Carrier           *string    `db:"carrier"`
	TrackingNumber    *string    `db:"tracking_number"`
	ReturnByDate      *time.Time `db:"return_by_date"`
	SourceIdentifier  *string    `db:"source_identifier"`
	ParsedProductName *string    `db:"parsed_product_name"`
	MatchConfidence   *float64   `db:"match_confidence"`
	ClientNotes       *string    `db:"client_notes"`
	WarehouseNotes    *string    `db:"warehouse_notes"`
	ImportBatchID     *uuid.UUID `db:"import_batch_id"`
	OriginalFilename  *string    `db:"original_filename"`
	CreatedAt         time.Time  `db:"created_at"`
	CreatedBy         *uuid.UUID `db:"created_by"`
	UpdatedAt         time.Time  `db:"updated_at"`
	ShippedAt         *time.Time `db:"shipped_at"`
	ShippedBy         *uuid.UUID `db:"shipped_by"`
	CompletedAt       *time.Time `db:"completed_at"`
	CancelledAt       *time.Time `db:"cancelled_at"`
}

func (row *returnRow) toDomain() *domain.Return {
	return &domain.Return{
		ID:                row.ID,
		ProductID:         row.ProductID,
		InventoryItemID:   row.InventoryItemID,
		ClientID:          row.ClientID,
		ReturnType:        domain.ReturnType(row.ReturnType),
		Status:            domain.ReturnStatus(row.Status),
		Quantity:          row.Quantity,
		LabelURL:          row.LabelURL,
		LabelUploadedAt:   row.LabelUploadedAt,
		Carrier:           row.Carrier,
		TrackingNumber:    row.TrackingNumber,
		ReturnByDate:      row.ReturnByDate,
		SourceIdentifier:  row.SourceIdentifier,
		ParsedProductName: row.ParsedProductName,
		MatchConfidence:   row.MatchConfidence,
		ClientNotes:       row.ClientNotes,
		WarehouseNotes:    row.WarehouseNotes,
		ImportBatchID:     row.ImportBatchID,
		OriginalFilename:  row.OriginalFilename,
		CreatedAt:         row.CreatedAt,
		CreatedBy:         row.CreatedBy,
		UpdatedAt:         row.UpdatedAt,
		ShippedAt:         row.ShippedAt,
		ShippedBy:         row.ShippedBy,
		CompletedAt:       row.CompletedAt,
		CancelledAt:       row.CancelledAt,
	}
}
