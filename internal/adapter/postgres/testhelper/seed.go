package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueASIN returns a random ASIN-shaped identifier.
func UniqueASIN() string {
	return "B0" + uuid.New().String()[:8]
}

// SeedClient creates a client and returns its id.
func SeedClient(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO clients (name) VALUES ($1) RETURNING id`,
		"Client "+uniqueSuffix(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedClient: %v", err)
	}
	return id
}

// SeedProduct creates a product with the given title and, when asin is not
// empty, a listing carrying that ASIN. Returns the filled domain.Product.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, title, asin string) domain.Product {
	t.Helper()
	ctx := context.Background()

	sku := "SKU-" + uniqueSuffix()
	p := domain.Product{Title: title, SKU: &sku}

	err := pool.QueryRow(ctx,
		`INSERT INTO products (title, sku) VALUES ($1, $2) RETURNING id`,
		p.Title, sku,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct insert product: %v", err)
	}

	if asin != "" {
		_, err = pool.Exec(ctx,
			`INSERT INTO product_listings (product_id, asin, fnsku) VALUES ($1, $2, $3)`,
			p.ID, asin, "X00"+uniqueSuffix(),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedProduct insert listing: %v", err)
		}
	}

	return p
}

// SeedInventoryItem creates an inventory item for productID.
func SeedInventoryItem(t *testing.T, pool *pgxpool.Pool, productID int64, clientID *int64) domain.InventoryItem {
	t.Helper()

	item := domain.InventoryItem{
		ProductID:  productID,
		ClientID:   clientID,
		Quantity:   1,
		ReceivedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO inventory_items (product_id, client_id, quantity, received_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		item.ProductID, item.ClientID, item.Quantity, item.ReceivedAt,
	).Scan(&item.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedInventoryItem: %v", err)
	}
	return item
}

// ReturnOption customizes a seeded return.
type ReturnOption func(r *domain.Return)

// WithReturnByDate sets return_by_date.
func WithReturnByDate(d time.Time) ReturnOption {
	return func(r *domain.Return) { r.ReturnByDate = &d }
}

// WithStatus overrides the derived status.
func WithStatus(s domain.ReturnStatus) ReturnOption {
	return func(r *domain.Return) { r.Status = s }
}

// WithReturnType sets the return type.
func WithReturnType(rt domain.ReturnType) ReturnOption {
	return func(r *domain.Return) { r.ReturnType = rt }
}

// WithCreatedAt sets created_at.
func WithCreatedAt(ts time.Time) ReturnOption {
	return func(r *domain.Return) { r.CreatedAt = ts }
}

// WithClient sets client_id.
func WithClient(id int64) ReturnOption {
	return func(r *domain.Return) { r.ClientID = &id }
}

// SeedReturn creates a pre-receipt return for productID (nil for an
// unmatched one) and returns its id.
func SeedReturn(t *testing.T, pool *pgxpool.Pool, productID *int64, opts ...ReturnOption) int64 {
	t.Helper()

	r := domain.Return{
		ProductID:  productID,
		ReturnType: domain.ReturnTypePreReceipt,
		Status:     domain.InitialStatus(productID),
		Quantity:   domain.DefaultQuantity,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&r)
	}

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO returns (product_id, client_id, return_type, status, quantity, return_by_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`,
		r.ProductID, r.ClientID, string(r.ReturnType), string(r.Status), r.Quantity, r.ReturnByDate, r.CreatedAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedReturn: %v", err)
	}
	return id
}
