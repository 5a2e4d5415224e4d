package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is the read model of a catalog product.
type Product struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	SKU   *string `json:"sku,omitempty"`
}

// ScoredProduct is a catalog product ranked by title similarity to a query.
type ScoredProduct struct {
	Product
	Similarity float64
}

// ProductMatch is the outcome of automatic or manual product resolution.
type ProductMatch struct {
	ProductID  int64
	Confidence float64
	MatchType  MatchType
}

// ExactMatchConfidence is used for exact identifier and manual matches.
const ExactMatchConfidence = 1.0

// InventoryItem is a physical unit batch received at the warehouse.
type InventoryItem struct {
	ID         int64
	ProductID  int64
	ClientID   *int64
	Quantity   int
	Location   *string
	ReceivedAt time.Time
	ReceivedBy *uuid.UUID
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    *uuid.UUID
	EntityType EntityType
	EntityID   int64
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
