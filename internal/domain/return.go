package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultQuantity is used when a return is created without a quantity.
const DefaultQuantity = 1

// Return is a physical product return tracked from label receipt to completion.
type Return struct {
	ID int64

	ProductID       *int64
	InventoryItemID *int64
	ClientID        *int64

	ReturnType ReturnType
	Status     ReturnStatus
	Quantity   int

	LabelURL        *string
	LabelUploadedAt *time.Time
	Carrier         *string
	TrackingNumber  *string
	ReturnByDate    *time.Time

	SourceIdentifier  *string
	ParsedProductName *string
	MatchConfidence   *float64

	ClientNotes    *string
	WarehouseNotes *string

	ImportBatchID    *uuid.UUID
	OriginalFilename *string

	CreatedAt   time.Time
	CreatedBy   *uuid.UUID
	UpdatedAt   time.Time
	ShippedAt   *time.Time
	ShippedBy   *uuid.UUID
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// IsMatched reports whether the return has been resolved to a catalog product.
func (r *Return) IsMatched() bool {
	return r.ProductID != nil
}

// ReturnChanges is a set of column updates applied to a stored return.
// Nil fields are left untouched. An empty string stored through a pointer
// field clears the column (NULL).
type ReturnChanges struct {
	Status          *ReturnStatus
	ProductID       *int64
	InventoryItemID *int64
	ClientID        *int64
	MatchConfidence *float64
	Quantity        *int

	LabelURL        *string
	LabelUploadedAt *time.Time
	// ClearLabel drops both label_url and label_uploaded_at.
	ClearLabel bool

	Carrier        *string
	TrackingNumber *string
	ReturnByDate   *time.Time
	ClientNotes    *string
	WarehouseNotes *string

	ShippedAt   *time.Time
	ShippedBy   *uuid.UUID
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// IsEmpty reports whether no column would change.
func (c ReturnChanges) IsEmpty() bool {
	return c.Status == nil && c.ProductID == nil && c.InventoryItemID == nil &&
		c.ClientID == nil && c.MatchConfidence == nil && c.Quantity == nil &&
		c.LabelURL == nil && c.LabelUploadedAt == nil && !c.ClearLabel &&
		c.Carrier == nil && c.TrackingNumber == nil && c.ReturnByDate == nil &&
		c.ClientNotes == nil && c.WarehouseNotes == nil &&
		c.ShippedAt == nil && c.ShippedBy == nil && c.CompletedAt == nil && c.CancelledAt == nil
}

// ReturnFilter narrows a return listing.
type ReturnFilter struct {
	Status        *ReturnStatus
	ReturnType    *ReturnType
	ProductID     *int64
	ClientID      *int64
	ImportBatchID *uuid.UUID

	// MaxConfidence lists returns whose match confidence is below the value
	// (or unset). Results are then ordered lowest confidence first, which is
	// the manual-review queue.
	MaxConfidence *float64

	Limit  int
	Offset int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Normalize applies default and maximum limits.
func (f *ReturnFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
