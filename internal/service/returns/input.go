package returns

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

const (
	MaxNotesLength    = 2000
	MaxTrackingLength = 100
	MaxCarrierLength  = 50
	MaxTextLength     = 255
)

// CreateReturnInput holds the fields of a new return. Status is derived from
// ProductID and is not settable.
type CreateReturnInput struct {
	ProductID       *int64
	MatchConfidence *float64
	ClientID        *int64
	InventoryItemID *int64

	ReturnType domain.ReturnType // empty = pre_receipt
	Quantity   *int              // nil = 1

	LabelURL       *string
	Carrier        *string
	TrackingNumber *string
	ReturnByDate   *time.Time

	SourceIdentifier  *string
	ParsedProductName *string

	ClientNotes    *string
	WarehouseNotes *string

	ImportBatchID    *uuid.UUID
	OriginalFilename *string
}

// Validate checks all fields and collects all errors.
func (i CreateReturnInput) Validate() error {
	var errs []domain.FieldError

	if i.ProductID != nil && *i.ProductID <= 0 {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "must be positive"})
	}
	if i.MatchConfidence != nil && (*i.MatchConfidence < 0 || *i.MatchConfidence > 1) {
		errs = append(errs, domain.FieldError{Field: "match_confidence", Message: "must be between 0 and 1"})
	}
	if i.ReturnType != "" && !i.ReturnType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "return_type", Message: "invalid value"})
	}
	if i.Quantity != nil && *i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	errs = checkLength(errs, "carrier", i.Carrier, MaxCarrierLength)
	errs = checkLength(errs, "tracking_number", i.TrackingNumber, MaxTrackingLength)
	errs = checkLength(errs, "parsed_product_name", i.ParsedProductName, MaxTextLength)
	errs = checkLength(errs, "client_notes", i.ClientNotes, MaxNotesLength)
	errs = checkLength(errs, "warehouse_notes", i.WarehouseNotes, MaxNotesLength)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssignProductInput holds the parameters for manually resolving a product.
type AssignProductInput struct {
	ReturnID  int64
	ProductID int64
}

// Validate checks all fields and collects all errors.
func (i AssignProductInput) Validate() error {
	var errs []domain.FieldError
	if i.ReturnID <= 0 {
		errs = append(errs, domain.FieldError{Field: "return_id", Message: "required"})
	}
	if i.ProductID <= 0 {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MatchInventoryInput links a return to a received inventory item.
type MatchInventoryInput struct {
	ReturnID        int64
	InventoryItemID int64
	ClientID        *int64 // used only when the return has no client yet
}

// Validate checks all fields and collects all errors.
func (i MatchInventoryInput) Validate() error {
	var errs []domain.FieldError
	if i.ReturnID <= 0 {
		errs = append(errs, domain.FieldError{Field: "return_id", Message: "required"})
	}
	if i.InventoryItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "inventory_item_id", Message: "required"})
	}
	if i.ClientID != nil && *i.ClientID <= 0 {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ShipInput marks a return as shipped. Nil fields keep their stored value.
type ShipInput struct {
	ReturnID       int64
	TrackingNumber *string
	Carrier        *string
	WarehouseNotes *string
}

// Validate checks all fields and collects all errors.
func (i ShipInput) Validate() error {
	var errs []domain.FieldError
	if i.ReturnID <= 0 {
		errs = append(errs, domain.FieldError{Field: "return_id", Message: "required"})
	}
	errs = checkLength(errs, "tracking_number", i.TrackingNumber, MaxTrackingLength)
	errs = checkLength(errs, "carrier", i.Carrier, MaxCarrierLength)
	errs = checkLength(errs, "warehouse_notes", i.WarehouseNotes, MaxNotesLength)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CancelInput cancels a return that has not shipped.
type CancelInput struct {
	ReturnID int64
	Reason   *string
}

// Validate checks all fields and collects all errors.
func (i CancelInput) Validate() error {
	var errs []domain.FieldError
	if i.ReturnID <= 0 {
		errs = append(errs, domain.FieldError{Field: "return_id", Message: "required"})
	}
	errs = checkLength(errs, "reason", i.Reason, MaxNotesLength)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReturnPatch is the administrative field patch. Status is not patchable;
// it changes only through the named transitions.
type ReturnPatch struct {
	ClientNotes    *string // nil = don't change; ptr("") = clear
	WarehouseNotes *string
	TrackingNumber *string
	Carrier        *string
	LabelURL       *string // ptr("") = remove the label
	ReturnByDate   *time.Time
	Quantity       *int
}

// UpdateReturnInput holds the parameters for patching a return.
type UpdateReturnInput struct {
	ReturnID int64
	Patch    ReturnPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateReturnInput) Validate() error {
	var errs []domain.FieldError
	p := i.Patch

	if i.ReturnID <= 0 {
		errs = append(errs, domain.FieldError{Field: "return_id", Message: "required"})
	}
	if p.ClientNotes == nil && p.WarehouseNotes == nil && p.TrackingNumber == nil && p.Carrier == nil &&
		p.LabelURL == nil && p.ReturnByDate == nil && p.Quantity == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if p.Quantity != nil && *p.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	errs = checkLength(errs, "client_notes", p.ClientNotes, MaxNotesLength)
	errs = checkLength(errs, "warehouse_notes", p.WarehouseNotes, MaxNotesLength)
	errs = checkLength(errs, "tracking_number", p.TrackingNumber, MaxTrackingLength)
	errs = checkLength(errs, "carrier", p.Carrier, MaxCarrierLength)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkLength(errs []domain.FieldError, field string, v *string, limit int) []domain.FieldError {
	if v != nil && utf8.RuneCountInString(*v) > limit {
		errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
