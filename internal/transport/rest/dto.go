package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

type returnResponse struct {
	ID              int64   `json:"id"`
	ProductID       *int64  `json:"product_id"`
	InventoryItemID *int64  `json:"inventory_item_id"`
	ClientID        *int64  `json:"client_id"`
	ReturnType      string  `json:"return_type"`
	Status          string  `json:"status"`
	Quantity        int     `json:"quantity"`
	LabelURL        *string `json:"label_url"`
	LabelUploadedAt *string `json:"label_uploaded_at"`
	Carrier         *string `json:"carrier"`
	TrackingNumber  *string `json:"tracking_number"`
	ReturnByDate    *string `json:"return_by_date"`

	SourceIdentifier  *string  `json:"source_identifier"`
	ParsedProductName *string  `json:"parsed_product_name"`
	MatchConfidence   *float64 `json:"match_confidence"`

	ClientNotes    *string `json:"client_notes"`
	WarehouseNotes *string `json:"warehouse_notes"`

	ImportBatchID    *uuid.UUID `json:"import_batch_id"`
	OriginalFilename *string    `json:"original_filename"`

	CreatedAt   string     `json:"created_at"`
	CreatedBy   *uuid.UUID `json:"created_by"`
	UpdatedAt   string     `json:"updated_at"`
	ShippedAt   *string    `json:"shipped_at"`
	ShippedBy   *uuid.UUID `json:"shipped_by"`
	CompletedAt *string    `json:"completed_at"`
	CancelledAt *string    `json:"cancelled_at"`
}

func toReturnResponse(r *domain.Return) returnResponse {
	return returnResponse{
		ID:                r.ID,
		ProductID:         r.ProductID,
		InventoryItemID:   r.InventoryItemID,
		ClientID:          r.ClientID,
		ReturnType:        r.ReturnType.String(),
		Status:            r.Status.String(),
		Quantity:          r.Quantity,
		LabelURL:          r.LabelURL,
		LabelUploadedAt:   timestamp(r.LabelUploadedAt),
		Carrier:           r.Carrier,
		TrackingNumber:    r.TrackingNumber,
		ReturnByDate:      dateOnly(r.ReturnByDate),
		SourceIdentifier:  r.SourceIdentifier,
		ParsedProductName: r.ParsedProductName,
		MatchConfidence:   r.MatchConfidence,
		ClientNotes:       r.ClientNotes,
		WarehouseNotes:    r.WarehouseNotes,
		ImportBatchID:     r.ImportBatchID,
		OriginalFilename:  r.OriginalFilename,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
		CreatedBy:         r.CreatedBy,
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339),
		ShippedAt:         timestamp(r.ShippedAt),
		ShippedBy:         r.ShippedBy,
		CompletedAt:       timestamp(r.CompletedAt),
		CancelledAt:       timestamp(r.CancelledAt),
	}
}

func toReturnResponses(rs []*domain.Return) []returnResponse {
	out := make([]returnResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReturnResponse(r))
	}
	return out
}

type inventoryItemResponse struct {
	ID         int64      `json:"id"`
	ProductID  int64      `json:"product_id"`
	ClientID   *int64     `json:"client_id"`
	Quantity   int        `json:"quantity"`
	Location   *string    `json:"location"`
	ReceivedAt string     `json:"received_at"`
	ReceivedBy *uuid.UUID `json:"received_by"`
}

func toInventoryItemResponse(i *domain.InventoryItem) inventoryItemResponse {
	return inventoryItemResponse{
		ID:         i.ID,
		ProductID:  i.ProductID,
		ClientID:   i.ClientID,
		Quantity:   i.Quantity,
		Location:   i.Location,
		ReceivedAt: i.ReceivedAt.UTC().Format(time.RFC3339),
		ReceivedBy: i.ReceivedBy,
	}
}

func timestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func dateOnly(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.DateOnly)
	return &s
}
