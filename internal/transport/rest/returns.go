package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/service/returns"
)

type returnService interface {
	CreateReturn(ctx context.Context, input returns.CreateReturnInput) (*domain.Return, error)
	GetReturn(ctx context.Context, id int64) (*domain.Return, error)
	ListReturns(ctx context.Context, filter domain.ReturnFilter) (*returns.ListResult, error)
	UpdateReturn(ctx context.Context, input returns.UpdateReturnInput) (*domain.Return, error)
	AssignProduct(ctx context.Context, input returns.AssignProductInput) (*domain.Return, error)
	MatchToInventory(ctx context.Context, input returns.MatchInventoryInput) (*domain.Return, error)
	MarkShipped(ctx context.Context, input returns.ShipInput) (*returns.ShipResult, error)
	MarkCompleted(ctx context.Context, returnID int64) (*domain.Return, error)
	Cancel(ctx context.Context, input returns.CancelInput) (*domain.Return, error)
}

// ReturnHandler serves the return lifecycle endpoints.
type ReturnHandler struct {
	svc returnService
	log *slog.Logger
}

// NewReturnHandler creates a ReturnHandler.
func NewReturnHandler(svc returnService, logger *slog.Logger) *ReturnHandler {
	return &ReturnHandler{svc: svc, log: logger.With("handler", "returns")}
}

type createReturnRequest struct {
	ProductID         *int64   `json:"product_id"`
	MatchConfidence   *float64 `json:"match_confidence"`
	ClientID          *int64   `json:"client_id"`
	InventoryItemID   *int64   `json:"inventory_item_id"`
	ReturnType        string   `json:"return_type"`
	Quantity          *int     `json:"quantity"`
	LabelURL          *string  `json:"label_url"`
	Carrier           *string  `json:"carrier"`
	TrackingNumber    *string  `json:"tracking_number"`
	ReturnByDate      *string  `json:"return_by_date"`
	SourceIdentifier  *string  `json:"source_identifier"`
	ParsedProductName *string  `json:"parsed_product_name"`
	ClientNotes       *string  `json:"client_notes"`
	WarehouseNotes    *string  `json:"warehouse_notes"`
}

type updateReturnRequest struct {
	ClientNotes    *string `json:"client_notes"`
	WarehouseNotes *string `json:"warehouse_notes"`
	TrackingNumber *string `json:"tracking_number"`
	Carrier        *string `json:"carrier"`
	LabelURL       *string `json:"label_url"`
	ReturnByDate   *string `json:"return_by_date"`
	Quantity       *int    `json:"quantity"`
}

type assignProductRequest struct {
	ProductID int64 `json:"product_id"`
}

type matchInventoryRequest struct {
	InventoryItemID int64  `json:"inventory_item_id"`
	ClientID        *int64 `json:"client_id"`
}

type shipRequest struct {
	TrackingNumber *string `json:"tracking_number"`
	Carrier        *string `json:"carrier"`
	WarehouseNotes *string `json:"warehouse_notes"`
}

type cancelRequest struct {
	Reason *string `json:"reason"`
}

type listReturnsResponse struct {
	Returns []returnResponse `json:"returns"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type shipResponse struct {
	returnResponse
	FirstShipment bool `json:"first_shipment"`
}

// Create handles POST /returns.
func (h *ReturnHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReturnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	due, err := parseDate("return_by_date", req.ReturnByDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ret, err := h.svc.CreateReturn(r.Context(), returns.CreateReturnInput{
		ProductID:         req.ProductID,
		MatchConfidence:   req.MatchConfidence,
		ClientID:          req.ClientID,
		InventoryItemID:   req.InventoryItemID,
		ReturnType:        domain.ReturnType(req.ReturnType),
		Quantity:          req.Quantity,
		LabelURL:          req.LabelURL,
		Carrier:           req.Carrier,
		TrackingNumber:    req.TrackingNumber,
		ReturnByDate:      due,
		SourceIdentifier:  req.SourceIdentifier,
		ParsedProductName: req.ParsedProductName,
		ClientNotes:       req.ClientNotes,
		WarehouseNotes:    req.WarehouseNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReturnResponse(ret))
}

// Get handles GET /returns/{id}.
func (h *ReturnHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ret, err := h.svc.GetReturn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReturnResponse(ret))
}

// List handles GET /returns.
func (h *ReturnHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReturnFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.ListReturns(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listReturnsResponse{
		Returns: toReturnResponses(res.Returns),
		Total:   res.Total,
		Limit:   res.Limit,
		Offset:  res.Offset,
	})
}

// Update handles PATCH /returns/{id}.
func (h *ReturnHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateReturnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	due, err := parseDate("return_by_date", req.ReturnByDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ret, err := h.svc.UpdateReturn(r.Context(), returns.UpdateReturnInput{
		ReturnID: id,
		Patch: returns.ReturnPatch{
			ClientNotes:    req.ClientNotes,
			WarehouseNotes: req.WarehouseNotes,
			TrackingNumber: req.TrackingNumber,
			Carrier:        req.Carrier,
			LabelURL:       req.LabelURL,
			ReturnByDate:   due,
			Quantity:       req.Quantity,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReturnResponse(ret))
}

// AssignProduct handles POST /returns/{id}/assign-product.
func (h *ReturnHandler) AssignProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req assignProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ret, err := h.svc.AssignProduct(r.Context(), returns.AssignProductInput{ReturnID: id, ProductID: req.ProductID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReturnResponse(ret))
}

// MatchInventory handles POST /returns/{id}/match-inventory.
func (h *ReturnHandler) MatchInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req matchInventoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ret, err := h.svc.MatchToInventory(r.Context(), returns.MatchInventoryInput{
		ReturnID:        id,
		InventoryItemID: req.InventoryItemID,
		ClientID:        req.ClientID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReturnResponse(ret))
}

// Ship handles POST /returns/{id}/ship. The body is optional.
func (h *ReturnHandler) Ship(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req shipRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	res, err := h.svc.MarkShipped(r.Context(), returns.ShipInput{
		ReturnID:       id,
		TrackingNumber: req.TrackingNumber,
		Carrier:        req.Carrier,
		WarehouseNotes: req.WarehouseNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shipResponse{returnResponse: toReturnResponse(res.Return), FirstShipment: res.FirstShipment})
}

// Complete handles POST /returns/{id}/complete.
func (h *ReturnHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ret, err := h.svc.MarkCompleted(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReturnResponse(ret))
}

// Cancel handles POST /returns/{id}/cancel. The body is optional.
func (h *ReturnHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req cancelRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	ret, err := h.svc.Cancel(r.Context(), returns.CancelInput{ReturnID: id, Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReturnResponse(ret))
}

// parseReturnFilter reads the list query: status, return_type, product_id,
// client_id, batch_id, max_confidence, limit, offset.
func parseReturnFilter(r *http.Request) (domain.ReturnFilter, error) {
	p := &queryParser{q: r.URL.Query()}

	f := domain.ReturnFilter{
		ProductID:     p.optInt64("product_id"),
		ClientID:      p.optInt64("client_id"),
		MaxConfidence: p.optFloat("max_confidence"),
		Limit:         p.intValue("limit"),
		Offset:        p.intValue("offset"),
	}
	if v := p.optString("status"); v != nil {
		s := domain.ReturnStatus(*v)
		f.Status = &s
	}
	if v := p.optString("return_type"); v != nil {
		t := domain.ReturnType(*v)
		f.ReturnType = &t
	}
	if v := p.optString("batch_id"); v != nil {
		id, err := uuid.Parse(*v)
		if err != nil {
			p.errs = append(p.errs, domain.FieldError{Field: "batch_id", Message: "must be a UUID"})
		} else {
			f.ImportBatchID = &id
		}
	}
	return f, p.err()
}
