package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/returns-backend/internal/service/inventory"
)

type inventoryService interface {
	Receive(ctx context.Context, input inventory.ReceiveInput) (*inventory.ReceiveResult, error)
}

// InventoryHandler serves warehouse receipts.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type receiveRequest struct {
	ProductID int64   `json:"product_id"`
	ClientID  *int64  `json:"client_id"`
	Quantity  int     `json:"quantity"`
	Location  *string `json:"location"`
}

type receiveResponse struct {
	Item          inventoryItemResponse `json:"item"`
	MatchedReturn *returnResponse       `json:"matched_return"`
}

// Receive handles POST /inventory/receipts: records the receipt and links
// the oldest open pre-receipt return for the product, if any.
func (h *InventoryHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var req receiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Receive(r.Context(), inventory.ReceiveInput{
		ProductID: req.ProductID,
		ClientID:  req.ClientID,
		Quantity:  req.Quantity,
		Location:  req.Location,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := receiveResponse{Item: toInventoryItemResponse(res.Item)}
	if res.MatchedReturn != nil {
		matched := toReturnResponse(res.MatchedReturn)
		resp.MatchedReturn = &matched
	}
	writeJSON(w, http.StatusCreated, resp)
}
