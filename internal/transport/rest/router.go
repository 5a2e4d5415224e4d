package rest

import (
	"net/http"

	"github.com/heartmarshall/returns-backend/internal/transport/middleware"
)

// Handlers groups every endpoint handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Returns   *ReturnHandler
	Import    *ImportHandler
	Export    *ExportHandler
	Inventory *InventoryHandler
}

// NewRouter mounts all routes. importLimit wraps the upload endpoint only;
// mw wraps everything. Either may be nil.
func NewRouter(h Handlers, importLimit middleware.Middleware, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /returns", h.Returns.Create)
	mux.HandleFunc("GET /returns", h.Returns.List)
	mux.HandleFunc("GET /returns/{id}", h.Returns.Get)
	mux.HandleFunc("PATCH /returns/{id}", h.Returns.Update)
	mux.HandleFunc("POST /returns/{id}/assign-product", h.Returns.AssignProduct)
	mux.HandleFunc("POST /returns/{id}/match-inventory", h.Returns.MatchInventory)
	mux.HandleFunc("POST /returns/{id}/ship", h.Returns.Ship)
	mux.HandleFunc("POST /returns/{id}/complete", h.Returns.Complete)
	mux.HandleFunc("POST /returns/{id}/cancel", h.Returns.Cancel)

	mux.Handle("POST /returns/import", middleware.Chain(importLimit)(http.HandlerFunc(h.Import.Import)))
	mux.HandleFunc("GET /returns/export", h.Export.Returns)

	mux.HandleFunc("POST /inventory/receipts", h.Inventory.Receive)

	return middleware.Chain(mw)(mux)
}
