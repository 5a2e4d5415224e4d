package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportService interface {
	ExportReturnsXLSX(ctx context.Context, filter domain.ReturnFilter) ([]byte, error)
}

// ExportHandler serves spreadsheet downloads.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
	now func() time.Time
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export"), now: time.Now}
}

// Returns handles GET /returns/export. It accepts the same filters as the
// list endpoint; limit and offset are ignored.
func (h *ExportHandler) Returns(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReturnFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := validateExportFilter(filter); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data, err := h.svc.ExportReturnsXLSX(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	attachment(w, "returns-"+h.now().UTC().Format("20060102-150405")+".xlsx")
	w.Header().Set("Content-Type", xlsxContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func validateExportFilter(f domain.ReturnFilter) error {
	var errs []domain.FieldError
	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if f.ReturnType != nil && !f.ReturnType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "return_type", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
