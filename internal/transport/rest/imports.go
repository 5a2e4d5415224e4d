package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/service/importer"
)

// importFormField is the multipart field holding the label files.
const importFormField = "files"

// multipartMemory is kept in memory before spilling to temp files.
const multipartMemory = 32 << 20

type importService interface {
	ImportBatch(ctx context.Context, files []importer.File, opts importer.Options) (*importer.Report, error)
}

// ImportHandler serves batch label uploads.
type ImportHandler struct {
	svc     importService
	maxBody int64
	log     *slog.Logger
}

// NewImportHandler creates an ImportHandler. maxBody bounds the request
// body; 0 disables the limit.
func NewImportHandler(svc importService, maxBody int64, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, maxBody: maxBody, log: logger.With("handler", "import")}
}

// Import handles POST /returns/import. The response is 200 with the batch
// report even when every file failed; only a request without files is
// rejected.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return
		}
		writeError(w, http.StatusBadRequest, "expected multipart/form-data with field "+importFormField)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File[importFormField]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "no files uploaded")
		return
	}

	opts, err := parseImportOptions(r.MultipartForm.Value)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	files := make([]importer.File, 0, len(headers))
	for _, fh := range headers {
		// A part that cannot be read is passed on empty and reported as an
		// unreadable file in the batch.
		data, err := readPart(fh)
		if err != nil {
			h.log.WarnContext(r.Context(), "upload part unreadable",
				slog.String("filename", fh.Filename),
				slog.String("error", err.Error()),
			)
		}
		files = append(files, importer.File{Name: fh.Filename, Data: data})
	}

	report, err := h.svc.ImportBatch(r.Context(), files, opts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func parseImportOptions(values map[string][]string) (importer.Options, error) {
	var opts importer.Options
	if v := strings.TrimSpace(firstValue(values, "return_type")); v != "" {
		opts.ReturnType = domain.ReturnType(v)
	}
	if v := strings.TrimSpace(firstValue(values, "client_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, domain.NewValidationError("client_id", "must be an integer")
		}
		opts.ClientID = &id
	}
	return opts, nil
}
