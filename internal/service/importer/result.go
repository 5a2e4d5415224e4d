package importer

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// File is one uploaded label.
type File struct {
	Name string
	Data []byte
}

// Options apply to every return created by one batch.
type Options struct {
	ReturnType domain.ReturnType // empty = Config.DefaultReturnType
	ClientID   *int64
}

// Validate checks all fields and collects all errors.
func (o Options) Validate() error {
	var errs []domain.FieldError
	if o.ReturnType != "" && !o.ReturnType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "return_type", Message: "invalid value"})
	}
	if o.ClientID != nil && *o.ClientID <= 0 {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Report summarizes a batch import.
type Report struct {
	BatchID    uuid.UUID    `json:"batch_id"`
	Total      int          `json:"total"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Matched    int          `json:"matched"`
	Unmatched  int          `json:"unmatched"`
	Errors     []FileError  `json:"errors"`
	Results    []FileResult `json:"results"`
}

// FileError names a file that could not be imported.
type FileError struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// FileResult is the outcome for one file, in input order.
type FileResult struct {
	Filename   string              `json:"filename"`
	ReturnID   int64               `json:"return_id,omitempty"`
	Status     domain.ReturnStatus `json:"status,omitempty"`
	ProductID  *int64              `json:"product_id,omitempty"`
	MatchType  domain.MatchType    `json:"match_type,omitempty"`
	Confidence *float64            `json:"confidence,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// Succeeded reports whether a return was created for the file.
func (r FileResult) Succeeded() bool { return r.Error == "" }
