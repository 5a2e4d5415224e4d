package returns

import (
	"context"
	"fmt"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// GetReturn returns a return by id.
func (s *Service) GetReturn(ctx context.Context, id int64) (*domain.Return, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("return_id", "required")
	}
	return s.returns.GetByID(ctx, id)
}

// ListResult is one page of returns.
type ListResult struct {
	Returns []*domain.Return
	Total   int
	Limit   int
	Offset  int
}

// ListReturns lists returns matching filter. A MaxConfidence filter yields
// the manual-review queue, lowest confidence first.
func (s *Service) ListReturns(ctx context.Context, filter domain.ReturnFilter) (*ListResult, error) {
	var errs []domain.FieldError
	if filter.Status != nil && !filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if filter.ReturnType != nil && !filter.ReturnType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "return_type", Message: "invalid value"})
	}
	if filter.MaxConfidence != nil && (*filter.MaxConfidence < 0 || *filter.MaxConfidence > 1) {
		errs = append(errs, domain.FieldError{Field: "max_confidence", Message: "must be between 0 and 1"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	filter.Normalize()
	items, total, err := s.returns.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	return &ListResult{Returns: items, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
}
