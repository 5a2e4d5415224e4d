package returns

import (
	"context"
	"strings"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// UpdateReturn applies an administrative patch. It is allowed in every
// status and never changes the status itself.
func (s *Service) UpdateReturn(ctx context.Context, input UpdateReturnInput) (*domain.Return, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := input.Patch
	changes := domain.ReturnChanges{
		ClientNotes:    trimKeepEmpty(p.ClientNotes),
		WarehouseNotes: trimKeepEmpty(p.WarehouseNotes),
		TrackingNumber: trimKeepEmpty(p.TrackingNumber),
		Carrier:        trimKeepEmpty(p.Carrier),
		ReturnByDate:   p.ReturnByDate,
		Quantity:       p.Quantity,
	}
	if p.LabelURL != nil {
		if label := strings.TrimSpace(*p.LabelURL); label == "" {
			changes.ClearLabel = true
		} else {
			now := s.now()
			changes.LabelURL = &label
			changes.LabelUploadedAt = &now
		}
	}

	_, updated, err := s.applyTransition(ctx, input.ReturnID, domain.TransitionUpdate,
		func(context.Context, *domain.Return) (domain.ReturnChanges, domain.AuditAction, error) {
			return changes, domain.AuditActionUpdate, nil
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
