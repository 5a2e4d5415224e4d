package returns

import (
	"context"
	"strings"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// MarkCompleted closes a shipped return.
func (s *Service) MarkCompleted(ctx context.Context, returnID int64) (*domain.Return, error) {
	if returnID <= 0 {
		return nil, domain.NewValidationError("return_id", "required")
	}

	now := s.now()
	_, updated, err := s.applyTransition(ctx, returnID, domain.TransitionComplete,
		func(context.Context, *domain.Return) (domain.ReturnChanges, domain.AuditAction, error) {
			return domain.ReturnChanges{CompletedAt: &now}, domain.AuditActionComplete, nil
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel withdraws a return that has not shipped. A reason is appended to
// the warehouse notes.
func (s *Service) Cancel(ctx context.Context, input CancelInput) (*domain.Return, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	_, updated, err := s.applyTransition(ctx, input.ReturnID, domain.TransitionCancel,
		func(_ context.Context, cur *domain.Return) (domain.ReturnChanges, domain.AuditAction, error) {
			changes := domain.ReturnChanges{CancelledAt: &now}
			if reason := trimOrNil(input.Reason); reason != nil {
				changes.WarehouseNotes = ptr(appendNote(cur.WarehouseNotes, "Cancelled: "+*reason))
			}
			return changes, domain.AuditActionCancel, nil
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func appendNote(existing *string, note string) string {
	if existing == nil || strings.TrimSpace(*existing) == "" {
		return note
	}
	return *existing + "\n" + note
}
