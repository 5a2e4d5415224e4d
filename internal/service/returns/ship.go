package returns

import (
	"context"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/pkg/ctxutil"
)

// ShipResult is the outcome of MarkShipped.
type ShipResult struct {
	Return *domain.Return
	// FirstShipment is false when the return had already shipped; shipped_at
	// and shipped_by then keep their original values.
	FirstShipment bool
}

// MarkShipped moves a return to shipped. Tracking number, carrier and notes
// are overwritten only when supplied. Repeating the call on a shipped return
// is allowed and records an UPDATE instead of a SHIP audit event.
func (s *Service) MarkShipped(ctx context.Context, input ShipInput) (*ShipResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	actor := ctxutil.ActorRef(ctx)

	before, updated, err := s.applyTransition(ctx, input.ReturnID, domain.TransitionShip,
		func(_ context.Context, cur *domain.Return) (domain.ReturnChanges, domain.AuditAction, error) {
			changes := domain.ReturnChanges{
				TrackingNumber: trimKeepEmpty(input.TrackingNumber),
				Carrier:        trimKeepEmpty(input.Carrier),
				WarehouseNotes: trimKeepEmpty(input.WarehouseNotes),
			}
			if cur.ShippedAt != nil {
				// shipped_by belongs to the first shipment, even when it was nil.
				return changes, domain.AuditActionUpdate, nil
			}
			changes.ShippedAt = &now
			changes.ShippedBy = actor
			return changes, domain.AuditActionShip, nil
		})
	if err != nil {
		return nil, err
	}

	return &ShipResult{Return: updated, FirstShipment: before.ShippedAt == nil}, nil
}
