package returns

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/pkg/ctxutil"
)

// plan computes the changes of one transition from the locked current row.
type plan func(txCtx context.Context, cur *domain.Return) (domain.ReturnChanges, domain.AuditAction, error)

// applyTransition locks the return, checks op against its status, applies
// the planned changes and writes the audit record, all in one transaction.
// It returns the row as it was before and after the change.
func (s *Service) applyTransition(ctx context.Context, id int64, op domain.Transition, p plan) (before, after *domain.Return, err error) {
	actor := ctxutil.ActorRef(ctx)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, getErr := s.returns.GetByIDForUpdate(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get return: %w", getErr)
		}
		if checkErr := domain.CheckTransition(op, cur.Status); checkErr != nil {
			return checkErr
		}

		changes, action, planErr := p(txCtx, cur)
		if planErr != nil {
			return planErr
		}
		if target, ok := domain.TargetStatus(op); ok {
			changes.Status = &target
		}

		updated, updateErr := s.returns.Update(txCtx, id, changes)
		if updateErr != nil {
			return fmt.Errorf("update return: %w", updateErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor,
			EntityType: domain.EntityTypeReturn,
			EntityID:   id,
			Action:     action,
			Changes:    buildReturnChanges(cur, updated),
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		before, after = cur, updated
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.InfoContext(ctx, "return transitioned",
		slog.Int64("return_id", id),
		slog.String("op", string(op)),
		slog.String("from", before.Status.String()),
		slog.String("to", after.Status.String()),
	)
	return before, after, nil
}

// buildReturnChanges returns only changed fields for audit.
func buildReturnChanges(old, updated *domain.Return) map[string]any {
	changes := make(map[string]any)
	if old.Status != updated.Status {
		changes["status"] = map[string]any{"old": old.Status, "new": updated.Status}
	}
	if old.Quantity != updated.Quantity {
		changes["quantity"] = map[string]any{"old": old.Quantity, "new": updated.Quantity}
	}
	diffPtr(changes, "product_id", old.ProductID, updated.ProductID)
	diffPtr(changes, "inventory_item_id", old.InventoryItemID, updated.InventoryItemID)
	diffPtr(changes, "client_id", old.ClientID, updated.ClientID)
	diffPtr(changes, "match_confidence", old.MatchConfidence, updated.MatchConfidence)
	diffPtr(changes, "label_url", old.LabelURL, updated.LabelURL)
	diffPtr(changes, "carrier", old.Carrier, updated.Carrier)
	diffPtr(changes, "tracking_number", old.TrackingNumber, updated.TrackingNumber)
	diffPtr(changes, "client_notes", old.ClientNotes, updated.ClientNotes)
	diffPtr(changes, "warehouse_notes", old.WarehouseNotes, updated.WarehouseNotes)
	diffTime(changes, "return_by_date", old.ReturnByDate, updated.ReturnByDate)
	diffTime(changes, "shipped_at", old.ShippedAt, updated.ShippedAt)
	diffTime(changes, "completed_at", old.CompletedAt, updated.CompletedAt)
	diffTime(changes, "cancelled_at", old.CancelledAt, updated.CancelledAt)
	return changes
}

func diffPtr[T comparable](changes map[string]any, key string, old, updated *T) {
	switch {
	case old == nil && updated == nil:
		return
	case old != nil && updated != nil && *old == *updated:
		return
	}
	changes[key] = map[string]any{"old": deref(old), "new": deref(updated)}
}

func diffTime(changes map[string]any, key string, old, updated *time.Time) {
	switch {
	case old == nil && updated == nil:
		return
	case old != nil && updated != nil && old.Equal(*updated):
		return
	}
	changes[key] = map[string]any{"old": deref(old), "new": deref(updated)}
}

func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
