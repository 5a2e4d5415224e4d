package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/pkg/ctxutil"
)

type openReturnRepo interface {
	FindOpenPreReceipt(ctx context.Context, productID int64) (*domain.Return, error)
	Update(ctx context.Context, id int64, changes domain.ReturnChanges) (*domain.Return, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// Reconciler links a newly received inventory item to the open pre-receipt
// return of the same product that is due first. Called with the ctx of the
// transaction that inserts the item, it joins that transaction.
type Reconciler struct {
	returns openReturnRepo
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
}

// NewReconciler creates a Reconciler.
func NewReconciler(log *slog.Logger, returns openReturnRepo, audit auditLogger, tx txManager) *Reconciler {
	return &Reconciler{
		returns: returns,
		audit:   audit,
		tx:      tx,
		log:     log.With("component", "reconciler"),
	}
}

// Reconcile links at most one return to item. It returns the linked return,
// or nil when no open pre-receipt return exists for the product.
func (r *Reconciler) Reconcile(ctx context.Context, item *domain.InventoryItem) (*domain.Return, error) {
	var linked *domain.Return
	err := r.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		linked, err = r.link(txCtx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return linked, nil
}

func (r *Reconciler) link(ctx context.Context, item *domain.InventoryItem) (*domain.Return, error) {
	candidate, err := r.returns.FindOpenPreReceipt(ctx, item.ProductID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find open pre-receipt return: %w", err)
	}

	matched := domain.ReturnStatusMatched
	changes := domain.ReturnChanges{
		Status:          &matched,
		InventoryItemID: &item.ID,
	}
	if item.ClientID != nil {
		changes.ClientID = item.ClientID
	}

	updated, err := r.returns.Update(ctx, candidate.ID, changes)
	if err != nil {
		return nil, fmt.Errorf("link return %d: %w", candidate.ID, err)
	}

	actor := item.ReceivedBy
	if actor == nil {
		actor = ctxutil.ActorRef(ctx)
	}
	if err := r.audit.Log(ctx, domain.AuditRecord{
		ActorID:    actor,
		EntityType: domain.EntityTypeReturn,
		EntityID:   updated.ID,
		Action:     domain.AuditActionMatchInventory,
		Changes: map[string]any{
			"status":            map[string]any{"old": candidate.Status, "new": updated.Status},
			"inventory_item_id": map[string]any{"old": nil, "new": item.ID},
			"client_id":         map[string]any{"old": deref(candidate.ClientID), "new": deref(updated.ClientID)},
			"source":            "reconciler",
		},
	}); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}

	r.log.InfoContext(ctx, "return reconciled",
		slog.Int64("return_id", updated.ID),
		slog.Int64("inventory_item_id", item.ID),
		slog.Int64("product_id", item.ProductID),
	)
	return updated, nil
}

func deref(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
