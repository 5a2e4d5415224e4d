package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/pkg/ctxutil"
)

type itemRepo interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
}

type reconciler interface {
	Reconcile(ctx context.Context, item *domain.InventoryItem) (*domain.Return, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records inventory receipts.
type Service struct {
	items      itemRepo
	reconciler reconciler
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Inventory service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	reconciler reconciler,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		items:      items,
		reconciler: reconciler,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "inventory"),
	}
}

// ReceiveInput describes a physical receipt.
type ReceiveInput struct {
	ProductID int64
	ClientID  *int64
	Quantity  int // 0 = 1
	Location  *string
}

// Validate checks all fields and collects all errors.
func (i ReceiveInput) Validate() error {
	var errs []domain.FieldError
	if i.ProductID <= 0 {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.ClientID != nil && *i.ClientID <= 0 {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "must be positive"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	if i.Location != nil && len(*i.Location) > 100 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "max 100 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReceiveResult is the stored item and the return it was reconciled with, if any.
type ReceiveResult struct {
	Item          *domain.InventoryItem
	MatchedReturn *domain.Return
}

// Receive stores an inventory item and reconciles it against open
// pre-receipt returns. Both happen in one transaction: a reconciliation
// failure also discards the item.
func (s *Service) Receive(ctx context.Context, input ReceiveInput) (*ReceiveResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := &domain.InventoryItem{
		ProductID:  input.ProductID,
		ClientID:   input.ClientID,
		Quantity:   input.Quantity,
		ReceivedAt: time.Now().UTC(),
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if input.Location != nil {
		if loc := strings.TrimSpace(*input.Location); loc != "" {
			item.Location = &loc
		}
	}
	item.ReceivedBy = ctxutil.ActorRef(ctx)

	result := &ReceiveResult{}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, createErr := s.items.Create(txCtx, item)
		if createErr != nil {
			return fmt.Errorf("create inventory item: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    created.ReceivedBy,
			EntityType: domain.EntityTypeInventoryItem,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"product_id": created.ProductID,
				"quantity":   created.Quantity,
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		matched, recErr := s.reconciler.Reconcile(txCtx, created)
		if recErr != nil {
			return fmt.Errorf("reconcile: %w", recErr)
		}

		result.Item = created
		result.MatchedReturn = matched
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.Int64("inventory_item_id", result.Item.ID),
		slog.Int64("product_id", result.Item.ProductID),
	}
	if result.MatchedReturn != nil {
		attrs = append(attrs, slog.Int64("return_id", result.MatchedReturn.ID))
	}
	s.log.InfoContext(ctx, "inventory received", attrs...)

	return result, nil
}
