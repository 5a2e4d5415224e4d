package returns

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/pkg/ctxutil"
)

// CreateReturn stores a new return together with its CREATE audit record.
// The status is pending when a product is resolved, otherwise unmatched.
func (s *Service) CreateReturn(ctx context.Context, input CreateReturnInput) (*domain.Return, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	actor := ctxutil.ActorRef(ctx)

	ret := &domain.Return{
		ProductID:         input.ProductID,
		ClientID:          input.ClientID,
		InventoryItemID:   input.InventoryItemID,
		ReturnType:        input.ReturnType,
		Status:            domain.InitialStatus(input.ProductID),
		Quantity:          domain.DefaultQuantity,
		Carrier:           trimOrNil(input.Carrier),
		TrackingNumber:    trimOrNil(input.TrackingNumber),
		ReturnByDate:      input.ReturnByDate,
		SourceIdentifier:  trimOrNil(input.SourceIdentifier),
		ParsedProductName: trimOrNil(input.ParsedProductName),
		MatchConfidence:   input.MatchConfidence,
		ClientNotes:       trimOrNil(input.ClientNotes),
		WarehouseNotes:    trimOrNil(input.WarehouseNotes),
		ImportBatchID:     input.ImportBatchID,
		OriginalFilename:  input.OriginalFilename,
		CreatedAt:         now,
		CreatedBy:         actor,
	}
	if ret.ReturnType == "" {
		ret.ReturnType = domain.ReturnTypePreReceipt
	}
	if input.Quantity != nil {
		ret.Quantity = *input.Quantity
	}
	if label := trimOrNil(input.LabelURL); label != nil {
		ret.LabelURL = label
		ret.LabelUploadedAt = &now
	}
	if ret.ProductID != nil && ret.MatchConfidence == nil {
		ret.MatchConfidence = ptr(domain.ExactMatchConfidence)
	}
	if ret.ProductID == nil {
		ret.MatchConfidence = nil
	}

	var created *domain.Return
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.returns.Create(txCtx, ret)
		if createErr != nil {
			return fmt.Errorf("create return: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor,
			EntityType: domain.EntityTypeReturn,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    creationSnapshot(created),
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "return created",
		slog.Int64("return_id", created.ID),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}

func creationSnapshot(r *domain.Return) map[string]any {
	snap := map[string]any{
		"status":      r.Status,
		"return_type": r.ReturnType,
		"quantity":    r.Quantity,
	}
	if r.ProductID != nil {
		snap["product_id"] = *r.ProductID
	}
	if r.MatchConfidence != nil {
		snap["match_confidence"] = *r.MatchConfidence
	}
	if r.SourceIdentifier != nil {
		snap["source_identifier"] = *r.SourceIdentifier
	}
	if r.ImportBatchID != nil {
		snap["import_batch_id"] = r.ImportBatchID.String()
	}
	if r.OriginalFilename != nil {
		snap["original_filename"] = *r.OriginalFilename
	}
	return snap
}
