package returns

import (
	"context"
	"fmt"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// MatchToInventory links a return to a received inventory item. The return's
// client and product are backfilled from the input or the item when unset.
func (s *Service) MatchToInventory(ctx context.Context, input MatchInventoryInput) (*domain.Return, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, updated, err := s.applyTransition(ctx, input.ReturnID, domain.TransitionMatchInventory,
		func(txCtx context.Context, cur *domain.Return) (domain.ReturnChanges, domain.AuditAction, error) {
			item, err := s.inventory.GetByID(txCtx, input.InventoryItemID)
			if err != nil {
				return domain.ReturnChanges{}, "", fmt.Errorf("get inventory item: %w", err)
			}

			changes := domain.ReturnChanges{InventoryItemID: &item.ID}
			if cur.ClientID == nil {
				switch {
				case input.ClientID != nil:
					changes.ClientID = input.ClientID
				case item.ClientID != nil:
					changes.ClientID = item.ClientID
				}
			}
			if cur.ProductID == nil {
				changes.ProductID = &item.ProductID
			}
			return changes, domain.AuditActionMatchInventory, nil
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
