package returns

import (
	"context"
	"fmt"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// AssignProduct manually resolves an unmatched return to a catalog product.
// The return moves to pending with full confidence. An unknown product is
// domain.ErrNotFound.
func (s *Service) AssignProduct(ctx context.Context, input AssignProductInput) (*domain.Return, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, updated, err := s.applyTransition(ctx, input.ReturnID, domain.TransitionAssignProduct,
		func(txCtx context.Context, _ *domain.Return) (domain.ReturnChanges, domain.AuditAction, error) {
			if _, err := s.products.GetProduct(txCtx, input.ProductID); err != nil {
				return domain.ReturnChanges{}, "", fmt.Errorf("get product: %w", err)
			}
			return domain.ReturnChanges{
				ProductID:       &input.ProductID,
				MatchConfidence: ptr(domain.ExactMatchConfidence),
			}, domain.AuditActionAssignProduct, nil
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
