package returns

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

type returnRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Return, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Return, error)
	List(ctx context.Context, filter domain.ReturnFilter) ([]*domain.Return, int, error)
	Create(ctx context.Context, ret *domain.Return) (*domain.Return, error)
	Update(ctx context.Context, id int64, changes domain.ReturnChanges) (*domain.Return, error)
}

type inventoryReader interface {
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
}

type productReader interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns return creation and every lifecycle transition.
type Service struct {
	returns   returnRepo
	inventory inventoryReader
	products  productReader
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Return service.
func NewService(
	log *slog.Logger,
	returns returnRepo,
	inventory inventoryReader,
	products productReader,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		returns:   returns,
		inventory: inventory,
		products:  products,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "returns"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimKeepEmpty trims whitespace but keeps an empty result, which clears the column.
func trimKeepEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func ptr[T any](v T) *T { return &v }
