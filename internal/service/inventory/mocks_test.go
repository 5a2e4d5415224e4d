package inventory

import (
	"context"
	"sync"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// openReturnRepoMock
// ---------------------------------------------------------------------------

var _ openReturnRepo = &openReturnRepoMock{}

type openReturnRepoMock struct {
	FindOpenPreReceiptFunc func(ctx context.Context, productID int64) (*domain.Return, error)
	UpdateFunc             func(ctx context.Context, id int64, changes domain.ReturnChanges) (*domain.Return, error)

	calls struct {
		FindOpenPreReceipt []struct {
			Ctx       context.Context
			ProductID int64
		}
		Update []struct {
			Ctx     context.Context
			ID      int64
			Changes domain.ReturnChanges
		}
	}
	lockFindOpenPreReceipt sync.RWMutex
	lockUpdate             sync.RWMutex
}

func (mock *openReturnRepoMock) FindOpenPreReceipt(ctx context.Context, productID int64) (*domain.Return, error) {
	if mock.FindOpenPreReceiptFunc == nil {
		panic("openReturnRepoMock.FindOpenPreReceiptFunc: method is nil but openReturnRepo.FindOpenPreReceipt was just called")
	}
	mock.lockFindOpenPreReceipt.Lock()
	mock.calls.FindOpenPreReceipt = append(mock.calls.FindOpenPreReceipt, struct {
		Ctx       context.Context
		ProductID int64
	}{Ctx: ctx, ProductID: productID})
	mock.lockFindOpenPreReceipt.Unlock()
	return mock.FindOpenPreReceiptFunc(ctx, productID)
}

func (mock *openReturnRepoMock) FindOpenPreReceiptCalls() []struct {
	Ctx       context.Context
	ProductID int64
} {
	mock.lockFindOpenPreReceipt.RLock()
	defer mock.lockFindOpenPreReceipt.RUnlock()
	return mock.calls.FindOpenPreReceipt
}

func (mock *openReturnRepoMock) Update(ctx context.Context, id int64, changes domain.ReturnChanges) (*domain.Return, error) {
	if mock.UpdateFunc == nil {
		panic("openReturnRepoMock.UpdateFunc: method is nil but openReturnRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx     context.Context
		ID      int64
		Changes domain.ReturnChanges
	}{Ctx: ctx, ID: id, Changes: changes})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, changes)
}

func (mock *openReturnRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	ID      int64
	Changes domain.ReturnChanges
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

// ---------------------------------------------------------------------------
// itemRepoMock
// ---------------------------------------------------------------------------

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.InventoryItem
		}
	}
	lockCreate sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx  context.Context
		Item *domain.InventoryItem
	}{Ctx: ctx, Item: item})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.InventoryItem
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

// ---------------------------------------------------------------------------
// reconcilerMock
// ---------------------------------------------------------------------------

var _ reconciler = &reconcilerMock{}

type reconcilerMock struct {
	ReconcileFunc func(ctx context.Context, item *domain.InventoryItem) (*domain.Return, error)

	calls struct {
		Reconcile []struct {
			Ctx  context.Context
			Item *domain.InventoryItem
		}
	}
	lockReconcile sync.RWMutex
}

func (mock *reconcilerMock) Reconcile(ctx context.Context, item *domain.InventoryItem) (*domain.Return, error) {
	if mock.ReconcileFunc == nil {
		panic("reconcilerMock.ReconcileFunc: method is nil but reconciler.Reconcile was just called")
	}
	mock.lockReconcile.Lock()
	mock.calls.Reconcile = append(mock.calls.Reconcile, struct {
		Ctx  context.Context
		Item *domain.InventoryItem
	}{Ctx: ctx, Item: item})
	mock.lockReconcile.Unlock()
	return mock.ReconcileFunc(ctx, item)
}

func (mock *reconcilerMock) ReconcileCalls() []struct {
	Ctx  context.Context
	Item *domain.InventoryItem
} {
	mock.lockReconcile.RLock()
	defer mock.lockReconcile.RUnlock()
	return mock.calls.Reconcile
}

// ---------------------------------------------------------------------------
// auditLoggerMock
// ---------------------------------------------------------------------------

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record})
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	defer mock.lockLog.RUnlock()
	return mock.calls.Log
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
