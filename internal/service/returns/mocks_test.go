package returns

import (
	"context"
	"sync"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// returnRepoMock
// ---------------------------------------------------------------------------

var _ returnRepo = &returnRepoMock{}

type returnRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Return, error)
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Return, error)
	ListFunc             func(ctx context.Context, filter domain.ReturnFilter) ([]*domain.Return, int, error)
	CreateFunc           func(ctx context.Context, ret *domain.Return) (*domain.Return, error)
	UpdateFunc           func(ctx context.Context, id int64, changes domain.ReturnChanges) (*domain.Return, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ReturnFilter
		}
		Create []struct {
			Ctx context.Context
			Ret *domain.Return
		}
		Update []struct {
			Ctx     context.Context
			ID      int64
			Changes domain.ReturnChanges
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *returnRepoMock) GetByID(ctx context.Context, id int64) (*domain.Return, error) {
	if mock.GetByIDFunc == nil {
		panic("returnRepoMock.GetByIDFunc: method is nil but returnRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *returnRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *returnRepoMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Return, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("returnRepoMock.GetByIDForUpdateFunc: method is nil but returnRepo.GetByIDForUpdate was just called")
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *returnRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByIDForUpdate.RLock()
	defer mock.lockGetByIDForUpdate.RUnlock()
	return mock.calls.GetByIDForUpdate
}

func (mock *returnRepoMock) List(ctx context.Context, filter domain.ReturnFilter) ([]*domain.Return, int, error) {
	if mock.ListFunc == nil {
		panic("returnRepoMock.ListFunc: method is nil but returnRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Filter domain.ReturnFilter
	}{Ctx: ctx, Filter: filter})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *returnRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ReturnFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *returnRepoMock) Create(ctx context.Context, ret *domain.Return) (*domain.Return, error) {
	if mock.CreateFunc == nil {
		panic("returnRepoMock.CreateFunc: method is nil but returnRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		Ret *domain.Return
	}{Ctx: ctx, Ret: ret})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ret)
}

func (mock *returnRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ret *domain.Return
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *returnRepoMock) Update(ctx context.Context, id int64, changes domain.ReturnChanges) (*domain.Return, error) {
	if mock.UpdateFunc == nil {
		panic("returnRepoMock.UpdateFunc: method is nil but returnRepo.Update was just called")
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

func (mock *returnRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	ID      int64
	Changes domain.ReturnChanges
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

// ---------------------------------------------------------------------------
// inventoryReaderMock
// ---------------------------------------------------------------------------

var _ inventoryReader = &inventoryReaderMock{}

type inventoryReaderMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.InventoryItem, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *inventoryReaderMock) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	if mock.GetByIDFunc == nil {
		panic("inventoryReaderMock.GetByIDFunc: method is nil but inventoryReader.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *inventoryReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

// ---------------------------------------------------------------------------
// productReaderMock
// ---------------------------------------------------------------------------

var _ productReader = &productReaderMock{}

type productReaderMock struct {
	GetProductFunc func(ctx context.Context, id int64) (*domain.Product, error)

	calls struct {
		GetProduct []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetProduct sync.RWMutex
}

func (mock *productReaderMock) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if mock.GetProductFunc == nil {
		panic("productReaderMock.GetProductFunc: method is nil but productReader.GetProduct was just called")
	}
	mock.lockGetProduct.Lock()
	mock.calls.GetProduct = append(mock.calls.GetProduct, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lockGetProduct.Unlock()
	return mock.GetProductFunc(ctx, id)
}

func (mock *productReaderMock) GetProductCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetProduct.RLock()
	defer mock.lockGetProduct.RUnlock()
	return mock.calls.GetProduct
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
