package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/service/importer"
	"github.com/heartmarshall/returns-backend/internal/service/inventory"
	"github.com/heartmarshall/returns-backend/internal/service/returns"
)

// ---------------------------------------------------------------------------
// returnServiceMock
// ---------------------------------------------------------------------------

var _ returnService = &returnServiceMock{}

type returnServiceMock struct {
	CreateReturnFunc     func(ctx context.Context, input returns.CreateReturnInput) (*domain.Return, error)
	GetReturnFunc        func(ctx context.Context, id int64) (*domain.Return, error)
	ListReturnsFunc      func(ctx context.Context, filter domain.ReturnFilter) (*returns.ListResult, error)
	UpdateReturnFunc     func(ctx context.Context, input returns.UpdateReturnInput) (*domain.Return, error)
	AssignProductFunc    func(ctx context.Context, input returns.AssignProductInput) (*domain.Return, error)
	MatchToInventoryFunc func(ctx context.Context, input returns.MatchInventoryInput) (*domain.Return, error)
	MarkShippedFunc      func(ctx context.Context, input returns.ShipInput) (*returns.ShipResult, error)
	MarkCompletedFunc    func(ctx context.Context, returnID int64) (*domain.Return, error)
	CancelFunc           func(ctx context.Context, input returns.CancelInput) (*domain.Return, error)

	calls struct {
		CreateReturn []struct {
			Ctx   context.Context
			Input returns.CreateReturnInput
		}
		GetReturn []struct {
			Ctx context.Context
			ID  int64
		}
		ListReturns []struct {
			Ctx    context.Context
			Filter domain.ReturnFilter
		}
		UpdateReturn []struct {
			Ctx   context.Context
			Input returns.UpdateReturnInput
		}
		AssignProduct []struct {
			Ctx   context.Context
			Input returns.AssignProductInput
		}
		MatchToInventory []struct {
			Ctx   context.Context
			Input returns.MatchInventoryInput
		}
		MarkShipped []struct {
			Ctx   context.Context
			Input returns.ShipInput
		}
		MarkCompleted []struct {
			Ctx      context.Context
			ReturnID int64
		}
		Cancel []struct {
			Ctx   context.Context
			Input returns.CancelInput
		}
	}
	lockCreateReturn     sync.RWMutex
	lockGetReturn        sync.RWMutex
	lockListReturns      sync.RWMutex
	lockUpdateReturn     sync.RWMutex
	lockAssignProduct    sync.RWMutex
	lockMatchToInventory sync.RWMutex
	lockMarkShipped      sync.RWMutex
	lockMarkCompleted    sync.RWMutex
	lockCancel           sync.RWMutex
}

func (mock *returnServiceMock) CreateReturn(ctx context.Context, input returns.CreateReturnInput) (*domain.Return, error) {
	if mock.CreateReturnFunc == nil {
		panic("returnServiceMock.CreateReturnFunc: method is nil but returnService.CreateReturn was just called")
	}
	mock.lockCreateReturn.Lock()
	mock.calls.CreateReturn = append(mock.calls.CreateReturn, struct {
		Ctx   context.Context
		Input returns.CreateReturnInput
	}{Ctx: ctx, Input: input})
	mock.lockCreateReturn.Unlock()
	return mock.CreateReturnFunc(ctx, input)
}

func (mock *returnServiceMock) CreateReturnCalls() []struct {
	Ctx   context.Context
	Input returns.CreateReturnInput
} {
	mock.lockCreateReturn.RLock()
	defer mock.lockCreateReturn.RUnlock()
	return mock.calls.CreateReturn
}

func (mock *returnServiceMock) GetReturn(ctx context.Context, id int64) (*domain.Return, error) {
	if mock.GetReturnFunc == nil {
		panic("returnServiceMock.GetReturnFunc: method is nil but returnService.GetReturn was just called")
	}
	mock.lockGetReturn.Lock()
	mock.calls.GetReturn = append(mock.calls.GetReturn, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lockGetReturn.Unlock()
	return mock.GetReturnFunc(ctx, id)
}

func (mock *returnServiceMock) GetReturnCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetReturn.RLock()
	defer mock.lockGetReturn.RUnlock()
	return mock.calls.GetReturn
}

func (mock *returnServiceMock) ListReturns(ctx context.Context, filter domain.ReturnFilter) (*returns.ListResult, error) {
	if mock.ListReturnsFunc == nil {
		panic("returnServiceMock.ListReturnsFunc: method is nil but returnService.ListReturns was just called")
	}
	mock.lockListReturns.Lock()
	mock.calls.ListReturns = append(mock.calls.ListReturns, struct {
		Ctx    context.Context
		Filter domain.ReturnFilter
	}{Ctx: ctx, Filter: filter})
	mock.lockListReturns.Unlock()
	return mock.ListReturnsFunc(ctx, filter)
}

func (mock *returnServiceMock) ListReturnsCalls() []struct {
	Ctx    context.Context
	Filter domain.ReturnFilter
} {
	mock.lockListReturns.RLock()
	defer mock.lockListReturns.RUnlock()
	return mock.calls.ListReturns
}

func (mock *returnServiceMock) UpdateReturn(ctx context.Context, input returns.UpdateReturnInput) (*domain.Return, error) {
	if mock.UpdateReturnFunc == nil {
		panic("returnServiceMock.UpdateReturnFunc: method is nil but returnService.UpdateReturn was just called")
	}
	mock.lockUpdateReturn.Lock()
	mock.calls.UpdateReturn = append(mock.calls.UpdateReturn, struct {
		Ctx   context.Context
		Input returns.UpdateReturnInput
	}{Ctx: ctx, Input: input})
	mock.lockUpdateReturn.Unlock()
	return mock.UpdateReturnFunc(ctx, input)
}

func (mock *returnServiceMock) UpdateReturnCalls() []struct {
	Ctx   context.Context
	Input returns.UpdateReturnInput
} {
	mock.lockUpdateReturn.RLock()
	defer mock.lockUpdateReturn.RUnlock()
	return mock.calls.UpdateReturn
}

func (mock *returnServiceMock) AssignProduct(ctx context.Context, input returns.AssignProductInput) (*domain.Return, error) {
	if mock.AssignProductFunc == nil {
		panic("returnServiceMock.AssignProductFunc: method is nil but returnService.AssignProduct was just called")
	}
	mock.lockAssignProduct.Lock()
	mock.calls.AssignProduct = append(mock.calls.AssignProduct, struct {
		Ctx   context.Context
		Input returns.AssignProductInput
	}{Ctx: ctx, Input: input})
	mock.lockAssignProduct.Unlock()
	return mock.AssignProductFunc(ctx, input)
}

func (mock *returnServiceMock) AssignProductCalls() []struct {
	Ctx   context.Context
	Input returns.AssignProductInput
} {
	mock.lockAssignProduct.RLock()
	defer mock.lockAssignProduct.RUnlock()
	return mock.calls.AssignProduct
}

func (mock *returnServiceMock) MatchToInventory(ctx context.Context, input returns.MatchInventoryInput) (*domain.Return, error) {
	if mock.MatchToInventoryFunc == nil {
		panic("returnServiceMock.MatchToInventoryFunc: method is nil but returnService.MatchToInventory was just called")
	}
	mock.lockMatchToInventory.Lock()
	mock.calls.MatchToInventory = append(mock.calls.MatchToInventory, struct {
		Ctx   context.Context
		Input returns.MatchInventoryInput
	}{Ctx: ctx, Input: input})
	mock.lockMatchToInventory.Unlock()
	return mock.MatchToInventoryFunc(ctx, input)
}

func (mock *returnServiceMock) MatchToInventoryCalls() []struct {
	Ctx   context.Context
	Input returns.MatchInventoryInput
} {
	mock.lockMatchToInventory.RLock()
	defer mock.lockMatchToInventory.RUnlock()
	return mock.calls.MatchToInventory
}

func (mock *returnServiceMock) MarkShipped(ctx context.Context, input returns.ShipInput) (*returns.ShipResult, error) {
	if mock.MarkShippedFunc == nil {
		panic("returnServiceMock.MarkShippedFunc: method is nil but returnService.MarkShipped was just called")
	}
	mock.lockMarkShipped.Lock()
	mock.calls.MarkShipped = append(mock.calls.MarkShipped, struct {
		Ctx   context.Context
		Input returns.ShipInput
	}{Ctx: ctx, Input: input})
	mock.lockMarkShipped.Unlock()
	return mock.MarkShippedFunc(ctx, input)
}

func (mock *returnServiceMock) MarkShippedCalls() []struct {
	Ctx   context.Context
	Input returns.ShipInput
} {
	mock.lockMarkShipped.RLock()
	defer mock.lockMarkShipped.RUnlock()
	return mock.calls.MarkShipped
}

func (mock *returnServiceMock) MarkCompleted(ctx context.Context, returnID int64) (*domain.Return, error) {
	if mock.MarkCompletedFunc == nil {
		panic("returnServiceMock.MarkCompletedFunc: method is nil but returnService.MarkCompleted was just called")
	}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, struct {
		Ctx      context.Context
		ReturnID int64
	}{Ctx: ctx, ReturnID: returnID})
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, returnID)
}

func (mock *returnServiceMock) MarkCompletedCalls() []struct {
	Ctx      context.Context
	ReturnID int64
} {
	mock.lockMarkCompleted.RLock()
	defer mock.lockMarkCompleted.RUnlock()
	return mock.calls.MarkCompleted
}

func (mock *returnServiceMock) Cancel(ctx context.Context, input returns.CancelInput) (*domain.Return, error) {
	if mock.CancelFunc == nil {
		panic("returnServiceMock.CancelFunc: method is nil but returnService.Cancel was just called")
	}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, struct {
		Ctx   context.Context
		Input returns.CancelInput
	}{Ctx: ctx, Input: input})
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, input)
}

func (mock *returnServiceMock) CancelCalls() []struct {
	Ctx   context.Context
	Input returns.CancelInput
} {
	mock.lockCancel.RLock()
	defer mock.lockCancel.RUnlock()
	return mock.calls.Cancel
}

// ---------------------------------------------------------------------------
// importServiceMock
// ---------------------------------------------------------------------------

var _ importService = &importServiceMock{}

type importServiceMock struct {
	ImportBatchFunc func(ctx context.Context, files []importer.File, opts importer.Options) (*importer.Report, error)

	calls struct {
		ImportBatch []struct {
			Ctx   context.Context
			Files []importer.File
			Opts  importer.Options
		}
	}
	lockImportBatch sync.RWMutex
}

func (mock *importServiceMock) ImportBatch(ctx context.Context, files []importer.File, opts importer.Options) (*importer.Report, error) {
	if mock.ImportBatchFunc == nil {
		panic("importServiceMock.ImportBatchFunc: method is nil but importService.ImportBatch was just called")
	}
	mock.lockImportBatch.Lock()
	mock.calls.ImportBatch = append(mock.calls.ImportBatch, struct {
		Ctx   context.Context
		Files []importer.File
		Opts  importer.Options
	}{Ctx: ctx, Files: files, Opts: opts})
	mock.lockImportBatch.Unlock()
	return mock.ImportBatchFunc(ctx, files, opts)
}

func (mock *importServiceMock) ImportBatchCalls() []struct {
	Ctx   context.Context
	Files []importer.File
	Opts  importer.Options
} {
	mock.lockImportBatch.RLock()
	defer mock.lockImportBatch.RUnlock()
	return mock.calls.ImportBatch
}

// ---------------------------------------------------------------------------
// exportServiceMock
// ---------------------------------------------------------------------------

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	ExportReturnsXLSXFunc func(ctx context.Context, filter domain.ReturnFilter) ([]byte, error)

	calls struct {
		ExportReturnsXLSX []struct {
			Ctx    context.Context
			Filter domain.ReturnFilter
		}
	}
	lockExportReturnsXLSX sync.RWMutex
}

func (mock *exportServiceMock) ExportReturnsXLSX(ctx context.Context, filter domain.ReturnFilter) ([]byte, error) {
	if mock.ExportReturnsXLSXFunc == nil {
		panic("exportServiceMock.ExportReturnsXLSXFunc: method is nil but exportService.ExportReturnsXLSX was just called")
	}
	mock.lockExportReturnsXLSX.Lock()
	mock.calls.ExportReturnsXLSX = append(mock.calls.ExportReturnsXLSX, struct {
		Ctx    context.Context
		Filter domain.ReturnFilter
	}{Ctx: ctx, Filter: filter})
	mock.lockExportReturnsXLSX.Unlock()
	return mock.ExportReturnsXLSXFunc(ctx, filter)
}

func (mock *exportServiceMock) ExportReturnsXLSXCalls() []struct {
	Ctx    context.Context
	Filter domain.ReturnFilter
} {
	mock.lockExportReturnsXLSX.RLock()
	defer mock.lockExportReturnsXLSX.RUnlock()
	return mock.calls.ExportReturnsXLSX
}

// ---------------------------------------------------------------------------
// inventoryServiceMock
// ---------------------------------------------------------------------------

var _ inventoryService = &inventoryServiceMock{}

type inventoryServiceMock struct {
	ReceiveFunc func(ctx context.Context, input inventory.ReceiveInput) (*inventory.ReceiveResult, error)

	calls struct {
		Receive []struct {
			Ctx   context.Context
			Input inventory.ReceiveInput
		}
	}
	lockReceive sync.RWMutex
}

func (mock *inventoryServiceMock) Receive(ctx context.Context, input inventory.ReceiveInput) (*inventory.ReceiveResult, error) {
	if mock.ReceiveFunc == nil {
		panic("inventoryServiceMock.ReceiveFunc: method is nil but inventoryService.Receive was just called")
	}
	mock.lockReceive.Lock()
	mock.calls.Receive = append(mock.calls.Receive, struct {
		Ctx   context.Context
		Input inventory.ReceiveInput
	}{Ctx: ctx, Input: input})
	mock.lockReceive.Unlock()
	return mock.ReceiveFunc(ctx, input)
}

func (mock *inventoryServiceMock) ReceiveCalls() []struct {
	Ctx   context.Context
	Input inventory.ReceiveInput
} {
	mock.lockReceive.RLock()
	defer mock.lockReceive.RUnlock()
	return mock.calls.Receive
}
