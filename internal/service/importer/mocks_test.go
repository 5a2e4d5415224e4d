package importer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/labelparse"
)

// ---------------------------------------------------------------------------
// textExtractorMock
// ---------------------------------------------------------------------------

var _ textExtractor = &textExtractorMock{}

type textExtractorMock struct {
	ExtractFunc func(ctx context.Context, buf []byte) string

	calls struct {
		Extract []struct {
			Ctx context.Context
			Buf []byte
		}
	}
	lockExtract sync.RWMutex
}

func (mock *textExtractorMock) Extract(ctx context.Context, buf []byte) string {
	if mock.ExtractFunc == nil {
		panic("textExtractorMock.ExtractFunc: method is nil but textExtractor.Extract was just called")
	}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, struct {
		Ctx context.Context
		Buf []byte
	}{Ctx: ctx, Buf: buf})
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, buf)
}

func (mock *textExtractorMock) ExtractCalls() []struct {
	Ctx context.Context
	Buf []byte
} {
	mock.lockExtract.RLock()
	defer mock.lockExtract.RUnlock()
	return mock.calls.Extract
}

// ---------------------------------------------------------------------------
// productMatcherMock
// ---------------------------------------------------------------------------

var _ productMatcher = &productMatcherMock{}

type productMatcherMock struct {
	MatchFunc func(ctx context.Context, s labelparse.Signals) *domain.ProductMatch

	calls struct {
		Match []struct {
			Ctx     context.Context
			Signals labelparse.Signals
		}
	}
	lockMatch sync.RWMutex
}

func (mock *productMatcherMock) Match(ctx context.Context, s labelparse.Signals) *domain.ProductMatch {
	if mock.MatchFunc == nil {
		panic("productMatcherMock.MatchFunc: method is nil but productMatcher.Match was just called")
	}
	mock.lockMatch.Lock()
	mock.calls.Match = append(mock.calls.Match, struct {
		Ctx     context.Context
		Signals labelparse.Signals
	}{Ctx: ctx, Signals: s})
	mock.lockMatch.Unlock()
	return mock.MatchFunc(ctx, s)
}

func (mock *productMatcherMock) MatchCalls() []struct {
	Ctx     context.Context
	Signals labelparse.Signals
} {
	mock.lockMatch.RLock()
	defer mock.lockMatch.RUnlock()
	return mock.calls.Match
}

// ---------------------------------------------------------------------------
// labelStoreMock
// ---------------------------------------------------------------------------

var _ labelStore = &labelStoreMock{}

type labelStoreMock struct {
	SaveFunc func(ctx context.Context, batchID uuid.UUID, filename string, data []byte) (string, error)

	calls struct {
		Save []struct {
			Ctx      context.Context
			BatchID  uuid.UUID
			Filename string
			Data     []byte
		}
	}
	lockSave sync.RWMutex
}

func (mock *labelStoreMock) Save(ctx context.Context, batchID uuid.UUID, filename string, data []byte) (string, error) {
	if mock.SaveFunc == nil {
		panic("labelStoreMock.SaveFunc: method is nil but labelStore.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		Ctx      context.Context
		BatchID  uuid.UUID
		Filename string
		Data     []byte
	}{Ctx: ctx, BatchID: batchID, Filename: filename, Data: data})
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, batchID, filename, data)
}

func (mock *labelStoreMock) SaveCalls() []struct {
	Ctx      context.Context
	BatchID  uuid.UUID
	Filename string
	Data     []byte
} {
	mock.lockSave.RLock()
	defer mock.lockSave.RUnlock()
	return mock.calls.Save
}
