package matcher

import (
	"context"
	"sync"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

var _ Catalog = &CatalogMock{}

type CatalogMock struct {
	FindByExactIdentifierFunc func(ctx context.Context, asin string) (*domain.Product, error)
	RankBySimilarityFunc      func(ctx context.Context, query string, limit int) ([]domain.ScoredProduct, error)
	SearchByContainsFunc      func(ctx context.Context, query string, limit int) ([]domain.Product, error)

	calls struct {
		FindByExactIdentifier []struct {
			Ctx  context.Context
			Asin string
		}
		RankBySimilarity []struct {
			Ctx   context.Context
			Query string
			Limit int
		}
		SearchByContains []struct {
			Ctx   context.Context
			Query string
			Limit int
		}
	}
	lockFindByExactIdentifier sync.RWMutex
	lockRankBySimilarity      sync.RWMutex
	lockSearchByContains      sync.RWMutex
}

func (mock *CatalogMock) FindByExactIdentifier(ctx context.Context, asin string) (*domain.Product, error) {
	if mock.FindByExactIdentifierFunc == nil {
		panic("CatalogMock.FindByExactIdentifierFunc: method is nil but Catalog.FindByExactIdentifier was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Asin string
	}{Ctx: ctx, Asin: asin}
	mock.lockFindByExactIdentifier.Lock()
	mock.calls.FindByExactIdentifier = append(mock.calls.FindByExactIdentifier, callInfo)
	mock.lockFindByExactIdentifier.Unlock()
	return mock.FindByExactIdentifierFunc(ctx, asin)
}

func (mock *CatalogMock) FindByExactIdentifierCalls() []struct {
	Ctx  context.Context
	Asin string
} {
	mock.lockFindByExactIdentifier.RLock()
	calls := mock.calls.FindByExactIdentifier
	mock.lockFindByExactIdentifier.RUnlock()
	return calls
}

func (mock *CatalogMock) RankBySimilarity(ctx context.Context, query string, limit int) ([]domain.ScoredProduct, error) {
	if mock.RankBySimilarityFunc == nil {
		panic("CatalogMock.RankBySimilarityFunc: method is nil but Catalog.RankBySimilarity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
		Limit int
	}{Ctx: ctx, Query: query, Limit: limit}
	mock.lockRankBySimilarity.Lock()
	mock.calls.RankBySimilarity = append(mock.calls.RankBySimilarity, callInfo)
	mock.lockRankBySimilarity.Unlock()
	return mock.RankBySimilarityFunc(ctx, query, limit)
}

func (mock *CatalogMock) RankBySimilarityCalls() []struct {
	Ctx   context.Context
	Query string
	Limit int
} {
	mock.lockRankBySimilarity.RLock()
	calls := mock.calls.RankBySimilarity
	mock.lockRankBySimilarity.RUnlock()
	return calls
}

func (mock *CatalogMock) SearchByContains(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	if mock.SearchByContainsFunc == nil {
		panic("CatalogMock.SearchByContainsFunc: method is nil but Catalog.SearchByContains was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
		Limit int
	}{Ctx: ctx, Query: query, Limit: limit}
	mock.lockSearchByContains.Lock()
	mock.calls.SearchByContains = append(mock.calls.SearchByContains, callInfo)
	mock.lockSearchByContains.Unlock()
	return mock.SearchByContainsFunc(ctx, query, limit)
}

func (mock *CatalogMock) SearchByContainsCalls() []struct {
	Ctx   context.Context
	Query string
	Limit int
} {
	mock.lockSearchByContains.RLock()
	calls := mock.calls.SearchByContains
	mock.lockSearchByContains.RUnlock()
	return calls
}
