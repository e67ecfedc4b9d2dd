package query

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// Loaders batch household and fee lookups while payment views are built.
// A set is created per call and caches results for its lifetime only.
type Loaders struct {
	HouseholdByID *dataloader.Loader[int64, *domain.Household]
	FeeByID       *dataloader.Loader[int64, *domain.Fee]
}

// NewLoaders creates loaders backed by the given sources.
func NewLoaders(households householdSource, fees feeSource) *Loaders {
	return &Loaders{
		HouseholdByID: newLoader(newHouseholdBatchFn(households)),
		FeeByID:       newLoader(newFeeBatchFn(fees)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

func newHouseholdBatchFn(repo householdSource) dataloader.BatchFunc[int64, *domain.Household] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Household] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Household](len(keys), err)
		}

		byID := make(map[int64]*domain.Household, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}
		return mapResults(keys, byID)
	}
}

func newFeeBatchFn(repo feeSource) dataloader.BatchFunc[int64, *domain.Fee] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Fee] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Fee](len(keys), err)
		}

		byID := make(map[int64]*domain.Fee, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}
		return mapResults(keys, byID)
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps rows back to key order. Missing keys resolve to the zero
// value (nil for pointers).
func mapResults[V any](keys []int64, byID map[int64]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: byID[key]}
	}
	return results
}
