package repository

import (
	"context"
	"fmt"

	"github.com/forgo/gamesdb/internal/convert"
	"github.com/forgo/gamesdb/internal/database"
)

// NoValue is returned by the aggregation helpers when the collection is
// empty or no document carries the field.
const NoValue int64 = -1

// Aggregator runs single-stage grouping queries over whole collections.
type Aggregator struct {
	store database.Store
}

// NewAggregator creates an aggregator over store
func NewAggregator(store database.Store) *Aggregator {
	return &Aggregator{store: store}
}

// MaxOfField returns the largest value of field in collection, or NoValue.
func (a *Aggregator) MaxOfField(ctx context.Context, collection, field string) (int64, error) {
	return a.group(ctx, collection, database.Accumulator{Op: database.AccumulateMax, Field: field})
}

// CountDocuments returns the number of documents in collection, or NoValue
// when it is empty.
func (a *Aggregator) CountDocuments(ctx context.Context, collection string) (int64, error) {
	return a.group(ctx, collection, database.Accumulator{Op: database.AccumulateCount})
}

func (a *Aggregator) group(ctx context.Context, collection string, acc database.Accumulator) (int64, error) {
	op := "aggregate " + string(acc.Op)
	if !a.store.IsOpen() {
		return NoValue, database.NotConnected(op)
	}

	value, ok, err := a.store.GroupAll(ctx, collection, acc)
	if err != nil {
		if database.IsOperationError(err) || database.IsConfigurationError(err) {
			return NoValue, err
		}
		return NoValue, &database.OperationError{Op: op, Collection: collection, Err: err}
	}
	if !ok {
		return NoValue, nil
	}

	n, isInt := convert.Int64(value)
	if !isInt {
		return NoValue, &database.OperationError{
			Op:         op,
			Collection: collection,
			Err:        fmt.Errorf("%w: non-integer result %v (%T)", database.ErrQuery, value, value),
		}
	}
	return n, nil
}
