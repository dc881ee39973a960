package repository

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/forgo/gamesdb/internal/convert"
	"github.com/forgo/gamesdb/internal/database"
	"github.com/forgo/gamesdb/internal/metrics"
)

// Operation names used in errors, logs and metrics
const (
	opRead       = "read"
	opInsert     = "insert"
	opUpdate     = "update"
	opDelete     = "delete"
	opListIDs    = "list_ids"
	opMax        = "max_id"
	opCount      = "count"
	opDuplicates = "duplicates"
	opQuery      = "query"
	opResolve    = "resolve"
)

// Repository handles data access for one entity type, addressed by its
// domain key.
type Repository[T any] struct {
	store      database.Store
	collection Collection
	conv       Converter[T]
	aggregator *Aggregator
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// New creates a repository for records of type T stored in collection.
// A nil logger uses slog.Default(); a nil recorder records nothing.
func New[T any](store database.Store, collection Collection, conv Converter[T], logger *slog.Logger, recorder *metrics.Recorder) *Repository[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository[T]{
		store:      store,
		collection: collection,
		conv:       conv,
		aggregator: NewAggregator(store),
		logger:     logger.With(slog.String("collection", collection.Name)),
		recorder:   recorder,
	}
}

// Collection returns the collection this repository reads and writes.
func (r *Repository[T]) Collection() Collection {
	return r.collection
}

// Read returns the record with the given domain key, or nil when none
// exists. If several documents share the key, the last one scanned wins.
func (r *Repository[T]) Read(ctx context.Context, key int64) (rec *T, err error) {
	defer r.observe(opRead, time.Now(), &err)

	if key < 0 {
		return nil, database.InvalidArgument(opRead, r.collection.Name, "negative %s %d", r.collection.KeyField, key)
	}
	return r.readOne(ctx, opRead, r.collection.KeyField, key, r.conv.IdentityFilter(key))
}

// readOne finds the documents matching filter and converts the last one.
func (r *Repository[T]) readOne(ctx context.Context, op, field string, value int64, filter database.Document) (*T, error) {
	if !r.store.IsOpen() {
		return nil, database.NotConnected(op)
	}

	results, err := r.store.Find(ctx, r.collection.Name, filter, database.FindOptions{})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	if len(results) > 1 {
		r.duplicate(field, value, len(results))
	}

	rec, err := r.conv.FromDocument(results[len(results)-1].Document)
	if err != nil {
		return nil, &database.OperationError{Op: op, Collection: r.collection.Name, Err: err}
	}
	return rec, nil
}

// Insert stores rec. When a document with the same domain key already
// exists, Insert behaves as Update.
func (r *Repository[T]) Insert(ctx context.Context, rec *T) (err error) {
	defer r.observe(opInsert, time.Now(), &err)

	if err := r.checkRecord(opInsert, rec); err != nil {
		return err
	}
	if !r.store.IsOpen() {
		return database.NotConnected(opInsert)
	}

	key := r.conv.Key(rec)
	id, found, err := r.findInternalID(ctx, key)
	if err != nil {
		return err
	}
	if found {
		r.logger.Debug("record exists, updating instead",
			slog.Int64("key", key),
			slog.String("store_id", string(id)),
		)
		return r.Update(ctx, rec)
	}

	id, err = r.store.InsertOne(ctx, r.collection.Name, r.conv.ToDocument(rec))
	if err != nil {
		return err
	}
	r.logger.Debug("record inserted",
		slog.Int64("key", key),
		slog.String("store_id", string(id)),
	)
	return nil
}

// Update replaces the document holding rec's domain key, creating it when
// none exists.
func (r *Repository[T]) Update(ctx context.Context, rec *T) (err error) {
	defer r.observe(opUpdate, time.Now(), &err)

	if err := r.checkRecord(opUpdate, rec); err != nil {
		return err
	}
	if !r.store.IsOpen() {
		return database.NotConnected(opUpdate)
	}
	return r.store.Upsert(ctx, r.collection.Name, r.conv.RecordFilter(rec), r.conv.ToDocument(rec))
}

// Delete removes every document with the given domain key. Deleting a key
// that does not exist is not an error.
func (r *Repository[T]) Delete(ctx context.Context, key int64) (err error) {
	defer r.observe(opDelete, time.Now(), &err)

	if key < 0 {
		return database.InvalidArgument(opDelete, r.collection.Name, "negative %s %d", r.collection.KeyField, key)
	}
	return r.deleteMatching(ctx, key, r.conv.IdentityFilter(key))
}

// DeleteRecord removes every document with rec's domain key.
func (r *Repository[T]) DeleteRecord(ctx context.Context, rec *T) (err error) {
	defer r.observe(opDelete, time.Now(), &err)

	if err := r.checkRecord(opDelete, rec); err != nil {
		return err
	}
	return r.deleteMatching(ctx, r.conv.Key(rec), r.conv.RecordFilter(rec))
}

// checkRecord rejects a nil record or one whose domain key is negative.
func (r *Repository[T]) checkRecord(op string, rec *T) error {
	if rec == nil {
		return database.InvalidArgument(op, r.collection.Name, "nil record")
	}
	if key := r.conv.Key(rec); key < 0 {
		return database.InvalidArgument(op, r.collection.Name, "negative %s %d", r.collection.KeyField, key)
	}
	return nil
}

func (r *Repository[T]) deleteMatching(ctx context.Context, key int64, filter database.Document) error {
	if !r.store.IsOpen() {
		return database.NotConnected(opDelete)
	}
	removed, err := r.store.DeleteMany(ctx, r.collection.Name, filter)
	if err != nil {
		return err
	}
	r.logger.Debug("records deleted",
		slog.Int64("key", key),
		slog.Int64("removed", removed),
	)
	return nil
}

// ListIDs returns the distinct domain keys in scan order.
func (r *Repository[T]) ListIDs(ctx context.Context) (ids []int64, err error) {
	defer r.observe(opListIDs, time.Now(), &err)

	keys, err := r.scanKeys(ctx, opListIDs)
	if err != nil {
		return nil, err
	}

	ids = make([]int64, 0, len(keys))
	seen := make(map[int64]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		ids = append(ids, k)
	}
	return ids, nil
}

// Duplicates returns, in ascending order, the domain keys held by more than
// one document.
func (r *Repository[T]) Duplicates(ctx context.Context) (dups []int64, err error) {
	defer r.observe(opDuplicates, time.Now(), &err)

	keys, err := r.scanKeys(ctx, opDuplicates)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int, len(keys))
	for _, k := range keys {
		counts[k]++
	}
	dups = make([]int64, 0)
	for k, n := range counts {
		if n > 1 {
			dups = append(dups, k)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
	return dups, nil
}

// scanKeys projects the key field of every document. Documents without an
// integer key are skipped.
func (r *Repository[T]) scanKeys(ctx context.Context, op string) ([]int64, error) {
	if !r.store.IsOpen() {
		return nil, database.NotConnected(op)
	}
	results, err := r.store.Find(ctx, r.collection.Name, nil, database.FindOptions{
		Fields: []string{r.collection.KeyField},
	})
	if err != nil {
		return nil, err
	}

	keys := make([]int64, 0, len(results))
	for _, res := range results {
		k, ok := convert.Int64(res.Document[r.collection.KeyField])
		if !ok {
			continue
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// MaxID returns the largest domain key, or NoValue for an empty collection.
func (r *Repository[T]) MaxID(ctx context.Context) (n int64, err error) {
	defer r.observe(opMax, time.Now(), &err)
	return r.aggregator.MaxOfField(ctx, r.collection.Name, r.collection.KeyField)
}

// Count returns the number of documents, or NoValue for an empty collection.
func (r *Repository[T]) Count(ctx context.Context) (n int64, err error) {
	defer r.observe(opCount, time.Now(), &err)
	return r.aggregator.CountDocuments(ctx, r.collection.Name)
}

// Query would return records matching the populated fields of sample. It is
// not supported and always fails with database.ErrNotImplemented.
func (r *Repository[T]) Query(ctx context.Context, sample *T, limit int) (recs []*T, err error) {
	defer r.observe(opQuery, time.Now(), &err)
	return nil, &database.OperationError{Op: opQuery, Collection: r.collection.Name, Err: database.ErrNotImplemented}
}

// findInternalID resolves a domain key to the store identifier of the last
// matching document.
func (r *Repository[T]) findInternalID(ctx context.Context, key int64) (database.StoreID, bool, error) {
	if !r.store.IsOpen() {
		return "", false, database.NotConnected(opResolve)
	}
	results, err := r.store.Find(ctx, r.collection.Name, r.conv.IdentityFilter(key), database.FindOptions{IDOnly: true})
	if err != nil {
		return "", false, err
	}
	if len(results) == 0 {
		return "", false, nil
	}
	if len(results) > 1 {
		r.duplicate(r.collection.KeyField, key, len(results))
	}
	return results[len(results)-1].ID, true, nil
}

func (r *Repository[T]) duplicate(field string, value int64, count int) {
	r.logger.Warn("multiple documents share a key, using the last one",
		slog.String("field", field),
		slog.Int64("key", value),
		slog.Int("count", count),
	)
	r.recorder.DuplicateKey(r.collection.Name)
}

func (r *Repository[T]) observe(op string, start time.Time, errp *error) {
	err := *errp
	r.recorder.ObserveOp(r.collection.Name, op, start, err)
	if err != nil {
		r.logger.Debug("operation failed",
			slog.String("op", op),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return
	}
	r.logger.Debug("operation completed",
		slog.String("op", op),
		slog.Duration("elapsed", time.Since(start)),
	)
}
