// Package memstore provides an in-memory database.Store for unit tests.
//
// Documents keep insertion order per collection, so Find returns them in a
// stable scan order. Values are normalized the way the real backends return
// them (integers as int64, lists as []any, nested maps as database.Document).
//
// Failures are injected per operation:
//
//	store := memstore.New()
//	store.FailOn("find", errors.New("socket closed"))
package memstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/forgo/gamesdb/internal/database"
)

// Operation names accepted by FailOn and Calls.
const (
	OpOpen      = "open"
	OpClose     = "close"
	OpPing      = "ping"
	OpFind      = "find"
	OpInsert    = "insert"
	OpUpsert    = "upsert"
	OpDelete    = "delete"
	OpAggregate = "aggregate"
)

type entry struct {
	id  database.StoreID
	doc database.Document
}

// Store is an in-memory document store
type Store struct {
	mu          sync.Mutex
	open        bool
	collections map[string][]entry
	nextID      int64
	failures    map[string]error
	calls       map[string]int
}

var (
	_ database.Store   = (*Store)(nil)
	_ database.Dropper = (*Store)(nil)
)

// New creates an empty, closed store
func New() *Store {
	return &Store{
		collections: make(map[string][]entry),
		failures:    make(map[string]error),
		calls:       make(map[string]int),
	}
}

// NewOpen creates an empty store that is already open
func NewOpen() *Store {
	s := New()
	s.open = true
	return s
}

// FailOn makes every later call of op fail with err. A nil err clears it.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Calls returns how many times op was invoked, including failed calls.
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Seed appends doc to collection as-is, bypassing any key handling. It is
// used to set up states the repositories never produce, such as duplicate
// domain keys.
func (s *Store) Seed(collection string, doc database.Document) database.StoreID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(collection, doc)
}

// Documents returns copies of every document in collection, in scan order.
func (s *Store) Documents(collection string) []database.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]database.Document, 0, len(s.collections[collection]))
	for _, e := range s.collections[collection] {
		docs = append(docs, copyDocument(e.doc))
	}
	return docs
}

func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[OpOpen]++
	if s.open {
		return nil
	}
	if err := s.failures[OpOpen]; err != nil {
		return &database.ConfigurationError{Op: OpOpen, Detail: "cannot connect to memstore", Err: err}
	}
	s.open = true
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[OpClose]++
	wasOpen := s.open
	s.open = false
	if err := s.failures[OpClose]; err != nil && wasOpen {
		return &database.ConfigurationError{Op: OpClose, Detail: "close failed", Err: err}
	}
	return nil
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginLocked(OpPing, ""); err != nil {
		return err
	}
	return nil
}

func (s *Store) Find(ctx context.Context, collection string, filter database.Document, opts database.FindOptions) ([]database.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginLocked(OpFind, collection); err != nil {
		return nil, err
	}

	var results []database.Result
	for _, e := range s.collections[collection] {
		if !matches(e.doc, filter) {
			continue
		}
		switch {
		case opts.IDOnly:
			results = append(results, database.Result{ID: e.id, Document: database.Document{}})
		case len(opts.Fields) > 0:
			doc := make(database.Document, len(opts.Fields))
			for _, f := range opts.Fields {
				if v, ok := e.doc[f]; ok {
					doc[f] = copyValue(v)
				}
			}
			results = append(results, database.Result{Document: doc})
		default:
			results = append(results, database.Result{ID: e.id, Document: copyDocument(e.doc)})
		}
	}
	return results, nil
}

func (s *Store) InsertOne(ctx context.Context, collection string, doc database.Document) (database.StoreID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginLocked(OpInsert, collection); err != nil {
		return "", err
	}
	return s.appendLocked(collection, doc), nil
}

// Upsert replaces the first matching document, or appends doc.
func (s *Store) Upsert(ctx context.Context, collection string, filter database.Document, doc database.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginLocked(OpUpsert, collection); err != nil {
		return err
	}
	entries := s.collections[collection]
	for i := range entries {
		if matches(entries[i].doc, filter) {
			entries[i].doc = normalizeDocument(doc)
			return nil
		}
	}
	s.appendLocked(collection, doc)
	return nil
}

func (s *Store) DeleteMany(ctx context.Context, collection string, filter database.Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginLocked(OpDelete, collection); err != nil {
		return 0, err
	}
	entries := s.collections[collection]
	kept := entries[:0]
	var removed int64
	for _, e := range entries {
		if matches(e.doc, filter) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.collections[collection] = kept
	return removed, nil
}

// GroupAll mirrors a $group stage with a null key: no documents yields no
// group, and a max over a field no document carries yields no value.
func (s *Store) GroupAll(ctx context.Context, collection string, acc database.Accumulator) (any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.beginLocked(OpAggregate, collection); err != nil {
		return nil, false, err
	}
	entries := s.collections[collection]
	if len(entries) == 0 {
		return nil, false, nil
	}

	switch acc.Op {
	case database.AccumulateCount:
		return int64(len(entries)), true, nil
	case database.AccumulateMax:
		var best any
		for _, e := range entries {
			v, ok := e.doc[acc.Field]
			if !ok || v == nil {
				continue
			}
			if best == nil || greater(v, best) {
				best = v
			}
		}
		if best == nil {
			return nil, false, nil
		}
		return best, true, nil
	}
	return nil, false, &database.OperationError{
		Op:         OpAggregate,
		Collection: collection,
		Err:        fmt.Errorf("%w: unknown accumulator %q", database.ErrInvalidArgument, acc.Op),
	}
}

// DropDatabase removes every collection.
func (s *Store) DropDatabase(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = make(map[string][]entry)
	return nil
}

// beginLocked counts the call and applies the open check and injected failure.
func (s *Store) beginLocked(op, collection string) error {
	s.calls[op]++
	if !s.open {
		return database.NotConnected(op)
	}
	if err := s.failures[op]; err != nil {
		return &database.OperationError{Op: op, Collection: collection, Err: err}
	}
	return nil
}

func (s *Store) appendLocked(collection string, doc database.Document) database.StoreID {
	s.nextID++
	id := database.StoreID(fmt.Sprintf("%s:%06d", collection, s.nextID))
	s.collections[collection] = append(s.collections[collection], entry{id: id, doc: normalizeDocument(doc)})
	return id
}

func matches(doc, filter database.Document) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !equal(got, normalizeValue(want)) {
			return false
		}
	}
	return true
}

func equal(a, b any) bool {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

func greater(a, b any) bool {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return fa > fb
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return sa > sb
		}
	}
	return false
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func normalizeDocument(doc database.Document) database.Document {
	out := make(database.Document, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	return out
}

// normalizeValue converts Go values to the set the real backends decode to.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float32:
		return float64(t)
	case time.Time:
		return t.UTC()
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []int64:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeValue(item)
		}
		return out
	case map[string]string:
		out := make(database.Document, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out
	case database.Document:
		return normalizeDocument(t)
	case map[string]any:
		return normalizeDocument(t)
	}
	return v
}

func copyDocument(doc database.Document) database.Document {
	return normalizeDocument(doc)
}

func copyValue(v any) any {
	return normalizeValue(v)
}
