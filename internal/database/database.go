// Package database provides the document store abstraction layer for gamesdb.
//
// This package defines the Store interface that hides the concrete document
// database (MongoDB or SurrealDB) behind a small set of collection-level
// operations, allowing the repository layer to reason only about domain keys.
//
// # Identity
//
// Every backend assigns its own identifier to a stored document (a MongoDB
// ObjectID, a SurrealDB record id). That identifier is surfaced as an opaque
// StoreID and never leaves the repository layer. Callers address documents by
// the domain key embedded in the document body.
//
// # Interface Design
//
// The Store interface provides:
//   - Open/Close/IsOpen: connection lifecycle, idempotent in both directions
//   - Find: equality filter over single fields, optional projection
//   - InsertOne: create a document, the store assigns the identifier
//   - Upsert: replace the document matching a filter, or create it
//   - DeleteMany: remove every document matching a filter
//   - GroupAll: one grouping stage with no grouping key (max or count)
//
// # Error Handling
//
// Lifecycle problems are reported as *ConfigurationError, store failures as
// *OperationError. Both unwrap to the underlying cause so errors.Is works:
//
//	if errors.Is(err, database.ErrNotConnected) {
//	    // Open was never called, or Close already ran
//	}
//
// # Usage Example
//
//	store, err := database.NewStore(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	if err := store.Open(ctx); err != nil {
//	    return err
//	}
//	defer store.Close(ctx)
//
//	results, err := store.Find(ctx, "bgg_game", database.Document{"bgg_id": int64(155987)}, database.FindOptions{})
package database

import (
	"context"
	"time"
)

// Document is a JSON-like document as exchanged with a Store.
// Values are normalized by every backend to: nil, bool, string, int64,
// float64, time.Time, []any and Document.
type Document map[string]any

// StoreID is the identifier a backend assigns to a stored document.
// It is opaque outside this package and the repository layer.
type StoreID string

// Result is a single document returned by Find together with its identifier.
// ID is empty when the query projected the identifier away.
type Result struct {
	ID       StoreID
	Document Document
}

// FindOptions controls the shape of documents returned by Find.
type FindOptions struct {
	// Fields restricts returned documents to the named fields and suppresses
	// the internal identifier. Empty means the whole document.
	Fields []string

	// IDOnly returns only the internal identifier of each match.
	IDOnly bool
}

// AccumulatorOp selects the value computed by GroupAll.
type AccumulatorOp string

const (
	// AccumulateMax computes the maximum value of a field.
	AccumulateMax AccumulatorOp = "max"
	// AccumulateCount counts documents.
	AccumulateCount AccumulatorOp = "count"
)

// Accumulator describes the single computed value of a GroupAll stage.
// Field is ignored for AccumulateCount.
type Accumulator struct {
	Op    AccumulatorOp
	Field string
}

// Store defines the interface for document store operations
type Store interface {
	// Connection management
	Open(ctx context.Context) error
	Close(ctx context.Context) error
	IsOpen() bool
	Ping(ctx context.Context) error

	// Find returns every document in collection whose fields equal the
	// filter's values, in the store's scan order.
	Find(ctx context.Context, collection string, filter Document, opts FindOptions) ([]Result, error)

	// InsertOne stores doc and returns the identifier assigned by the store.
	InsertOne(ctx context.Context, collection string, doc Document) (StoreID, error)

	// Upsert replaces the document matching filter with doc, creating it
	// when nothing matches.
	Upsert(ctx context.Context, collection string, filter Document, doc Document) error

	// DeleteMany removes all documents matching filter and reports how many
	// were removed.
	DeleteMany(ctx context.Context, collection string, filter Document) (int64, error)

	// GroupAll runs a single grouping stage over the whole collection.
	// ok is false when the stage produced no group (empty collection) or the
	// accumulated value is absent.
	GroupAll(ctx context.Context, collection string, acc Accumulator) (value any, ok bool, err error)
}

// Dropper is implemented by stores that can remove their whole database.
// It is used by test tooling to clean up isolated databases.
type Dropper interface {
	DropDatabase(ctx context.Context) error
}

// Driver names accepted by NewStore.
const (
	DriverMongo     = "mongo"
	DriverSurrealDB = "surrealdb"
)

// Config holds database configuration
type Config struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	Namespace      string
	Database       string
	ConnectTimeout time.Duration
}
