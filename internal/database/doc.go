// Package database provides document store connectivity for gamesdb.
//
// # Backends
//
// Two Store implementations are available:
//
//   - MongoStore: MongoDB through the official driver. Writes use the
//     journaled write concern; GroupAll runs a one-stage $group pipeline.
//   - SurrealStore: SurrealDB over its websocket RPC endpoint. GroupAll runs
//     SELECT ... GROUP ALL; Upsert runs inside a transaction.
//
// Pick one with NewStore:
//
//	store, err := database.NewStore(database.Config{
//	    Driver:   database.DriverMongo,
//	    Host:     "localhost",
//	    Port:     "27017",
//	    Database: "gamesdb",
//	}, logger)
//
// # Connection Lifecycle
//
// Open is a no-op when the store is already open. Close always clears the
// client and database references, even when the underlying close fails, so
// it is safe to call repeatedly or on a store that was never opened.
// Neither method is safe for concurrent use; callers serialize lifecycle
// calls themselves.
//
// # Error Types
//
//   - ErrNotConnected: operation attempted on a closed store
//   - ErrInvalidArgument: rejected before reaching the store
//   - ErrNotImplemented: capability declared but not supported
//   - ErrQuery: the store rejected or failed a statement
package database
