// Package repository implements the data access layer for gamesdb.
//
// Each entity (BoardGameGeek games, the two retailer price feeds, canonical
// games and source relations) is handled by a Repository bound to one
// collection and one converter. Records are addressed only by their domain
// key; the identifier the store assigns never leaves this package.
//
// # Repository Pattern
//
// All repositories share one generic implementation:
//
//   - Constructor function (NewXxxRepository) accepts a database.Store, a logger and a metrics recorder
//   - Read, Insert, Update, Delete and DeleteRecord operate on one domain key
//   - ListIDs, MaxID, Count and Duplicates operate on the whole collection
//   - Query is declared but unsupported and returns database.ErrNotImplemented
//
// # Insert and Update
//
// The store has no uniqueness constraint on the domain key, so Insert first
// resolves the key to a store identifier. If a document exists, Insert
// delegates to Update; otherwise it inserts and the store assigns the id.
// Update is a store-level upsert and creates the document when it is
// missing. Resolve-then-write is not atomic; concurrent writers of the same
// key can produce duplicates.
//
// # Duplicate Keys
//
// When several documents share a key, lookups use the last one scanned,
// log a warning and increment gamesdb_duplicate_keys_total. Duplicates lists
// the affected keys.
//
// # Aggregates
//
// MaxID and Count return NoValue (-1) for an empty collection.
//
// # Example Usage
//
//	games := repository.NewGamesDatabase(store, logger, recorder)
//	if err := games.Open(ctx); err != nil {
//	    return err
//	}
//	defer games.Close(ctx)
//
//	abyss, err := games.BGGGames.Read(ctx, 155987)
//	if err != nil {
//	    return err
//	}
//	if abyss == nil {
//	    // not stored
//	}
package repository
