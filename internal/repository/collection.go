package repository

import (
	"context"

	"github.com/forgo/gamesdb/internal/convert"
	"github.com/forgo/gamesdb/internal/database"
)

// Collection names a store collection and the field holding its domain key.
type Collection struct {
	Name     string
	KeyField string
}

// Collections, one per entity
var (
	BGGGameCollection   = Collection{Name: "bgg_game", KeyField: convert.FieldBGGID}
	CSIPriceCollection  = Collection{Name: "csi_price", KeyField: convert.FieldCSIID}
	MMPriceCollection   = Collection{Name: "mm_price", KeyField: convert.FieldMMID}
	GameCollection      = Collection{Name: "game", KeyField: convert.FieldGameID}
	GameReltnCollection = Collection{Name: "game_reltn", KeyField: convert.FieldReltnID}
)

// Collections lists every entity collection.
func Collections() []Collection {
	return []Collection{
		BGGGameCollection,
		CSIPriceCollection,
		MMPriceCollection,
		GameCollection,
		GameReltnCollection,
	}
}

// Converter maps records of type T to and from store documents.
type Converter[T any] interface {
	Key(rec *T) int64
	IdentityFilter(key int64) database.Document
	RecordFilter(rec *T) database.Document
	ToDocument(rec *T) database.Document
	FromDocument(doc database.Document) (*T, error)
}

// Entity is the type-independent view of a repository, used by tooling that
// works across collections.
type Entity interface {
	Collection() Collection
	Delete(ctx context.Context, key int64) error
	ListIDs(ctx context.Context) ([]int64, error)
	MaxID(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	Duplicates(ctx context.Context) ([]int64, error)
}
