// Package convert maps domain records to and from store documents.
//
// Each entity has a stateless converter with the same method set:
//
//	Key(rec) int64                     domain key of a record
//	IdentityFilter(key) Document       equality filter on the key field
//	RecordFilter(rec) Document         IdentityFilter(Key(rec))
//	ToDocument(rec) Document           full document for insert or replace
//	FromDocument(doc) (*rec, error)    ErrNilDocument / ErrMissingKey on bad input
//
// Optional values (timestamps, lists, maps) are left out of the document
// when unset, so a nil slice survives a write and read as nil.
package convert
