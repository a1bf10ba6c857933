// Package store persists engine state slices as JSON values under
// string keys. Two backends exist: a JSON file per key and a SQLite
// key/value table.
package store

// Store is the persistence contract the engine writes through. Load
// reports ok=false when the key has never been written, which callers
// treat as "use the seed default".
type Store interface {
	Load(key string, into any) (ok bool, err error)
	Save(key string, v any) error
	Close() error
}
