package store

import "fmt"

const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Open builds the configured store backend. For sqlite the path is a
// database file; for json it is a directory of per-key files.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite, "":
		return NewSQLiteStore(path)
	case BackendJSON:
		return NewJSONStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", backend)
	}
}
