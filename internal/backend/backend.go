// Package backend selects and constructs the document store the
// ledger persists through.
package backend

// Type identifies a document store implementation.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds what is needed to construct a store.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string
}
