// Package cache provides a small size-bounded LRU used to memoize
// query results. Callers key entries by the ledger's mutation
// generation, so a stale result can never be served: any mutation
// changes the key and the superseded entry ages out of the LRU.
package cache

// Cache is a generic read-through cache interface.
type Cache[T any] interface {
	// Get retrieves a value from the cache.
	Get(key string) (T, bool)

	// Set stores a value in the cache.
	Set(key string, data T)

	// Delete removes a key from the cache.
	Delete(key string)

	// Size returns the current number of items in the cache.
	Size() int
}
