// Package storage provides the durable document store: a small
// key-value layer where each key holds one JSON-encoded collection.
// The ledger writes whole collections synchronously on every mutation
// and reads them back once at startup.
package storage

import "context"

// Fixed document keys. Each key holds one JSON-encoded array.
const (
	DocIncome     = "driverapp_income"
	DocExpenses   = "driverapp_expenses"
	DocMileage    = "driverapp_mileage"
	DocCategories = "driverapp_categories"
	DocPlatforms  = "driverapp_platforms"
)

// DocumentStore is the persistence boundary for the ledger. An absent
// key is not an error: Read returns ok=false and the caller falls back
// to its seed or empty collection.
type DocumentStore interface {
	// Read returns the document stored under key, or ok=false if the
	// key has never been written.
	Read(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Write stores the document under key, replacing any previous
	// value. The write is complete when Write returns.
	Write(ctx context.Context, key string, data []byte) error

	// Close releases the store's resources.
	Close() error
}
