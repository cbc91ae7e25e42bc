package backend

import (
	"fmt"
	"log/slog"

	"github.com/hassankh203/drive-smart-finance-flow/internal/storage"
)

// Open constructs the document store described by config. The caller
// owns the returned store and must Close it.
func Open(config Config, logger *slog.Logger) (storage.DocumentStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return store, nil
	case MemoryBackend:
		logger.Info("Initialized memory backend")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
