package storage

import "context"

// MemoryStore keeps documents in a plain map. It backs the "memory"
// data backend and the test suites; nothing survives the process.
type MemoryStore struct {
	docs map[string][]byte

	// FailWrites makes every Write return this error. Tests use it to
	// exercise the persist-failure path.
	FailWrites error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Read implements DocumentStore.
func (s *MemoryStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := s.docs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Write implements DocumentStore.
func (s *MemoryStore) Write(_ context.Context, key string, data []byte) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.docs[key] = stored
	return nil
}

// Close implements DocumentStore.
func (s *MemoryStore) Close() error { return nil }
