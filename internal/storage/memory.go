package storage

import "sync"

// MemoryStorage keeps keys in a mutex-guarded map. It backs the
// session-scoped namespace and serves as the durable namespace when no file
// path is configured.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		values: make(map[string]string),
	}, nil
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.values[key]
	return value, exists
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryStorage) SetIfAbsent(key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; exists {
		return false, nil
	}

	m.values[key] = value
	return true, nil
}

func (m *MemoryStorage) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.values[key]
	return exists
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
}
