package storage

import "errors"

// ErrQuotaExceeded is returned when the durable store cannot accept a write.
// Callers keep their in-memory state and may retry on the next save.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// StorageI is a flat key/value namespace. Two instances back the application:
// a durable one that survives restarts and a session-scoped one that lives for
// a single browsing session.
type StorageI interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	// SetIfAbsent stores value under key only when the key is not present.
	// It reports whether the write happened, making create-if-absent a single
	// atomic step instead of a separate exists check followed by a set.
	SetIfAbsent(key, value string) (bool, error)
	Has(key string) bool
	Delete(key string)
}

var (
	_ StorageI = (*MemoryStorage)(nil)
	_ StorageI = (*FileStorage)(nil)
)
