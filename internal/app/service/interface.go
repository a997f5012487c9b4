package service

// KV is the key/value namespace the services persist through. The storage
// package provides memory and file backed implementations.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	SetIfAbsent(key, value string) (bool, error)
	Has(key string) bool
	Delete(key string)
}
