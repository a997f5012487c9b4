package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStorage is the durable namespace persisted as a JSON snapshot. Every
// write goes through to disk; a failed disk write keeps the in-memory value
// and surfaces ErrQuotaExceeded so the caller can retry on the next save.
type FileStorage struct {
	mu     sync.Mutex
	values map[string]string
	path   string
	logger *zap.Logger
}

func NewFileStorage(path string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return nil, err
	}

	fs := &FileStorage{
		values: make(map[string]string),
		path:   path,
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, err
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &fs.values); err != nil {
			return nil, fmt.Errorf("failed to parse storage file: %w", err)
		}
	}

	return fs, nil
}

func (fs *FileStorage) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	value, exists := fs.values[key]
	return value, exists
}

func (fs *FileStorage) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.values[key] = value
	return fs.flush()
}

func (fs *FileStorage) SetIfAbsent(key, value string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, exists := fs.values[key]; exists {
		return false, nil
	}

	fs.values[key] = value
	if err := fs.flush(); err != nil {
		return true, err
	}
	return true, nil
}

func (fs *FileStorage) Has(key string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, exists := fs.values[key]
	return exists
}

func (fs *FileStorage) Delete(key string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	delete(fs.values, key)
	if err := fs.flush(); err != nil {
		fs.logger.Warn("failed to persist delete", zap.String("key", key), zap.Error(err))
	}
}

// Close persists the snapshot one final time.
func (fs *FileStorage) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.flush()
}

// flush writes the whole snapshot. Caller must hold the mutex.
func (fs *FileStorage) flush() error {
	b, err := json.Marshal(fs.values)
	if err != nil {
		return err
	}

	if err := os.WriteFile(fs.path, b, 0660); err != nil {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return nil
}
