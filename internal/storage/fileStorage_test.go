package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/storage"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "mdpad.json")

	fs, err := storage.NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, fs.Set(storage.DraftKey, "# Draft"))
	require.NoError(t, fs.Set(storage.SharedKey("my-doc"), "# Hi"))
	require.NoError(t, fs.Close())

	// Reopen and verify the snapshot survived
	reopened, err := storage.NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)

	value, exists := reopened.Get(storage.DraftKey)
	assert.True(t, exists)
	assert.Equal(t, "# Draft", value)

	value, exists = reopened.Get(storage.SharedKey("my-doc"))
	assert.True(t, exists)
	assert.Equal(t, "# Hi", value)
}

func TestFileStorage_SetIfAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdpad.json")

	fs, err := storage.NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)

	created, err := fs.SetIfAbsent(storage.SharedKey("my-doc"), "first")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = fs.SetIfAbsent(storage.SharedKey("my-doc"), "second")
	require.NoError(t, err)
	assert.False(t, created)

	value, _ := fs.Get(storage.SharedKey("my-doc"))
	assert.Equal(t, "first", value)
}

func TestFileStorage_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdpad.json")

	fs, err := storage.NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, fs.Set("views_my-doc", "3"))
	fs.Delete("views_my-doc")
	assert.False(t, fs.Has("views_my-doc"))

	// Reopen: the delete must be durable too
	reopened, err := storage.NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, reopened.Has("views_my-doc"))
}

func TestFileStorage_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdpad.json")

	fs, err := storage.NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, fs.Close())

	reopened, err := storage.NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, reopened.Has(storage.DraftKey))
}
