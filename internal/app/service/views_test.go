package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/storage"
)

func newTestCounter(t *testing.T, durable KV) (*ViewCounter, KV) {
	t.Helper()

	session, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	return NewViewCounter(durable, session, zap.NewNop()), session
}

func TestViewCounter_CountsOncePerSession(t *testing.T) {
	durable, _ := storage.CreateMemoryStorage()
	_, err := NewSlugRegistry(durable, zap.NewNop()).Create("my-doc", "# Hi")
	require.NoError(t, err)

	counter, _ := newTestCounter(t, durable)

	views, err := counter.RegisterView("my-doc")
	require.NoError(t, err)
	assert.Equal(t, 1, views)

	// Repeat calls in the same session change nothing
	for i := 0; i < 5; i++ {
		views, err = counter.RegisterView("my-doc")
		require.NoError(t, err)
		assert.Equal(t, 1, views)
	}

	stored, _ := durable.Get(storage.ViewsKey("my-doc"))
	assert.Equal(t, "1", stored)
}

func TestViewCounter_TwoSessions(t *testing.T) {
	durable, _ := storage.CreateMemoryStorage()
	_, err := NewSlugRegistry(durable, zap.NewNop()).Create("my-doc", "# Hi")
	require.NoError(t, err)

	first, _ := newTestCounter(t, durable)
	second, _ := newTestCounter(t, durable)

	views, err := first.RegisterView("my-doc")
	require.NoError(t, err)
	assert.Equal(t, 1, views)

	// A fresh session counts again
	views, err = second.RegisterView("my-doc")
	require.NoError(t, err)
	assert.Equal(t, 2, views)

	// But neither counts twice
	views, _ = first.RegisterView("my-doc")
	assert.Equal(t, 2, views)
	views, _ = second.RegisterView("my-doc")
	assert.Equal(t, 2, views)
}

func TestViewCounter_MissingRecordDefaultsToZero(t *testing.T) {
	durable, _ := storage.CreateMemoryStorage()
	counter, _ := newTestCounter(t, durable)

	// No views record at all: defensive default of 0, then increment
	views, err := counter.RegisterView("my-doc")
	require.NoError(t, err)
	assert.Equal(t, 1, views)
}

func TestViewCounter_NormalizesSlug(t *testing.T) {
	durable, _ := storage.CreateMemoryStorage()
	counter, session := newTestCounter(t, durable)

	_, err := counter.RegisterView("My Doc")
	require.NoError(t, err)

	assert.True(t, session.Has(storage.SessionViewedKey("my-doc")))

	// Same document under a differently cased segment: still deduped
	views, err := counter.RegisterView("my doc")
	require.NoError(t, err)
	assert.Equal(t, 1, views)
}

func TestFormatViews(t *testing.T) {
	assert.Equal(t, "0 views", FormatViews(0))
	assert.Equal(t, "1 view", FormatViews(1))
	assert.Equal(t, "3 views", FormatViews(3))
}
