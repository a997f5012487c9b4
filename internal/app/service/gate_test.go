package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/storage"
)

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name string
		ctx  DocContext
		want bool
	}{
		{"private draft", DocContext{}, true},
		{"shared read-only", DocContext{Slug: "my-doc", Shared: true}, false},
		{"shared with edit mode", DocContext{Slug: "my-doc", Shared: true, EditMode: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.ctx))
		})
	}
}

func TestVerifyEditCode_AlwaysDenies(t *testing.T) {
	decision := VerifyEditCode("my-doc", "whatever")
	assert.False(t, decision.Allowed)
	assert.NotEmpty(t, decision.Reason)
}

// The code issued at share time is rejected like any other: shared documents
// are permanently read-only.
func TestVerifyEditCode_RejectsIssuedCode(t *testing.T) {
	durable, _ := storage.CreateMemoryStorage()
	registry := NewSlugRegistry(durable, zap.NewNop())

	editCode, err := registry.Create("my-doc", "# Hi")
	require.NoError(t, err)

	decision := VerifyEditCode("my-doc", editCode)
	assert.False(t, decision.Allowed)
}
