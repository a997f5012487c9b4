// Package service holds the document sharing core: the slug registry, the
// view counter, the edit-access gate and the document session state.
package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/models"
	"github.com/mdpad/mdpad/internal/storage"
)

var (
	// ErrSlugTaken means the normalized slug already names a document.
	ErrSlugTaken = errors.New("slug already taken")

	// ErrNotFound means no document record exists for the slug.
	ErrNotFound = errors.New("document not found")

	// ErrEmptySlug means the user-supplied slug normalized to nothing usable.
	ErrEmptySlug = errors.New("empty slug")
)

const (
	editCodeLength   = 8
	editCodeElements = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeSlug lowercases the input and collapses every whitespace run into
// a single "-". No trimming is applied. Two inputs that normalize identically
// name the same document.
func NormalizeSlug(s string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(s, "-"))
}

// SlugRegistry enforces global uniqueness of document slugs and owns the
// shared document records in durable storage.
type SlugRegistry struct {
	durable KV
	logger  *zap.Logger
}

func NewSlugRegistry(durable KV, logger *zap.Logger) *SlugRegistry {
	return &SlugRegistry{
		durable: durable,
		logger:  logger,
	}
}

// Exists reports whether a shared document record is present for slug.
func (r *SlugRegistry) Exists(slug string) bool {
	return r.durable.Has(storage.SharedKey(NormalizeSlug(slug)))
}

// Create publishes content under slug and returns the freshly generated edit
// code for one-time display. The content write is a conditional put, so two
// racing creates for the same slug cannot both succeed.
func (r *SlugRegistry) Create(slug, content string) (string, error) {
	slug = NormalizeSlug(slug)
	if slug == "" {
		return "", ErrEmptySlug
	}

	editCode, err := newEditCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate edit code: %w", err)
	}

	created, err := r.durable.SetIfAbsent(storage.SharedKey(slug), content)
	if err != nil {
		return "", err
	}
	if !created {
		return "", ErrSlugTaken
	}

	// Roll back the content key if the companion records cannot be written,
	// so a failed share can be retried under the same slug.
	if err := r.durable.Set(storage.EditCodeKey(slug), editCode); err != nil {
		r.durable.Delete(storage.SharedKey(slug))
		return "", err
	}
	if err := r.durable.Set(storage.ViewsKey(slug), "0"); err != nil {
		r.durable.Delete(storage.EditCodeKey(slug))
		r.durable.Delete(storage.SharedKey(slug))
		return "", err
	}

	r.logger.Info("document shared", zap.String("slug", slug))

	return editCode, nil
}

// Load returns the shared document stored under slug, or ErrNotFound.
func (r *SlugRegistry) Load(slug string) (*models.SharedDocument, error) {
	slug = NormalizeSlug(slug)

	content, exists := r.durable.Get(storage.SharedKey(slug))
	if !exists {
		return nil, ErrNotFound
	}

	editCode, _ := r.durable.Get(storage.EditCodeKey(slug))

	return &models.SharedDocument{
		Slug:      slug,
		Content:   content,
		EditCode:  editCode,
		ViewCount: r.viewCount(slug),
	}, nil
}

// OverwriteContent replaces the stored content only. Edit code and view count
// are untouched. Authorization is the caller's problem; the registry performs
// none.
func (r *SlugRegistry) OverwriteContent(slug, content string) error {
	slug = NormalizeSlug(slug)

	if !r.durable.Has(storage.SharedKey(slug)) {
		return ErrNotFound
	}

	return r.durable.Set(storage.SharedKey(slug), content)
}

func (r *SlugRegistry) viewCount(slug string) int {
	raw, exists := r.durable.Get(storage.ViewsKey(slug))
	if !exists {
		return 0
	}

	views, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return views
}

// newEditCode draws 8 characters from the alphanumeric set.
func newEditCode() (string, error) {
	buf := make([]byte, editCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i, b := range buf {
		buf[i] = editCodeElements[int(b)%len(editCodeElements)]
	}
	return string(buf), nil
}
