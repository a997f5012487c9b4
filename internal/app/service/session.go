package service

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/storage"
)

// DefaultAutosaveInterval is the quiet period before a content mutation is
// persisted.
const DefaultAutosaveInterval = time.Second

// rootPaths are reserved in-app segments that never name a shared document.
var rootPaths = []string{"", "text", "preview", "how"}

func isRootPath(segment string) bool {
	for _, p := range rootPaths {
		if segment == p {
			return true
		}
	}
	return false
}

// ShareResult is what the share dialog displays: the link and the one-time
// edit code.
type ShareResult struct {
	Slug     string
	Link     string
	EditCode string
}

// Session reconciles what the user is looking at with the registry. It owns
// the in-memory content, the autosave debounce and the once-per-session view
// registration.
type Session struct {
	mu       sync.Mutex
	registry *SlugRegistry
	views    *ViewCounter
	durable  KV
	logger   *zap.Logger

	baseURL  string
	interval time.Duration

	content    string
	activeSlug string
	editMode   bool
	viewCount  int

	lastShared ShareResult

	timer *time.Timer
	dirty bool
}

func NewSession(registry *SlugRegistry, views *ViewCounter, durable KV, logger *zap.Logger, baseURL string, interval time.Duration) *Session {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}

	return &Session{
		registry: registry,
		views:    views,
		durable:  durable,
		logger:   logger,
		baseURL:  baseURL,
		interval: interval,
		editMode: true,
	}
}

// Navigate resolves a path segment. Root paths load the private draft; any
// other segment is treated as a slug. A pending autosave is cancelled without
// flushing, so an edit made inside the debounce window right before
// navigation is lost.
func (s *Session) Navigate(segment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimer()
	s.dirty = false

	if isRootPath(segment) {
		content, _ := s.durable.Get(storage.DraftKey)
		s.content = content
		s.activeSlug = ""
		s.editMode = true
		s.viewCount = 0
		return nil
	}

	doc, err := s.registry.Load(segment)
	if err != nil {
		s.content = ""
		s.activeSlug = ""
		s.editMode = false
		s.viewCount = 0
		return err
	}

	s.content = doc.Content
	s.activeSlug = doc.Slug
	s.editMode = false

	views, err := s.views.RegisterView(doc.Slug)
	if err != nil {
		s.logger.Warn("failed to register view", zap.String("slug", doc.Slug), zap.Error(err))
	}
	s.viewCount = views

	return nil
}

// SetContent records a content mutation and (re)arms the autosave timer. On a
// read-only shared view the timer is never armed; blank content is not saved
// either.
func (s *Session) SetContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content = content

	if !s.autosaveAllowed() || strings.TrimSpace(content) == "" {
		// A pending write must not outlive the mutation that superseded it:
		// neither the old content nor the blank one is saved.
		s.cancelTimer()
		s.dirty = false
		return
	}

	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.autosave)
}

// Share publishes the current content under the user-supplied slug. On
// success the result is retained for the dialog's one-time display; the
// session does not navigate away from the current view.
func (s *Session) Share(slug string) (*ShareResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	editCode, err := s.registry.Create(slug, s.content)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeSlug(slug)
	s.lastShared = ShareResult{
		Slug:     normalized,
		Link:     s.baseURL + "/" + normalized,
		EditCode: editCode,
	}

	result := s.lastShared
	return &result, nil
}

// RequestEdit runs the edit-code challenge for the active shared document.
// Edit mode is granted only on an allowed decision.
func (s *Session) RequestEdit(code string) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	decision := VerifyEditCode(s.activeSlug, code)
	if decision.Allowed {
		s.editMode = true
	}
	return decision
}

// Flush persists a pending autosave immediately. It is the deterministic
// teardown hook: call it before discarding the session to avoid losing an
// edit made inside the debounce window.
func (s *Session) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimer()
	s.persist()
}

// Close flushes and releases the session.
func (s *Session) Close() error {
	s.Flush()
	return nil
}

// Content returns the in-memory content.
func (s *Session) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.content
}

// ActiveSlug returns the slug being viewed, or "" for the private draft.
func (s *Session) ActiveSlug() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeSlug
}

// ViewCount returns the tally hydrated on the last navigation.
func (s *Session) ViewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewCount
}

// LastShare returns the most recent share result.
func (s *Session) LastShare() ShareResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastShared
}

// Context describes the current view for the edit-access gate.
func (s *Session) Context() DocContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	return DocContext{
		Slug:     s.activeSlug,
		Shared:   s.activeSlug != "",
		EditMode: s.editMode,
	}
}

// autosave fires on the debounce timer.
func (s *Session) autosave() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persist()
}

// persist writes pending content to its destination. Caller must hold the
// mutex. A quota failure keeps the session dirty so the next debounce fire
// retries; editing continues in memory.
func (s *Session) persist() {
	if !s.dirty {
		return
	}

	var err error
	switch {
	case s.activeSlug == "":
		err = s.durable.Set(storage.DraftKey, s.content)
	case s.editMode:
		err = s.registry.OverwriteContent(s.activeSlug, s.content)
	default:
		// Read-only shared view: nothing to write.
		s.dirty = false
		return
	}

	if err != nil {
		s.logger.Warn("autosave failed, keeping content in memory", zap.Error(err))
		return
	}

	s.dirty = false
}

// autosaveAllowed reports whether the current context may write at all.
// Caller must hold the mutex.
func (s *Session) autosaveAllowed() bool {
	return s.activeSlug == "" || s.editMode
}

// cancelTimer stops a pending debounce without flushing it. Caller must hold
// the mutex.
func (s *Session) cancelTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
