package service

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/mdpad/mdpad/internal/storage"
)

// ViewCounter tracks how many times a shared document has been opened,
// counting at most once per slug per browsing session. The dedup marker lives
// in the session-scoped namespace, the tally in the durable one.
type ViewCounter struct {
	durable KV
	session KV
	logger  *zap.Logger
}

func NewViewCounter(durable, session KV, logger *zap.Logger) *ViewCounter {
	return &ViewCounter{
		durable: durable,
		session: session,
		logger:  logger,
	}
}

// RegisterView records one view for slug and returns the stored tally.
// Repeat calls within the same session return the tally unchanged.
func (v *ViewCounter) RegisterView(slug string) (int, error) {
	slug = NormalizeSlug(slug)
	marker := storage.SessionViewedKey(slug)

	views := v.current(slug)

	if v.session.Has(marker) {
		return views, nil
	}

	views++
	if err := v.durable.Set(storage.ViewsKey(slug), strconv.Itoa(views)); err != nil {
		return views - 1, err
	}

	if err := v.session.Set(marker, "true"); err != nil {
		// Tally is already persisted; a lost marker only risks one extra
		// count later in this session.
		v.logger.Warn("failed to store session view marker", zap.String("slug", slug), zap.Error(err))
	}

	v.logger.Info("view counted", zap.String("slug", slug), zap.String("views", FormatViews(views)))

	return views, nil
}

// current reads the stored tally, defaulting to 0 when the record is absent
// or unparsable.
func (v *ViewCounter) current(slug string) int {
	raw, exists := v.durable.Get(storage.ViewsKey(slug))
	if !exists {
		return 0
	}

	views, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return views
}

// FormatViews renders a tally the way the UI announces it.
func FormatViews(n int) string {
	if n == 1 {
		return "1 view"
	}
	return fmt.Sprintf("%d views", n)
}
