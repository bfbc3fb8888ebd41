package loader

import (
	"context"
	"time"

	"github.com/Iron-Ham/feeflow/internal/content"
	"github.com/Iron-Ham/feeflow/internal/stage"
)

// Session is one open detail view for one stage. It owns its content cache;
// nothing survives into a later session.
type Session struct {
	ID       string
	Gen      uint64
	Stage    stage.Descriptor
	OpenedAt time.Time

	cache  *content.Cache
	active content.Category
	ctx    context.Context
	cancel context.CancelFunc
}

// Context is canceled when the session closes. In-flight fetches use it.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Active returns the selected category.
func (s *Session) Active() content.Category {
	return s.active
}

// Entry returns the cache entry for c; ok is false when c was never requested.
func (s *Session) Entry(c content.Category) (content.Entry, bool) {
	return s.cache.Get(c)
}

// Requested returns how many categories have been requested.
func (s *Session) Requested() int {
	return s.cache.Len()
}

// Done reports whether the session has been closed.
func (s *Session) Done() bool {
	return s.ctx.Err() != nil
}
