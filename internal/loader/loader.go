// Package loader lazily fetches the three content categories of a stage's
// detail view, caches them for the life of the view and substitutes generated
// placeholder text whenever a fetch fails.
//
// A Loader lives inside the Bubble Tea event loop. Every method is called
// from the model's Update on one goroutine; the only work that leaves that
// goroutine is the store fetch, which runs as a tea.Cmd and reports back
// with a FetchedMsg. Results are matched to their session by generation, so
// a fetch that outlives its session is dropped without effect.
package loader

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Iron-Ham/feeflow/internal/clipboard"
	"github.com/Iron-Ham/feeflow/internal/content"
	"github.com/Iron-Ham/feeflow/internal/errors"
	"github.com/Iron-Ham/feeflow/internal/logging"
	"github.com/Iron-Ham/feeflow/internal/stage"
	"github.com/Iron-Ham/feeflow/internal/store"
)

// Loader owns the current detail-view session and the copy confirmation.
type Loader struct {
	store  store.Store
	clip   clipboard.Clipboard
	logger *logging.Logger
	tick   TickFunc
	now    func() time.Time
	newID  func() string

	session *Session
	gen     uint64

	copyConfirmed bool
	copySeq       uint64

	fallbacks int
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithTick replaces tea.Tick for the copy confirmation timer.
func WithTick(t TickFunc) Option {
	return func(ld *Loader) {
		if t != nil {
			ld.tick = t
		}
	}
}

// WithClock replaces time.Now for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(ld *Loader) {
		if now != nil {
			ld.now = now
		}
	}
}

// WithIDGenerator replaces the random session ID source.
func WithIDGenerator(gen func() string) Option {
	return func(ld *Loader) {
		if gen != nil {
			ld.newID = gen
		}
	}
}

// New creates a Loader that fetches from st and copies through clip.
func New(st store.Store, clip clipboard.Clipboard, opts ...Option) *Loader {
	ld := &Loader{
		store:  st,
		clip:   clip,
		logger: logging.NopLogger(),
		tick:   tea.Tick,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Open starts a fresh session for d, closing any live one, selects Overview
// and returns the command that loads it.
func (ld *Loader) Open(d stage.Descriptor) tea.Cmd {
	ld.Close()

	ld.gen++
	ctx, cancel := context.WithCancel(context.Background())
	ld.session = &Session{
		ID:       ld.newID(),
		Gen:      ld.gen,
		Stage:    d,
		OpenedAt: ld.now(),
		cache:    content.NewCache(),
		active:   content.Overview,
		ctx:      ctx,
		cancel:   cancel,
	}

	ld.sessionLogger().Info("detail view opened", "title", d.Title)
	return ld.load(content.Overview)
}

// Close ends the current session. Its in-flight fetches are canceled and any
// result that still arrives is ignored. Closing with no session is a no-op.
func (ld *Loader) Close() {
	s := ld.session
	if s == nil {
		return
	}
	s.cancel()
	ld.session = nil
	ld.resetCopy()

	ld.logger.WithSession(s.ID).WithStage(s.Stage.ID).Info("detail view closed",
		"requested", s.cache.Len(),
		"open_ms", ld.now().Sub(s.OpenedAt).Milliseconds(),
	)
}

// SelectCategory makes c the active tab and loads it if it was never
// requested in this session. It returns nil when nothing has to be fetched.
func (ld *Loader) SelectCategory(c content.Category) tea.Cmd {
	if ld.session == nil || !c.Valid() {
		return nil
	}
	ld.session.active = c
	if _, ok := ld.session.cache.Get(c); ok {
		return nil
	}
	return ld.load(c)
}

// load moves c to Loading and returns the fetch command. A category that is
// already Loading or settled yields nil, which keeps at most one fetch in
// flight per category.
func (ld *Loader) load(c content.Category) tea.Cmd {
	s := ld.session
	name := content.ObjectName(s.Stage.ID, c)
	if name == "" || !s.cache.BeginLoad(c) {
		return nil
	}

	ld.sessionLogger().WithCategory(c.Key()).Debug("fetching content", "object", name)

	st, ctx, gen := ld.store, s.ctx, s.Gen
	return func() tea.Msg {
		data, err := st.Fetch(ctx, name)
		return FetchedMsg{Gen: gen, Category: c, Name: name, Data: data, Err: err}
	}
}

// Update applies loader messages. handled is false for messages the loader
// does not own.
func (ld *Loader) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case FetchedMsg:
		ld.applyFetched(msg)
		return nil, true
	case CopyResetMsg:
		if msg.Seq == ld.copySeq {
			ld.copyConfirmed = false
		}
		return nil, true
	}
	return nil, false
}

func (ld *Loader) applyFetched(msg FetchedMsg) {
	s := ld.session
	if s == nil || msg.Gen != s.Gen {
		ld.logger.Debug("discarding result for closed session",
			"gen", msg.Gen, "object", msg.Name)
		return
	}

	err := msg.Err
	if err == nil && !utf8.Valid(msg.Data) {
		err = errors.NewFetchError(msg.Name, errors.ErrDecode)
	}

	text, viaFallback := content.Resolve(s.Stage.ID, msg.Category, msg.Data, err)
	if rerr := s.cache.Resolve(msg.Category, text, viaFallback); rerr != nil {
		ld.sessionLogger().Warn("dropping fetch result", "error", rerr.Error())
		return
	}

	log := ld.sessionLogger().WithCategory(msg.Category.Key())
	if viaFallback {
		ld.fallbacks++
		log.Log(severityLevel(errors.GetSeverity(err)), "fetch failed, using fallback",
			"object", msg.Name,
			"error", err.Error(),
			"retryable", errors.IsRetryable(err),
		)
		return
	}
	log.Debug("content loaded", "object", msg.Name, "bytes", len(msg.Data))
}

// Copy writes text to the clipboard. On success the confirmation is set and
// the returned command clears it after CopyConfirmDuration; a later Copy
// supersedes the pending reset. On failure the confirmation is left alone
// and nil is returned.
func (ld *Loader) Copy(text string) tea.Cmd {
	if err := ld.clip.WriteText(text); err != nil {
		ld.logger.Log(severityLevel(errors.GetSeverity(err)), "copy failed", "error", err.Error())
		return nil
	}

	ld.copySeq++
	ld.copyConfirmed = true
	seq := ld.copySeq
	return ld.tick(CopyConfirmDuration, func(time.Time) tea.Msg {
		return CopyResetMsg{Seq: seq}
	})
}

// CopyCurrent copies the active category's text. It does nothing unless that
// text is ready.
func (ld *Loader) CopyCurrent() tea.Cmd {
	v := ld.Current()
	if v.Kind != ViewText {
		return nil
	}
	return ld.Copy(v.Text)
}

// resetCopy clears the confirmation and invalidates any pending reset.
func (ld *Loader) resetCopy() {
	ld.copyConfirmed = false
	ld.copySeq++
}

// Current returns the view of the active category.
func (ld *Loader) Current() View {
	if ld.session == nil {
		return View{Kind: ViewClosed}
	}
	return ld.ViewOf(ld.session.active)
}

// ViewOf returns the view of category c in the current session.
func (ld *Loader) ViewOf(c content.Category) View {
	if ld.session == nil {
		return View{Kind: ViewClosed, Category: c}
	}
	e, ok := ld.session.cache.Get(c)
	return viewOf(c, e, ok)
}

// CopyConfirmed reports whether the copy confirmation is showing.
func (ld *Loader) CopyConfirmed() bool {
	return ld.copyConfirmed
}

// Active returns the selected category, Overview when no session is open.
func (ld *Loader) Active() content.Category {
	if ld.session == nil {
		return content.Overview
	}
	return ld.session.active
}

// Session returns the live session or nil.
func (ld *Loader) Session() *Session {
	return ld.session
}

// FallbackCount returns how many entries have been settled with generated
// content since the loader was created.
func (ld *Loader) FallbackCount() int {
	return ld.fallbacks
}

func (ld *Loader) sessionLogger() *logging.Logger {
	if ld.session == nil {
		return ld.logger
	}
	return ld.logger.WithSession(ld.session.ID).WithStage(ld.session.Stage.ID)
}

func severityLevel(s errors.Severity) slog.Level {
	switch s {
	case errors.SeverityDebug:
		return slog.LevelDebug
	case errors.SeverityInfo:
		return slog.LevelInfo
	case errors.SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
