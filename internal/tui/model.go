package tui

import (
	"time"

	"github.com/Iron-Ham/feeflow/internal/loader"
	"github.com/Iron-Ham/feeflow/internal/logging"
	"github.com/Iron-Ham/feeflow/internal/stage"
	"github.com/Iron-Ham/feeflow/internal/tui/keymap"
	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/Iron-Ham/feeflow/internal/tui/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// Model holds the TUI application state
type Model struct {
	// Core components
	loader *loader.Loader
	logger *logging.Logger
	styles *styles.Styles
	keys   keymap.KeyMap
	stages []stage.Descriptor

	// UI state
	focused   int
	width     int
	height    int
	ready     bool
	quitting  bool
	showStats bool
	showHelp  bool

	// initialStage is opened on startup when non-zero
	initialStage int

	// visited records stage IDs opened during this run
	visited map[int]bool
	started time.Time
	now     func() time.Time

	// Bubbles
	spinner  spinner.Model
	viewport viewport.Model
	progress progress.Model
	help     help.Model

	// shown tracks what the viewport currently holds so switching
	// categories scrolls back to the top
	shown loader.View
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStyles sets the style set.
func WithStyles(s *styles.Styles) ModelOption {
	return func(m *Model) {
		if s != nil {
			m.styles = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithInitialStage opens the detail view for stage id on startup.
func WithInitialStage(id int) ModelOption {
	return func(m *Model) {
		m.initialStage = id
	}
}

// WithShowStats shows the progress summary panel on startup.
func WithShowStats(show bool) ModelOption {
	return func(m *Model) {
		m.showStats = show
	}
}

// WithNow replaces the clock used for elapsed time.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// NewModel creates a new TUI model
func NewModel(ld *loader.Loader, opts ...ModelOption) Model {
	m := Model{
		loader:  ld,
		logger:  logging.NopLogger(),
		styles:  styles.New(styles.DefaultPalette()),
		keys:    keymap.Default(),
		stages:  stage.Catalog(),
		visited: make(map[int]bool),
		now:     time.Now,
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.started = m.now()
	m.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(m.styles.Primary),
	)
	m.progress = view.NewProgressBar(m.styles)
	m.viewport = viewport.New(0, 0)
	return m
}

// focusedStage returns the descriptor under the cursor.
func (m Model) focusedStage() stage.Descriptor {
	if m.focused < 0 || m.focused >= len(m.stages) {
		return stage.Descriptor{}
	}
	return m.stages[m.focused]
}

// mode returns the key mode for the current screen.
func (m Model) mode() keymap.Mode {
	if m.loader.Session() != nil {
		return keymap.ModeDetail
	}
	return keymap.ModeDashboard
}

// stageIndex returns the catalog index for id, or -1.
func (m Model) stageIndex(id int) int {
	for i, d := range m.stages {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Layout offsets for the detail viewport
const (
	// modal border + padding + content box border
	detailWidthOffset = 6
	// modal border, title, gap, tabs, fallback notice, content border, help bar
	detailHeightOffset = 11
	minViewportHeight  = 3
)

// CalculateViewportDimensions returns the detail viewport size for a terminal.
func CalculateViewportDimensions(width, height int) (int, int) {
	w := max(width-detailWidthOffset, 10)
	h := max(height-detailHeightOffset, minViewportHeight)
	return w, h
}
