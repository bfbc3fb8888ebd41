package loader

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/feeflow/internal/content"
)

// CopyConfirmDuration is how long the copy confirmation stays set after a
// successful copy.
const CopyConfirmDuration = 2000 * time.Millisecond

// FetchedMsg carries the outcome of one store fetch back to the event loop.
// Gen identifies the session that issued the fetch.
type FetchedMsg struct {
	Gen      uint64
	Category content.Category
	Name     string
	Data     []byte
	Err      error
}

// CopyResetMsg clears the copy confirmation unless a later copy superseded
// the one that scheduled it.
type CopyResetMsg struct {
	Seq uint64
}

// TickFunc schedules fn after d. tea.Tick is the production implementation;
// tests substitute one that fires on demand.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
