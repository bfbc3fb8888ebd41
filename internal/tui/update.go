package tui

import (
	"time"

	"github.com/Iron-Ham/feeflow/internal/content"
	"github.com/Iron-Ham/feeflow/internal/loader"
	"github.com/Iron-Ham/feeflow/internal/tui/keymap"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// openStageMsg asks the model to open the detail view for a stage.
type openStageMsg struct {
	id int
}

// clockTickMsg refreshes the elapsed time in the progress panel.
type clockTickMsg time.Time

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, clockTick()}
	if m.initialStage > 0 {
		id := m.initialStage
		cmds = append(cmds, func() tea.Msg { return openStageMsg{id: id} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Loader messages first: fetch results and copy resets
	if cmd, handled := m.loader.Update(msg); handled {
		m.syncViewport()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.viewport.Width, m.viewport.Height = CalculateViewportDimensions(m.width, m.height)
		m.syncViewport()
		return m, nil

	case openStageMsg:
		idx := m.stageIndex(msg.id)
		if idx < 0 {
			m.logger.Warn("unknown stage requested", "stage", msg.id)
			return m, nil
		}
		m.focused = idx
		cmd := m.openFocused()
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clockTickMsg:
		return m, clockTick()
	}

	return m, nil
}

// handleKeypress resolves a key press to a command for the current mode.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode()
	switch m.keys.Lookup(mode, msg) {
	case keymap.CmdQuit:
		if m.loader.Session() != nil {
			m.loader.Close()
		}
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	// Dashboard
	case keymap.CmdFocusNext:
		if m.focused < len(m.stages)-1 {
			m.focused++
		}
	case keymap.CmdFocusPrev:
		if m.focused > 0 {
			m.focused--
		}
	case keymap.CmdJumpToStage:
		if idx := m.stageIndex(keymap.Digit(msg)); idx >= 0 {
			m.focused = idx
		}
	case keymap.CmdToggleStats:
		m.showStats = !m.showStats
	case keymap.CmdOpenDetail:
		cmd := m.openFocused()
		return m, cmd

	// Detail
	case keymap.CmdCloseDetail:
		m.loader.Close()
		m.syncViewport()
	case keymap.CmdNextCategory:
		cmd := m.selectCategory(m.loader.Active().Next())
		return m, cmd
	case keymap.CmdPrevCategory:
		cmd := m.selectCategory(m.loader.Active().Prev())
		return m, cmd
	case keymap.CmdSelectCategory:
		n := keymap.Digit(msg)
		if n >= 1 && n <= len(content.Categories) {
			cmd := m.selectCategory(content.Categories[n-1])
			return m, cmd
		}
	case keymap.CmdCopy:
		return m, m.loader.CopyCurrent()
	case keymap.CmdScrollUp:
		m.viewport.LineUp(1)
	case keymap.CmdScrollDown:
		m.viewport.LineDown(1)
	case keymap.CmdPageUp:
		m.viewport.LineUp(m.viewport.Height)
	case keymap.CmdPageDown:
		m.viewport.LineDown(m.viewport.Height)
	}

	return m, nil
}

// openFocused opens the detail view for the focused stage.
func (m *Model) openFocused() tea.Cmd {
	d := m.focusedStage()
	if d.ID == 0 {
		return nil
	}
	m.visited[d.ID] = true
	cmd := m.loader.Open(d)
	m.syncViewport()
	return cmd
}

// selectCategory switches the active tab, loading it on first view.
func (m *Model) selectCategory(c content.Category) tea.Cmd {
	cmd := m.loader.SelectCategory(c)
	m.syncViewport()
	return cmd
}

// syncViewport mirrors the loader's current view into the viewport. Text is
// set verbatim; a different category or session scrolls back to the top.
func (m *Model) syncViewport() {
	v := m.loader.Current()
	if v == m.shown {
		return
	}
	changed := v.Category != m.shown.Category || v.Kind != m.shown.Kind
	m.shown = v

	if v.Kind == loader.ViewText {
		m.viewport.SetContent(v.Text)
	} else {
		m.viewport.SetContent("")
	}
	if changed {
		m.viewport.GotoTop()
	}
}
