// Package keymap defines the dashboard's key bindings and resolves key
// presses to commands for the current mode.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
type Mode string

const (
	ModeDashboard Mode = "dashboard" // Stage cards, no detail view open
	ModeDetail    Mode = "detail"    // Detail modal open
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	CmdNone Command = ""

	// Dashboard
	CmdFocusNext   Command = "focus_next"
	CmdFocusPrev   Command = "focus_prev"
	CmdJumpToStage Command = "jump_to_stage" // 1-5 keys
	CmdOpenDetail  Command = "open_detail"
	CmdToggleStats Command = "toggle_stats"

	// Detail
	CmdNextCategory   Command = "next_category"
	CmdPrevCategory   Command = "prev_category"
	CmdSelectCategory Command = "select_category" // 1-3 keys
	CmdCopy           Command = "copy"
	CmdCloseDetail    Command = "close_detail"
	CmdScrollUp       Command = "scroll_up"
	CmdScrollDown     Command = "scroll_down"
	CmdPageUp         Command = "page_up"
	CmdPageDown       Command = "page_down"

	// Shared
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// KeyMap holds every binding the TUI uses.
type KeyMap struct {
	FocusNext   key.Binding
	FocusPrev   key.Binding
	JumpToStage key.Binding
	Open        key.Binding
	ToggleStats key.Binding

	NextCategory   key.Binding
	PrevCategory   key.Binding
	SelectCategory key.Binding
	Copy           key.Binding
	Close          key.Binding
	ScrollUp       key.Binding
	ScrollDown     key.Binding
	PageUp         key.Binding
	PageDown       key.Binding

	ToggleHelp key.Binding
	Quit       key.Binding
}

// Default returns the default key bindings.
func Default() KeyMap {
	return KeyMap{
		FocusNext:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next stage")),
		FocusPrev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev stage")),
		JumpToStage: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "檢視詳細")),
		ToggleStats: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),

		NextCategory:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevCategory:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		SelectCategory: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "tab")),
		Copy:           key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "複製")),
		Close:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ScrollUp:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		ScrollDown:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:         key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:       key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),

		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type entry struct {
	binding *key.Binding
	cmd     Command
}

func (k *KeyMap) table(mode Mode) []entry {
	switch mode {
	case ModeDetail:
		return []entry{
			{&k.Close, CmdCloseDetail},
			{&k.NextCategory, CmdNextCategory},
			{&k.PrevCategory, CmdPrevCategory},
			{&k.SelectCategory, CmdSelectCategory},
			{&k.Copy, CmdCopy},
			{&k.ScrollUp, CmdScrollUp},
			{&k.ScrollDown, CmdScrollDown},
			{&k.PageUp, CmdPageUp},
			{&k.PageDown, CmdPageDown},
			{&k.ToggleHelp, CmdToggleHelp},
			{&k.Quit, CmdQuit},
		}
	default:
		return []entry{
			{&k.FocusNext, CmdFocusNext},
			{&k.FocusPrev, CmdFocusPrev},
			{&k.JumpToStage, CmdJumpToStage},
			{&k.Open, CmdOpenDetail},
			{&k.ToggleStats, CmdToggleStats},
			{&k.ToggleHelp, CmdToggleHelp},
			{&k.Quit, CmdQuit},
		}
	}
}

// Lookup returns the command bound to msg in mode, or CmdNone.
func (k *KeyMap) Lookup(mode Mode, msg tea.KeyMsg) Command {
	for _, e := range k.table(mode) {
		if key.Matches(msg, *e.binding) {
			return e.cmd
		}
	}
	return CmdNone
}

// Help returns the help.KeyMap for mode.
func (k *KeyMap) Help(mode Mode) ModeHelp {
	return ModeHelp{keys: k, mode: mode}
}

// ModeHelp adapts a KeyMap to bubbles/help for one mode.
type ModeHelp struct {
	keys *KeyMap
	mode Mode
}

// ShortHelp implements help.KeyMap.
func (h ModeHelp) ShortHelp() []key.Binding {
	k := h.keys
	if h.mode == ModeDetail {
		return []key.Binding{k.NextCategory, k.SelectCategory, k.Copy, k.ScrollDown, k.Close, k.Quit}
	}
	return []key.Binding{k.FocusPrev, k.FocusNext, k.Open, k.ToggleStats, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (h ModeHelp) FullHelp() [][]key.Binding {
	k := h.keys
	if h.mode == ModeDetail {
		return [][]key.Binding{
			{k.NextCategory, k.PrevCategory, k.SelectCategory},
			{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
			{k.Copy, k.Close, k.ToggleHelp, k.Quit},
		}
	}
	return [][]key.Binding{
		{k.FocusPrev, k.FocusNext, k.JumpToStage},
		{k.Open, k.ToggleStats, k.ToggleHelp, k.Quit},
	}
}

// Digit returns the numeric value of a single digit key press, or 0.
func Digit(msg tea.KeyMsg) int {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0
	}
	return int(r - '0')
}
