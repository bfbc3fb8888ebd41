package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLookup(t *testing.T) {
	km := Default()

	tests := []struct {
		name string
		mode Mode
		msg  tea.KeyMsg
		want Command
	}{
		{"right focuses next", ModeDashboard, tea.KeyMsg{Type: tea.KeyRight}, CmdFocusNext},
		{"l focuses next", ModeDashboard, runes("l"), CmdFocusNext},
		{"h focuses prev", ModeDashboard, runes("h"), CmdFocusPrev},
		{"enter opens", ModeDashboard, tea.KeyMsg{Type: tea.KeyEnter}, CmdOpenDetail},
		{"digit jumps to stage", ModeDashboard, runes("4"), CmdJumpToStage},
		{"s toggles stats", ModeDashboard, runes("s"), CmdToggleStats},
		{"q quits", ModeDashboard, runes("q"), CmdQuit},
		{"ctrl+c quits", ModeDashboard, tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
		{"c is unbound on dashboard", ModeDashboard, runes("c"), CmdNone},
		{"? toggles help on dashboard", ModeDashboard, runes("?"), CmdToggleHelp},

		{"esc closes", ModeDetail, tea.KeyMsg{Type: tea.KeyEsc}, CmdCloseDetail},
		{"tab next category", ModeDetail, tea.KeyMsg{Type: tea.KeyTab}, CmdNextCategory},
		{"shift+tab prev category", ModeDetail, tea.KeyMsg{Type: tea.KeyShiftTab}, CmdPrevCategory},
		{"digit selects category", ModeDetail, runes("2"), CmdSelectCategory},
		{"digit 4 is unbound in detail", ModeDetail, runes("4"), CmdNone},
		{"c copies", ModeDetail, runes("c"), CmdCopy},
		{"j scrolls", ModeDetail, runes("j"), CmdScrollDown},
		{"up scrolls", ModeDetail, tea.KeyMsg{Type: tea.KeyUp}, CmdScrollUp},
		{"pgdown pages", ModeDetail, tea.KeyMsg{Type: tea.KeyPgDown}, CmdPageDown},
		{"enter is unbound in detail", ModeDetail, tea.KeyMsg{Type: tea.KeyEnter}, CmdNone},
		{"? toggles help in detail", ModeDetail, runes("?"), CmdToggleHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Lookup(tt.mode, tt.msg); got != tt.want {
				t.Errorf("Lookup(%s, %q) = %q, want %q", tt.mode, tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestLookup_DisabledBinding(t *testing.T) {
	km := Default()
	km.Copy.SetEnabled(false)
	if got := km.Lookup(ModeDetail, runes("c")); got != CmdNone {
		t.Errorf("disabled binding matched: %q", got)
	}
}

func TestHelp(t *testing.T) {
	km := Default()
	for _, mode := range []Mode{ModeDashboard, ModeDetail} {
		h := km.Help(mode)
		if len(h.ShortHelp()) == 0 {
			t.Errorf("%s: empty short help", mode)
		}
		if len(h.FullHelp()) == 0 {
			t.Errorf("%s: empty full help", mode)
		}
	}
	if km.Help(ModeDetail).ShortHelp()[2].Help().Desc != "複製" {
		t.Error("detail short help should advertise copy")
	}
	if got := km.Help(ModeDashboard).ShortHelp()[4].Help().Key; got != "?" {
		t.Errorf("dashboard short help key = %q, want the help toggle", got)
	}
}

func TestDigit(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{runes("1"), 1},
		{runes("5"), 5},
		{runes("0"), 0},
		{runes("a"), 0},
		{runes("12"), 0},
		{tea.KeyMsg{Type: tea.KeyEnter}, 0},
	}
	for _, tt := range tests {
		if got := Digit(tt.msg); got != tt.want {
			t.Errorf("Digit(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}
