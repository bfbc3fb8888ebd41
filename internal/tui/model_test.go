package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/feeflow/internal/content"
	"github.com/Iron-Ham/feeflow/internal/errors"
	"github.com/Iron-Ham/feeflow/internal/loader"
	"github.com/Iron-Ham/feeflow/internal/testutil"
	"github.com/Iron-Ham/feeflow/internal/tui/view"
)

// noTick never fires; copy resets are tested in the loader package.
func noTick(time.Duration, func(time.Time) tea.Msg) tea.Cmd {
	return nil
}

func newTestModel(t *testing.T, objects map[string]string, opts ...ModelOption) (Model, *testutil.FakeStore, *testutil.FakeClipboard) {
	t.Helper()
	st := testutil.NewFakeStore(objects)
	clip := &testutil.FakeClipboard{}
	ld := loader.New(st, clip, loader.WithTick(noTick))
	t.Cleanup(ld.Close)

	m := NewModel(ld, opts...)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	return next.(Model), st, clip
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and returns the model and command.
func press(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key(s))
	return next.(Model), cmd
}

// deliver runs cmd and feeds its message back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestModel_FocusNavigation(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	tests := []struct {
		key  string
		want int
	}{
		{"left", 0},
		{"right", 1},
		{"l", 2},
		{"h", 1},
		{"5", 4},
		{"right", 4},
		{"1", 0},
	}
	for _, tt := range tests {
		m, _ = press(t, m, tt.key)
		if m.focused != tt.want {
			t.Errorf("after %q focused = %d, want %d", tt.key, m.focused, tt.want)
		}
	}
}

func TestModel_OpenLoadsOverview(t *testing.T) {
	m, st, _ := newTestModel(t, map[string]string{"coding_2_simple.md": "# Stage two"})

	m, _ = press(t, m, "2")
	m, cmd := press(t, m, "enter")
	if m.mode() != "detail" {
		t.Fatalf("mode = %s, want detail", m.mode())
	}
	if got := m.loader.Current().Kind; got != loader.ViewLoading {
		t.Errorf("Current().Kind = %s, want loading", got)
	}
	if !strings.Contains(m.View(), view.LoadingLabel) {
		t.Error("expected loading placeholder")
	}

	m = deliver(t, m, cmd)
	if st.Calls("coding_2_simple.md") != 1 {
		t.Errorf("fetch calls = %d, want 1", st.Calls("coding_2_simple.md"))
	}
	out := m.View()
	for _, want := range []string{"STAGE 02", "# Stage two", view.CopyLabel} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_CategoryNavigation(t *testing.T) {
	m, st, _ := newTestModel(t, map[string]string{
		"coding_1_simple.md": "overview",
		"coding_1_prompt.md": "doc",
		"coding_1.py":        "print('hi')",
	})

	m, cmd := press(t, m, "enter")
	m = deliver(t, m, cmd)

	m, cmd = press(t, m, "tab")
	if m.loader.Active() != content.TechnicalDoc {
		t.Fatalf("Active() = %v, want TechnicalDoc", m.loader.Active())
	}
	m = deliver(t, m, cmd)

	m, cmd = press(t, m, "3")
	m = deliver(t, m, cmd)
	if !strings.Contains(m.View(), "print('hi')") {
		t.Error("expected source listing in view")
	}

	// Back to a loaded tab: no fetch
	m, cmd = press(t, m, "shift+tab")
	if cmd != nil {
		t.Error("revisiting a loaded tab should not fetch")
	}
	if m.loader.Active() != content.TechnicalDoc {
		t.Errorf("Active() = %v, want TechnicalDoc", m.loader.Active())
	}
	if st.TotalCalls() != 3 {
		t.Errorf("TotalCalls() = %d, want 3", st.TotalCalls())
	}
}

func TestModel_FallbackIsSilent(t *testing.T) {
	m, st, _ := newTestModel(t, nil)
	st.FailWith("coding_4_simple.md", errors.ErrStoreUnavailable)

	m, _ = press(t, m, "4")
	m, cmd := press(t, m, "enter")
	m = deliver(t, m, cmd)

	out := m.View()
	if !strings.Contains(out, content.Objective(4)) {
		t.Error("expected generated overview with the stage objective")
	}
	for _, leak := range []string{"遠端", "預設內容", "store unavailable"} {
		if strings.Contains(out, leak) {
			t.Errorf("detail view reveals the failed fetch: %q", leak)
		}
	}
	if m.loader.FallbackCount() != 1 {
		t.Fatalf("FallbackCount() = %d, want 1", m.loader.FallbackCount())
	}

	m, _ = press(t, m, "esc")
	m, _ = press(t, m, "s")
	if m.statsState().Warnings != 0 {
		t.Errorf("Warnings = %d, want 0", m.statsState().Warnings)
	}
	out = m.View()
	if !strings.Contains(out, view.StatsBadgeOK) || strings.Contains(out, view.StatsBadgeWarn) {
		t.Error("progress panel should stay 正常 after a fallback")
	}
}

func TestModel_CloseDiscardsLateResult(t *testing.T) {
	m, _, _ := newTestModel(t, map[string]string{"coding_1_simple.md": "LATE-RESULT-42"})

	m, cmd := press(t, m, "enter")
	m, _ = press(t, m, "esc")
	if m.mode() != "dashboard" {
		t.Fatalf("mode = %s, want dashboard", m.mode())
	}

	m = deliver(t, m, cmd)
	if m.loader.Session() != nil {
		t.Error("late result reopened a session")
	}
	if strings.Contains(m.View(), "LATE-RESULT-42") {
		t.Error("late result leaked into the dashboard")
	}
}

func TestModel_Copy(t *testing.T) {
	m, _, clip := newTestModel(t, map[string]string{"coding_3_simple.md": "copy me"})

	m, _ = press(t, m, "3")
	m, cmd := press(t, m, "enter")
	m = deliver(t, m, cmd)

	m, _ = press(t, m, "c")
	if clip.Last() != "copy me" {
		t.Errorf("clipboard = %q, want %q", clip.Last(), "copy me")
	}
	if !strings.Contains(m.View(), view.CopiedLabel) {
		t.Error("expected copy confirmation label")
	}
}

func TestModel_ToggleStats(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	if strings.Contains(m.View(), view.StatsTitle) {
		t.Fatal("stats should be hidden by default")
	}

	m, _ = press(t, m, "s")
	if !strings.Contains(m.View(), view.StatsTitle) {
		t.Error("expected stats panel after toggle")
	}

	m, _ = press(t, m, "s")
	if strings.Contains(m.View(), view.StatsTitle) {
		t.Error("expected stats panel hidden after second toggle")
	}
}

func TestModel_StatsState(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	now := start
	m, _, _ := newTestModel(t, nil, WithNow(func() time.Time { return now }), WithShowStats(true))

	m, cmd := press(t, m, "enter")
	m = deliver(t, m, cmd)
	m, _ = press(t, m, "esc")
	m, _ = press(t, m, "3")
	m, cmd = press(t, m, "enter")
	m = deliver(t, m, cmd)
	m, _ = press(t, m, "esc")

	now = start.Add(90 * time.Second)
	got := m.statsState()
	if got.CurrentStage != 3 {
		t.Errorf("CurrentStage = %d, want 3", got.CurrentStage)
	}
	if got.CompletedStages != 2 || got.TotalStages != 5 {
		t.Errorf("progress = %d/%d, want 2/5", got.CompletedStages, got.TotalStages)
	}
	if got.Elapsed != 90*time.Second {
		t.Errorf("Elapsed = %v, want 90s", got.Elapsed)
	}
	if !strings.Contains(m.View(), "2/5 階段") {
		t.Error("expected progress text in view")
	}
}

func TestModel_InitialStage(t *testing.T) {
	m, _, _ := newTestModel(t, nil, WithInitialStage(5))

	next, cmd := m.Update(openStageMsg{id: 5})
	m = next.(Model)
	if m.focused != 4 {
		t.Errorf("focused = %d, want 4", m.focused)
	}
	if s := m.loader.Session(); s == nil || s.Stage.ID != 5 {
		t.Fatal("expected stage 5 to be open")
	}
	if cmd == nil {
		t.Error("expected overview load command")
	}

	next, cmd = m.Update(openStageMsg{id: 9})
	if cmd != nil {
		t.Error("unknown stage should not produce a command")
	}
	if next.(Model).loader.Session().Stage.ID != 5 {
		t.Error("unknown stage should leave the open session alone")
	}
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	m, _ = press(t, m, "enter")
	session := m.loader.Session()

	m, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !session.Done() {
		t.Error("quitting should close the open session")
	}
	if !m.quitting {
		t.Error("quitting flag not set")
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	ld := loader.New(testutil.NewFakeStore(nil), &testutil.FakeClipboard{})
	m := NewModel(ld)
	if m.View() != "Loading..." {
		t.Errorf("View() = %q, want Loading...", m.View())
	}
}

func TestModel_NarrowTerminalStacksCards(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	out := next.(Model).View()
	if !strings.Contains(out, "↓") {
		t.Error("expected stacked cards on a narrow terminal")
	}
}

func TestCalculateViewportDimensions(t *testing.T) {
	tests := []struct {
		width, height int
		wantW, wantH  int
	}{
		{100, 40, 94, 29},
		{12, 5, 10, minViewportHeight},
	}
	for _, tt := range tests {
		w, h := CalculateViewportDimensions(tt.width, tt.height)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("CalculateViewportDimensions(%d, %d) = %d, %d, want %d, %d",
				tt.width, tt.height, w, h, tt.wantW, tt.wantH)
		}
	}
}
