package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/feeflow/internal/content"
	"github.com/Iron-Ham/feeflow/internal/loader"
	"github.com/Iron-Ham/feeflow/internal/stage"
	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/Iron-Ham/feeflow/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// Detail modal text.
const (
	CopyLabel    = "複製"
	CopiedLabel  = "已複製"
	LoadingLabel = "檔案載入中..."
)

// DetailState holds what the detail modal needs to render.
type DetailState struct {
	Stage stage.Descriptor
	// View is the loader's result for the active category.
	View loader.View
	// Body is the rendered viewport holding the text.
	Body string
	// Spinner is the current spinner frame, shown while loading.
	Spinner string
	// Copied reports whether the copy confirmation is showing.
	Copied bool
	// ScrollPercent is the viewport scroll position in [0, 1].
	ScrollPercent float64
	Width         int
}

// RenderDetail renders the detail modal for one stage.
func RenderDetail(s *styles.Styles, state DetailState) string {
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		s.ModalBadge.Render(state.Stage.Badge()),
		" ",
		s.CardTitle.Render(state.Stage.Title),
		"  ",
		s.Muted.Render(state.Stage.EnglishTitle),
	)
	if state.Width > 0 {
		title = util.Truncate(title, state.Width-4)
	}

	tabs := RenderTabs(s, state.View.Category)
	copyBtn := RenderCopyButton(s, state.Copied)
	var tabRow string
	if gap := state.Width - lipgloss.Width(tabs) - lipgloss.Width(copyBtn) - 4; gap > 0 {
		tabRow = lipgloss.JoinHorizontal(lipgloss.Center, tabs, util.Gap(gap), copyBtn)
	} else {
		tabRow = lipgloss.JoinHorizontal(lipgloss.Center, tabs, " ", copyBtn)
	}

	// Generated fallback text is shown exactly like fetched text.
	parts := []string{title, "", tabRow, renderBody(s, state)}
	if state.View.Kind == loader.ViewText {
		parts = append(parts, s.Muted.Render(fmt.Sprintf("%3.0f%%", state.ScrollPercent*100)))
	}

	modal := s.Modal
	if state.Width > 0 {
		modal = modal.Width(state.Width - 2)
	}
	return modal.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// RenderTabs renders the category tabs with active highlighted.
func RenderTabs(s *styles.Styles, active content.Category) string {
	tabs := make([]string, 0, len(content.Categories))
	for _, c := range content.Categories {
		label := c.Label()
		if c == active {
			tabs = append(tabs, s.TabActive.Render(label))
		} else {
			tabs = append(tabs, s.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderCopyButton renders the copy button in its current state.
func RenderCopyButton(s *styles.Styles, copied bool) string {
	if copied {
		return s.CopyConfirmed.Render("✓ " + CopiedLabel)
	}
	return s.CopyButton.Render(CopyLabel)
}

func renderBody(s *styles.Styles, state DetailState) string {
	var body string
	switch state.View.Kind {
	case loader.ViewText:
		body = state.Body
	case loader.ViewLoading, loader.ViewEmpty:
		body = s.Muted.Render(strings.TrimSpace(state.Spinner + " " + LoadingLabel))
	}
	return s.ContentBox.Render(body)
}
