package tui

import (
	"strings"

	"github.com/Iron-Ham/feeflow/internal/stage"
	"github.com/Iron-Ham/feeflow/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.quitting {
		return ""
	}

	var b strings.Builder
	if s := m.loader.Session(); s != nil {
		b.WriteString(view.RenderDetail(m.styles, view.DetailState{
			Stage:         s.Stage,
			View:          m.loader.Current(),
			Body:          m.viewport.View(),
			Spinner:       m.spinner.View(),
			Copied:        m.loader.CopyConfirmed(),
			ScrollPercent: m.viewport.ScrollPercent(),
			Width:         m.width,
		}))
	} else {
		b.WriteString(m.renderDashboard())
	}

	b.WriteString("\n")
	b.WriteString(view.RenderHelpBar(m.styles, m.help, m.keys.Help(m.mode()), m.width))
	return b.String()
}

func (m Model) renderDashboard() string {
	parts := []string{
		view.RenderHeader(m.styles, m.width),
		view.RenderCards(m.styles, view.CardsState{
			Stages:  m.stages,
			Focused: m.focused,
			Width:   m.width,
		}),
	}
	if m.showStats {
		parts = append(parts, view.RenderStats(m.styles, m.progress, m.statsState()))
	}
	parts = append(parts, view.RenderChain(m.styles, min(m.width, view.RowWidth(len(m.stages)))))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// statsState collects the numbers for the progress summary panel.
func (m Model) statsState() view.StatsState {
	return view.StatsState{
		CurrentStage:    m.focusedStage().ID,
		TotalStages:     len(m.stages),
		CompletedStages: len(m.visited),
		Elapsed:         m.now().Sub(m.started),
		TotalFiles:      stage.TotalFiles(),
	}
}
