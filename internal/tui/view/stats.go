package view

import (
	"fmt"
	"time"

	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress panel text.
const (
	StatsTitle      = "處理狀態監控"
	StatsBadgeOK    = "正常"
	StatsBadgeWarn  = "有警告"
	StatsProgress   = "處理進度"
	StatsCurrent    = "當前階段："
	StatsElapsed    = "處理時間"
	StatsFiles      = "檔案數量"
	StatsCompleted  = "已完成"
	StatsWarnings   = "警告"
	statsPanelWidth = 40
)

// StatsState holds the numbers shown in the progress summary panel.
type StatsState struct {
	// CurrentStage is the ID of the focused stage.
	CurrentStage int
	TotalStages  int
	// CompletedStages is how many stages have been inspected.
	CompletedStages int
	Elapsed         time.Duration
	TotalFiles      int
	// Warnings counts processing warnings. Content fetch failures are never
	// counted here.
	Warnings int
}

// Percent returns the completed fraction in [0, 1].
func (s StatsState) Percent() float64 {
	if s.TotalStages <= 0 {
		return 0
	}
	p := float64(s.CompletedStages) / float64(s.TotalStages)
	return min(max(p, 0), 1)
}

// NewProgressBar builds the progress bar used by the panel.
func NewProgressBar(s *styles.Styles) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(string(s.Palette.Primary)),
		progress.WithoutPercentage(),
	)
	bar.Width = statsPanelWidth - 4
	bar.EmptyColor = string(s.Palette.Border)
	return bar
}

// RenderStats renders the progress summary panel.
func RenderStats(s *styles.Styles, bar progress.Model, state StatsState) string {
	badge := s.BadgeOK.Render(StatsBadgeOK)
	if state.Warnings > 0 {
		badge = s.BadgeWarning.Render(StatsBadgeWarn)
	}
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Text.Bold(true).Render(StatsTitle), "  ", badge)

	progressLine := fmt.Sprintf("%s  %s", s.Muted.Render(StatsProgress),
		s.Text.Render(fmt.Sprintf("%d/%d 階段", state.CompletedStages, state.TotalStages)))

	current := s.Muted.Render(StatsCurrent) + s.Text.Bold(true).Render(fmt.Sprintf("Stage %d", state.CurrentStage))

	warnStyle := s.Text
	if state.Warnings > 0 {
		warnStyle = s.Error
	}
	grid := lipgloss.JoinVertical(lipgloss.Left,
		statCell(s, StatsElapsed, formatElapsed(state.Elapsed), s.Text)+statCell(s, StatsFiles, fmt.Sprint(state.TotalFiles), s.Text),
		statCell(s, StatsCompleted, fmt.Sprint(state.CompletedStages), s.Primary)+statCell(s, StatsWarnings, fmt.Sprint(state.Warnings), warnStyle),
	)

	return s.StatsBox.Width(statsPanelWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		progressLine,
		bar.ViewAs(state.Percent()),
		"",
		current,
		"",
		grid,
	))
}

func statCell(s *styles.Styles, label, value string, valueStyle lipgloss.Style) string {
	return lipgloss.NewStyle().Width((statsPanelWidth - 4) / 2).Render(
		s.Muted.Render(label) + " " + valueStyle.Bold(true).Render(value))
}

// formatElapsed renders a duration as mm:ss, or h:mm:ss past an hour.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, sec := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
