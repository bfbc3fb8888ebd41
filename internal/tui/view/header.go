package view

import (
	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/Iron-Ham/feeflow/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// Header text shown above the stage cards.
const (
	SystemName     = "勞務費自動化處理系統"
	SystemNameEN   = "Professional Fee Reconciliation Tool"
	WorkflowTitle  = "五階段處理流程展示"
	WorkflowTitleE = "Professional Processing Workflow"
	SectionTitle   = "五階段處理流程視覺化"
)

// RenderHeader renders the header chrome at the given width. Narrow
// terminals get the two title blocks stacked.
func RenderHeader(s *styles.Styles, width int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		s.HeaderTitle.Render(SystemName),
		s.HeaderSubtitle.Render(SystemNameEN),
	)
	right := lipgloss.JoinVertical(lipgloss.Right,
		s.Primary.Bold(true).Render(WorkflowTitle),
		s.HeaderSubtitle.Render(WorkflowTitleE),
	)

	var body string
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap >= 2 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, util.Gap(gap), right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	header := s.Header
	if width > 0 {
		header = header.Width(width)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header.Render(body),
		s.Text.Bold(true).Render(SectionTitle),
	)
}
