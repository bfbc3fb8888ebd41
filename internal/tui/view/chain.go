package view

import (
	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Processing chain text.
const (
	ChainTitle   = "完整處理鏈路展示"
	ChainInput   = "匯入_總明細.xlsx"
	ChainProcess = "分類處理"
	ChainOutput  = "調節表輸出"
	ChainCaption = "資料流程經過五個專業處理階段，確保每一步都符合企業級標準和合規要求"
)

// RenderChain renders the end-to-end processing chain strip.
func RenderChain(s *styles.Styles, width int) string {
	arrow := s.Arrow.Render(" → ")
	steps := lipgloss.JoinHorizontal(lipgloss.Center,
		s.ChainStep.Render(ChainInput),
		arrow,
		s.ChainStepMain.Render(ChainProcess),
		arrow,
		s.ChainStep.Render(ChainOutput),
	)

	box := s.ChainBox
	if width > 0 {
		box = box.Width(width - 2)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Text.Bold(true).Render(ChainTitle),
		"",
		steps,
		"",
		s.Muted.Render(ChainCaption),
	))
}
