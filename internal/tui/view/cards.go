package view

import (
	"strings"

	"github.com/Iron-Ham/feeflow/internal/stage"
	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Card layout constants.
const (
	// CardWidth is the outer width of one stage card.
	CardWidth = 30
	// ArrowWidth is the width of the connector between two cards.
	ArrowWidth = 3
	// HighlightsLabel introduces the bullet list on a card.
	HighlightsLabel = "處理重點："
	// StatsLabel introduces the file counts on a card.
	StatsLabel = "📊 處理統計"
	// OpenLabel is the call to action on the focused card.
	OpenLabel = "檢視詳細 ⏎"
)

// CardsState holds what the card row needs to render.
type CardsState struct {
	Stages []stage.Descriptor
	// Focused is the index into Stages of the highlighted card.
	Focused int
	// Width is the available terminal width.
	Width int
}

// RowWidth returns the width a horizontal row of n cards needs.
func RowWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*CardWidth + (n-1)*ArrowWidth
}

// Horizontal reports whether the cards fit side by side.
func (c CardsState) Horizontal() bool {
	return c.Width >= RowWidth(len(c.Stages))
}

// RenderCards renders one card per stage in catalog order. When the terminal
// is wide enough the cards sit in a row joined by arrows; otherwise they are
// stacked with a downward arrow between them.
func RenderCards(s *styles.Styles, state CardsState) string {
	if len(state.Stages) == 0 {
		return ""
	}

	cards := make([]string, 0, len(state.Stages)*2)
	horizontal := state.Horizontal()
	for i, d := range state.Stages {
		if i > 0 {
			if horizontal {
				cards = append(cards, s.Arrow.Width(ArrowWidth).Align(lipgloss.Center).Render("\n\n→"))
			} else {
				cards = append(cards, s.Arrow.Width(CardWidth).Align(lipgloss.Center).Render("↓"))
			}
		}
		cards = append(cards, RenderCard(s, d, i == state.Focused))
	}

	if horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// RenderCard renders a single stage card.
func RenderCard(s *styles.Styles, d stage.Descriptor, focused bool) string {
	inner := CardWidth - 4

	var b strings.Builder
	b.WriteString(s.CardBadge.Render(d.Badge()))
	b.WriteString("\n")
	b.WriteString(s.CardTitle.Width(inner).Render(d.Title))
	b.WriteString("\n")
	b.WriteString(s.Muted.Width(inner).Render(d.EnglishTitle))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(HighlightsLabel))
	for _, h := range d.Highlights {
		b.WriteString("\n")
		b.WriteString(s.Bullet.Render("• "))
		b.WriteString(s.Muted.Width(inner - 2).Render(h))
	}
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(StatsLabel))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(d.FileSummary()))

	style := s.Card
	if focused {
		style = s.CardFocused
		b.WriteString("\n\n")
		b.WriteString(s.Primary.Bold(true).Render(OpenLabel))
	}
	return style.Width(CardWidth - 2).Render(b.String())
}
