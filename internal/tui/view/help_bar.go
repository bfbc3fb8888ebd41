package view

import (
	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
)

// RenderHelpBar renders the short help for keys at the given width.
func RenderHelpBar(s *styles.Styles, h help.Model, keys help.KeyMap, width int) string {
	h.Width = width
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.Muted
	h.Styles.ShortSeparator = s.Muted
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.Muted
	h.Styles.FullSeparator = s.Muted
	return s.HelpBar.Render(h.View(keys))
}
