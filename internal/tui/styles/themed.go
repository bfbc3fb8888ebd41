package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains every lipgloss style the dashboard renders with, built
// from one palette.
type Styles struct {
	Palette ColorPalette

	// Convenience styles for colors
	Primary lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	// Header chrome
	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// Stage cards
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardBadge   lipgloss.Style
	CardTitle   lipgloss.Style
	Bullet      lipgloss.Style
	Arrow       lipgloss.Style

	// Processing chain strip
	ChainBox      lipgloss.Style
	ChainStep     lipgloss.Style
	ChainStepMain lipgloss.Style

	// Progress summary panel
	StatsBox     lipgloss.Style
	BadgeOK      lipgloss.Style
	BadgeWarning lipgloss.Style

	// Detail modal
	Modal         lipgloss.Style
	ModalBadge    lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	ContentBox    lipgloss.Style
	CopyButton    lipgloss.Style
	CopyConfirmed lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
}

// New builds the style set for p.
func New(p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}
	s := &Styles{Palette: *p}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		MarginBottom(1)
	s.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)
	s.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	s.CardFocused = s.Card.
		BorderForeground(p.Primary)
	s.CardBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Muted)
	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)
	s.Bullet = lipgloss.NewStyle().
		Foreground(p.Primary)
	s.Arrow = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.ChainBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2).
		MarginTop(1)
	s.ChainStep = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 1)
	s.ChainStepMain = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.OnPrimary).
		Background(p.Primary).
		Padding(0, 1)

	s.StatsBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	s.BadgeOK = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.OnPrimary).
		Background(p.Primary).
		Padding(0, 1)
	s.BadgeWarning = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.OnPrimary).
		Background(p.Warning).
		Padding(0, 1)

	s.Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	s.ModalBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.OnPrimary).
		Background(p.Primary).
		Padding(0, 1)
	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.OnPrimary).
		Background(p.Primary).
		Padding(0, 2)
	s.TabInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)
	s.ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text)
	s.CopyButton = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(0, 1)
	s.CopyConfirmed = s.CopyButton.
		BorderForeground(p.PrimaryDark).
		Foreground(p.Primary).
		Bold(true)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	return s
}

// Resolve picks the styles for the configured theme. A theme file wins over
// a theme name; an unreadable theme file is returned as an error together
// with the named theme's styles so the caller can log and continue.
func Resolve(theme, themeFile string) (*Styles, error) {
	if themeFile != "" {
		tf, err := LoadThemeFile(themeFile)
		if err != nil {
			return New(GetPalette(ThemeName(theme))), err
		}
		return New(tf.ToPalette()), nil
	}
	return New(GetPalette(ThemeName(theme))), nil
}
