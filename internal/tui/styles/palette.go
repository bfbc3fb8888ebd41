package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Green accent on a dark surface
	ThemeMono    ThemeName = "mono"    // Grayscale, for terminals with poor color support
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{string(ThemeDefault), string(ThemeMono)}
}

// IsBuiltinTheme checks if a theme name is built in.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent (badges, arrows, active tab, progress fill)
	Primary lipgloss.Color
	// PrimaryDark is the accent for pressed or confirmed states
	PrimaryDark lipgloss.Color
	// Warning colors the warning badge and count
	Warning lipgloss.Color
	// Error marks the warning counter when it is non-zero
	Error lipgloss.Color
	// Muted is used for secondary text
	Muted lipgloss.Color
	// Surface is the panel background
	Surface lipgloss.Color
	// Text is the primary foreground
	Text lipgloss.Color
	// OnPrimary is text drawn on top of Primary
	OnPrimary lipgloss.Color
	// Border is the card and modal border
	Border lipgloss.Color
}

// DefaultPalette returns the default green-on-dark palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:     lipgloss.Color("#86BC25"),
		PrimaryDark: lipgloss.Color("#43B02A"),
		Warning:     lipgloss.Color("#F59E0B"),
		Error:       lipgloss.Color("#F87171"),
		Muted:       lipgloss.Color("#9CA3AF"),
		Surface:     lipgloss.Color("#1F2937"),
		Text:        lipgloss.Color("#F9FAFB"),
		OnPrimary:   lipgloss.Color("#000000"),
		Border:      lipgloss.Color("#6B7280"),
	}
}

// MonoPalette returns a grayscale palette.
func MonoPalette() *ColorPalette {
	return &ColorPalette{
		Primary:     lipgloss.Color("#FFFFFF"),
		PrimaryDark: lipgloss.Color("#D1D5DB"),
		Warning:     lipgloss.Color("#E5E7EB"),
		Error:       lipgloss.Color("#FFFFFF"),
		Muted:       lipgloss.Color("#9CA3AF"),
		Surface:     lipgloss.Color("#111111"),
		Text:        lipgloss.Color("#F3F4F6"),
		OnPrimary:   lipgloss.Color("#000000"),
		Border:      lipgloss.Color("#6B7280"),
	}
}

// GetPalette returns the palette for a built-in theme, or the default
// palette for unknown names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMono:
		return MonoPalette()
	default:
		return DefaultPalette()
	}
}
