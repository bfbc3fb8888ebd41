package styles

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors are hex (#RRGGBB or #RGB). Optional colors fall back to a
// related base color.
type ThemeColors struct {
	Primary string `yaml:"primary"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	Muted   string `yaml:"muted"`
	Surface string `yaml:"surface"`
	Text    string `yaml:"text"`
	Border  string `yaml:"border"`

	PrimaryDark string `yaml:"primary_dark,omitempty"`
	OnPrimary   string `yaml:"on_primary,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return ParseThemeFile(data)
}

// ParseThemeFile decodes and validates YAML theme data.
func ParseThemeFile(data []byte) (*ThemeFile, error) {
	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version == "" {
		return errors.New("theme version is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	// Ordered so the first reported problem is stable
	required := []struct{ name, value string }{
		{"primary", t.Colors.Primary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.value == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !isValidHexColor(c.value) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.value)
		}
	}

	optional := []struct{ name, value string }{
		{"primary_dark", t.Colors.PrimaryDark},
		{"on_primary", t.Colors.OnPrimary},
	}
	for _, c := range optional {
		if c.value != "" && !isValidHexColor(c.value) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.value)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	return &ColorPalette{
		Primary:     lipgloss.Color(t.Colors.Primary),
		PrimaryDark: colorOrDefault(t.Colors.PrimaryDark, t.Colors.Primary),
		Warning:     lipgloss.Color(t.Colors.Warning),
		Error:       lipgloss.Color(t.Colors.Error),
		Muted:       lipgloss.Color(t.Colors.Muted),
		Surface:     lipgloss.Color(t.Colors.Surface),
		Text:        lipgloss.Color(t.Colors.Text),
		OnPrimary:   colorOrDefault(t.Colors.OnPrimary, t.Colors.Surface),
		Border:      lipgloss.Color(t.Colors.Border),
	}
}

// colorOrDefault returns color if set, otherwise defaultColor.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// ExportTheme renders a built-in palette as theme-file YAML, a starting
// point for a custom theme.
func ExportTheme(name ThemeName) ([]byte, error) {
	if !IsBuiltinTheme(string(name)) {
		return nil, fmt.Errorf("unknown theme: %s", name)
	}
	p := GetPalette(name)
	tf := &ThemeFile{
		Name:    string(name),
		Version: "1",
		Colors: ThemeColors{
			Primary:     string(p.Primary),
			Warning:     string(p.Warning),
			Error:       string(p.Error),
			Muted:       string(p.Muted),
			Surface:     string(p.Surface),
			Text:        string(p.Text),
			Border:      string(p.Border),
			PrimaryDark: string(p.PrimaryDark),
			OnPrimary:   string(p.OnPrimary),
		},
	}
	return yaml.Marshal(tf)
}
