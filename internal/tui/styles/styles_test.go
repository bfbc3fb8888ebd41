package styles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

const validTheme = `name: Forest
author: someone
version: "1"
colors:
  primary: "#2E7D32"
  warning: "#FBC02D"
  error: "#C62828"
  muted: "#9E9E9E"
  surface: "#102010"
  text: "#FAFAFA"
  border: "#556B2F"
`

func TestGetPalette(t *testing.T) {
	if diff := cmp.Diff(DefaultPalette(), GetPalette(ThemeDefault)); diff != "" {
		t.Errorf("default palette mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(MonoPalette(), GetPalette(ThemeMono)); diff != "" {
		t.Errorf("mono palette mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(DefaultPalette(), GetPalette("unknown")); diff != "" {
		t.Errorf("unknown theme should use default:\n%s", diff)
	}
}

func TestIsBuiltinTheme(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if !IsBuiltinTheme(name) {
			t.Errorf("IsBuiltinTheme(%q) = false", name)
		}
	}
	if IsBuiltinTheme("dracula") {
		t.Error("dracula is not built in")
	}
}

func TestNew_UsesPalette(t *testing.T) {
	s := New(MonoPalette())
	if s.Palette.Primary != MonoPalette().Primary {
		t.Errorf("Palette.Primary = %v", s.Palette.Primary)
	}
	if got := s.TabActive.GetBackground(); got != MonoPalette().Primary {
		t.Errorf("TabActive background = %v, want %v", got, MonoPalette().Primary)
	}
	if got := s.CardFocused.GetBorderTopForeground(); got != MonoPalette().Primary {
		t.Errorf("CardFocused border = %v", got)
	}

	if New(nil).Palette.Primary != DefaultPalette().Primary {
		t.Error("New(nil) should use the default palette")
	}
}

func TestParseThemeFile(t *testing.T) {
	tf, err := ParseThemeFile([]byte(validTheme))
	if err != nil {
		t.Fatalf("ParseThemeFile() error = %v", err)
	}
	p := tf.ToPalette()
	if p.Primary != lipgloss.Color("#2E7D32") {
		t.Errorf("Primary = %v", p.Primary)
	}
	// Optional colors fall back
	if p.PrimaryDark != p.Primary {
		t.Errorf("PrimaryDark = %v, want primary", p.PrimaryDark)
	}
	if p.OnPrimary != lipgloss.Color("#102010") {
		t.Errorf("OnPrimary = %v, want surface", p.OnPrimary)
	}
}

func TestThemeFile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{"missing name", func(s string) string { return strings.Replace(s, "name: Forest\n", "", 1) }, "name is required"},
		{"missing version", func(s string) string { return strings.Replace(s, "version: \"1\"\n", "", 1) }, "version is required"},
		{"wrong version", func(s string) string { return strings.Replace(s, `version: "1"`, `version: "2"`, 1) }, "unsupported theme version"},
		{"missing color", func(s string) string { return strings.Replace(s, "  border: \"#556B2F\"\n", "", 1) }, "'border' is required"},
		{"bad hex", func(s string) string { return strings.Replace(s, "#2E7D32", "green", 1) }, "'primary' has invalid format"},
		{"bad optional", func(s string) string { return s + "  on_primary: \"#12\"\n" }, "'on_primary' has invalid format"},
		{"not yaml", func(string) string { return "colors: [" }, "parsing theme file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseThemeFile([]byte(tt.mutate(validTheme)))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseThemeFile() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forest.yaml")
	if err := os.WriteFile(path, []byte(validTheme), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Resolve("mono", path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if s.Palette.Primary != lipgloss.Color("#2E7D32") {
		t.Error("theme file should win over the theme name")
	}

	s, err = Resolve("mono", filepath.Join(dir, "missing.yaml"))
	if err == nil {
		t.Error("expected an error for a missing theme file")
	}
	if s == nil || s.Palette.Primary != MonoPalette().Primary {
		t.Error("a failed theme file should still return the named theme")
	}

	s, err = Resolve("default", "")
	if err != nil || s.Palette.Primary != DefaultPalette().Primary {
		t.Errorf("Resolve(default) = %v, %v", s.Palette.Primary, err)
	}
}

func TestExportTheme(t *testing.T) {
	data, err := ExportTheme(ThemeDefault)
	if err != nil {
		t.Fatalf("ExportTheme() error = %v", err)
	}
	tf, err := ParseThemeFile(data)
	if err != nil {
		t.Fatalf("exported theme does not parse: %v", err)
	}
	if diff := cmp.Diff(DefaultPalette(), tf.ToPalette()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := ExportTheme("nope"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}
