package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	errs := cfg.Validate()
	if len(errs) != 0 {
		t.Errorf("Default config should be valid, got %d errors: %v", len(errs), errs)
	}
}

func hasFieldError(errs []ValidationError, field string) bool {
	for _, err := range errs {
		if err.Field == field {
			return true
		}
	}
	return false
}

func TestConfig_Validate_Store(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:      "unknown backend",
			modify:    func(c *Config) { c.Store.Backend = "s3" },
			wantField: "store.backend",
		},
		{
			name:      "empty backend",
			modify:    func(c *Config) { c.Store.Backend = "" },
			wantField: "store.backend",
		},
		{
			name:      "supabase url without scheme",
			modify:    func(c *Config) { c.Store.URL = "abc.supabase.co" },
			wantField: "store.url",
		},
		{
			name:      "supabase url with unsupported scheme",
			modify:    func(c *Config) { c.Store.URL = "ftp://abc.supabase.co" },
			wantField: "store.url",
		},
		{
			name:      "empty bucket",
			modify:    func(c *Config) { c.Store.Bucket = "" },
			wantField: "store.bucket",
		},
		{
			name:      "bucket with slash",
			modify:    func(c *Config) { c.Store.Bucket = "documents/v2" },
			wantField: "store.bucket",
		},
		{
			name:      "dir backend without dir",
			modify:    func(c *Config) { c.Store.Backend = "dir" },
			wantField: "store.dir",
		},
		{
			name:      "redis backend without url",
			modify:    func(c *Config) { c.Store.Backend = "redis" },
			wantField: "store.redis_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()
			if !hasFieldError(errs, tt.wantField) {
				t.Errorf("expected error for %s, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestConfig_Validate_Store_Valid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"supabase without url", func(c *Config) {}},
		{"supabase with https url", func(c *Config) { c.Store.URL = "https://abc.supabase.co" }},
		{"supabase with local http url", func(c *Config) { c.Store.URL = "http://127.0.0.1:54321" }},
		{"dir backend", func(c *Config) { c.Store.Backend = "dir"; c.Store.Dir = "~/docs" }},
		{"redis backend", func(c *Config) { c.Store.Backend = "redis"; c.Store.RedisURL = "redis://localhost:6379/0" }},
		{"none backend", func(c *Config) { c.Store.Backend = "none" }},
		{"bucket is ignored for dir", func(c *Config) { c.Store.Backend = "dir"; c.Store.Dir = "/tmp"; c.Store.Bucket = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if errs := cfg.Validate(); len(errs) != 0 {
				t.Errorf("expected no errors, got %v", errs)
			}
		})
	}
}

func TestConfig_Validate_Clipboard(t *testing.T) {
	for _, mode := range []string{"system", "osc52", ""} {
		cfg := Default()
		cfg.Clipboard.Mode = mode
		if hasFieldError(cfg.Validate(), "clipboard.mode") {
			t.Errorf("mode %q should be valid", mode)
		}
	}

	cfg := Default()
	cfg.Clipboard.Mode = "pbcopy"
	if !hasFieldError(cfg.Validate(), "clipboard.mode") {
		t.Error("expected error for unknown clipboard mode")
	}
}

func TestConfig_Validate_TUI(t *testing.T) {
	t.Run("unknown theme", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.Theme = "solarized"
		if !hasFieldError(cfg.Validate(), "tui.theme") {
			t.Error("expected error for unknown theme")
		}
	})

	t.Run("theme file overrides theme name", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.Theme = "solarized"
		cfg.TUI.ThemeFile = "/home/user/solarized.yaml"
		if hasFieldError(cfg.Validate(), "tui.theme") {
			t.Error("theme name should not be checked when a theme file is set")
		}
	})
}

func TestConfig_Validate_Logging(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", ""} {
			cfg := Default()
			cfg.Logging.Level = level
			if hasFieldError(cfg.Validate(), "logging.level") {
				t.Errorf("level %q should be valid", level)
			}
		}
	})

	t.Run("case sensitive log level", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "INFO"
		if !hasFieldError(cfg.Validate(), "logging.level") {
			t.Error("expected error for uppercase log level")
		}
	})

	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"zero max size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"oversized max size", func(c *Config) { c.Logging.MaxSizeMB = 1001 }, "logging.max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if !hasFieldError(cfg.Validate(), tt.wantField) {
				t.Errorf("expected error for %s", tt.wantField)
			}
		})
	}
}

func TestValidLogLevels(t *testing.T) {
	levels := ValidLogLevels()
	expected := []string{"debug", "info", "warn", "error"}

	if len(levels) != len(expected) {
		t.Fatalf("ValidLogLevels() returned %d levels, want %d", len(levels), len(expected))
	}
	for i, level := range expected {
		if levels[i] != level {
			t.Errorf("ValidLogLevels()[%d] = %q, want %q", i, levels[i], level)
		}
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Clipboard.Mode = "bogus"
	cfg.Logging.Level = "loud"
	cfg.Logging.MaxBackups = -5

	errs := cfg.Validate()
	if len(errs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(errs), errs)
	}
}
