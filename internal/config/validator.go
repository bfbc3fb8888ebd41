package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "store.backend")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidStoreBackends returns the list of valid store backends
func ValidStoreBackends() []string {
	return []string{"supabase", "dir", "redis", "none"}
}

// ValidClipboardModes returns the list of valid clipboard modes
func ValidClipboardModes() []string {
	return []string{"system", "osc52"}
}

// ValidThemes returns the list of built-in themes
func ValidThemes() []string {
	return []string{"default", "mono"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateStore()...)
	errors = append(errors, c.validateClipboard()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateStore validates the StoreConfig. Backend-specific settings are only
// checked for the selected backend.
func (c *Config) validateStore() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidStoreBackends(), c.Store.Backend) {
		errors = append(errors, ValidationError{
			Field:   "store.backend",
			Value:   c.Store.Backend,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidStoreBackends(), ", ")),
		})
		return errors
	}

	switch c.Store.Backend {
	case "supabase":
		// An empty URL is allowed: every fetch then falls back to placeholder content.
		if c.Store.URL != "" {
			u, err := url.Parse(c.Store.URL)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				errors = append(errors, ValidationError{
					Field:   "store.url",
					Value:   c.Store.URL,
					Message: "must be an absolute http(s) URL",
				})
			}
		}
		if c.Store.Bucket == "" {
			errors = append(errors, ValidationError{
				Field:   "store.bucket",
				Value:   c.Store.Bucket,
				Message: "must not be empty",
			})
		} else if strings.Contains(c.Store.Bucket, "/") {
			errors = append(errors, ValidationError{
				Field:   "store.bucket",
				Value:   c.Store.Bucket,
				Message: "must not contain '/'",
			})
		}
	case "dir":
		if c.Store.Dir == "" {
			errors = append(errors, ValidationError{
				Field:   "store.dir",
				Value:   c.Store.Dir,
				Message: "is required for the dir backend",
			})
		}
	case "redis":
		if c.Store.RedisURL == "" {
			errors = append(errors, ValidationError{
				Field:   "store.redis_url",
				Value:   c.Store.RedisURL,
				Message: "is required for the redis backend",
			})
		}
	}

	return errors
}

// validateClipboard validates the ClipboardConfig
func (c *Config) validateClipboard() []ValidationError {
	var errors []ValidationError

	if c.Clipboard.Mode != "" && !slices.Contains(ValidClipboardModes(), c.Clipboard.Mode) {
		errors = append(errors, ValidationError{
			Field:   "clipboard.mode",
			Value:   c.Clipboard.Mode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidClipboardModes(), ", ")),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// A theme file takes precedence, so the name is only checked without one
	if c.TUI.ThemeFile == "" && c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
