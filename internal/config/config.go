package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete feeflow configuration
type Config struct {
	Store     StoreConfig     `mapstructure:"store"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	TUI       TUIConfig       `mapstructure:"tui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// StoreConfig selects and configures the remote object store that holds the
// per-stage documents
type StoreConfig struct {
	// Backend is the store implementation: "supabase", "dir", "redis" or "none" (default: "supabase")
	Backend string `mapstructure:"backend"`
	// URL is the Supabase project URL, e.g. https://abc.supabase.co
	URL string `mapstructure:"url"`
	// APIKey is the Supabase anon or service key sent with every download
	APIKey string `mapstructure:"api_key"`
	// Bucket is the storage bucket holding the documents (default: "documents")
	Bucket string `mapstructure:"bucket"`
	// Dir is the root directory for the "dir" backend. Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir"`
	// RedisURL is the redis:// URL (or host:port) for the "redis" backend
	RedisURL string `mapstructure:"redis_url"`
	// KeyPrefix is prepended to object names for the "redis" backend
	KeyPrefix string `mapstructure:"key_prefix"`
}

// ClipboardConfig controls how the copy action reaches the clipboard
type ClipboardConfig struct {
	// Mode is "system" (native clipboard utilities) or "osc52" (terminal escape
	// sequence, works over SSH) (default: "system")
	Mode string `mapstructure:"mode"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the built-in color theme: "default" or "mono" (default: "default")
	Theme string `mapstructure:"theme"`
	// ThemeFile is an optional YAML theme file that overrides Theme
	ThemeFile string `mapstructure:"theme_file"`
	// ShowStats shows the progress summary panel on startup (default: false)
	ShowStats bool `mapstructure:"show_stats"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is where debug.log is written. Empty means <config dir>/logs.
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files (default: true)
	Compress bool `mapstructure:"compress"`
}

// ResolveDir returns the store directory with ~ expanded.
func (s *StoreConfig) ResolveDir() string {
	return expandHome(s.Dir)
}

// ResolveDir returns the directory logs are written to.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}
	return expandHome(l.Dir)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   "supabase",
			URL:       "",
			APIKey:    "",
			Bucket:    "documents",
			Dir:       "",
			RedisURL:  "",
			KeyPrefix: "",
		},
		Clipboard: ClipboardConfig{
			Mode: "system",
		},
		TUI: TUIConfig{
			Theme:     "default",
			ThemeFile: "",
			ShowStats: false,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   true,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Store defaults
	viper.SetDefault("store.backend", defaults.Store.Backend)
	viper.SetDefault("store.url", defaults.Store.URL)
	viper.SetDefault("store.api_key", defaults.Store.APIKey)
	viper.SetDefault("store.bucket", defaults.Store.Bucket)
	viper.SetDefault("store.dir", defaults.Store.Dir)
	viper.SetDefault("store.redis_url", defaults.Store.RedisURL)
	viper.SetDefault("store.key_prefix", defaults.Store.KeyPrefix)

	// Clipboard defaults
	viper.SetDefault("clipboard.mode", defaults.Clipboard.Mode)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.theme_file", defaults.TUI.ThemeFile)
	viper.SetDefault("tui.show_stats", defaults.TUI.ShowStats)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "feeflow")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".feeflow"
	}
	return filepath.Join(home, ".config", "feeflow")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
