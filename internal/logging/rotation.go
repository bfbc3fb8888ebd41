package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig holds configuration for log rotation.
type RotationConfig struct {
	// MaxSizeMB is the maximum size of a log file in megabytes before rotation.
	MaxSizeMB int
	// MaxBackups is the number of old log files to keep.
	// A value of 0 keeps every backup.
	MaxBackups int
	// MaxAgeDays removes backups older than this many days. 0 disables age pruning.
	MaxAgeDays int
	// Compress determines whether rotated log files are gzip compressed.
	Compress bool
}

// DefaultRotationConfig returns a RotationConfig with sensible defaults.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 0,
		Compress:   true,
	}
}

// NewRotatingWriter returns a lumberjack writer for {logDir}/debug.log.
// Rotated files are named debug-<timestamp>.log[.gz] next to it.
func NewRotatingWriter(logDir string, config RotationConfig) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if config.MaxSizeMB <= 0 {
		config.MaxSizeMB = DefaultRotationConfig().MaxSizeMB
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, LogFileName),
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   config.Compress,
		LocalTime:  true,
	}, nil
}

// NewLoggerWithRotation creates a Logger that writes JSON lines to
// {logDir}/debug.log and rotates it by size.
func NewLoggerWithRotation(logDir string, level string, config RotationConfig) (*Logger, error) {
	if logDir == "" {
		return nil, fmt.Errorf("log directory is required for rotation")
	}

	w, err := NewRotatingWriter(logDir, config)
	if err != nil {
		return nil, err
	}

	return newLogger(w, w, level), nil
}
