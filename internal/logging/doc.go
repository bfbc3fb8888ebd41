// Package logging provides structured logging for feeflow.
//
// This package wraps Go's log/slog to write JSON-formatted logs to a file.
// The dashboard owns the terminal while it runs, so log output never goes to
// stdout; store failures, fallback substitutions and clipboard problems are
// only visible here.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (session ID, stage, content category)
//   - Size-based rotation with optional gzip compression via lumberjack
//   - Reading, filtering and formatting of written logs
//
// # Basic Usage
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("dashboard started", "stages", 5)
//
// # Context Propagation
//
// Child loggers carry persistent attributes and share the root's writer:
//
//	sessionLogger := logger.WithSession(id).WithStage(3)
//	sessionLogger.WithCategory("details").Warn("fetch failed, using fallback", "object", "coding_3_prompt.md")
//
// Output:
//
//	{"time":"...","level":"WARN","msg":"fetch failed, using fallback","session_id":"...","stage":3,"category":"details","object":"coding_3_prompt.md"}
//
// # Reading Logs
//
// [AggregateLogs] parses debug.log back into [LogEntry] values, [FilterLogs]
// narrows them, and [WriteEntries] renders them as text or JSON. The
// "feeflow logs" command is built on these. [Follow] watches the directory
// and streams entries as they are appended.
package logging
