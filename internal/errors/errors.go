// Package errors provides centralized error definitions and error handling utilities
// for feeflow. It defines domain-specific errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent failures at the two collaborator boundaries:
//   - FetchError: a remote object could not be fetched or decoded
//   - ClipboardError: text could not be written to the system clipboard
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid input or state
//
// Neither domain error ever reaches the dashboard. Fetch failures are replaced
// by generated placeholder content and clipboard failures simply leave the copy
// unconfirmed; both are only logged.
//
// # Usage
//
//	err := errors.NewFetchError("coding_3_prompt.md", errors.ErrObjectNotFound).
//	    WithBackend("supabase").
//	    WithStatus(404)
//
//	if errors.Is(err, errors.ErrObjectNotFound) { ... }
//
//	var fetchErr *errors.FetchError
//	if errors.As(err, &fetchErr) { ... }
//
//	switch errors.GetSeverity(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Remote store sentinel errors
var (
	// ErrObjectNotFound indicates that the store has no object with the requested name.
	ErrObjectNotFound = New("object not found")
	// ErrStoreUnavailable indicates that the store could not be reached or is not configured.
	ErrStoreUnavailable = New("store unavailable")
	// ErrInvalidObjectName indicates that an object name violates the store's key constraints.
	ErrInvalidObjectName = New("invalid object name")
	// ErrDecode indicates that fetched bytes could not be decoded as text.
	ErrDecode = New("content is not valid UTF-8 text")
)

// Clipboard sentinel errors
var (
	// ErrClipboardUnavailable indicates that no clipboard mechanism is usable.
	ErrClipboardUnavailable = New("clipboard unavailable")
)

// Content cache sentinel errors
var (
	// ErrNotLoading indicates a resolve was attempted on an entry that is not loading.
	ErrNotLoading = New("content entry is not loading")
	// ErrUnknownCategory indicates a content category outside the closed set.
	ErrUnknownCategory = New("unknown content category")
)

// General sentinel errors
var (
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// FeeflowError is the base interface for all feeflow errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type FeeflowError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message   string
	cause     error
	severity  Severity
	retryable bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// FetchError represents a failure to obtain text for a remote object: the
// object is missing, the store is unreachable, or the bytes did not decode.
//
// Example:
//
//	err := errors.NewFetchError("coding_1_simple.md", errors.ErrObjectNotFound).WithStatus(404)
//	fmt.Println(err) // "fetch error [object=coding_1_simple.md, status=404]: fetch failed: object not found"
type FetchError struct {
	baseError
	Object  string
	Backend string
	Status  int
}

// NewFetchError creates a new FetchError for the named object.
// Missing objects are reported at warning severity; everything else is an error.
func NewFetchError(object string, cause error) *FetchError {
	severity := SeverityError
	if errors.Is(cause, ErrObjectNotFound) {
		severity = SeverityWarning
	}
	return &FetchError{
		baseError: baseError{
			message:  "fetch failed",
			cause:    cause,
			severity: severity,
		},
		Object: object,
	}
}

// WithBackend records which store backend produced the error.
func (e *FetchError) WithBackend(backend string) *FetchError {
	e.Backend = backend
	return e
}

// WithStatus records the HTTP status returned by the store.
// Server-side failures (5xx) and throttling (429) are marked retryable.
func (e *FetchError) WithStatus(status int) *FetchError {
	e.Status = status
	if status >= 500 || status == 429 {
		e.retryable = true
	}
	return e
}

// WithMessage replaces the generic message with a store-provided one.
func (e *FetchError) WithMessage(message string) *FetchError {
	if message != "" {
		e.message = message
	}
	return e
}

// WithSeverity sets the error severity.
func (e *FetchError) WithSeverity(s Severity) *FetchError {
	e.severity = s
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *FetchError) WithRetryable(r bool) *FetchError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *FetchError) Error() string {
	var parts []string
	if e.Object != "" {
		parts = append(parts, fmt.Sprintf("object=%s", e.Object))
	}
	if e.Backend != "" {
		parts = append(parts, fmt.Sprintf("backend=%s", e.Backend))
	}
	if e.Status != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}

	prefix := "fetch error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("fetch error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *FetchError) Is(target error) bool {
	if _, ok := target.(*FetchError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ClipboardError represents a failure to write to the clipboard
// (permission denied, no clipboard utility installed, and so on).
type ClipboardError struct {
	baseError
	Mechanism string
}

// NewClipboardError creates a new ClipboardError.
func NewClipboardError(mechanism string, cause error) *ClipboardError {
	return &ClipboardError{
		baseError: baseError{
			message:  "clipboard write failed",
			cause:    cause,
			severity: SeverityWarning,
		},
		Mechanism: mechanism,
	}
}

// Error returns the formatted error message.
func (e *ClipboardError) Error() string {
	prefix := "clipboard error"
	if e.Mechanism != "" {
		prefix = fmt.Sprintf("clipboard error [%s]", e.Mechanism)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ClipboardError) Is(target error) bool {
	if _, ok := target.(*ClipboardError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input.
//
// Example:
//
//	err := errors.NewValidationError("path traversal is not allowed").
//	    WithField("name").
//	    WithValue("../secrets")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:  message,
			cause:    ErrInvalidInput,
			severity: SeverityWarning,
		},
	}
}

// WithField sets the field that failed validation.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue sets the invalid value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause replaces the cause of the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation error")
	if e.Field != "" {
		b.WriteString(fmt.Sprintf(" [field=%s]", e.Field))
	}
	b.WriteString(": ")
	b.WriteString(e.message)
	if e.Value != nil {
		b.WriteString(fmt.Sprintf(" (got: %v)", e.Value))
	}
	return b.String()
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error is transient.
// Nothing in feeflow retries automatically; the flag is recorded in logs so
// operators can tell flaky stores from missing objects.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var feeflowErr FeeflowError
	if As(err, &feeflowErr) {
		return feeflowErr.IsRetryable()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement FeeflowError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var feeflowErr FeeflowError
	if As(err, &feeflowErr) {
		return feeflowErr.Severity()
	}

	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
