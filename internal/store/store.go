// Package store fetches stage documents from a remote object store.
//
// Every backend returns failures as *errors.FetchError so callers can log the
// object, backend and status uniformly. Callers never show these errors to
// the user; a failed fetch is replaced by generated placeholder content.
package store

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/Iron-Ham/feeflow/internal/config"
	"github.com/Iron-Ham/feeflow/internal/errors"
)

// Backend names accepted by New.
const (
	BackendSupabase = "supabase"
	BackendDir      = "dir"
	BackendRedis    = "redis"
	BackendNone     = "none"
)

// MaxNameLength is the longest object name accepted, in bytes.
const MaxNameLength = 1024

// Store downloads whole objects by name.
type Store interface {
	// Fetch returns the object's bytes. It blocks until the object is read,
	// the store fails, or ctx is done.
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// ValidateName checks that name is a usable object key: non-empty, at most
// MaxNameLength bytes, relative, free of ".." segments, backslashes and
// control characters.
func ValidateName(name string) error {
	invalid := func(msg string) error {
		return errors.NewValidationError(msg).
			WithField("name").
			WithValue(name).
			WithCause(errors.ErrInvalidObjectName)
	}

	if name == "" {
		return invalid("object name is empty")
	}
	if len(name) > MaxNameLength {
		return invalid(fmt.Sprintf("object name exceeds %d bytes", MaxNameLength))
	}
	if strings.HasPrefix(name, "/") {
		return invalid("object name must be relative")
	}
	if strings.ContainsRune(name, '\\') {
		return invalid("object name must not contain a backslash")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return invalid("object name must not contain control characters")
		}
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return invalid("path traversal is not allowed")
		}
	}
	return nil
}

// checkName validates name and wraps a rejection as a FetchError.
func checkName(backend, name string) error {
	if err := ValidateName(name); err != nil {
		return errors.NewFetchError(name, err).WithBackend(backend)
	}
	return nil
}

// canceled converts a context error into a FetchError, or returns nil when
// ctx is still live.
func canceled(ctx context.Context, backend, name string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewFetchError(name, errors.Join(errors.ErrCanceled, err)).
			WithBackend(backend).
			WithSeverity(errors.SeverityDebug)
	}
	return nil
}

// New builds the store selected by cfg.Backend.
func New(cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case BackendSupabase, "":
		return NewSupabase(cfg.URL, cfg.APIKey, cfg.Bucket), nil
	case BackendDir:
		return NewOSDir(cfg.ResolveDir()), nil
	case BackendRedis:
		return NewRedisFromURL(cfg.RedisURL, cfg.KeyPrefix)
	case BackendNone:
		return Unavailable{}, nil
	default:
		return nil, errors.NewValidationError("unknown store backend").
			WithField("store.backend").
			WithValue(cfg.Backend)
	}
}

// Unavailable is a Store that has nothing. Every fetch fails with
// ErrStoreUnavailable, so every document is the generated placeholder.
type Unavailable struct{}

// Fetch implements Store.
func (Unavailable) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(BackendNone, name); err != nil {
		return nil, err
	}
	if err := canceled(ctx, BackendNone, name); err != nil {
		return nil, err
	}
	return nil, errors.NewFetchError(name, errors.ErrStoreUnavailable).
		WithBackend(BackendNone).
		WithMessage("no store configured").
		WithSeverity(errors.SeverityInfo)
}
