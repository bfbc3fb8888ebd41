package store

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/Iron-Ham/feeflow/internal/errors"
)

// Redis serves objects stored as plain string values under prefix+name.
type Redis struct {
	client redis.Cmdable
	prefix string
	closer func() error
}

// NewRedis creates a Redis store over an existing client.
func NewRedis(client redis.Cmdable, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// NewRedisFromURL connects to a Redis server. A redis:// or rediss:// URL is
// parsed; anything else is used as a host:port address.
func NewRedisFromURL(rawURL, prefix string) (*Redis, error) {
	var opts *redis.Options
	if strings.Contains(rawURL, "://") {
		parsed, err := redis.ParseURL(rawURL)
		if err != nil {
			return nil, errors.NewValidationError("invalid redis url").
				WithField("store.redis_url").
				WithValue(rawURL).
				WithCause(err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: rawURL}
	}

	client := redis.NewClient(opts)
	return &Redis{client: client, prefix: prefix, closer: client.Close}, nil
}

// Key returns the Redis key for an object name.
func (r *Redis) Key(name string) string {
	return r.prefix + name
}

// Fetch implements Store.
func (r *Redis) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(BackendRedis, name); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.Key(name)).Bytes()
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, redis.Nil):
		return nil, errors.NewFetchError(name, errors.ErrObjectNotFound).WithBackend(BackendRedis)
	default:
		if cerr := canceled(ctx, BackendRedis, name); cerr != nil {
			return nil, cerr
		}
		return nil, errors.NewFetchError(name, errors.Join(errors.ErrStoreUnavailable, err)).
			WithBackend(BackendRedis).
			WithRetryable(true)
	}
}

// Close releases the connection pool when the store owns the client.
func (r *Redis) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
