package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Iron-Ham/feeflow/internal/errors"
)

// DefaultBucket is the Supabase Storage bucket holding the stage documents.
const DefaultBucket = "documents"

// Supabase downloads objects through the Supabase Storage REST API:
//
//	GET {baseURL}/storage/v1/object/{bucket}/{name}
//
// with the project key in both the apikey and Authorization headers.
// No request timeout is applied; callers cancel through the context.
type Supabase struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
}

// NewSupabase creates a Supabase store. An empty bucket means DefaultBucket.
// An empty baseURL yields a store whose fetches all fail with
// ErrStoreUnavailable.
func NewSupabase(baseURL, apiKey, bucket string) *Supabase {
	if bucket == "" {
		bucket = DefaultBucket
	}
	return &Supabase{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		bucket:  bucket,
		client:  &http.Client{},
	}
}

// WithHTTPClient replaces the HTTP client.
func (s *Supabase) WithHTTPClient(c *http.Client) *Supabase {
	s.client = c
	return s
}

// Bucket returns the bucket objects are read from.
func (s *Supabase) Bucket() string {
	return s.bucket
}

// ObjectURL returns the download URL for name. Each path segment is escaped.
func (s *Supabase) ObjectURL(name string) string {
	segments := strings.Split(name, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(s.bucket), strings.Join(segments, "/"))
}

// Fetch implements Store.
func (s *Supabase) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(BackendSupabase, name); err != nil {
		return nil, err
	}
	if s.baseURL == "" {
		return nil, errors.NewFetchError(name, errors.ErrStoreUnavailable).
			WithBackend(BackendSupabase).
			WithMessage("store url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.ObjectURL(name), nil)
	if err != nil {
		return nil, errors.NewFetchError(name, err).WithBackend(BackendSupabase)
	}
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if cerr := canceled(ctx, BackendSupabase, name); cerr != nil {
			return nil, cerr
		}
		return nil, errors.NewFetchError(name, errors.Join(errors.ErrStoreUnavailable, err)).
			WithBackend(BackendSupabase).
			WithRetryable(true)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if cerr := canceled(ctx, BackendSupabase, name); cerr != nil {
			return nil, cerr
		}
		return nil, errors.NewFetchError(name, errors.Join(errors.ErrStoreUnavailable, err)).
			WithBackend(BackendSupabase).
			WithStatus(resp.StatusCode).
			WithRetryable(true)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, s.statusError(name, resp.StatusCode, body)
	}
	return body, nil
}

// statusError converts a non-2xx response into a FetchError. Storage reports
// some missing objects as 400 with a JSON body whose statusCode is "404" or
// whose error is "not_found"; those are treated as not found too.
func (s *Supabase) statusError(name string, status int, body []byte) *errors.FetchError {
	var message, code, errName string
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		message = parsed.Get("message").String()
		errName = parsed.Get("error").String()
		code = parsed.Get("statusCode").String()
		if message == "" {
			message = errName
		}
	}

	cause := errors.ErrStoreUnavailable
	if status == http.StatusNotFound || code == "404" || strings.EqualFold(errName, "not_found") {
		cause = errors.ErrObjectNotFound
	}

	return errors.NewFetchError(name, cause).
		WithBackend(BackendSupabase).
		WithStatus(status).
		WithMessage(message)
}
