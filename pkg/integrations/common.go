package integrations

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/httputil"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the upstream resource doesn't exist.
	ErrNotFound = stderrors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = stderrors.New("network error")

	// ErrForbidden marks a 401 or 403 response. It is always joined with
	// ErrNetwork, so callers that only classify still see a network failure.
	ErrForbidden = stderrors.New("forbidden")
)

// BrowserUserAgent is sent to upstreams that reject non-browser clients.
const BrowserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// NewHTTPClient creates an HTTP client with the standard upstream timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NewCache creates a file cache with the given TTL in the default cache
// directory. See [httputil.NewCache].
func NewCache(ttl time.Duration) (*httputil.Cache, error) {
	return httputil.NewCache("", ttl)
}

// Classify converts a client error into a coded error. Cancellation is
// returned unchanged so callers can tell it apart from upstream failures.
func Classify(err error, format string, args ...any) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, context.Canceled):
		return err
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, format, args...)
	case errors.GetCode(err) != "":
		return err
	case stderrors.Is(err, ErrNotFound):
		return errors.Wrap(errors.ErrCodeNotFound, err, format, args...)
	case stderrors.Is(err, ErrNetwork):
		return errors.Wrap(errors.ErrCodeNetwork, err, format, args...)
	default:
		return errors.Wrap(errors.ErrCodeFetch, err, format, args...)
	}
}
