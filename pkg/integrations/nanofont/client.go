package nanofont

import (
	"context"
	"strings"

	"github.com/matzehuels/statcard/pkg/buildinfo"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/fonts"
	"github.com/matzehuels/statcard/pkg/httputil"
	"github.com/matzehuels/statcard/pkg/integrations"
)

// DefaultBaseURL serves one JSON document per font key.
const DefaultBaseURL = "https://cdn.jsdelivr.net/gh/JacobLinCool/nano-font@json"

// Client resolves fonts from a directory of `<key>.json` documents shaped
// like {"name": "...", "base64": "..."}. It implements [fonts.Resolver].
type Client struct {
	*integrations.Client
	baseURL string
	refresh bool
}

var _ fonts.Resolver = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL replaces the document directory.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithRefresh skips cache reads; fetched payloads are still written.
func WithRefresh(refresh bool) Option {
	return func(c *Client) { c.refresh = refresh }
}

// NewClient creates a font client. cache may be nil; otherwise payloads are
// stored under its "font:" namespace.
func NewClient(cache *httputil.Cache, opts ...Option) *Client {
	if cache != nil {
		cache = cache.Namespace("font:")
	}
	c := &Client{
		Client:  integrations.NewClient(cache, map[string]string{"User-Agent": buildinfo.UserAgent()}),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve fetches the payload for f. The returned Base64 field is always a
// data URI. An empty Name falls back to the font's family.
func (c *Client) Resolve(ctx context.Context, f fonts.Font) (fonts.Resolved, error) {
	if f.Key == "" {
		return fonts.Resolved{}, errors.New(errors.ErrCodeInvalidFont, "font %q has no key", f.Family)
	}

	var r fonts.Resolved
	err := c.Cached(ctx, f.Key, c.refresh, &r, func() error {
		return c.Get(ctx, c.baseURL+"/"+f.Key+".json", &r)
	})
	if err != nil {
		return fonts.Resolved{}, integrations.Classify(err, "fetch font %q", f.Key)
	}
	if r.Base64 == "" {
		return fonts.Resolved{}, errors.New(errors.ErrCodeFetch, "font %q has an empty payload", f.Key)
	}
	if r.Name == "" {
		r.Name = f.Family
	}
	r.Base64 = r.DataURI()
	return r, nil
}
