package nanofont

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/fonts"
	"github.com/matzehuels/statcard/pkg/httputil"
)

func newServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/baloo_2.json":
			w.Write([]byte(`{"name":"Baloo 2","base64":"d09GMgABAAAA"}`))
		case "/unnamed.json":
			w.Write([]byte(`{"base64":"data:font/woff2;base64,AAAA"}`))
		case "/empty.json":
			w.Write([]byte(`{"name":"Empty","base64":""}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T, server *httptest.Server, opts ...Option) *Client {
	t.Helper()
	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	c := NewClient(cache, append([]Option{WithBaseURL(server.URL)}, opts...)...)
	c.SetHTTPClient(server.Client())
	return c
}

func TestResolve(t *testing.T) {
	var hits atomic.Int32
	c := newClient(t, newServer(t, &hits))

	r, err := c.Resolve(context.Background(), fonts.Baloo2)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if r.Name != "Baloo 2" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Base64 != "data:font/woff2;base64,d09GMgABAAAA" {
		t.Errorf("Base64 = %q", r.Base64)
	}
}

func TestResolveCaches(t *testing.T) {
	var hits atomic.Int32
	c := newClient(t, newServer(t, &hits))
	ctx := context.Background()

	for range 3 {
		if _, err := c.Resolve(ctx, fonts.Baloo2); err != nil {
			t.Fatal(err)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
}

func TestResolveRefresh(t *testing.T) {
	var hits atomic.Int32
	c := newClient(t, newServer(t, &hits), WithRefresh(true))
	ctx := context.Background()

	for range 2 {
		if _, err := c.Resolve(ctx, fonts.Baloo2); err != nil {
			t.Fatal(err)
		}
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("server hits = %d, want 2", n)
	}
}

func TestResolveFallbackName(t *testing.T) {
	var hits atomic.Int32
	c := newClient(t, newServer(t, &hits))

	r, err := c.Resolve(context.Background(), fonts.Font{Family: "Unnamed Sans", Key: "unnamed"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Unnamed Sans" {
		t.Errorf("Name = %q, want family fallback", r.Name)
	}
	if strings.Count(r.Base64, "data:") != 1 {
		t.Errorf("data URI should not be prefixed twice: %q", r.Base64)
	}
}

func TestResolveErrors(t *testing.T) {
	var hits atomic.Int32
	c := newClient(t, newServer(t, &hits))

	tests := []struct {
		name string
		font fonts.Font
		want errors.Code
	}{
		{"missing document", fonts.Font{Family: "Nope", Key: "nope"}, errors.ErrCodeNotFound},
		{"empty payload", fonts.Font{Family: "Empty", Key: "empty"}, errors.ErrCodeFetch},
		{"no key", fonts.Font{Family: "Keyless"}, errors.ErrCodeInvalidFont},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Resolve(context.Background(), tt.font)
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("code = %q, want %q (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestNewClientWithoutCache(t *testing.T) {
	var hits atomic.Int32
	server := newServer(t, &hits)
	c := NewClient(nil, WithBaseURL(server.URL+"/"))
	c.SetHTTPClient(server.Client())

	for range 2 {
		if _, err := c.Resolve(context.Background(), fonts.Baloo2); err != nil {
			t.Fatal(err)
		}
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("server hits = %d, want 2", n)
	}
}
