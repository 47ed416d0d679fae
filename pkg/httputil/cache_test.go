package httputil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fontPayload struct {
	Name   string `json:"name"`
	Base64 string `json:"base64"`
}

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	want := fontPayload{Name: "Baloo 2", Base64: "d09GMgABAAAAA"}
	if err := c.Set("font:baloo_2", want); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	var got fontPayload
	ok, err := c.Get("font:baloo_2", &got)
	if !ok || err != nil {
		t.Fatalf("Get() = %v, %v; want hit", ok, err)
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}

	var missing fontPayload
	if ok, err := c.Get("font:formula_1", &missing); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v; want false, nil", ok, err)
	}
}

func TestCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		ttl  time.Duration
		age  time.Duration
		hit  bool
	}{
		{"fresh", time.Hour, time.Minute, true},
		{"stale", time.Hour, 2 * time.Hour, false},
		{"no expiry", 0, 1000 * time.Hour, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := NewCache(dir, tt.ttl)
			c = c.Namespace(tt.name + ":")
			if err := c.Set("alice", "payload"); err != nil {
				t.Fatal(err)
			}
			past := time.Now().Add(-tt.age)
			if err := os.Chtimes(c.keyPath(c.prefix+"alice"), past, past); err != nil {
				t.Fatal(err)
			}

			var v string
			ok, err := c.Get("alice", &v)
			if ok != tt.hit {
				t.Errorf("Get() hit = %v, want %v", ok, tt.hit)
			}
			if !tt.hit && !errors.Is(err, ErrExpired) {
				t.Errorf("Get() error = %v, want ErrExpired", err)
			}
		})
	}
}

func TestCacheNamespace(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	fonts := c.Namespace("font:")
	profiles := c.Namespace("profile:")

	if err := fonts.Set("alice", "font-data"); err != nil {
		t.Fatal(err)
	}
	if err := profiles.Set("alice", "profile-data"); err != nil {
		t.Fatal(err)
	}

	var v string
	if ok, _ := fonts.Get("alice", &v); !ok || v != "font-data" {
		t.Errorf("fonts.Get() = %q", v)
	}
	if ok, _ := profiles.Get("alice", &v); !ok || v != "profile-data" {
		t.Errorf("profiles.Get() = %q", v)
	}

	// A namespaced key is the parent key with the prefix prepended.
	if ok, _ := c.Get("font:alice", &v); !ok || v != "font-data" {
		t.Error("parent should see namespaced entries under the prefixed key")
	}
	if ok, _ := c.Namespace("a:").Namespace("b:").Get("x", &v); ok {
		t.Error("nested namespace should not hit")
	}
	if ns := fonts.Namespace("woff2:"); ns.prefix != "font:woff2:" || ns.Dir() != c.Dir() || ns.TTL() != c.TTL() {
		t.Errorf("nested namespace = %+v", ns)
	}
}

func TestCacheKeyFilenames(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	a, b := c.keyPath("profile:alice"), c.keyPath("profile:alice")
	if a != b {
		t.Error("keyPath should be stable")
	}
	if filepath.Dir(a) != c.Dir() || len(filepath.Base(a)) != 64 {
		t.Errorf("keyPath = %q, want a sha256 name inside the cache dir", a)
	}
}

func TestNewCacheDefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := NewCache("", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".cache", "statcard"); c.Dir() != want {
		t.Errorf("Dir() = %q, want %q", c.Dir(), want)
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	calls := 0
	err := Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("success: err = %v, calls = %d", err, calls)
	}

	permanent := errors.New("not found")
	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return permanent
	})
	if err != permanent || calls != 1 {
		t.Errorf("non-retryable: err = %v, calls = %d", err, calls)
	}

	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return Retryable(errors.New("reset"))
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("retryable: err = %v, calls = %d", err, calls)
	}

	calls = 0
	err = Retry(ctx, 2, time.Millisecond, func() error {
		calls++
		return Retryable(errors.New("still down"))
	})
	if !IsRetryable(err) || calls != 2 {
		t.Errorf("exhausted: err = %v, calls = %d", err, calls)
	}
}

func TestRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Hour, func() error {
		return Retryable(errors.New("reset"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
	base := errors.New("timeout")
	err := Retryable(base)
	if err.Error() != "timeout" || !errors.Is(err, base) {
		t.Errorf("Retryable should preserve the wrapped error: %v", err)
	}
}
