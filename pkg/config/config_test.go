package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/pipeline"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if f.Server.Addr != ":8080" || f.Card.Font != "baloo_2" {
		t.Errorf("Load(\"\") = %+v, want defaults", f)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statcard.toml")
	data := `
[server]
addr = ":9000"
request_timeout = "5s"

[cache]
backend = "redis"

[cache.redis]
addr = "localhost:6379"
db = 2

[card]
themes = ["nord"]
animation = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Server.Addr != ":9000" || f.Server.RequestTimeout != 5*time.Second {
		t.Errorf("server = %+v", f.Server)
	}
	if f.Server.ReadTimeout != Default().Server.ReadTimeout {
		t.Error("omitted keys should keep their defaults")
	}
	if f.Cache.Backend != BackendRedis || f.Cache.Redis.Addr != "localhost:6379" || f.Cache.Redis.DB != 2 {
		t.Errorf("cache = %+v", f.Cache)
	}
	if len(f.Card.Themes) != 1 || f.Card.Themes[0] != "nord" || f.Card.Animation {
		t.Errorf("card = %+v", f.Card)
	}
	if f.Card.Font != "baloo_2" {
		t.Errorf("font = %q, want default", f.Card.Font)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statcard.yml")
	data := `
fetch:
  timeout: 3s
  strict: true
card:
  width: 600
  font: formula_1
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Fetch.Timeout != 3*time.Second || !f.Fetch.Strict {
		t.Errorf("fetch = %+v", f.Fetch)
	}
	if f.Card.Width != 600 || f.Card.Height != 200 || f.Card.Font != "formula_1" {
		t.Errorf("card = %+v", f.Card)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
	}{
		{"bad toml", FormatTOML, "[server\naddr ="},
		{"unknown toml key", FormatTOML, "[server]\nport = 80"},
		{"unknown yaml key", FormatYAML, "server:\n  port: 80"},
		{"bad backend", FormatTOML, "[cache]\nbackend = \"memcached\""},
		{"redis without addr", FormatYAML, "cache:\n  backend: redis"},
		{"mongo without uri", FormatYAML, "cache:\n  backend: mongo"},
		{"unknown theme", FormatYAML, "card:\n  themes: [solarized]"},
		{"too many themes", FormatYAML, "card:\n  themes: [light, dark, nord]"},
		{"unknown font", FormatTOML, "[card]\nfont = \"comic\""},
		{"zero width", FormatTOML, "[card]\nwidth = 0"},
		{"negative timeout", FormatYAML, "fetch:\n  timeout: -1s"},
		{"unknown format", "ini", "a=b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	f, err := Decode(nil, FormatYAML)
	if err != nil {
		t.Fatalf("empty yaml should decode to defaults: %v", err)
	}
	if f.Server.Addr != Default().Server.Addr {
		t.Error("empty yaml should keep defaults")
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"a.toml":     FormatTOML,
		"a.TOML":     FormatTOML,
		"dir/a.yaml": FormatYAML,
		"a.yml":      FormatYAML,
	}
	for path, want := range tests {
		if got, err := FormatOf(path); err != nil || got != want {
			t.Errorf("FormatOf(%q) = %q, %v", path, got, err)
		}
	}
	if _, err := FormatOf("a.json"); err == nil {
		t.Error("json config should be rejected")
	}
}

func TestEncodeRoundTripYAML(t *testing.T) {
	data, err := Default().Encode(FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Decode(data, FormatYAML)
	if err != nil {
		t.Fatalf("re-decoding encoded defaults: %v", err)
	}
	if f.Server.ReadTimeout != Default().Server.ReadTimeout || f.Card.Themes[1] != "dark" {
		t.Errorf("round trip = %+v", f)
	}
}

func TestEncodeTOML(t *testing.T) {
	data, err := Default().Encode(FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[server]") || !strings.Contains(string(data), "[card]") {
		t.Errorf("encoded toml missing sections:\n%s", data)
	}
}

func TestCardFor(t *testing.T) {
	f := Default()
	f.Fetch.Strict = true

	cfg, err := f.CardFor("alice")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Strict() || !cfg.Animation() {
		t.Error("strict and animation should be applied")
	}
	if font, ok := cfg.Font(); !ok || font.Key != "baloo_2" {
		t.Errorf("font = %+v", font)
	}
	ts := cfg.Themes()
	if len(ts) != 2 || ts[0].Scheme != "light" || ts[1].Scheme != "dark" {
		t.Errorf("themes = %+v", ts)
	}
}

func TestApplyThemes(t *testing.T) {
	base := pipeline.NewConfig("alice")

	cfg, err := ApplyThemes(base, []string{"Ferrari"})
	if err != nil {
		t.Fatal(err)
	}
	if ts := cfg.Themes(); len(ts) != 1 || ts[0].Name != "ferrari" {
		t.Errorf("single theme = %+v", ts)
	}

	cfg, err = ApplyThemes(base, []string{"nord", "dracula"})
	if err != nil {
		t.Fatal(err)
	}
	if ts := cfg.Themes(); len(ts) != 2 || ts[0].Scheme != "light" || ts[1].Name != "dracula" {
		t.Errorf("pair = %+v", ts)
	}

	if _, err := ApplyThemes(base, []string{"nope"}); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("unknown theme error = %v", err)
	}
	if _, err := ApplyThemes(base, []string{"light", "dark", "nord"}); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("three themes error = %v", err)
	}
}

func TestApplyFont(t *testing.T) {
	cfg, err := ApplyFont(pipeline.NewConfig("alice"), "Formula 1")
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := cfg.Font(); !ok || f.Key != "formula_1" {
		t.Errorf("font = %+v", f)
	}
	cfg, _ = ApplyFont(cfg, "")
	if _, ok := cfg.Font(); ok {
		t.Error("empty name should clear the font")
	}
	if _, err := ApplyFont(cfg, "wingdings"); !errors.Is(err, errors.ErrCodeInvalidFont) {
		t.Errorf("unknown font error = %v", err)
	}
}

func TestCacheOpen(t *testing.T) {
	ctx := context.Background()
	c := CacheConfig{Backend: BackendFile, Dir: t.TempDir()}

	backend, err := c.Open(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()
	if err := backend.Set(ctx, "card:x", []byte("y"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(c.Dir, "cards")); err != nil {
		t.Errorf("file backend should live under cards/: %v", err)
	}

	none, err := CacheConfig{Backend: BackendNone}.Open(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := none.Get(ctx, "k"); hit {
		t.Error("none backend should never hit")
	}
	if hc, err := (CacheConfig{Backend: BackendNone}).HTTPCache(); hc != nil || err != nil {
		t.Errorf("HTTPCache() for none = %v, %v", hc, err)
	}
}

func TestKeyer(t *testing.T) {
	plain := CacheConfig{}.Keyer().CardKey("fp")
	scoped := CacheConfig{Prefix: "prod:"}.Keyer().CardKey("fp")
	if scoped != "prod:"+plain {
		t.Errorf("scoped = %q, plain = %q", scoped, plain)
	}
	if cache.KeyType(plain) != cache.KeyTypeCard {
		t.Errorf("KeyType = %q", cache.KeyType(plain))
	}
}

func TestGenerator(t *testing.T) {
	f := Default()
	f.Cache.Dir = t.TempDir()

	g, err := f.Generator(cache.NewNullCache(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Fetcher == nil || g.Fonts == nil || g.Logger == nil {
		t.Errorf("generator not fully wired: %+v", g)
	}
	if _, err := os.Stat(filepath.Join(f.Cache.Dir, "http")); err != nil {
		t.Errorf("font cache dir not created: %v", err)
	}
}
