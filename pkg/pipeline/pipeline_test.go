package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/statcard/pkg/core/extension"
	"github.com/matzehuels/statcard/pkg/core/theme"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/fonts"
)

func extNames(exts []extension.Extension) []string {
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = ext.Name()
	}
	return names
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("alice")
	if cfg.Username() != "alice" || cfg.Width() != DefaultWidth || cfg.Height() != DefaultHeight {
		t.Errorf("config = %s", cfg.Fingerprint())
	}
	if cfg.Strict() || cfg.Animation() {
		t.Error("strict and animation should default to off")
	}
	if _, ok := cfg.Font(); ok {
		t.Error("no font by default")
	}
	if len(cfg.Extensions()) != 0 {
		t.Errorf("Extensions() = %v, want none", extNames(cfg.Extensions()))
	}
}

func TestConfigSettersDoNotMutate(t *testing.T) {
	base := NewConfig("alice")
	wide := base.WithWidth(800).WithAnimation(true).WithFont(fonts.Baloo2)

	if base.Width() != DefaultWidth || base.Animation() {
		t.Error("setters must not modify the receiver")
	}
	if _, ok := base.Font(); ok {
		t.Error("WithFont modified the receiver")
	}
	if wide.Width() != 800 || !wide.Animation() {
		t.Error("setters should apply to the copy")
	}

	a := base.WithExtension(extension.Animation{Speed: 2})
	b := a.WithExtension(extension.Animation{Speed: 3})
	c := a.WithExtension(extension.Animation{Speed: 4})
	if len(a.Extensions()) != 1 {
		t.Errorf("a has %d extensions, want 1", len(a.Extensions()))
	}
	if got := b.Extensions()[1].Name(); got != "animation:3" {
		t.Errorf("b second extension = %q (aliasing between copies?)", got)
	}
	if got := c.Extensions()[1].Name(); got != "animation:4" {
		t.Errorf("c second extension = %q", got)
	}
}

func TestConfigExtensionOrder(t *testing.T) {
	cfg := NewConfig("alice").
		WithFont(fonts.Formula1).
		WithDarkTheme(theme.Dark).
		WithLightTheme(theme.Light).
		WithAnimation(true).
		WithExtension(extension.Theme{Theme: theme.Nord})

	got := extNames(cfg.Extensions())
	want := []string{"theme:nord@nord", "animation", "themes:light@light,dark@dark", "fonts:formula_1"}
	if len(got) != len(want) {
		t.Fatalf("Extensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Extensions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConfigAnimationNotDuplicated(t *testing.T) {
	cfg := NewConfig("alice").WithAnimation(true).WithExtension(extension.Animation{})
	if n := len(cfg.Extensions()); n != 1 {
		t.Errorf("got %d extensions, want a single animation", n)
	}
}

func TestConfigThemes(t *testing.T) {
	single := NewConfig("alice").WithLightTheme(theme.Light).WithTheme(theme.Dark)
	ts := single.Themes()
	if len(ts) != 1 || ts[0].Name != "dark" || ts[0].Conditional() {
		t.Errorf("single theme = %+v", ts)
	}

	pair := single.WithDarkTheme(theme.Ferrari)
	ts = pair.Themes()
	if len(ts) != 1 || ts[0].Name != "ferrari" || ts[0].Scheme != theme.SchemeDark {
		t.Errorf("dark-only themes = %+v", ts)
	}

	if theme.Ferrari.Scheme == theme.SchemeDark {
		t.Error("WithDarkTheme must not modify the catalog entry")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", NewConfig("alice"), true},
		{"empty username", NewConfig(""), false},
		{"bad username", NewConfig("a b"), false},
		{"zero width", NewConfig("alice").WithWidth(0), false},
		{"negative height", NewConfig("alice").WithHeight(-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	base := NewConfig("alice").WithLightTheme(theme.Light).WithDarkTheme(theme.Dark)

	if base.Fingerprint() != NewConfig("alice").WithLightTheme(theme.Light).WithDarkTheme(theme.Dark).Fingerprint() {
		t.Error("equal configs should have equal fingerprints")
	}

	variants := []Config{
		base.WithUsername("bob"),
		base.WithWidth(600),
		base.WithAnimation(true),
		base.WithFont(fonts.Baloo2),
		base.WithStrict(true),
		base.WithTheme(theme.Dark),
	}
	seen := map[string]bool{base.Fingerprint(): true}
	for _, v := range variants {
		fp := v.Fingerprint()
		if seen[fp] {
			t.Errorf("fingerprint collision: %s", fp)
		}
		seen[fp] = true
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(base.Fingerprint()), &decoded); err != nil {
		t.Errorf("fingerprint is not JSON: %v", err)
	}
}
