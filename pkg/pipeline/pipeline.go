// Package pipeline renders stat cards.
//
// A render runs five steps in a fixed order:
//
//  1. Fetch: load the user's statistics, or the default profile when the
//     fetch fails and the config is not strict
//  2. Layout: build the card tree from the profile
//  3. Extend: apply the configured extensions to a style sink
//  4. Style: collect the tree's rules, then the extension fragments, into a
//     trailing <style> element
//  5. Serialize: produce the SVG markup
//
// [Generator] runs the steps for one [Config]. [Runner] puts a cache in front
// of a Generator and guarantees at most one concurrent render per config.
//
//	gen := pipeline.NewGenerator(leetcode.NewClient(), nanofont.NewClient(nil), logger)
//	runner := pipeline.NewRunner(gen, cache, nil, logger)
//	cfg := pipeline.NewConfig("alice").
//	    WithLightTheme(theme.Light).
//	    WithDarkTheme(theme.Dark).
//	    WithFont(fonts.Baloo2).
//	    WithAnimation(true)
//	result, err := runner.Render(ctx, cfg)
package pipeline

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/statcard/pkg/core/extension"
	"github.com/matzehuels/statcard/pkg/core/theme"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/fonts"
)

// Default card size in pixels.
const (
	DefaultWidth  = 500
	DefaultHeight = 200
)

// Config describes one card. It is immutable: every With method returns an
// updated copy and leaves the receiver untouched, so a Config can be shared
// between goroutines.
type Config struct {
	username   string
	width      int
	height     int
	theme      *theme.Theme
	light      *theme.Theme
	dark       *theme.Theme
	font       *fonts.Font
	animation  bool
	extensions []extension.Extension
	strict     bool
}

// NewConfig returns a config for username with the default size and no
// styling.
func NewConfig(username string) Config {
	return Config{
		username: username,
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
}

// WithUsername sets the user.
func (c Config) WithUsername(username string) Config {
	c.username = username
	return c
}

// WithWidth sets the card width.
func (c Config) WithWidth(w int) Config {
	c.width = w
	return c
}

// WithHeight sets the card height.
func (c Config) WithHeight(h int) Config {
	c.height = h
	return c
}

// WithTheme applies t unconditionally and clears any light/dark pair.
func (c Config) WithTheme(t theme.Theme) Config {
	if t.Conditional() {
		t = t.WithScheme("")
	}
	c.theme = &t
	c.light, c.dark = nil, nil
	return c
}

// WithLightTheme sets the theme used under prefers-color-scheme: light.
// It clears a theme set by WithTheme.
func (c Config) WithLightTheme(t theme.Theme) Config {
	t = t.WithScheme(theme.SchemeLight)
	c.light = &t
	c.theme = nil
	return c
}

// WithDarkTheme sets the theme used under prefers-color-scheme: dark.
// It clears a theme set by WithTheme.
func (c Config) WithDarkTheme(t theme.Theme) Config {
	t = t.WithScheme(theme.SchemeDark)
	c.dark = &t
	c.theme = nil
	return c
}

// WithFont embeds f and makes it the card font.
func (c Config) WithFont(f fonts.Font) Config {
	c.font = &f
	return c
}

// WithoutFont removes the font selection.
func (c Config) WithoutFont() Config {
	c.font = nil
	return c
}

// WithAnimation toggles the fade-in animation.
func (c Config) WithAnimation(on bool) Config {
	c.animation = on
	return c
}

// WithExtension appends explicit extensions. They run before the extensions
// derived from the other settings.
func (c Config) WithExtension(exts ...extension.Extension) Config {
	c.extensions = append(slices.Clip(c.extensions), exts...)
	return c
}

// WithStrict makes fetch failures fatal instead of falling back to the
// default profile.
func (c Config) WithStrict(strict bool) Config {
	c.strict = strict
	return c
}

func (c Config) Username() string { return c.username }
func (c Config) Width() int       { return c.width }
func (c Config) Height() int      { return c.height }
func (c Config) Strict() bool     { return c.strict }
func (c Config) Animation() bool  { return c.animation }

// Font returns the selected font, if any.
func (c Config) Font() (fonts.Font, bool) {
	if c.font == nil {
		return fonts.Font{}, false
	}
	return *c.font, true
}

// Themes returns the configured themes in application order.
func (c Config) Themes() []theme.Theme {
	if c.theme != nil {
		return []theme.Theme{*c.theme}
	}
	var ts []theme.Theme
	if c.light != nil {
		ts = append(ts, *c.light)
	}
	if c.dark != nil {
		ts = append(ts, *c.dark)
	}
	return ts
}

// Extensions returns every extension the card applies, in order: explicit
// extensions, the animation, the themes, then the font. The animation toggle
// adds nothing when an explicit Animation is present.
//
// The Fonts extension returned here has no Resolver; the Generator supplies
// its own.
func (c Config) Extensions() []extension.Extension {
	exts := slices.Clone(c.extensions)

	if c.animation && !slices.ContainsFunc(exts, isAnimation) {
		exts = append(exts, extension.Animation{})
	}
	switch ts := c.Themes(); {
	case c.theme != nil:
		exts = append(exts, extension.Theme{Theme: *c.theme})
	case len(ts) > 0:
		exts = append(exts, extension.Themes(ts))
	}
	if c.font != nil {
		exts = append(exts, extension.Fonts{Fonts: []fonts.Font{*c.font}})
	}
	return exts
}

func isAnimation(ext extension.Extension) bool {
	_, ok := ext.(extension.Animation)
	return ok
}

// Validate reports an INVALID_CONFIG error for a missing or malformed
// username or an out-of-range size.
func (c Config) Validate() error {
	if err := errors.ValidateUsername(c.username); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", errors.UserMessage(err))
	}
	if err := errors.ValidateDimension("width", c.width); err != nil {
		return err
	}
	return errors.ValidateDimension("height", c.height)
}

// Fingerprint returns a canonical encoding of everything that affects the
// rendered output. Equal fingerprints render identical cards for the same
// profile.
func (c Config) Fingerprint() string {
	exts := c.Extensions()
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = ext.Name()
	}
	data, _ := json.Marshal(struct {
		Username   string   `json:"username"`
		Width      int      `json:"width"`
		Height     int      `json:"height"`
		Extensions []string `json:"extensions"`
		Strict     bool     `json:"strict,omitempty"`
	}{c.username, c.width, c.height, names, c.strict})
	return string(data)
}
