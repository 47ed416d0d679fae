// Package fonts describes the web fonts a stat card can embed.
//
// Font files are not bundled with the binary. A [Resolver] fetches the
// base64-encoded WOFF2 payload for a [Font] at render time; see
// pkg/integrations/nanofont for the remote implementation.
package fonts

import (
	"context"
	"strings"

	"github.com/matzehuels/statcard/pkg/errors"
)

// Font is a font descriptor: the CSS family name and the key used to fetch
// its payload.
type Font struct {
	Family string `json:"family"`
	Key    string `json:"key"`
}

// Built-in fonts.
var (
	Baloo2   = Font{Family: "Baloo 2", Key: "baloo_2"}
	Formula1 = Font{Family: "Formula 1", Key: "formula_1"}
)

var catalog = []Font{Baloo2, Formula1}

// All returns the built-in fonts.
func All() []Font {
	return append([]Font(nil), catalog...)
}

// Lookup finds a built-in font by key ("baloo_2") or family ("Baloo 2"),
// ignoring case.
func Lookup(name string) (Font, error) {
	name = strings.TrimSpace(name)
	for _, f := range catalog {
		if strings.EqualFold(name, f.Key) || strings.EqualFold(name, f.Family) {
			return f, nil
		}
	}
	keys := make([]string, len(catalog))
	for i, f := range catalog {
		keys[i] = f.Key
	}
	return Font{}, errors.New(errors.ErrCodeInvalidFont, "unknown font %q (available: %s)", name, strings.Join(keys, ", "))
}

// Resolved is a fetched font: its family name and base64 payload. The
// payload may already be a data URI.
type Resolved struct {
	Name   string `json:"name"`
	Base64 string `json:"base64"`
}

const dataPrefix = "data:font/woff2;base64,"

// DataURI returns the payload as a data URI usable in url().
func (r Resolved) DataURI() string {
	if strings.HasPrefix(r.Base64, "data:") {
		return r.Base64
	}
	return dataPrefix + r.Base64
}

// Validate reports an INVALID_FONT error when the name or payload would
// escape its quoted slot in the stylesheet. Both come from a remote document.
func (r Resolved) Validate() error {
	if r.Name == "" || strings.ContainsFunc(r.Name, unsafeInName) {
		return errors.New(errors.ErrCodeInvalidFont, "unsafe font name %q", r.Name)
	}
	if strings.ContainsFunc(r.Base64, unsafeInURL) {
		return errors.New(errors.ErrCodeInvalidFont, "unsafe payload for font %q", r.Name)
	}
	return nil
}

func unsafeInName(c rune) bool {
	return c < 0x20 || c == 0x7f || strings.ContainsRune(`"'\{};<>`, c)
}

func unsafeInURL(c rune) bool {
	return c <= 0x20 || c == 0x7f || strings.ContainsRune(`"'\(){};<>`, c)
}

// Resolver fetches font payloads.
type Resolver interface {
	Resolve(ctx context.Context, f Font) (Resolved, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, f Font) (Resolved, error)

// Resolve calls fn(ctx, f).
func (fn ResolverFunc) Resolve(ctx context.Context, f Font) (Resolved, error) {
	return fn(ctx, f)
}

// Generic reports whether name is a generic CSS family that must not be
// quoted.
func Generic(name string) bool {
	switch name {
	case "sans", "sans-serif", "serif", "monospace":
		return true
	}
	return false
}
