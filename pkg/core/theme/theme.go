// Package theme defines color themes for stat cards.
//
// A theme is a set of CSS custom properties (--bg-*, --text-*, --color-*)
// plus optional extra rules. Its stylesheet rebinds the card's element ids to
// those properties. Themes tagged with the "light" or "dark" scheme are
// wrapped in a prefers-color-scheme media query, so a light theme followed by
// a dark theme yields a card that follows the viewer's system preference.
package theme

import (
	"sort"
	"strings"

	"github.com/matzehuels/statcard/pkg/core/item"
	"github.com/matzehuels/statcard/pkg/errors"
)

// Color schemes recognized by prefers-color-scheme.
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
)

// Variable is a single CSS custom property.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Theme is an immutable named palette. Copy it with WithScheme to re-tag it.
type Theme struct {
	Name   string     `json:"name"`
	Scheme string     `json:"scheme"`
	Vars   []Variable `json:"vars"`
	Extra  string     `json:"extra,omitempty"`
}

// WithScheme returns a copy of t tagged with scheme.
func (t Theme) WithScheme(scheme string) Theme {
	t.Scheme = scheme
	t.Vars = append([]Variable(nil), t.Vars...)
	return t
}

// Conditional reports whether the theme applies only under a matching
// prefers-color-scheme.
func (t Theme) Conditional() bool {
	return t.Scheme == SchemeLight || t.Scheme == SchemeDark
}

// CSS returns the minified stylesheet for the theme: the variable block, the
// element mapping and the extra rules, wrapped in a media query when the
// theme is conditional.
func (t Theme) CSS() string {
	var sb strings.Builder
	if t.Conditional() {
		sb.WriteString("@media (prefers-color-scheme: " + t.Scheme + ") {")
	}
	sb.WriteString(":root{")
	for i, v := range t.Vars {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(v.Name + ":" + v.Value)
	}
	sb.WriteByte('}')
	sb.WriteString(mapping)
	sb.WriteString(t.Extra)
	if t.Conditional() {
		sb.WriteByte('}')
	}
	return item.MinifyCSS(sb.String())
}

// mapping binds every themable element to its color variable.
const mapping = `
#background { fill: var(--bg-0) }
#total-solved-bg { stroke: var(--bg-1) }
#easy-solved-bg { stroke: var(--bg-1) }
#medium-solved-bg { stroke: var(--bg-1) }
#hard-solved-bg { stroke: var(--bg-1) }
#username { fill: var(--text-0) }
#username-text { fill: var(--text-0) }
#total-solved-text { fill: var(--text-0) }
#easy-solved-type { fill: var(--text-0) }
#medium-solved-type { fill: var(--text-0) }
#hard-solved-type { fill: var(--text-0) }
#ranking { fill: var(--text-1) }
#easy-solved-count { fill: var(--text-1) }
#medium-solved-count { fill: var(--text-1) }
#hard-solved-count { fill: var(--text-1) }
#total-solved-ring { stroke: var(--color-0) }
#easy-solved-progress { stroke: var(--color-1) }
#medium-solved-progress { stroke: var(--color-2) }
#hard-solved-progress { stroke: var(--color-3) }
`

var catalog = map[string]Theme{}

func register(t Theme) Theme {
	catalog[t.Name] = t
	return t
}

// Lookup returns the catalog theme with the given name (case-insensitive).
// The returned value is a copy; callers may re-tag it freely.
func Lookup(name string) (Theme, error) {
	t, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return t.WithScheme(t.Scheme), nil
}

// Names returns the catalog theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every catalog theme sorted by name.
func All() []Theme {
	out := make([]Theme, 0, len(catalog))
	for _, name := range Names() {
		t, _ := Lookup(name)
		out = append(out, t)
	}
	return out
}
