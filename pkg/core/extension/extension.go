// Package extension defines the plugins that add styling to a card after the
// base layout is built.
//
// An [Extension] receives the card's profile and appends to a [Sink]: extra
// markup nodes (Body) and stylesheet fragments (Style). Fragments are
// concatenated in extension order after the layout's own rules, so later
// extensions override earlier ones through the CSS cascade.
//
// Extensions are values; the same Extension may be applied to many renders
// concurrently.
package extension

import (
	"context"

	"github.com/matzehuels/statcard/pkg/core/item"
	"github.com/matzehuels/statcard/pkg/core/stats"
)

// Sink collects what extensions contribute to a card.
type Sink struct {
	// Body holds nodes appended to the root element before styles are
	// collected, so their inline styles reach the stylesheet.
	Body []*item.Item
	// Style holds stylesheet fragments in the order they were added.
	Style []string
}

// AddStyle appends stylesheet fragments.
func (s *Sink) AddStyle(css ...string) {
	s.Style = append(s.Style, css...)
}

// AddBody appends markup nodes.
func (s *Sink) AddBody(items ...*item.Item) {
	s.Body = append(s.Body, items...)
}

// Extension contributes markup or styles to a card.
type Extension interface {
	// Name identifies the extension and its parameters. Two extensions with
	// the same name must produce the same output for the same profile.
	Name() string
	// Extend appends the extension's contribution to sink.
	Extend(ctx context.Context, p *stats.Profile, sink *Sink) error
}

// Apply runs each extension in order against a fresh Sink.
func Apply(ctx context.Context, p *stats.Profile, exts ...Extension) (*Sink, error) {
	sink := &Sink{}
	for _, ext := range exts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := ext.Extend(ctx, p, sink); err != nil {
			return nil, err
		}
	}
	return sink, nil
}
