package extension

import (
	"context"
	"strings"

	"github.com/matzehuels/statcard/pkg/core/stats"
	"github.com/matzehuels/statcard/pkg/core/theme"
)

// Theme applies a single theme.
type Theme struct {
	theme.Theme
}

// Name implements Extension.
func (t Theme) Name() string {
	return "theme:" + themeKey(t.Theme)
}

// Extend implements Extension.
func (t Theme) Extend(_ context.Context, _ *stats.Profile, sink *Sink) error {
	sink.AddStyle(t.CSS())
	return nil
}

// Themes applies several themes in order. A light theme followed by a dark
// theme follows the viewer's color-scheme preference.
type Themes []theme.Theme

// Name implements Extension.
func (ts Themes) Name() string {
	keys := make([]string, len(ts))
	for i, t := range ts {
		keys[i] = themeKey(t)
	}
	return "themes:" + strings.Join(keys, ",")
}

// Extend implements Extension.
func (ts Themes) Extend(_ context.Context, _ *stats.Profile, sink *Sink) error {
	for _, t := range ts {
		sink.AddStyle(t.CSS())
	}
	return nil
}

func themeKey(t theme.Theme) string {
	return t.Name + "@" + t.Scheme
}
