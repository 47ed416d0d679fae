package extension

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/statcard/pkg/core/stats"
	"github.com/matzehuels/statcard/pkg/fonts"
)

// Fonts embeds web fonts and makes them the card's font stack, in order.
// Payloads are fetched concurrently through Resolver. A font that fails to
// resolve, or whose name or payload fails Resolved.Validate, is skipped and
// logged; cancellation of ctx fails the extension.
type Fonts struct {
	Fonts    []fonts.Font
	Resolver fonts.Resolver
	Logger   *log.Logger
}

// Name implements Extension.
func (f Fonts) Name() string {
	keys := make([]string, len(f.Fonts))
	for i, font := range f.Fonts {
		keys[i] = font.Key
	}
	return "fonts:" + strings.Join(keys, ",")
}

// Extend implements Extension.
func (f Fonts) Extend(ctx context.Context, _ *stats.Profile, sink *Sink) error {
	if len(f.Fonts) == 0 || f.Resolver == nil {
		return nil
	}
	logger := f.Logger
	if logger == nil {
		logger = log.Default()
	}

	resolved := make([]*fonts.Resolved, len(f.Fonts))
	g, gctx := errgroup.WithContext(ctx)
	for i, font := range f.Fonts {
		g.Go(func() error {
			r, err := f.Resolver.Resolve(gctx, font)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("skipping font", "font", font.Key, "error", err)
				return nil
			}
			if r.Name == "" {
				r.Name = font.Family
			}
			if err := r.Validate(); err != nil {
				logger.Warn("skipping font", "font", font.Key, "error", err)
				return nil
			}
			resolved[i] = &r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var families []string
	for _, r := range resolved {
		if r == nil {
			continue
		}
		sink.AddStyle(FaceRule(*r))
		families = append(families, r.Name)
	}
	if len(families) > 0 {
		sink.AddStyle(FamilyRule(families))
	}
	return nil
}

// FaceRule returns the @font-face rule embedding r.
func FaceRule(r fonts.Resolved) string {
	return `@font-face{font-family:"` + r.Name + `";src:url("` + r.DataURI() + `") format("woff2")}`
}

// FamilyRule returns the universal font-family rule for names, quoting every
// non-generic family.
func FamilyRule(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		if fonts.Generic(n) {
			quoted[i] = n
		} else {
			quoted[i] = `"` + n + `"`
		}
	}
	return "*{font-family:" + strings.Join(quoted, ",") + "}"
}
