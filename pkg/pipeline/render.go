package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statcard/pkg/core/extension"
	"github.com/matzehuels/statcard/pkg/core/item"
	"github.com/matzehuels/statcard/pkg/core/layout"
	"github.com/matzehuels/statcard/pkg/core/stats"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/fonts"
	"github.com/matzehuels/statcard/pkg/observability"
)

// Stylesheet framing. Every card stylesheet starts with the namespace and
// ends by revealing the root hidden by layout.DefaultColors.
const (
	Namespace = "@namespace svg url(http://www.w3.org/2000/svg);"
	Reveal    = "svg{opacity:1}"
)

// Card is a rendered card.
type Card struct {
	SVG     string         `json:"svg"`
	Profile *stats.Profile `json:"profile"`
	// Fallback is set when the profile is the default profile because the
	// fetch failed.
	Fallback bool `json:"fallback,omitempty"`
}

// Generator renders cards. Fonts may be nil, in which case font selections
// are ignored. A nil Fetcher renders every lenient card from the default
// profile.
type Generator struct {
	Fetcher Fetcher
	Fonts   fonts.Resolver
	Logger  *log.Logger
}

// NewGenerator creates a Generator. A nil logger uses log.Default().
func NewGenerator(f Fetcher, r fonts.Resolver, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{Fetcher: f, Fonts: r, Logger: logger}
}

// Generate renders the card described by cfg.
//
// Errors: INVALID_CONFIG for an invalid cfg; FETCH_FAILED when the fetch
// fails and cfg is strict; MISSING_STAT or INVALID_DIFFICULTY when the profile
// cannot be laid out. Cancellation of ctx aborts the render and returns
// ctx.Err(); no partial card is ever returned.
func (g *Generator) Generate(ctx context.Context, cfg Config) (*Card, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p, fallback, err := g.fetch(ctx, cfg)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	exts := g.extensions(cfg)
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = ext.Name()
	}
	hooks.OnRenderStart(ctx, cfg.Username(), names)
	start := time.Now()

	svg, err := render(ctx, cfg, p, exts)
	hooks.OnRenderComplete(ctx, cfg.Username(), len(svg), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	g.logger().Debug("rendered card", "user", cfg.Username(), "bytes", len(svg), "fallback", fallback)
	return &Card{SVG: svg, Profile: p, Fallback: fallback}, nil
}

func (g *Generator) fetch(ctx context.Context, cfg Config) (*stats.Profile, bool, error) {
	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, cfg.Username())
	start := time.Now()

	var p *stats.Profile
	var err error = errors.New(errors.ErrCodeFetch, "no profile source configured")
	if g.Fetcher != nil {
		p, err = g.Fetcher.FetchProfile(ctx, cfg.Username())
	}
	if err == nil && p == nil {
		err = errors.New(errors.ErrCodeFetch, "fetcher returned no profile")
	}
	if err == nil {
		// A fetched profile that cannot be laid out is a data error, not a
		// fetch failure, and is never replaced by the default.
		verr := p.Validate()
		hooks.OnFetchComplete(ctx, cfg.Username(), false, time.Since(start), verr)
		if verr != nil {
			return nil, false, verr
		}
		return p, false, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		hooks.OnFetchComplete(ctx, cfg.Username(), false, time.Since(start), ctxErr)
		return nil, false, ctxErr
	}
	if cfg.Strict() {
		hooks.OnFetchComplete(ctx, cfg.Username(), false, time.Since(start), err)
		return nil, false, errors.Wrap(errors.ErrCodeFetch, err, "fetch profile %q", cfg.Username())
	}

	g.logger().Warn("using default profile", "user", cfg.Username(), "err", err)
	hooks.OnFetchComplete(ctx, cfg.Username(), true, time.Since(start), err)
	return stats.DefaultProfile(), true, nil
}

// extensions binds font extensions without a resolver to the generator's.
func (g *Generator) extensions(cfg Config) []extension.Extension {
	exts := cfg.Extensions()
	for i, ext := range exts {
		if f, ok := ext.(extension.Fonts); ok && f.Resolver == nil {
			f.Resolver = g.Fonts
			if f.Logger == nil {
				f.Logger = g.logger()
			}
			exts[i] = f
		}
	}
	return exts
}

func (g *Generator) logger() *log.Logger {
	if g.Logger == nil {
		return log.Default()
	}
	return g.Logger
}

// Render lays out p, applies exts in order and serializes the card. It
// performs no fetching beyond what the extensions do.
func Render(ctx context.Context, cfg Config, p *stats.Profile, exts ...extension.Extension) (string, error) {
	return render(ctx, cfg, p, exts)
}

func render(ctx context.Context, cfg Config, p *stats.Profile, exts []extension.Extension) (string, error) {
	root, err := layout.Card(cfg.Width(), cfg.Height(), p)
	if err != nil {
		return "", err
	}

	sink, err := extension.Apply(ctx, p, exts...)
	if err != nil {
		return "", err
	}
	for _, it := range sink.Body {
		root.PushChild(it)
	}

	b := item.NewBuilder()
	var css strings.Builder
	css.WriteString(Namespace)
	css.WriteString(b.CSS(root))
	for _, s := range sink.Style {
		css.WriteString(s)
	}
	css.WriteString(Reveal)
	root.PushChild(item.Style(css.String()))

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return b.Stringify(root), nil
}
