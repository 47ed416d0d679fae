// Package pkg provides the core libraries for statcard, a generator of
// themeable, animated SVG cards for LeetCode profile statistics.
//
// # Overview
//
// A card is built from a fixed element tree, decorated by a set of
// extensions (themes, fonts, animation) and serialized to a single
// self-contained SVG document. The pkg directory is organized into these
// areas:
//
//  1. [core] - Domain logic (element tree, statistics, layout, extensions, themes)
//  2. [pipeline] - Orchestration (fetch → layout → extend → serialize)
//  3. [integrations] - Upstream clients (LeetCode GraphQL, font payloads)
//  4. [cache] - Card and profile caches (file, redis, mongo)
//  5. [server] - HTTP surface for embedding cards in READMEs
//
// # Architecture
//
// The data flow for one card:
//
//	LeetCode GraphQL API
//	         ↓
//	    [integrations/leetcode] (fetch profile)
//	         ↓
//	    [core/stats] (difficulty buckets, ratios)
//	         ↓
//	    [core/layout] (fixed card element tree)
//	         ↓
//	    [core/extension] (themes, fonts, animation)
//	         ↓
//	    [core/item] (CSS pass, then markup pass)
//	         ↓
//	    SVG
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/statcard/pkg/core/theme"
//	    "github.com/matzehuels/statcard/pkg/integrations/leetcode"
//	    "github.com/matzehuels/statcard/pkg/pipeline"
//	)
//
//	g := pipeline.NewGenerator(leetcode.NewClient(), nil, nil)
//	cfg := pipeline.NewConfig("alice").
//	    WithLightTheme(theme.Light).
//	    WithDarkTheme(theme.Dark).
//	    WithAnimation(true)
//	card, err := g.Generate(context.Background(), cfg)
//
// # Main Packages
//
// [core/item] - Element tree and the two-pass builder that assigns ids,
// collects per-element styles into a stylesheet and serializes markup.
//
// [core/stats] - Difficulty buckets, solved/total ratios and the fallback
// profile used when the upstream is unavailable.
//
// [core/layout] - The fixed card: icon, username, ranking, total-solved ring
// and one progress row per difficulty.
//
// [core/extension] - Pluggable card decorations. [core/theme] holds the
// palette catalog the theme extension draws from.
//
// [fonts] - Font descriptors and the resolver interface for embedded
// @font-face payloads.
//
// [pipeline] - [pipeline.Config], [pipeline.Generator] and the caching
// [pipeline.Runner] shared by the CLI and the HTTP server.
//
// [config] - TOML/YAML service defaults and cache backend wiring.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/core
// [core/item]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/core/item
// [core/stats]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/core/stats
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/core/layout
// [core/extension]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/core/extension
// [core/theme]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/core/theme
// [fonts]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/pipeline
// [integrations]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/integrations
// [integrations/leetcode]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/integrations/leetcode
// [cache]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/config
package pkg
