package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/config"
	"github.com/matzehuels/statcard/pkg/pipeline"
)

// stdoutPath as --output writes the SVG to stdout.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
// Zero values and unchanged flags keep the config file's card defaults.
type renderOpts struct {
	output    string   // output file, "-" for stdout, default <username>.svg
	width     int      // card width in pixels
	height    int      // card height in pixels
	themes    []string // one theme, or a light and a dark theme
	font      string   // font key or family
	noFont    bool     // use the viewer's default font
	animation bool     // fade the card in
	strict    bool     // fail instead of rendering the placeholder profile
	noCache   bool     // bypass the card and profile caches
	pick      bool     // choose themes interactively
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <username>",
		Short: "Render a LeetCode stat card to SVG",
		Example: `  statcard render alice
  statcard render alice --theme nord,dracula -o card.svg
  statcard render alice --pick -o - > card.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c.loadConfig()
			if err != nil {
				return err
			}
			if opts.pick {
				picked, err := pickThemes(cmd.Context())
				if err != nil {
					return err
				}
				if picked == nil {
					printInfo("No theme selected")
					return nil
				}
				opts.themes = picked
			}
			cfg, err := cardConfig(f, args[0], &opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), f, cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default <username>.svg)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "card width (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "card height (default from config)")
	cmd.Flags().StringSliceVarP(&opts.themes, "theme", "t", nil, "theme, or light,dark pair (see 'statcard themes')")
	cmd.Flags().StringVar(&opts.font, "font", "", "font key or family (see 'statcard fonts')")
	cmd.Flags().BoolVar(&opts.noFont, "no-font", false, "do not embed a font")
	cmd.Flags().BoolVar(&opts.animation, "animation", true, "animate the card")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the profile cannot be fetched")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass caches")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "pick themes interactively")
	cmd.MarkFlagsMutuallyExclusive("font", "no-font")
	cmd.MarkFlagsMutuallyExclusive("theme", "pick")

	return cmd
}

// cardConfig starts from the config file's card for username and applies
// the flags that changed reports as set.
func cardConfig(f *config.File, username string, opts *renderOpts, changed func(string) bool) (pipeline.Config, error) {
	cfg, err := f.CardFor(username)
	if err != nil {
		return cfg, err
	}
	if changed("width") {
		cfg = cfg.WithWidth(opts.width)
	}
	if changed("height") {
		cfg = cfg.WithHeight(opts.height)
	}
	if changed("theme") || len(opts.themes) > 0 {
		if cfg, err = config.ApplyThemes(cfg, opts.themes); err != nil {
			return cfg, err
		}
	}
	switch {
	case opts.noFont:
		cfg = cfg.WithoutFont()
	case changed("font"):
		if cfg, err = config.ApplyFont(cfg, opts.font); err != nil {
			return cfg, err
		}
	}
	if changed("animation") {
		cfg = cfg.WithAnimation(opts.animation)
	}
	if changed("strict") {
		cfg = cfg.WithStrict(opts.strict)
	}
	return cfg, cfg.Validate()
}

// runRender renders cfg and writes the SVG to opts.output.
func (c *CLI) runRender(ctx context.Context, f *config.File, cfg pipeline.Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	runner, closeCache, err := c.newRunner(ctx, f, opts.noCache)
	if err != nil {
		return err
	}
	defer closeCache()

	toStdout := opts.output == stdoutPath
	prog := newProgress(logger)
	var spinner *Spinner
	if !toStdout {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Rendering card for %s...", cfg.Username()))
		spinner.Start()
	}
	res, err := runner.Render(ctx, cfg)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered card for %s", cfg.Username()))

	if toStdout {
		_, err := io.WriteString(c.Out, res.SVG)
		return err
	}

	path := opts.output
	if path == "" {
		path = cfg.Username() + ".svg"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(res.SVG), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if res.Fallback {
		printWarning("Could not fetch %s; rendered the placeholder profile", cfg.Username())
	} else {
		printSuccess("Rendered card for %s", cfg.Username())
	}
	printCardStats(res.Profile, res.CacheHit)
	printFile(path)
	return nil
}
