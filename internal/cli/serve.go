package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve cards over HTTP",
		Long: `Serve cards over HTTP.

Routes:
  GET /                   health check
  GET /leetcode?username= card (query: width, height, font, theme, animation, ext, strict)
  GET /themes             theme catalog
  GET /fonts              font catalog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			f, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				f.Server.Addr = addr
			}

			runner, closeCache, err := c.newRunner(ctx, f, noCache)
			if err != nil {
				return err
			}
			defer closeCache()

			printInfo("Serving on %s", StyleHighlight.Render(f.Server.Addr))
			printKeyValue("cache", f.Cache.Backend)
			return server.New(runner, f, logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the card and profile caches")

	return cmd
}
