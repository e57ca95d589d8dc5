package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestitch/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solve and render API over HTTP",
		Long: `Serve starts an HTTP server with these routes:

  GET  /healthz     liveness and version
  POST /v1/solve    tile text in, solution JSON out
  POST /v1/render   tile text in, artifact out (?format=png&scale=8&detailed=1)

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, loggerFromContext(ctx), server.WithMaxBodyBytes(c.Config.Server.MaxBodyBytes))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+server.DefaultAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "serve without a cache")

	return cmd
}
