package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestitch/pkg/cache"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the solution and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached solution and artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cc, err := c.openCache(ctx, false)
			if err != nil {
				return err
			}
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				return tserr.New(tserr.ErrCodeUnsupported, "cache backend %q cannot be cleared", c.Config.Cache.Backend)
			}
			if err := clearer.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess(c.out, "Cleared cache")
			if fc, ok := cc.(*cache.FileCache); ok {
				printDetail(c.out, "Directory: %s", fc.Dir())
			} else {
				printDetail(c.out, "Backend: %s", c.Config.Cache.Backend)
			}
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.Config.Cache.cacheConfig()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if cfg.Dir == "" {
				return tserr.New(tserr.ErrCodeUnsupported, "cache backend %q has no directory", cfg.Backend)
			}
			fmt.Fprintln(c.out, cfg.Dir)
			return nil
		},
	}
}
