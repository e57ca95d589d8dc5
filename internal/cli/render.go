package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestitch/pkg/pipeline"
	"github.com/matzehuels/tilestitch/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outDir   string // directory for the artifacts
	name     string // base file name; defaults to the input's name
	formats  string // comma separated: txt, png, json, svg
	scale    int    // PNG pixels per bitmap pixel
	detailed bool   // side labels on the adjacency diagram
	noCache  bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Stitch the tiles and write the image and diagrams",
		Long: `Render solves the tile file and writes one artifact per format:

  txt   the stitched bitmap as '#' and '.' rows
  png   the stitched bitmap as an image, scaled by --scale
  json  the solution: corner product and oriented placement
  svg   the adjacency diagram of the resolved tiles`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.name, "name", "", "base name for output files (default: input file name)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(render.Formats, ", ")+" (comma-separated)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label matched sides in the adjacency diagram")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "ignore and do not update the cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts := pipeline.Options{
		Source:   path,
		Refresh:  opts.noCache,
		Formats:  render.ParseFormats(opts.formats),
		Scale:    opts.scale,
		Detailed: opts.detailed,
	}
	if len(popts.Formats) == 0 {
		popts.Formats = slices.Clone(c.Config.Render.Formats)
	}
	if popts.Scale == 0 {
		popts.Scale = c.Config.Render.Scale
	}
	if err := popts.ValidateForRender(); err != nil {
		return err
	}

	input, err := c.readInput(cmd, path)
	if err != nil {
		return err
	}
	popts.Input = input

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := spin(ctx, "Rendering...", func() (*pipeline.Result, error) {
		return runner.Execute(ctx, popts)
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(res.Artifacts)))

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	base := opts.name
	if base == "" {
		base = baseName(path)
	}

	printSuccess(c.out, "Rendered %s", path)
	printStats(c.out, res.Stats.Tiles, res.Stats.Links, res.CacheInfo.RenderHit)
	for _, f := range popts.Formats {
		out := filepath.Join(opts.outDir, base+"."+f)
		if err := os.WriteFile(out, res.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		printFile(c.out, out)
	}
	return nil
}

// baseName strips the directory and extension from path. Stdin renders as
// "stitched".
func baseName(path string) string {
	if path == "-" {
		return "stitched"
	}
	b := filepath.Base(path)
	return strings.TrimSuffix(b, filepath.Ext(b))
}
