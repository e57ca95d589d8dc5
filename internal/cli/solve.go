package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	tsio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
)

type solveOpts struct {
	output  string // write the solution JSON here
	noCache bool
	quiet   bool // print only the corner product
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <file|->",
		Short: "Assemble a tile file and print the corner product",
		Long: `Solve parses the tiles, matches their borders, and arranges them into a
grid. It prints the product of the four corner tile ids and the placement of
every tile with its orientation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the solution as JSON to this file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "ignore and do not update the solution cache")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the corner product")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	input, err := c.readInput(cmd, path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := spin(ctx, "Assembling tiles...", func() (*pipeline.Result, error) {
		return runner.Solve(ctx, pipeline.Options{Input: input, Source: path, Refresh: opts.noCache})
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Assembled %dx%d grid", res.Placement.Rows, res.Placement.Cols))

	if opts.output != "" {
		sol := &tsio.Solution{
			TileSize:      res.Tiles.Size(),
			CornerProduct: res.CornerProduct,
			Corners:       res.Corners,
			Placement:     res.Placement,
		}
		if err := tsio.ExportSolution(sol, opts.output); err != nil {
			return err
		}
	}

	if opts.quiet {
		fmt.Fprintln(c.out, res.CornerProduct)
		return nil
	}

	printSuccess(c.out, "Solved %s", path)
	printStats(c.out, res.Stats.Tiles, res.Stats.Links, res.CacheInfo.SolutionHit)
	fmt.Fprintln(c.out)
	printKeyValue(c.out, "Corner product", StyleNumber.Render(strconv.Itoa(res.CornerProduct)))
	printKeyValue(c.out, "Corners", joinInts(res.Corners))
	printKeyValue(c.out, "Grid", fmt.Sprintf("%dx%d tiles of %dx%d", res.Placement.Rows, res.Placement.Cols, res.Stats.TileSize, res.Stats.TileSize))
	fmt.Fprintln(c.out, placementTable(res.Placement))
	if opts.output != "" {
		printFile(c.out, opts.output)
	}
	fmt.Fprintln(c.out)
	printNextStep(c.out, "Render the image", "tilestitch render "+path)
	return nil
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ", ")
}
