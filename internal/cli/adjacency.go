package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	tsio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/render/nodelink"
)

func (c *CLI) adjacencyCommand() *cobra.Command {
	var dot, detailed bool

	cmd := &cobra.Command{
		Use:   "adjacency <file|->",
		Short: "List which tile borders match",
		Long: `Adjacency resolves the neighbour table without assembling the grid. Each
row shows a tile's kind and, for every side, the neighbouring tile and the side
of it that matched. A trailing * marks a match that needs one tile mirrored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			input, err := c.readInput(cmd, args[0])
			if err != nil {
				return err
			}
			set, err := tsio.ReadTiles(strings.NewReader(input))
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			table, err := runner.Resolve(ctx, set)
			if err != nil {
				return err
			}

			if dot {
				fmt.Fprint(c.out, nodelink.ToDOT(table, nodelink.Options{Detailed: detailed}))
				return nil
			}

			counts := table.CountByKind()
			printSuccess(c.out, "Resolved %d tiles", table.Len())
			printDetail(c.out, "%d corners · %d border · %d interior · %d links",
				counts[adjacency.KindCorner], counts[adjacency.KindBorder], counts[adjacency.KindInterior], len(table.Links()))
			fmt.Fprintln(c.out, adjacencyTable(table))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dot, "dot", false, "print the table as a Graphviz DOT graph")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label matched sides in DOT output")

	return cmd
}
