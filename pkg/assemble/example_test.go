package assemble_test

import (
	"fmt"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/assemble"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

func ExampleAssemble() {
	set, _ := tile.ParseString(fixture.Sample)
	table, _ := adjacency.Resolve(set)

	p, err := assemble.Assemble(set, table)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range p.TileIDs() {
		fmt.Println(row)
	}
	fmt.Println(p.At(0, 0).Orientation)
	// Output:
	// [1171 2473 3079]
	// [1489 1427 2311]
	// [2971 2729 1951]
	// rot1
}
