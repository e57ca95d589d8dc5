package stitch_test

import (
	"fmt"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/assemble"
	"github.com/matzehuels/tilestitch/pkg/stitch"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

func ExampleRender() {
	set, _ := tile.ParseString(fixture.Sample)
	table, _ := adjacency.Resolve(set)
	p, _ := assemble.Assemble(set, table)

	b, err := stitch.Render(p, set)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%dx%d, %d set\n", b.Width(), b.Height(), b.Count())
	// Output: 24x24, 303 set
}
