package adjacency_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

func sampleTable(t *testing.T) *adjacency.Table {
	t.Helper()
	set, err := tile.ParseString(fixture.Sample)
	require.NoError(t, err)
	table, err := adjacency.Resolve(set)
	require.NoError(t, err)
	return table
}

func present(id int, s tile.Side, mirrored bool) adjacency.Slot {
	return adjacency.Slot{Neighbor: id, Side: s, Mirrored: mirrored, Present: true}
}

//----------------------------------------------------------------------------//
// Resolve on the sample puzzle
//----------------------------------------------------------------------------//

func TestResolve_SampleSlots(t *testing.T) {
	table := sampleTable(t)

	n, ok := table.Neighbors(1951)
	require.True(t, ok)
	assert.Equal(t, adjacency.Neighbors{
		present(2729, tile.Bottom, false),
		present(2311, tile.Left, false),
		{},
		{},
	}, n)

	n, _ = table.Neighbors(1427)
	assert.Equal(t, adjacency.Neighbors{
		present(1489, tile.Bottom, false),
		present(2473, tile.Bottom, false),
		present(2311, tile.Top, false),
		present(2729, tile.Right, false),
	}, n)

	assert.Equal(t, present(3079, tile.Left, true), table.Slot(2311, tile.Right))
}

func TestResolve_Symmetry(t *testing.T) {
	table := sampleTable(t)
	for _, id := range table.IDs() {
		n, _ := table.Neighbors(id)
		for _, s := range tile.Sides {
			sl := n[s]
			if !sl.Present {
				continue
			}
			back := table.Slot(sl.Neighbor, sl.Side)
			assert.Equal(t, present(id, s, sl.Mirrored), back, "tile %d side %v", id, s)
		}
	}
	assert.NoError(t, table.Validate())
}

func TestResolve_Classification(t *testing.T) {
	table := sampleTable(t)

	assert.Equal(t, []int{1171, 1951, 2971, 3079}, table.Corners())
	assert.Equal(t, map[adjacency.Kind]int{
		adjacency.KindCorner:   4,
		adjacency.KindBorder:   4,
		adjacency.KindInterior: 1,
	}, table.CountByKind())
	assert.Equal(t, adjacency.KindInterior, table.Kind(1427))
	assert.Equal(t, adjacency.KindBorder, table.Kind(2311))
	assert.Equal(t, adjacency.KindInvalid, table.Kind(42))
}

func TestResolve_CornerProduct(t *testing.T) {
	product, err := sampleTable(t).CornerProduct()
	require.NoError(t, err)
	assert.Equal(t, fixture.SampleCornerProduct, product)
}

func TestResolve_Links(t *testing.T) {
	links := sampleTable(t).Links()
	// A 3×3 grid has 6 horizontal and 6 vertical seams.
	require.Len(t, links, 12)
	for _, l := range links {
		assert.Less(t, l.A, l.B)
	}
}

//----------------------------------------------------------------------------//
// Failure modes
//----------------------------------------------------------------------------//

func TestResolve_AmbiguousDuplicateTile(t *testing.T) {
	dup := strings.Replace(strings.SplitN(fixture.Sample, "\n\n", 2)[0], "Tile 2311:", "Tile 9999:", 1)
	set, err := tile.ParseString(fixture.Sample + "\n\n" + dup)
	require.NoError(t, err)

	_, err = adjacency.Resolve(set)
	require.Error(t, err)

	var amb *adjacency.AmbiguousMatchError
	require.ErrorAs(t, err, &amb)
	assert.GreaterOrEqual(t, len(amb.Candidates), 2)
	assert.True(t, tserr.Is(err, tserr.ErrCodeAmbiguousMatch))
}

func TestResolve_AmbiguousPalindrome(t *testing.T) {
	set, err := tile.ParseString("Tile 1:\n..#\n...\n..#\n\nTile 2:\n#..\n...\n#..\n")
	require.NoError(t, err)

	_, err = adjacency.Resolve(set)
	var amb *adjacency.AmbiguousMatchError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, 1, amb.TileID)
	assert.Contains(t, amb.Error(), "tile 1")
}

func TestResolve_NotARectangle(t *testing.T) {
	blocks := strings.Split(fixture.Sample, "\n\n")
	// 2311 and 1951 only touch each other, so neither is a corner.
	set, err := tile.ParseString(blocks[0] + "\n\n" + blocks[1])
	require.NoError(t, err)

	table, err := adjacency.Resolve(set)
	require.NoError(t, err)
	assert.Empty(t, table.Corners())

	_, err = table.CornerProduct()
	assert.True(t, tserr.Is(err, tserr.ErrCodeAssembly))
	assert.True(t, tserr.Is(table.Validate(), tserr.ErrCodeAssembly))
}

//----------------------------------------------------------------------------//
// Classify
//----------------------------------------------------------------------------//

func TestClassify(t *testing.T) {
	p := adjacency.Slot{Present: true}
	cases := []struct {
		name string
		n    adjacency.Neighbors
		want adjacency.Kind
	}{
		{"Interior", adjacency.Neighbors{p, p, p, p}, adjacency.KindInterior},
		{"Border", adjacency.Neighbors{p, p, {}, p}, adjacency.KindBorder},
		{"CornerTopRight", adjacency.Neighbors{p, p, {}, {}}, adjacency.KindCorner},
		{"CornerLeftTop", adjacency.Neighbors{p, {}, {}, p}, adjacency.KindCorner},
		{"Opposite", adjacency.Neighbors{p, {}, p, {}}, adjacency.KindInvalid},
		{"Single", adjacency.Neighbors{{}, p, {}, {}}, adjacency.KindInvalid},
		{"Isolated", adjacency.Neighbors{}, adjacency.KindInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, adjacency.Classify(tc.n))
		})
	}
}

func TestSlot_InvalidSide(t *testing.T) {
	table := sampleTable(t)
	assert.False(t, table.Slot(1951, tile.Side(7)).Present)
	assert.False(t, table.Slot(42, tile.Top).Present)
}
