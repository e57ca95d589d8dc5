package stitch_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/assemble"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/stitch"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

func solve(t *testing.T, text string) (*tile.Set, *assemble.Placement) {
	t.Helper()
	set, err := tile.ParseString(text)
	require.NoError(t, err)
	table, err := adjacency.Resolve(set)
	require.NoError(t, err)
	p, err := assemble.Assemble(set, table)
	require.NoError(t, err)
	return set, p
}

func TestRender_Sample(t *testing.T) {
	set, p := solve(t, fixture.Sample)

	b, err := stitch.Render(p, set)
	require.NoError(t, err)
	assert.Equal(t, 24, b.Width())
	assert.Equal(t, 24, b.Height())
	assert.Equal(t, fixture.SampleSetPixels, b.Count())
}

func TestRender_ReproducesPicture(t *testing.T) {
	puzzle := fixture.Generate(4, 4, 32, 11)
	set, p := solve(t, puzzle.Text())

	b, err := stitch.Render(p, set)
	require.NoError(t, err)

	got := tile.Grid(b.Rows())
	want := tile.Grid(puzzle.Composite)
	for rot := 0; rot < 4; rot++ {
		for _, mirror := range []bool{false, true} {
			if cmp.Equal(want.Orient(tile.Orientation{Rotation: rot, Mirror: mirror}), got) {
				return
			}
		}
	}
	t.Fatalf("stitched bitmap matches no orientation of the source picture:\n%s", b)
}

func TestRender_Dimensions(t *testing.T) {
	cases := []struct {
		rows, cols, n int
	}{
		{2, 2, 24},
		{2, 5, 24},
		{3, 4, 32},
	}
	for _, tc := range cases {
		puzzle := fixture.Generate(tc.rows, tc.cols, tc.n, uint64(tc.rows*100+tc.cols))
		set, p := solve(t, puzzle.Text())

		b, err := stitch.Render(p, set)
		require.NoError(t, err)
		assert.Equal(t, p.Rows*(tc.n-2), b.Height())
		assert.Equal(t, p.Cols*(tc.n-2), b.Width())
		assert.ElementsMatch(t,
			[]int{tc.rows * (tc.n - 2), tc.cols * (tc.n - 2)},
			[]int{b.Height(), b.Width()})
	}
}

func TestRender_InvalidPlacement(t *testing.T) {
	set, p := solve(t, fixture.Sample)

	_, err := stitch.Render(nil, set)
	assert.True(t, tserr.Is(err, tserr.ErrCodeInvalidInput))

	bad := *p
	bad.Cells = p.Cells[:4]
	_, err = stitch.Render(&bad, set)
	assert.True(t, tserr.Is(err, tserr.ErrCodeAssembly))

	unknown := *p
	unknown.Cells = append([]assemble.Cell(nil), p.Cells...)
	unknown.Cells[0].TileID = 42
	_, err = stitch.Render(&unknown, set)
	assert.True(t, tserr.Is(err, tserr.ErrCodeNotFound))
}

func TestBitmap_Accessors(t *testing.T) {
	set, err := tile.ParseString("Tile 1:\n...\n.#.\n...\n")
	require.NoError(t, err)
	p := &assemble.Placement{Rows: 1, Cols: 1, Cells: []assemble.Cell{{TileID: 1}}}

	b, err := stitch.Render(p, set)
	require.NoError(t, err)
	assert.Equal(t, "#", b.String())
	assert.True(t, b.At(0, 0))
	assert.False(t, b.At(1, 0))
	assert.False(t, b.At(-1, 0))

	img := b.Image()
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)

	rows := b.Rows()
	rows[0][0] = false
	assert.True(t, b.At(0, 0), "Rows must return a copy")
}
