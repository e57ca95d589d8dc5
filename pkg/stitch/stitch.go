package stitch

import (
	"github.com/matzehuels/tilestitch/pkg/assemble"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Render stitches the tiles of set into one bitmap following p.
func Render(p *assemble.Placement, set *tile.Set) (*Bitmap, error) {
	if p == nil {
		return nil, tserr.New(tserr.ErrCodeInvalidInput, "nil placement")
	}
	if err := p.Check(); err != nil {
		return nil, err
	}
	inner := set.Size() - 2
	b := &Bitmap{
		width:  p.Cols * inner,
		height: p.Rows * inner,
	}
	b.pix = make([]bool, b.width*b.height)

	for _, cell := range p.Cells {
		t, ok := set.Get(cell.TileID)
		if !ok {
			return nil, tserr.New(tserr.ErrCodeNotFound, "tile %d is placed but not in the set", cell.TileID)
		}
		g := t.Pixels.Orient(cell.Orientation).Interior()
		top, left := cell.Row*inner, cell.Col*inner
		for y, row := range g {
			copy(b.pix[(top+y)*b.width+left:], row)
		}
	}
	return b, nil
}
