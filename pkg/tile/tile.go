package tile

import (
	"strings"
)

// Side identifies one of the four boundaries of a tile, in clockwise order.
type Side int

// Sides in clockwise order starting from the top.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists all four sides in clockwise order.
var Sides = [4]Side{Top, Right, Bottom, Left}

// Opposite returns the side facing s across the tile.
func (s Side) Opposite() Side { return (s + 2) % 4 }

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool { return s >= Top && s <= Left }

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "invalid"
}

// Grid is a square pixel matrix indexed [row][col]; true is a set pixel.
type Grid [][]bool

// Size returns the side length of the grid.
func (g Grid) Size() int { return len(g) }

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Rotate returns g turned one quarter clockwise.
func (g Grid) Rotate() Grid {
	n := len(g)
	out := newGrid(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y][x] = g[n-1-x][y]
		}
	}
	return out
}

// FlipH returns g mirrored left to right.
func (g Grid) FlipH() Grid {
	n := len(g)
	out := newGrid(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y][x] = g[y][n-1-x]
		}
	}
	return out
}

// Orient returns g mirrored (if o.Mirror) and then rotated o.Rotation
// quarter turns clockwise. g itself is never modified.
func (g Grid) Orient(o Orientation) Grid {
	out := g.Clone()
	if o.Mirror {
		out = out.FlipH()
	}
	for i := 0; i < o.quarterTurns(); i++ {
		out = out.Rotate()
	}
	return out
}

// Interior returns g without its outermost ring of pixels.
func (g Grid) Interior() Grid {
	n := len(g)
	if n < 2 {
		return Grid{}
	}
	out := make(Grid, 0, n-2)
	for y := 1; y < n-1; y++ {
		out = append(out, append([]bool(nil), g[y][1:n-1]...))
	}
	return out
}

// String renders g with '#' for set and '.' for clear pixels, one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, p := range row {
			b.WriteByte(pixelChar(p))
		}
	}
	return b.String()
}

func newGrid(n int) Grid {
	g := make(Grid, n)
	for i := range g {
		g[i] = make([]bool, n)
	}
	return g
}

func pixelChar(p bool) byte {
	if p {
		return '#'
	}
	return '.'
}

// Tile is a square block of pixels with a unique identifier.
type Tile struct {
	ID     int
	Pixels Grid
}

// Size returns the tile's side length N.
func (t Tile) Size() int { return t.Pixels.Size() }

// Set is an immutable collection of equally sized tiles with distinct ids.
// The zero value is not usable; build one with [NewSet] or [Parse].
type Set struct {
	tiles []Tile
	index map[int]int
	size  int
}

// NewSet validates tiles and returns them as a set in the given order.
// It fails with a [*ParseError] on an empty input, a duplicate id, a non-square
// tile, or tiles of differing sizes.
func NewSet(tiles ...Tile) (*Set, error) {
	if len(tiles) == 0 {
		return nil, &ParseError{Msg: "no tiles"}
	}
	s := &Set{
		tiles: make([]Tile, 0, len(tiles)),
		index: make(map[int]int, len(tiles)),
		size:  tiles[0].Size(),
	}
	if s.size < MinSize {
		return nil, &ParseError{TileID: tiles[0].ID, Msg: "tile must be at least 3×3"}
	}
	for _, t := range tiles {
		if t.ID <= 0 {
			return nil, &ParseError{TileID: t.ID, Msg: "tile id must be positive"}
		}
		if _, dup := s.index[t.ID]; dup {
			return nil, &ParseError{TileID: t.ID, Msg: "duplicate tile id"}
		}
		if t.Size() != s.size {
			return nil, &ParseError{TileID: t.ID, Msg: "tile size differs from the first tile"}
		}
		for _, row := range t.Pixels {
			if len(row) != s.size {
				return nil, &ParseError{TileID: t.ID, Msg: "tile is not square"}
			}
		}
		s.index[t.ID] = len(s.tiles)
		s.tiles = append(s.tiles, Tile{ID: t.ID, Pixels: t.Pixels.Clone()})
	}
	return s, nil
}

// MinSize is the smallest supported tile side; smaller tiles have no interior.
const MinSize = 3

// Len returns the number of tiles.
func (s *Set) Len() int { return len(s.tiles) }

// Size returns the side length N shared by every tile.
func (s *Set) Size() int { return s.size }

// Tiles returns the tiles in input order. The slice is a copy; the pixel
// grids are shared and must not be modified.
func (s *Set) Tiles() []Tile {
	return append([]Tile(nil), s.tiles...)
}

// Get returns the tile with the given id.
func (s *Set) Get(id int) (Tile, bool) {
	i, ok := s.index[id]
	if !ok {
		return Tile{}, false
	}
	return s.tiles[i], true
}

// IDs returns the tile ids in input order.
func (s *Set) IDs() []int {
	ids := make([]int, len(s.tiles))
	for i, t := range s.tiles {
		ids[i] = t.ID
	}
	return ids
}
