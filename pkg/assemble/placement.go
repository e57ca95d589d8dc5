package assemble

import (
	"fmt"

	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Cell is one grid position of a placement.
type Cell struct {
	Row         int
	Col         int
	TileID      int
	Orientation tile.Orientation
}

// Placement is the assembled grid. Cells are stored row-major, so the cell at
// (r, c) is Cells[r*Cols+c].
type Placement struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// Len returns the number of cells.
func (p *Placement) Len() int { return len(p.Cells) }

// At returns the cell at row r, column c.
func (p *Placement) At(r, c int) Cell {
	return p.Cells[r*p.Cols+c]
}

// TileIDs returns the tile ids row by row.
func (p *Placement) TileIDs() [][]int {
	out := make([][]int, p.Rows)
	for r := range out {
		out[r] = make([]int, p.Cols)
		for c := range out[r] {
			out[r][c] = p.At(r, c).TileID
		}
	}
	return out
}

// Check verifies the placement's shape: Rows×Cols cells in row-major order,
// normalized orientations and no tile id used twice.
func (p *Placement) Check() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return &AssemblyError{Reason: fmt.Sprintf("empty %dx%d grid", p.Rows, p.Cols)}
	}
	if len(p.Cells) != p.Rows*p.Cols {
		return &AssemblyError{Reason: fmt.Sprintf("%d cells for a %dx%d grid", len(p.Cells), p.Rows, p.Cols)}
	}
	seen := make(map[int]bool, len(p.Cells))
	for i, c := range p.Cells {
		if c.Row != i/p.Cols || c.Col != i%p.Cols {
			return &AssemblyError{TileID: c.TileID, Reason: fmt.Sprintf("cell %d is labelled (%d,%d)", i, c.Row, c.Col)}
		}
		if c.Orientation.Rotation < 0 || c.Orientation.Rotation > 3 {
			return &AssemblyError{TileID: c.TileID, Reason: fmt.Sprintf("rotation %d out of range", c.Orientation.Rotation)}
		}
		if seen[c.TileID] {
			return &AssemblyError{TileID: c.TileID, Reason: "tile placed twice"}
		}
		seen[c.TileID] = true
	}
	return nil
}

// AssemblyError reports a neighbour table that does not form a single
// rectangle of tiles.
type AssemblyError struct {
	TileID int
	Reason string
}

func (e *AssemblyError) Error() string {
	if e.TileID > 0 {
		return fmt.Sprintf("assemble: tile %d: %s", e.TileID, e.Reason)
	}
	return "assemble: " + e.Reason
}

// Code returns [tserr.ErrCodeAssembly].
func (e *AssemblyError) Code() tserr.Code { return tserr.ErrCodeAssembly }
