package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tilestitch/pkg/assemble"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Solution is a solved puzzle: where every tile goes and the corner product.
type Solution struct {
	TileSize      int
	CornerProduct int
	Corners       []int
	Placement     *assemble.Placement
}

type solution struct {
	TileSize      int     `json:"tile_size"`
	CornerProduct int     `json:"corner_product"`
	Corners       []int   `json:"corners"`
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
	Grid          [][]int `json:"grid,omitempty"`
	Cells         []cell  `json:"cells"`
}

type cell struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	Tile     int  `json:"tile"`
	Rotation int  `json:"rotation"`
	Mirror   bool `json:"mirror"`
}

// WriteSolution encodes s as indented JSON and writes it to w.
func WriteSolution(s *Solution, w io.Writer) error {
	p := s.Placement
	out := solution{
		TileSize:      s.TileSize,
		CornerProduct: s.CornerProduct,
		Corners:       s.Corners,
		Rows:          p.Rows,
		Cols:          p.Cols,
		Grid:          p.TileIDs(),
		Cells:         make([]cell, len(p.Cells)),
	}
	for i, c := range p.Cells {
		o := c.Orientation.Normalize()
		out.Cells[i] = cell{Row: c.Row, Col: c.Col, Tile: c.TileID, Rotation: o.Rotation, Mirror: o.Mirror}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportSolution writes s to a JSON file at path.
func ExportSolution(s *Solution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSolution(s, f)
}

// WriteTiles writes the tiles of set in the puzzle text format, in input
// order.
func WriteTiles(set *tile.Set, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, t := range set.Tiles() {
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "Tile %d:\n%s\n", t.ID, t.Pixels)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tiles: %w", err)
	}
	return nil
}
