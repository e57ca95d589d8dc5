package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/tilestitch/pkg/assemble"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// MaxInputSize bounds how much tile text is read from one source.
const MaxInputSize = 16 << 20

// ReadTiles parses a tile set from r. Input beyond [MaxInputSize] bytes is
// rejected. ReadTiles does not close r.
func ReadTiles(r io.Reader) (*tile.Set, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("read tiles: %w", err)
	}
	if len(data) > MaxInputSize {
		return nil, tserr.New(tserr.ErrCodeInvalidInput, "input exceeds %d bytes", MaxInputSize)
	}
	return tile.ParseString(string(data))
}

// ImportTiles reads the tile text file at path.
func ImportTiles(path string) (*tile.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, tserr.Wrap(tserr.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTiles(f)
}

// ReadSolution decodes a solution from r and checks its placement.
func ReadSolution(r io.Reader) (*Solution, error) {
	var data solution
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, tserr.Wrap(tserr.ErrCodeInvalidFormat, err, "decode solution")
	}

	p := &assemble.Placement{
		Rows:  data.Rows,
		Cols:  data.Cols,
		Cells: make([]assemble.Cell, len(data.Cells)),
	}
	for i, c := range data.Cells {
		p.Cells[i] = assemble.Cell{
			Row:         c.Row,
			Col:         c.Col,
			TileID:      c.Tile,
			Orientation: tile.Orientation{Rotation: c.Rotation, Mirror: c.Mirror},
		}
	}
	if err := p.Check(); err != nil {
		return nil, fmt.Errorf("solution placement: %w", err)
	}

	return &Solution{
		TileSize:      data.TileSize,
		CornerProduct: data.CornerProduct,
		Corners:       data.Corners,
		Placement:     p,
	}, nil
}

// ImportSolution reads a solution JSON file at path.
func ImportSolution(path string) (*Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSolution(f)
}
