package assemble

import (
	"fmt"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Compose returns the orientation of the tile reached by leaving a tile laid
// down as base through its position dir, when the followed slot says the
// neighbour matched with its own side matched.
//
// The neighbour's matched side has to face back the way we came, at
// dir.Opposite(). A mirrored match flips the mirror state relative to base;
// the rotation is whatever then carries matched onto that position.
func Compose(base tile.Orientation, dir, matched tile.Side, mirrored bool) tile.Orientation {
	o := tile.Orientation{Mirror: base.Mirror != mirrored}
	o.Rotation = (int(dir.Opposite()) - int(o.Place(matched)) + 4) % 4
	return o
}

// Origin returns the orientation that turns a corner tile's two open sides to
// face up and left. It reports false when n is not a corner.
func Origin(n adjacency.Neighbors) (tile.Orientation, bool) {
	if adjacency.Classify(n) != adjacency.KindCorner {
		return tile.Orientation{}, false
	}
	for _, s := range tile.Sides {
		if !n[s].Present && !n[(s+1)%4].Present {
			// s must land on Left and s+1 on Top.
			return tile.Orientation{Rotation: (int(tile.Left) - int(s) + 4) % 4}, true
		}
	}
	return tile.Orientation{}, false
}

type step struct {
	id int
	o  tile.Orientation
}

// Assemble lays out every tile of set using table.
func Assemble(set *tile.Set, table *adjacency.Table) (*Placement, error) {
	if table.Len() != set.Len() {
		return nil, &AssemblyError{Reason: fmt.Sprintf("table has %d tiles, set has %d", table.Len(), set.Len())}
	}
	corners := table.Corners()
	if len(corners) == 0 {
		return nil, &AssemblyError{Reason: "no corner tile"}
	}
	start := corners[0]
	n, _ := table.Neighbors(start)
	origin, ok := Origin(n)
	if !ok {
		return nil, &AssemblyError{TileID: start, Reason: "corner has no adjacent open sides"}
	}

	total := set.Len()
	visited := make(map[int]bool, total)
	var rows [][]step

	head := step{id: start, o: origin}
	for {
		row, err := walkRow(table, head, visited, total)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &AssemblyError{TileID: head.id, Reason: fmt.Sprintf("row %d has %d tiles, row 0 has %d", len(rows), len(row), len(rows[0]))}
		}
		if len(rows) > 0 {
			if err := checkBelow(table, rows[len(rows)-1], row); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)

		next, ok := follow(table, head, tile.Bottom)
		if !ok {
			break
		}
		head = next
	}

	if err := checkClosed(table, rows[len(rows)-1]); err != nil {
		return nil, err
	}

	p := &Placement{Rows: len(rows), Cols: len(rows[0])}
	if p.Rows*p.Cols != total {
		return nil, &AssemblyError{Reason: fmt.Sprintf("%dx%d grid covers %d of %d tiles", p.Rows, p.Cols, p.Rows*p.Cols, total)}
	}
	p.Cells = make([]Cell, 0, total)
	for r, row := range rows {
		for c, st := range row {
			if _, ok := set.Get(st.id); !ok {
				return nil, &AssemblyError{TileID: st.id, Reason: "not in tile set"}
			}
			p.Cells = append(p.Cells, Cell{Row: r, Col: c, TileID: st.id, Orientation: st.o})
		}
	}
	return p, nil
}

// follow leaves cur through position dir.
func follow(table *adjacency.Table, cur step, dir tile.Side) (step, bool) {
	sl := table.Slot(cur.id, cur.o.Side(dir))
	if !sl.Present {
		return step{}, false
	}
	return step{id: sl.Neighbor, o: Compose(cur.o, dir, sl.Side, sl.Mirrored)}, true
}

func walkRow(table *adjacency.Table, head step, visited map[int]bool, limit int) ([]step, error) {
	var row []step
	cur := head
	for {
		if visited[cur.id] {
			return nil, &AssemblyError{TileID: cur.id, Reason: "reached twice"}
		}
		if len(visited) == limit {
			return nil, &AssemblyError{TileID: cur.id, Reason: "more grid cells than tiles"}
		}
		visited[cur.id] = true
		row = append(row, cur)

		next, ok := follow(table, cur, tile.Right)
		if !ok {
			return row, nil
		}
		cur = next
	}
}

// checkBelow confirms that each tile of above leads down to the tile, in the
// same orientation, that the row walk placed beneath it.
func checkBelow(table *adjacency.Table, above, below []step) error {
	for c, st := range above {
		got, ok := follow(table, st, tile.Bottom)
		if !ok || got != below[c] {
			return &AssemblyError{TileID: below[c].id, Reason: fmt.Sprintf("does not sit below tile %d", st.id)}
		}
	}
	return nil
}

// checkClosed confirms the last row has nothing beneath it.
func checkClosed(table *adjacency.Table, last []step) error {
	for _, st := range last {
		if _, ok := follow(table, st, tile.Bottom); ok {
			return &AssemblyError{TileID: st.id, Reason: "bottom row tile has a neighbour below"}
		}
	}
	return nil
}
