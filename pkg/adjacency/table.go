package adjacency

import (
	"fmt"
	"slices"

	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Slot records what lies beyond one side of a tile.
type Slot struct {
	Neighbor int       // neighbouring tile id
	Side     tile.Side // the neighbour's side that matched
	Mirrored bool      // the edges matched only when one tile is mirrored
	Present  bool      // false for outward-facing border sides
}

// Neighbors holds a tile's four slots indexed by [tile.Side].
type Neighbors [4]Slot

// Count returns the number of populated slots.
func (n Neighbors) Count() int {
	c := 0
	for _, s := range n {
		if s.Present {
			c++
		}
	}
	return c
}

// Kind classifies a tile by its populated slots.
type Kind int

// Tile kinds.
const (
	KindInvalid Kind = iota
	KindCorner
	KindBorder
	KindInterior
)

func (k Kind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindBorder:
		return "border"
	case KindInterior:
		return "interior"
	}
	return "invalid"
}

// Classify returns the kind implied by n. Two populated slots only make a
// corner when they sit on adjacent sides.
func Classify(n Neighbors) Kind {
	switch n.Count() {
	case 4:
		return KindInterior
	case 3:
		return KindBorder
	case 2:
		for _, s := range tile.Sides {
			if n[s].Present && n[(s+1)%4].Present {
				return KindCorner
			}
		}
	}
	return KindInvalid
}

// Link is one undirected match between two tiles. [Table.Links] reports
// each match once with A < B.
type Link struct {
	A, B         int
	SideA, SideB tile.Side
	Mirrored     bool
}

// Table is the resolved neighbour table. It is immutable once returned by
// [Resolve] and safe for concurrent reads.
type Table struct {
	ids   []int
	slots map[int]Neighbors
}

// Len returns the number of tiles in the table.
func (t *Table) Len() int { return len(t.ids) }

// IDs returns the tile ids in input order.
func (t *Table) IDs() []int { return slices.Clone(t.ids) }

// Neighbors returns the slots of tile id.
func (t *Table) Neighbors(id int) (Neighbors, bool) {
	n, ok := t.slots[id]
	return n, ok
}

// Slot returns the slot on side s of tile id. The result's Present field is
// false for border sides and unknown tiles.
func (t *Table) Slot(id int, s tile.Side) Slot {
	if !s.Valid() {
		return Slot{}
	}
	return t.slots[id][s]
}

// Kind classifies tile id. Unknown ids are [KindInvalid].
func (t *Table) Kind(id int) Kind {
	n, ok := t.slots[id]
	if !ok {
		return KindInvalid
	}
	return Classify(n)
}

// Corners returns the ids of all corner tiles in ascending order.
func (t *Table) Corners() []int {
	var out []int
	for _, id := range t.ids {
		if t.Kind(id) == KindCorner {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// CountByKind returns how many tiles fall in each kind.
func (t *Table) CountByKind() map[Kind]int {
	out := make(map[Kind]int, 4)
	for _, id := range t.ids {
		out[t.Kind(id)]++
	}
	return out
}

// CornerProduct multiplies the ids of the four corner tiles. Any other
// number of corners means the tiles do not form one rectangle.
func (t *Table) CornerProduct() (int, error) {
	corners := t.Corners()
	if len(corners) != 4 {
		return 0, tserr.New(tserr.ErrCodeAssembly, "expected 4 corner tiles, found %d", len(corners))
	}
	product := 1
	for _, id := range corners {
		product *= id
	}
	return product, nil
}

// Links returns every match once, ordered by (A, SideA).
func (t *Table) Links() []Link {
	var out []Link
	for _, id := range t.ids {
		for _, s := range tile.Sides {
			sl := t.slots[id][s]
			if !sl.Present || sl.Neighbor < id {
				continue
			}
			out = append(out, Link{A: id, SideA: s, B: sl.Neighbor, SideB: sl.Side, Mirrored: sl.Mirrored})
		}
	}
	slices.SortStableFunc(out, func(x, y Link) int {
		if x.A != y.A {
			return x.A - y.A
		}
		return int(x.SideA) - int(y.SideA)
	})
	return out
}

// Validate checks what the assembler relies on: every slot is
// mirrored by its neighbour, every tile is a corner, border or interior tile,
// and there are exactly four corners.
func (t *Table) Validate() error {
	for _, id := range t.ids {
		for _, s := range tile.Sides {
			sl := t.slots[id][s]
			if !sl.Present {
				continue
			}
			back := t.Slot(sl.Neighbor, sl.Side)
			if !back.Present || back.Neighbor != id || back.Side != s || back.Mirrored != sl.Mirrored {
				return tserr.New(tserr.ErrCodeInternal, "tile %d %v: neighbour %d does not link back", id, s, sl.Neighbor)
			}
		}
		if t.Kind(id) == KindInvalid {
			return tserr.New(tserr.ErrCodeAssembly, "tile %d has %s", id, describe(t.slots[id]))
		}
	}
	if n := len(t.Corners()); n != 4 {
		return tserr.New(tserr.ErrCodeAssembly, "expected 4 corner tiles, found %d", n)
	}
	return nil
}

func describe(n Neighbors) string {
	c := n.Count()
	if c == 2 {
		return "neighbours on opposite sides"
	}
	return fmt.Sprintf("%d neighbours", c)
}
