package adjacency

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// AmbiguousMatchError reports an edge that matches more than one other edge.
type AmbiguousMatchError struct {
	TileID     int
	Side       tile.Side
	Candidates []Slot
}

func (e *AmbiguousMatchError) Error() string {
	parts := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		parts[i] = fmt.Sprintf("%d/%v", c.Neighbor, c.Side)
		if c.Mirrored {
			parts[i] += " (mirrored)"
		}
	}
	return fmt.Sprintf("tile %d %v edge matches %d edges: %s",
		e.TileID, e.Side, len(e.Candidates), strings.Join(parts, ", "))
}

// Code returns [tserr.ErrCodeAmbiguousMatch].
func (e *AmbiguousMatchError) Code() tserr.Code { return tserr.ErrCodeAmbiguousMatch }

// Resolve builds the neighbour table for set.
//
// Each tile is compared against the tiles after it in input order on a
// bounded pool of goroutines; workers only collect matches, and the table is
// filled afterwards in a fixed order so that both the table and any
// [*AmbiguousMatchError] are deterministic.
func Resolve(set *tile.Set) (*Table, error) {
	tiles := set.Tiles()
	edges := make([][4]tile.Edge, len(tiles))
	reversed := make([][4]tile.Edge, len(tiles))
	for i, t := range tiles {
		edges[i] = t.Edges()
		for _, s := range tile.Sides {
			reversed[i][s] = edges[i][s].Reverse()
		}
	}

	found := make([][]Link, len(tiles))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range tiles {
		g.Go(func() error {
			found[i] = matchFrom(i, tiles, edges, reversed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make(map[int]*[4][]Slot, len(tiles))
	for _, t := range tiles {
		candidates[t.ID] = new([4][]Slot)
	}
	for _, links := range found {
		for _, l := range links {
			candidates[l.A][l.SideA] = append(candidates[l.A][l.SideA], Slot{Neighbor: l.B, Side: l.SideB, Mirrored: l.Mirrored, Present: true})
			candidates[l.B][l.SideB] = append(candidates[l.B][l.SideB], Slot{Neighbor: l.A, Side: l.SideA, Mirrored: l.Mirrored, Present: true})
		}
	}

	table := &Table{
		ids:   set.IDs(),
		slots: make(map[int]Neighbors, len(tiles)),
	}
	for _, t := range tiles {
		var n Neighbors
		for _, s := range tile.Sides {
			switch c := candidates[t.ID][s]; len(c) {
			case 0:
			case 1:
				n[s] = c[0]
			default:
				return nil, &AmbiguousMatchError{TileID: t.ID, Side: s, Candidates: c}
			}
		}
		table.slots[t.ID] = n
	}
	return table, nil
}

// matchFrom compares tile i with every later tile. An edge equal to the other
// edge is a mirrored match; equal to its reverse is a direct match. A
// palindromic pair produces both, which later surfaces as an ambiguity.
func matchFrom(i int, tiles []tile.Tile, edges, reversed [][4]tile.Edge) []Link {
	var out []Link
	for j := i + 1; j < len(tiles); j++ {
		for _, si := range tile.Sides {
			for _, sj := range tile.Sides {
				link := Link{A: tiles[i].ID, SideA: si, B: tiles[j].ID, SideB: sj}
				if edges[i][si].Equal(edges[j][sj]) {
					link.Mirrored = true
					out = append(out, link)
				}
				if edges[i][si].Equal(reversed[j][sj]) {
					link.Mirrored = false
					out = append(out, link)
				}
			}
		}
	}
	return out
}
