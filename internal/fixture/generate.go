package fixture

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Puzzle is a tile set cut from a random picture.
type Puzzle struct {
	// Layout holds tile ids by their position in the source picture.
	Layout [][]int
	// Composite is the picture with every tile's border ring removed, which
	// is what stitching must reproduce up to rotation and mirroring.
	Composite [][]bool

	order  []int
	blocks map[int]string
}

// Generate cuts a rows×cols puzzle of n×n tiles from a random picture.
// Neighbouring tiles share their touching border, every tile is rotated and
// mirrored at random, and tiles are listed in shuffled order. Large n keeps
// accidental edge collisions out of the picture.
func Generate(rows, cols, n int, seed uint64) Puzzle {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	step := n - 1
	height, width := rows*step+1, cols*step+1
	picture := make([][]bool, height)
	for y := range picture {
		picture[y] = make([]bool, width)
		for x := range picture[y] {
			picture[y][x] = rng.IntN(2) == 1
		}
	}

	ids := rng.Perm(9000)[:rows*cols]
	p := Puzzle{
		Layout: make([][]int, rows),
		blocks: make(map[int]string, rows*cols),
	}
	for r := 0; r < rows; r++ {
		p.Layout[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			id := ids[r*cols+c] + 1000
			p.Layout[r][c] = id

			g := make(tile.Grid, n)
			for y := 0; y < n; y++ {
				g[y] = append([]bool(nil), picture[r*step+y][c*step:c*step+n]...)
			}
			g = g.Orient(tile.Orientation{Rotation: rng.IntN(4), Mirror: rng.IntN(2) == 1})
			p.blocks[id] = "Tile " + strconv.Itoa(id) + ":\n" + g.String()
			p.order = append(p.order, id)
		}
	}
	rng.Shuffle(len(p.order), func(i, j int) { p.order[i], p.order[j] = p.order[j], p.order[i] })

	for y := 0; y < height; y++ {
		if y%step == 0 {
			continue
		}
		var row []bool
		for x := 0; x < width; x++ {
			if x%step != 0 {
				row = append(row, picture[y][x])
			}
		}
		p.Composite = append(p.Composite, row)
	}
	return p
}

// Text returns the puzzle in the tile input format.
func (p Puzzle) Text() string {
	return p.Without()
}

// Without returns the puzzle text with the given tiles left out.
func (p Puzzle) Without(ids ...int) string {
	skip := make(map[int]bool, len(ids))
	for _, id := range ids {
		skip[id] = true
	}
	var parts []string
	for _, id := range p.order {
		if !skip[id] {
			parts = append(parts, p.blocks[id])
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}
