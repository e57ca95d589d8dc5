package tile

import "strings"

// Edge is the ordered pixel sequence along one side of a tile, read clockwise.
type Edge []bool

// Reverse returns e read backwards.
func (e Edge) Reverse() Edge {
	out := make(Edge, len(e))
	for i, p := range e {
		out[len(e)-1-i] = p
	}
	return out
}

// Equal reports whether e and other hold the same pixels in the same order.
func (e Edge) Equal(other Edge) bool {
	if len(e) != len(other) {
		return false
	}
	for i := range e {
		if e[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders e with '#' and '.'.
func (e Edge) String() string {
	var b strings.Builder
	b.Grow(len(e))
	for _, p := range e {
		b.WriteByte(pixelChar(p))
	}
	return b.String()
}

// Edge returns the boundary sequence of side s, read clockwise.
func (t Tile) Edge(s Side) Edge {
	g := t.Pixels
	n := len(g)
	e := make(Edge, n)
	for i := 0; i < n; i++ {
		switch s {
		case Top:
			e[i] = g[0][i]
		case Right:
			e[i] = g[i][n-1]
		case Bottom:
			e[i] = g[n-1][n-1-i]
		case Left:
			e[i] = g[n-1-i][0]
		}
	}
	return e
}

// Edges returns all four boundary sequences indexed by [Side].
func (t Tile) Edges() [4]Edge {
	var out [4]Edge
	for _, s := range Sides {
		out[s] = t.Edge(s)
	}
	return out
}
