// Package tile holds square pixel tiles and the boundary sequences used to
// match them against each other.
//
// # Tiles and sets
//
// A [Tile] is an identifier plus an N×N boolean [Grid]. A [Set] is the
// immutable collection of tiles read from one input; all tiles in a set share
// the same size N and have distinct identifiers. Use [Parse] to read a set
// from the text format:
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//	...
//
// # Edges
//
// Each tile has four [Edge] values, one per [Side], all read clockwise from
// the top-left corner: the top row left to right, the right column top to
// bottom, the bottom row right to left and the left column bottom to top.
// Reading every side in the same rotational direction means two tiles that
// touch without mirroring have edges that are reverses of each other.
//
// # Orientation
//
// An [Orientation] is an optional horizontal mirror followed by a number of
// clockwise quarter turns. [Grid.Orient] applies it to pixels, while
// [Orientation.Place] and [Orientation.Side] translate between a tile's own
// sides and the positions they occupy once oriented.
package tile
