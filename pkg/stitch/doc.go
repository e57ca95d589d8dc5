// Package stitch joins a placement of oriented tiles into one bitmap.
//
// Every tile is oriented as its placement cell says, loses its outer ring of
// border pixels, and is copied into the output at its grid position. A grid
// of R×C tiles of side N yields a bitmap of R·(N-2) rows and C·(N-2) columns.
package stitch
