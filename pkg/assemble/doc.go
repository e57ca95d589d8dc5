// Package assemble turns a resolved neighbour table into a row-major
// placement of oriented tiles.
//
// [Assemble] starts from the corner tile with the smallest id, turns it so
// that its two open sides face up and left, then walks right along each row
// and down from the first tile of each row. Every step uses [Compose] to work
// out the orientation of the tile it lands on from the orientation of the
// tile it came from and the slot it followed.
//
// Assembly is strict: a tile reached twice, rows of different lengths, a
// vertical neighbour that disagrees with the table, or a grid that does not
// cover every tile all fail with [*AssemblyError].
package assemble
