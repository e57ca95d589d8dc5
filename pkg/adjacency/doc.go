// Package adjacency resolves which tile edges meet.
//
// [Resolve] compares every side of every tile with every side of every other
// tile, both forward and reversed, and returns an immutable [Table]: for each
// tile and each of its four sides, an optional [Slot] naming the neighbour,
// the neighbour's side, and whether the match required mirroring.
//
// Because all edges are read clockwise, two tiles that sit next to each
// other without mirroring have edges that are reverses of one another; such a
// pair is a direct match. Identical readings are a mirrored match.
//
// Every edge may match at most one other edge. A second candidate makes the
// arrangement ambiguous and Resolve fails with [*AmbiguousMatchError] instead
// of picking one.
//
// # Classification
//
// The number of populated slots classifies a tile: two on adjacent sides is a
// corner, three is a border tile, four is an interior tile. Anything else is
// [KindInvalid] and means the tiles cannot form a single rectangle.
//
//	table, err := adjacency.Resolve(set)
//	product, err := table.CornerProduct()
package adjacency
