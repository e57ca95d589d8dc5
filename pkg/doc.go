// Package pkg provides the core libraries for tilestitch image reassembly.
//
// # Overview
//
// Tilestitch takes a set of square tiles cut from one picture, shuffled,
// rotated and mirrored, and puts the picture back together. The pkg
// directory is organized into three areas:
//
//  1. Domain logic: [tile], [adjacency], [assemble], [stitch]
//  2. Output: [render], [io]
//  3. Infrastructure: [cache], [pipeline], [observability], [errors], [buildinfo]
//
// # Architecture
//
// The data flow through tilestitch:
//
//	Tile text
//	    ↓
//	[tile] (parse, edge codes, orientation)
//	    ↓
//	[adjacency] (match borders into a neighbour table)
//	    ↓
//	[assemble] (walk the table into an oriented grid)
//	    ↓
//	[stitch] (strip borders, join interiors into one bitmap)
//	    ↓
//	TXT/PNG/JSON/SVG output
//
// # Quick Start
//
//	set, _ := tile.ParseString(input)
//	table, _ := adjacency.Resolve(set)
//	product, _ := table.CornerProduct()
//	placement, _ := assemble.Assemble(set, table)
//	img, _ := stitch.Render(placement, set)
//
// For cached, observable runs use [pipeline.Runner], which chains the same
// stages and renders artifacts in every requested format.
//
// # Caching
//
// [cache] stores solutions and rendered artifacts behind one interface with
// file, Redis and MongoDB backends. Keys are content hashes, so an unchanged
// tile file is never solved twice.
//
// [tile]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/tile
// [adjacency]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/adjacency
// [assemble]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/assemble
// [stitch]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/stitch
// [render]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/pipeline#Runner
// [observability]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/buildinfo
package pkg
