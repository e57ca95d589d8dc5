// Package render turns solved puzzles into output artifacts.
//
// # Overview
//
// The rendering subpackages each cover one kind of artifact:
//
//   - [bitmap]: the stitched picture as text or PNG
//   - [nodelink]: the tile neighbour table as a Graphviz diagram
//
// # Bitmap Artifacts
//
//	txt := bitmap.RenderText(b)
//	png, err := bitmap.RenderPNG(b, bitmap.WithScale(8))
//
// # Node-Link Diagrams
//
//	dot := nodelink.ToDOT(table, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The format names accepted by the CLI and the HTTP API are listed in
// [Formats].
//
// [bitmap]: github.com/matzehuels/tilestitch/pkg/render/bitmap
// [nodelink]: github.com/matzehuels/tilestitch/pkg/render/nodelink
package render
