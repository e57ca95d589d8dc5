// Package nodelink renders a tile neighbour table as a node-link diagram.
//
// # Overview
//
// Each tile becomes a node and each matched edge pair becomes an undirected
// link. Corner, border and interior tiles are filled in different colours,
// and links that only match after mirroring one tile are dashed.
//
// # Usage
//
//	dot := nodelink.ToDOT(table, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// With Detailed set, every link is labelled with the two sides it joins.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
package nodelink
