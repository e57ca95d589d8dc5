// Package fixture holds tile inputs shared by tests across the module.
package fixture

import _ "embed"

// Sample is the nine-tile, 10×10 reference puzzle. Its corners are
// 1951, 3079, 2971 and 1171.
//
//go:embed sample.txt
var Sample string

// SampleCornerProduct is the product of the sample's corner ids.
const SampleCornerProduct = 20899048083289

// SampleSetPixels is the number of set pixels in the stitched sample image.
const SampleSetPixels = 303
