// Package bitmap writes stitched bitmaps as artifacts.
//
// [RenderText] produces the plain '#'/'.' grid used by the CLI and the HTTP
// API. [RenderPNG] encodes the bitmap as a grayscale PNG, scaled up with
// nearest-neighbour sampling so that each pixel stays a crisp square:
//
//	png, err := bitmap.RenderPNG(b, bitmap.WithScale(8))
package bitmap
