// Package io reads and writes tile sets and solved placements.
//
// # Tile Text Format
//
// Tile sets use the puzzle text format: blocks separated by blank lines, each
// block a "Tile <id>:" header followed by N rows of N pixels ('#' set, '.'
// clear). Use [ImportTiles] to read a file or [ReadTiles] for any io.Reader,
// and [WriteTiles] to write a set back out in the same format.
//
// # Solution JSON Format
//
// A solved puzzle is exported as JSON:
//
//	{
//	  "tile_size": 10,
//	  "corner_product": 20899048083289,
//	  "corners": [1171, 1951, 2971, 3079],
//	  "rows": 3,
//	  "cols": 3,
//	  "grid": [[1171, 2473, 3079], ...],
//	  "cells": [
//	    {"row": 0, "col": 0, "tile": 1171, "rotation": 1, "mirror": false},
//	    ...
//	  ]
//	}
//
// The grid array repeats the tile ids of cells for readers that only want the
// layout; [ReadSolution] rebuilds the placement from cells alone and checks it
// with [assemble.Placement.Check].
//
// The pipeline cache stores solutions in this format, and the render command
// emits it as the "json" artifact.
package io
