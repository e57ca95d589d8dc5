// Package pipeline runs the complete tile reassembly pipeline for tilestitch.
//
// This package implements the parse → resolve → assemble → stitch → render
// pipeline shared by the CLI and the HTTP API, so both entry points solve,
// cache and render in exactly the same way.
//
// # Architecture
//
// The pipeline consists of five stages:
//
//  1. Parse: Read the tile set from its text form
//  2. Resolve: Match tile edges into a neighbour table
//  3. Assemble: Lay the tiles out as an oriented grid
//  4. Stitch: Join the tile interiors into one bitmap
//  5. Render: Produce artifacts (txt, png, json, svg)
//
// The result of stages 2 and 3 (the placement and the corner product) is
// cached by a hash of the input text, and each artifact is cached by a hash
// of the solution it was rendered from.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   string(data),
//	    Formats: []string{"png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Use [Runner.Solve] to stop after stitching.
package pipeline

import (
	"time"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/assemble"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/render"
	"github.com/matzehuels/tilestitch/pkg/render/bitmap"
	"github.com/matzehuels/tilestitch/pkg/stitch"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG pixel size.
	DefaultScale = bitmap.DefaultScale

	// DefaultFormat is rendered when no format is requested.
	DefaultFormat = render.FormatText
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input is the tile set in its text form.
	Input string `json:"input"`
	// Source names the input in logs, e.g. a file path.
	Source string `json:"source,omitempty"`

	// Refresh ignores cached solutions and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Scale    int      `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and API responses.
	RunID string

	// InputHash is the content hash of the input text.
	InputHash string

	// SolutionHash is the content hash of the encoded solution.
	SolutionHash string

	// Tiles is the parsed tile set.
	Tiles *tile.Set

	// Table is the neighbour table. It is nil when the solution came from
	// the cache and no artifact needed it.
	Table *adjacency.Table

	// Placement is the assembled grid.
	Placement *assemble.Placement

	// CornerProduct is the product of the four corner tile ids.
	CornerProduct int

	// Corners are the corner tile ids in ascending order.
	Corners []int

	// Bitmap is the stitched picture.
	Bitmap *stitch.Bitmap

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tiles      int
	TileSize   int
	Rows       int
	Cols       int
	Links      int
	ParseTime  time.Duration
	SolveTime  time.Duration
	StitchTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolutionHit bool // Whether placement and corner product came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return tserr.ValidateFormat(format, render.Formats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateScale checks that a PNG scale is in range.
func ValidateScale(scale int) error {
	if scale < 1 || scale > bitmap.MaxScale {
		return tserr.New(tserr.ErrCodeInvalidInput, "scale must be between 1 and %d, got %d", bitmap.MaxScale, scale)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Calling it more than once has the same effect as calling it
// once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSolve checks the fields needed to solve the puzzle.
func (o *Options) ValidateForSolve() error {
	if o.Input == "" {
		return tserr.New(tserr.ErrCodeInvalidInput, "input is required")
	}
	if o.Source == "" {
		o.Source = "input"
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateScale(o.Scale)
}
