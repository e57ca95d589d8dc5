package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/assemble"
	"github.com/matzehuels/tilestitch/pkg/cache"
	tsio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/observability"
	"github.com/matzehuels/tilestitch/pkg/stitch"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so that caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete pipeline, rendering every requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Solve(ctx, opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"run", result.RunID,
		"formats", strings.Join(opts.Formats, ","),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Solve parses the input, solves it (or loads the cached solution) and
// stitches the bitmap. The returned result has no artifacts.
func (r *Runner) Solve(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForSolve(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		InputHash: cache.Hash([]byte(opts.Input)),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	observability.Pipeline().OnParseStart(ctx, opts.Source)
	set, err := tile.ParseString(opts.Input)
	result.Stats.ParseTime = time.Since(parseStart)
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, opts.Source, 0, result.Stats.ParseTime, err)
		return nil, fmt.Errorf("parse: %w", err)
	}
	observability.Pipeline().OnParseComplete(ctx, opts.Source, set.Len(), result.Stats.ParseTime, nil)
	result.Tiles = set
	result.Stats.Tiles = set.Len()
	result.Stats.TileSize = set.Size()

	r.Logger.Info("parsed tiles",
		"run", result.RunID,
		"source", opts.Source,
		"tiles", set.Len(),
		"size", set.Size(),
		"duration", result.Stats.ParseTime)

	// Stages 2 and 3: Resolve and assemble
	solveStart := time.Now()
	sol, hit, err := r.SolveWithCacheInfo(ctx, set, result, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.SolveTime = time.Since(solveStart)
	result.CacheInfo.SolutionHit = hit
	result.Placement = sol.Placement
	result.CornerProduct = sol.CornerProduct
	result.Corners = sol.Corners
	result.Stats.Rows = sol.Placement.Rows
	result.Stats.Cols = sol.Placement.Cols

	r.Logger.Info("assembled grid",
		"run", result.RunID,
		"rows", sol.Placement.Rows,
		"cols", sol.Placement.Cols,
		"corners", sol.Corners,
		"cached", hit,
		"duration", result.Stats.SolveTime)

	// Stage 4: Stitch
	stitchStart := time.Now()
	b, err := stitch.Render(sol.Placement, set)
	if err != nil {
		return nil, fmt.Errorf("stitch: %w", err)
	}
	result.Bitmap = b
	result.Stats.StitchTime = time.Since(stitchStart)

	r.Logger.Debug("stitched bitmap",
		"run", result.RunID,
		"width", b.Width(),
		"height", b.Height(),
		"set", b.Count())

	return result, nil
}

// SolveWithCacheInfo returns the solution for set, from the cache when
// possible. On a miss it resolves and assembles, records the table and hash
// on result, and caches the solution. The bool reports a cache hit.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, set *tile.Set, result *Result, opts Options) (*tsio.Solution, bool, error) {
	cacheKey := r.Keyer.SolutionKey(result.InputHash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			sol, err := tsio.ReadSolution(bytes.NewReader(data))
			if err == nil && fitsSet(sol, set) {
				observability.Cache().OnCacheHit(ctx, "solution")
				result.SolutionHash = cache.Hash(data)
				rows, cols := sol.Placement.Rows, sol.Placement.Cols
				result.Stats.Links = rows*(cols-1) + cols*(rows-1)
				return sol, true, nil
			}
			r.Logger.Debug("discarding cached solution", "key", cacheKey, "err", err)
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", cacheKey, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "solution")
	}

	table, err := r.Resolve(ctx, set)
	if err != nil {
		return nil, false, fmt.Errorf("resolve: %w", err)
	}
	result.Table = table
	result.Stats.Links = len(table.Links())

	product, err := table.CornerProduct()
	if err != nil {
		return nil, false, fmt.Errorf("resolve: %w", err)
	}

	p, err := r.Assemble(ctx, set, table)
	if err != nil {
		return nil, false, fmt.Errorf("assemble: %w", err)
	}

	sol := &tsio.Solution{
		TileSize:      set.Size(),
		CornerProduct: product,
		Corners:       table.Corners(),
		Placement:     p,
	}
	var buf bytes.Buffer
	if err := tsio.WriteSolution(sol, &buf); err != nil {
		return nil, false, fmt.Errorf("encode solution: %w", err)
	}
	result.SolutionHash = cache.Hash(buf.Bytes())

	if err := r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLSolution); err != nil {
		r.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "solution", buf.Len())
	}
	return sol, false, nil
}

// Resolve builds and validates the neighbour table of set.
func (r *Runner) Resolve(ctx context.Context, set *tile.Set) (*adjacency.Table, error) {
	start := time.Now()
	observability.Pipeline().OnResolveStart(ctx, set.Len())

	table, err := adjacency.Resolve(set)
	if err == nil {
		err = table.Validate()
	}
	if err != nil {
		observability.Pipeline().OnResolveComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}

	links := len(table.Links())
	observability.Pipeline().OnResolveComplete(ctx, links, time.Since(start), nil)
	counts := table.CountByKind()
	r.Logger.Debug("resolved neighbours",
		"links", links,
		"corners", counts[adjacency.KindCorner],
		"border", counts[adjacency.KindBorder],
		"interior", counts[adjacency.KindInterior],
		"duration", time.Since(start))
	return table, nil
}

// Assemble lays out set using table.
func (r *Runner) Assemble(ctx context.Context, set *tile.Set, table *adjacency.Table) (*assemble.Placement, error) {
	start := time.Now()
	observability.Pipeline().OnAssembleStart(ctx, set.Len())

	p, err := assemble.Assemble(set, table)
	if err != nil {
		observability.Pipeline().OnAssembleComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	observability.Pipeline().OnAssembleComplete(ctx, p.Rows, p.Cols, time.Since(start), nil)
	return p, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// fitsSet reports whether a cached solution places exactly the tiles of set.
func fitsSet(sol *tsio.Solution, set *tile.Set) bool {
	if sol.TileSize != set.Size() || sol.Placement.Len() != set.Len() {
		return false
	}
	for _, c := range sol.Placement.Cells {
		if _, ok := set.Get(c.TileID); !ok {
			return false
		}
	}
	return true
}
