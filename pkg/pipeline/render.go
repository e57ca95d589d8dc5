package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/tilestitch/pkg/cache"
	tsio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/observability"
	"github.com/matzehuels/tilestitch/pkg/render"
	"github.com/matzehuels/tilestitch/pkg/render/bitmap"
	"github.com/matzehuels/tilestitch/pkg/render/nodelink"
)

// ArtifactKeyOpts returns cache key options for one artifact format. Only the
// settings that change that format's bytes are included.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case render.FormatPNG:
		k.Scale = o.Scale
	case render.FormatSVG:
		k.Detailed = o.Detailed
	}
	return k
}

// RenderWithCacheInfo produces every format in opts for a solved result,
// using cached artifacts when all of them are available. The bool reports
// whether every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh && res.SolutionHash != "" {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(res.SolutionHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	rendered, err := r.Render(ctx, res, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if res.SolutionHash != "" {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(res.SolutionHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
				r.Logger.Warn("cache write failed", "key", key, "err", err)
				continue
			}
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, false, nil
}

// Render produces every format in opts for a solved result without touching
// the cache. A missing neighbour table is resolved when the svg format needs
// it.
func (r *Runner) Render(ctx context.Context, res *Result, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case render.FormatText:
			data = bitmap.RenderText(res.Bitmap)
		case render.FormatPNG:
			data, err = bitmap.RenderPNG(res.Bitmap, bitmap.WithScale(opts.Scale))
		case render.FormatJSON:
			data, err = encodeSolution(res)
		case render.FormatSVG:
			if res.Table == nil {
				if res.Table, err = r.Resolve(ctx, res.Tiles); err != nil {
					return nil, fmt.Errorf("resolve for %s: %w", format, err)
				}
			}
			data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(res.Table, nodelink.Options{Detailed: opts.Detailed}))
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func encodeSolution(res *Result) ([]byte, error) {
	var buf bytes.Buffer
	err := tsio.WriteSolution(&tsio.Solution{
		TileSize:      res.Tiles.Size(),
		CornerProduct: res.CornerProduct,
		Corners:       res.Corners,
		Placement:     res.Placement,
	}, &buf)
	return buf.Bytes(), err
}
