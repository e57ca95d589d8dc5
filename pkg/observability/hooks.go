// Package observability lets the binary attach metrics, tracing or logging
// to the pipeline, the cache and the HTTP server without those packages
// importing any backend.
//
// Each event category has an interface, a no-op implementation that is
// installed by default, and a setter. Hooks are installed by main (the CLI
// installs logging hooks under --verbose); libraries only call them:
//
//	observability.Pipeline().OnResolveStart(ctx, set.Len())
//	table, err := adjacency.Resolve(set)
//	observability.Pipeline().OnResolveComplete(ctx, len(table.Links()), time.Since(start), err)
//
// Embed the Noop types to implement only the events you care about.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the solving pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, source string)
	OnParseComplete(ctx context.Context, source string, tiles int, duration time.Duration, err error)

	// Resolve events
	OnResolveStart(ctx context.Context, tiles int)
	OnResolveComplete(ctx context.Context, links int, duration time.Duration, err error)

	// Assemble events
	OnAssembleStart(ctx context.Context, tiles int)
	OnAssembleComplete(ctx context.Context, rows, cols int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records the status and latency of a served request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// OnError records a request that failed with err.
	OnError(ctx context.Context, method, route string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnResolveStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnResolveComplete(context.Context, int, time.Duration, error)       {}
func (NoopPipelineHooks) OnAssembleStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnAssembleComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                            {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Registry
// =============================================================================

// registered holds one installed hook set and the no-op it falls back to.
type registered[T any] struct {
	mu   sync.RWMutex
	cur  T
	noop T
}

func newRegistered[T any](noop T) *registered[T] {
	return &registered[T]{cur: noop, noop: noop}
}

func (r *registered[T]) set(h T) {
	if any(h) == nil {
		return
	}
	r.mu.Lock()
	r.cur = h
	r.mu.Unlock()
}

func (r *registered[T]) get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cur
}

func (r *registered[T]) reset() {
	r.mu.Lock()
	r.cur = r.noop
	r.mu.Unlock()
}

var (
	pipelineHooks = newRegistered[PipelineHooks](NoopPipelineHooks{})
	cacheHooks    = newRegistered[CacheHooks](NoopCacheHooks{})
	httpHooks     = newRegistered[HTTPHooks](NoopHTTPHooks{})
)

// SetPipelineHooks installs h for all later pipeline runs. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) { pipelineHooks.set(h) }

// SetCacheHooks installs h for all later cache lookups. A nil h is ignored.
func SetCacheHooks(h CacheHooks) { cacheHooks.set(h) }

// SetHTTPHooks installs h for all later requests. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) { httpHooks.set(h) }

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return pipelineHooks.get() }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return cacheHooks.get() }

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks { return httpHooks.get() }

// Reset puts the no-op hooks back. Tests call it in cleanup.
func Reset() {
	pipelineHooks.reset()
	cacheHooks.reset()
	httpHooks.reset()
}
