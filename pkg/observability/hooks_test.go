package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type countingHooks struct {
	NoopPipelineHooks
	NoopCacheHooks

	mu     sync.Mutex
	hits   int
	failed []error
}

func (h *countingHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	h.hits++
	h.mu.Unlock()
}

func (h *countingHooks) OnAssembleComplete(_ context.Context, _, _ int, _ time.Duration, err error) {
	if err != nil {
		h.mu.Lock()
		h.failed = append(h.failed, err)
		h.mu.Unlock()
	}
}

type recordingHTTP struct {
	NoopHTTPHooks
	routes []string
}

func (h *recordingHTTP) OnResponse(_ context.Context, _, route string, _ int, _ time.Duration) {
	h.routes = append(h.routes, route)
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}

	ctx := context.Background()
	Pipeline().OnAssembleComplete(ctx, 12, 12, time.Second, errors.New("no corner tile"))
	Cache().OnCacheSet(ctx, "artifact", 1024)
	HTTP().OnError(ctx, "POST", "/v1/solve", nil)
}

func TestInstalledHooksReceiveEvents(t *testing.T) {
	t.Cleanup(Reset)
	h := &countingHooks{}
	SetPipelineHooks(h)
	SetCacheHooks(h)
	web := &recordingHTTP{}
	SetHTTPHooks(web)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "solution")
	Cache().OnCacheHit(ctx, "artifact")
	Pipeline().OnAssembleComplete(ctx, 0, 0, time.Millisecond, errors.New("row 1 has 2 tiles"))
	Pipeline().OnAssembleComplete(ctx, 3, 3, time.Millisecond, nil)
	HTTP().OnResponse(ctx, "POST", "/v1/render", 200, time.Millisecond)

	if h.hits != 2 {
		t.Errorf("hits = %d, want 2", h.hits)
	}
	if len(h.failed) != 1 {
		t.Errorf("failed = %v, want one error", h.failed)
	}
	if len(web.routes) != 1 || web.routes[0] != "/v1/render" {
		t.Errorf("routes = %v", web.routes)
	}

	Reset()
	Cache().OnCacheHit(ctx, "solution")
	if h.hits != 2 {
		t.Error("hooks still called after Reset")
	}
}

func TestSetNilIsIgnored(t *testing.T) {
	t.Cleanup(Reset)
	h := &countingHooks{}
	SetCacheHooks(h)
	SetCacheHooks(nil)
	SetPipelineHooks(nil)
	SetHTTPHooks(nil)

	if Cache() != CacheHooks(h) {
		t.Error("SetCacheHooks(nil) replaced the installed hooks")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("SetPipelineHooks(nil) replaced the default")
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Cleanup(Reset)
	h := &countingHooks{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetCacheHooks(h)
		}()
		go func() {
			defer wg.Done()
			Cache().OnCacheMiss(context.Background(), "solution")
		}()
	}
	wg.Wait()
	if Cache() != CacheHooks(h) {
		t.Error("installed hooks lost")
	}
}
