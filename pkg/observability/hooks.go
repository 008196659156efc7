// Package observability provides hooks for build-step instrumentation.
//
// The task package reports its stages through [TaskHooks] without depending
// on a metrics or tracing backend. Consumers register an implementation at
// startup; the default is a no-op.
//
// # Usage
//
//	func main() {
//	    observability.SetTaskHooks(&myTaskHooks{})
//	    // ... run application
//	}
//
// The task emits events around each stage:
//
//	observability.Task().OnCollectComplete(ctx, dir, len(sources), duration, err)
//	observability.Task().OnGenerateStart(ctx, len(sources), len(deps))
//	observability.Task().OnGenerateComplete(ctx, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// TaskHooks receives events from descriptor generation tasks.
type TaskHooks interface {
	// OnCollectComplete records the end of source collection.
	OnCollectComplete(ctx context.Context, dir string, sources int, duration time.Duration, err error)

	// OnGenerateStart records the generator call about to be made.
	OnGenerateStart(ctx context.Context, sources, dependencies int)

	// OnGenerateComplete records the generator's outcome, after translation.
	OnGenerateComplete(ctx context.Context, duration time.Duration, err error)
}

// NoopTaskHooks is a no-op implementation of TaskHooks.
type NoopTaskHooks struct{}

func (NoopTaskHooks) OnCollectComplete(context.Context, string, int, time.Duration, error) {}

func (NoopTaskHooks) OnGenerateStart(context.Context, int, int) {}

func (NoopTaskHooks) OnGenerateComplete(context.Context, time.Duration, error) {}

var (
	taskHooks TaskHooks = NoopTaskHooks{}
	hooksMu   sync.RWMutex
)

// SetTaskHooks registers custom task hooks. A nil h is ignored.
func SetTaskHooks(h TaskHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		taskHooks = h
	}
}

// Task returns the registered task hooks.
func Task() TaskHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return taskHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	taskHooks = NoopTaskHooks{}
}
