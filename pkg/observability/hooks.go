// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about bundle loading and graph rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which avoids import
// cycles and keeps the library packages free of observability backends.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBundleHooks(&myBundleHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Bundle().OnLoadStart(ctx, dir)
//	// ... parse files ...
//	observability.Bundle().OnLoadComplete(ctx, dir, plugins, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Bundle Hooks
// =============================================================================

// BundleHooks receives events from the bundle loader.
type BundleHooks interface {
	// OnLoadStart records the start of loading the bundle in dir.
	OnLoadStart(ctx context.Context, dir string)

	// OnFileParsed records one parsed Turtle file and its statement count.
	OnFileParsed(ctx context.Context, path string, statements int, duration time.Duration, err error)

	// OnLoadComplete records the end of a load with the number of plugins found.
	OnLoadComplete(ctx context.Context, dir string, plugins int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from graph rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, graph, format string)
	OnRenderComplete(ctx context.Context, graph, format string, bytes int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBundleHooks is a no-op implementation of BundleHooks.
type NoopBundleHooks struct{}

func (NoopBundleHooks) OnLoadStart(context.Context, string)                               {}
func (NoopBundleHooks) OnFileParsed(context.Context, string, int, time.Duration, error)   {}
func (NoopBundleHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	bundleHooks BundleHooks = NoopBundleHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetBundleHooks registers custom bundle hooks.
// This should be called once at application startup before any bundle is loaded.
func SetBundleHooks(h BundleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		bundleHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Bundle returns the registered bundle hooks.
func Bundle() BundleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return bundleHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	bundleHooks = NoopBundleHooks{}
	renderHooks = NoopRenderHooks{}
}
