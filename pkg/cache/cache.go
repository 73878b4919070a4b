// Package cache stores rendered artifacts between runs of the CLI.
//
// Rendering an implication graph to SVG starts a WebAssembly Graphviz
// instance, and PDF or PNG output runs an external converter. The input is
// small and deterministic, so results are cached under a key derived from
// everything that affects the output.
//
// # Implementations
//
//   - [FileCache]: one file per entry under a directory, typically
//     $XDG_CACHE_HOME/lv2model
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// # Keys
//
// Use [Key] to build keys from their parts:
//
//	key := cache.Key("render", buildinfo.Version, format, dot)
//	if data, ok, err := c.Get(ctx, key); err == nil && ok {
//	    return data, nil
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by strings. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
