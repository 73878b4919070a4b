// Package cli implements the lv2model command-line interface.
//
// This package provides commands for querying the standard LV2 class
// hierarchies, rendering their implication graphs, and loading bundles from
// disk. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - implied: Print every class implied by a set of plugin or atom classes
//   - ancestors: Walk the parent links of plugin or atom classes
//   - graph: Render an implication graph as DOT, SVG, PDF, or PNG
//   - inspect: Load a bundle and print its plugins and ports
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking. At
// debug level the bundle and render hooks of package observability also
// report to the logger.
//
// # Example
//
//	import "github.com/allen-marshall/lv2-se-bundle/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/allen-marshall/lv2-se-bundle/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Loaded amp.lv2 (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// installLogHooks reports bundle loading and rendering events to l.
func installLogHooks(l *log.Logger) {
	observability.SetBundleHooks(logBundleHooks{l})
	observability.SetRenderHooks(logRenderHooks{l})
}

type logBundleHooks struct{ logger *log.Logger }

func (h logBundleHooks) OnLoadStart(_ context.Context, dir string) {
	h.logger.Debug("loading bundle", "dir", dir)
}

func (h logBundleHooks) OnFileParsed(_ context.Context, path string, statements int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("file failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("file parsed", "path", path, "statements", statements, "took", d.Round(time.Microsecond))
}

func (h logBundleHooks) OnLoadComplete(_ context.Context, dir string, plugins int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("bundle failed", "dir", dir, "err", err)
		return
	}
	h.logger.Debug("bundle loaded", "dir", dir, "plugins", plugins, "took", d.Round(time.Microsecond))
}

type logRenderHooks struct{ logger *log.Logger }

func (h logRenderHooks) OnRenderStart(_ context.Context, graph, format string) {
	h.logger.Debug("rendering", "graph", graph, "format", format)
}

func (h logRenderHooks) OnRenderComplete(_ context.Context, graph, format string, bytes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "graph", graph, "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "graph", graph, "format", format, "bytes", bytes, "took", d.Round(time.Microsecond))
}
