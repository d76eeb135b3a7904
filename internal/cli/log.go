// Package cli implements the focusgrid command-line interface.
//
// The commands load layout descriptions (TOML, HCL or JSON), build the
// navigation tree they describe, and drive focus over it: one-shot from the
// command line, interactively in the terminal, or over HTTP.
//
// # Commands
//
// The main commands are:
//   - validate: Check layout files and report their size
//   - show: Draw a layout grid with the focused element highlighted
//   - nav: Apply directives and print each result
//   - find: Fuzzy-search focus identifiers
//   - dot: Export the layout tree as Graphviz DOT or SVG
//   - export: Convert a layout file to JSON or TOML
//   - serve: Serve a navigator over HTTP
//   - play: Navigate interactively with the keyboard
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which traces
// every directive and its result. Loggers are passed through context.Context
// as well as held by the CLI.
//
// # Example
//
//	import "github.com/matzehuels/focusgrid/internal/cli"
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
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time since progress
// was created, e.g. "Built examples/home.toml (1.234ms)".
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Microsecond))
}

type ctxKey int

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
