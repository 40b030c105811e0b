// Package telemetry times the phases of a run and reports them as a
// tree. Collectors travel through context so instrumented code needs
// no extra parameters; without one, timing is a no-op.
package telemetry

import (
	"context"
	"io"

	"github.com/mondeja/hledger-fmt/output"
)

// Collector gathers timing spans for one run.
type Collector interface {
	// Start opens a top-level span. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected spans to w. A nil styles renders
	// plain text.
	Report(w io.Writer, styles *output.Styles)
}

// Timer is an open span. Child opens a nested span under it.
type Timer interface {
	End()
	Child(name string) Timer
}

type contextKey struct{}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the collector attached to the context, or one
// that discards everything.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(contextKey{}).(Collector); ok {
		return c
	}
	return noOpCollector{}
}

type noOpCollector struct{}

func (noOpCollector) Start(string) Timer               { return noOpTimer{} }
func (noOpCollector) Report(io.Writer, *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End()               {}
func (noOpTimer) Child(string) Timer { return noOpTimer{} }
