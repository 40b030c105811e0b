package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/mondeja/hledger-fmt/output"
)

// TimingCollector records wall-clock spans as a tree.
type TimingCollector struct {
	mu    sync.Mutex
	roots []*span
}

type span struct {
	name     string
	start    time.Time
	end      time.Time
	children []*span
}

// NewTimingCollector returns an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start opens a top-level span.
func (c *TimingCollector) Start(name string) Timer {
	s := &span{name: name, start: time.Now()}
	c.mu.Lock()
	c.roots = append(c.roots, s)
	c.mu.Unlock()
	return &spanTimer{collector: c, span: s}
}

// Report writes the span tree to w. Spans still open report the time
// accumulated so far.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, root := range c.roots {
		writeTree(w, root, styles)
	}
}

type spanTimer struct {
	collector *TimingCollector
	span      *span
}

func (t *spanTimer) End() {
	t.collector.mu.Lock()
	t.span.end = time.Now()
	t.collector.mu.Unlock()
}

func (t *spanTimer) Child(name string) Timer {
	s := &span{name: name, start: time.Now()}
	t.collector.mu.Lock()
	t.span.children = append(t.span.children, s)
	t.collector.mu.Unlock()
	return &spanTimer{collector: t.collector, span: s}
}
