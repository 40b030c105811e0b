package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestNoOpCollector(t *testing.T) {
	collector := noOpCollector{}

	timer := collector.Start("Format")
	child := timer.Child("Parse")
	child.End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, buf.Len(), 0)
}

func TestFromContext(t *testing.T) {
	t.Run("missing collector yields noop", func(t *testing.T) {
		collector := FromContext(context.Background())
		assert.NotZero(t, collector)
		_, ok := collector.(noOpCollector)
		assert.True(t, ok)
	})

	t.Run("round-trips through context", func(t *testing.T) {
		collector := NewTimingCollector()
		ctx := WithCollector(context.Background(), collector)

		got, ok := FromContext(ctx).(*TimingCollector)
		assert.True(t, ok)
		assert.Equal(t, got, collector)
	})
}

func TestTimingCollectorReport(t *testing.T) {
	collector := NewTimingCollector()

	format := collector.Start("Format")
	parse := format.Child("Parse")
	time.Sleep(time.Millisecond)
	parse.End()
	write := format.Child("Write")
	write.End()
	format.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	out := buf.String()
	assert.Contains(t, out, "Format")
	assert.Contains(t, out, "Parse")
	assert.Contains(t, out, "Write")

	// Children render under the root with tree connectors.
	assert.True(t, strings.Contains(out, "├─") || strings.Contains(out, "└─"))
}

func TestTimingCollectorNesting(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("Format")
	file := root.Child("main.journal")
	parse := file.Child("Parse")
	parse.End()
	file.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	var parseLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "Parse") {
			parseLine = line
		}
	}
	assert.NotEqual(t, parseLine, "")
	assert.True(t, strings.Contains(parseLine, "   ") || strings.Contains(parseLine, "│  "))
}

func TestTimingCollectorEmptyReport(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, buf.Len(), 0)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{1 * time.Millisecond, "1ms"},
		{999 * time.Millisecond, "999ms"},
		{1 * time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, formatDuration(tt.duration), tt.want)
		})
	}
}
