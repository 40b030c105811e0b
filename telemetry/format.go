package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/mondeja/hledger-fmt/output"
)

// Spans at or above this duration are highlighted in styled output.
const slowSpan = 100 * time.Millisecond

// writeTree renders one root span and its children:
//
//	Format: 125ms
//	├─ main.journal: 85ms
//	│  ├─ Parse: 45ms
//	│  └─ Write: 5ms
//	└─ books/2024.hledger: 40ms
func writeTree(w io.Writer, root *span, styles *output.Styles) {
	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", name, formatDuration(root.duration()))

	for i, child := range root.children {
		writeSpan(w, child, "", i == len(root.children)-1, styles)
	}
}

func writeSpan(w io.Writer, s *span, prefix string, last bool, styles *output.Styles) {
	branch, extension := "├─ ", "│  "
	if last {
		branch, extension = "└─ ", "   "
	}

	d := s.duration()
	timing := formatDuration(d)
	connector := prefix + branch
	if styles != nil {
		connector = styles.Dim(connector)
		if d >= slowSpan {
			timing = styles.Warning(timing)
		} else {
			timing = styles.Dim(timing)
		}
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n", connector, s.name, timing)

	for i, child := range s.children {
		writeSpan(w, child, prefix+extension, i == len(s.children)-1, styles)
	}
}

func (s *span) duration() time.Duration {
	if s.end.IsZero() {
		return time.Since(s.start)
	}
	return s.end.Sub(s.start)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
