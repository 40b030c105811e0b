package cst

import (
	"fmt"

	"fortio.org/safecast"
)

// Width returns the column width of b: the number of Unicode scalars,
// counted as bytes that are not UTF-8 continuation bytes. Every scalar
// occupies one column in the alignment model.
func Width(b []byte) int {
	n := 0
	for _, c := range b {
		if c&0xC0 != 0x80 {
			n++
		}
	}
	return n
}

// NarrowWidth converts a width to the uint16 cache representation.
// Widths that do not fit yield an *OverflowError for the given line.
func NarrowWidth(w, line int) (uint16, error) {
	n, err := safecast.Conv[uint16](w)
	if err != nil {
		return 0, &OverflowError{Line: line, Width: w}
	}
	return n, nil
}

// OverflowError reports a column width too large for the uint16 caches.
type OverflowError struct {
	Line  int // source line of the offending node (1-indexed)
	Width int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("line %d: width %d overflows the alignment cache", e.Line, e.Width)
}
