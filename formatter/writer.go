package formatter

import (
	"bytes"

	"github.com/mondeja/hledger-fmt/cst"
)

// spaces is the padding slab; paddings longer than the slab are emitted
// in slab-sized chunks.
var spaces = bytes.Repeat([]byte{' '}, 256)

// writer appends rendered bytes to a buffer. Padding is deferred: pad
// accumulates a pending run of spaces that is materialized by the next
// write and discarded by line, so lines never end in trailing spaces.
type writer struct {
	buf     []byte
	pending int
}

func (w *writer) pad(n int) {
	if n > 0 {
		w.pending += n
	}
}

func (w *writer) flushPad() {
	for w.pending > 0 {
		n := w.pending
		if n > len(spaces) {
			n = len(spaces)
		}
		w.buf = append(w.buf, spaces[:n]...)
		w.pending -= n
	}
}

func (w *writer) write(b []byte) {
	if len(b) == 0 {
		return
	}
	w.flushPad()
	w.buf = append(w.buf, b...)
}

func (w *writer) writeByte(c byte) {
	w.flushPad()
	w.buf = append(w.buf, c)
}

func (w *writer) writeString(s string) {
	w.flushPad()
	w.buf = append(w.buf, s...)
}

func (w *writer) line() {
	w.pending = 0
	w.buf = append(w.buf, '\n')
}

// comment emits an inline comment: the prefix and, when the body is not
// empty, one space and the body.
func (w *writer) comment(c *cst.InlineComment) {
	w.writeByte(byte(c.Prefix))
	if len(c.Body) > 0 {
		w.writeByte(' ')
		w.write(c.Body)
	}
}

// splitScalars splits b after its first n Unicode scalars.
func splitScalars(b []byte, n int) (head, tail []byte) {
	i := 0
	for n > 0 && i < len(b) {
		i++
		for i < len(b) && b[i]&0xC0 == 0x80 {
			i++
		}
		n--
	}
	return b[:i], b[i:]
}
