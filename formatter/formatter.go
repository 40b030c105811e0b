// Package formatter renders a journal CST back to canonical text. All
// alignment decisions come from the width caches the parser left on the
// tree; the formatter itself never measures slices, it only pads.
package formatter

import (
	"github.com/mondeja/hledger-fmt/cst"
)

// DefaultEntrySpacing is the minimum gap between posting columns and
// before trailing comments.
const DefaultEntrySpacing = 2

// Formatter renders parsed journals with columnar alignment.
type Formatter struct {
	// EntrySpacing is the number of spaces between the account name
	// column and the amount, between value segments, and before a
	// trailing comment. If 0, DefaultEntrySpacing is used.
	EntrySpacing int

	// EstimatedOutputSize pre-sizes the output buffer of Format. If 0,
	// the buffer grows as needed. Callers that format a whole file
	// usually pass the input length plus a quarter.
	EstimatedOutputSize int
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithEntrySpacing sets the gap between posting columns.
func WithEntrySpacing(n int) Option {
	return func(f *Formatter) {
		f.EntrySpacing = n
	}
}

// WithEstimatedOutputSize pre-sizes the output buffer of Format.
func WithEstimatedOutputSize(n int) Option {
	return func(f *Formatter) {
		f.EstimatedOutputSize = n
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		EntrySpacing: DefaultEntrySpacing,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders the file into a fresh buffer. Empty input renders as
// empty output; any other output ends with exactly one newline.
func (f *Formatter) Format(file *cst.File) []byte {
	return f.Append(make([]byte, 0, f.EstimatedOutputSize), file)
}

// Append renders the file onto dst and returns the extended buffer.
func (f *Formatter) Append(dst []byte, file *cst.File) []byte {
	spacing := f.EntrySpacing
	if spacing == 0 {
		spacing = DefaultEntrySpacing
	}

	w := &writer{buf: dst}

	// A blank run at end of input renders nothing; the last line of
	// output carries the final newline itself.
	last := len(file.Nodes) - 1
	if last >= 0 {
		if _, ok := file.Nodes[last].(*cst.EmptyLine); ok {
			last--
		}
	}

	for i := 0; i <= last; i++ {
		switch n := file.Nodes[i].(type) {
		case *cst.EmptyLine:
			// Transactions already emit their separating blank line.
			if i > 0 {
				if _, ok := file.Nodes[i-1].(*cst.Transaction); ok {
					continue
				}
			}
			w.line()
		case *cst.SingleLineComment:
			renderSingleLineComment(w, n, int(n.Indent))
		case *cst.MultilineComment:
			w.writeString("comment")
			w.line()
			for _, l := range n.Lines {
				w.write(l)
				w.line()
			}
			w.writeString("end comment")
			w.line()
		case *cst.DirectiveGroup:
			renderGroup(w, n, spacing)
		case *cst.Transaction:
			renderTransaction(w, n, spacing)
			if i < last {
				w.line()
			}
		}
	}

	return w.buf
}

func renderSingleLineComment(w *writer, c *cst.SingleLineComment, indent int) {
	w.pad(indent)
	w.writeByte(byte(c.Prefix))
	if len(c.Body) > 0 {
		w.writeByte(' ')
		w.write(c.Body)
	}
	w.line()
}

// renderGroup renders a directive group. When any directive carries a
// trailing comment, all comments of the group (directive trailers and
// interleaved comment lines alike) start at the same column.
func renderGroup(w *writer, g *cst.DirectiveGroup, spacing int) {
	commentCol := int(g.MaxNameContentWidth) + spacing

	for _, item := range g.Items {
		switch it := item.(type) {
		case *cst.Directive:
			w.pad(int(it.Indent))
			w.write(it.Name)
			if len(it.Content) > 0 {
				w.writeByte(' ')
				w.write(it.Content)
			}
			if it.Comment != nil {
				w.pad(commentCol - int(it.NameContentWidth))
				w.comment(it.Comment)
			}
			w.line()
		case *cst.SingleLineComment:
			if g.HasComment {
				renderSingleLineComment(w, it, commentCol)
			} else {
				renderSingleLineComment(w, it, 0)
			}
		}
	}
}

func renderTransaction(w *writer, t *cst.Transaction, spacing int) {
	w.buf = cst.AppendCollapsedHeader(w.buf, t.Header)
	if t.HeaderComment != nil {
		if t.AlignHeaderComment {
			w.pad(cst.PostingCommentColumn(t, spacing) - int(t.HeaderWidth))
		} else {
			w.pad(spacing)
		}
		w.comment(t.HeaderComment)
	}
	w.line()

	for _, entry := range t.Entries {
		switch e := entry.(type) {
		case *cst.Posting:
			renderPosting(w, t, e, spacing)
		case *cst.SingleLineComment:
			// Interleaved comments sit at the posting indent and are
			// never pushed to the trailing comment column.
			renderSingleLineComment(w, e, int(t.PostingIndent))
		}
	}
}

func renderPosting(w *writer, t *cst.Transaction, p *cst.Posting, spacing int) {
	w.pad(int(t.PostingIndent))
	w.write(p.Name)
	w.pad(spacing + int(t.MaxNameWidth) - int(p.NameWidth))

	renderSegment(w, p.Value.Amount, t.Amount, false, spacing)
	renderSegment(w, p.Value.Eq, t.Eq, true, spacing)
	renderSegment(w, p.Value.At, t.At, true, spacing)

	if p.Comment != nil {
		w.pad(spacing)
		w.comment(p.Comment)
	}
	w.line()
}

// renderSegment renders one value segment column. Columns only exist
// when some posting of the transaction carries the segment kind; a
// posting without it pads through the column so later columns stay
// aligned. Bodies align on the decimal mark: the commodity prefix is
// written first, then padding, then the right-aligned integer part and
// the fraction.
func renderSegment(w *writer, seg *cst.Segment, max cst.SegmentWidths, op bool, spacing int) {
	if max.IsZero() {
		return
	}
	if op {
		w.pad(spacing)
	}
	if seg == nil {
		n := max.BodyWidth()
		if op {
			n += int(max.Op) + 1
		}
		w.pad(n)
		return
	}
	if op {
		w.write(seg.Op)
		w.pad(int(max.Op) - len(seg.Op) + 1)
	}
	prefix, rest := splitScalars(seg.Body, int(seg.Prefix))
	w.write(prefix)
	w.pad(int(max.Prefix) - int(seg.Prefix) + int(max.Integer) - int(seg.Integer))
	w.write(rest)
	w.pad(int(max.Fraction) - int(seg.Fraction))
}
