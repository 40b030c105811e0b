// Package cst defines the concrete syntax tree for hledger journal files.
//
// The tree is lossless with respect to everything the formatter preserves:
// comments, blank lines, directive groups and transactions all survive a
// parse/format round trip. Node payloads are zero-copy byte slices borrowed
// from the parsed source buffer; the source must outlive the tree.
//
// Column widths needed for alignment are computed once at parse time and
// cached on the nodes as uint16. See Width for the column model.
package cst

// File is a parsed journal: an ordered sequence of top-level nodes.
type File struct {
	// Name identifies the source, usually a file path or "<stdin>".
	Name string

	Nodes []Node
}

// Node is implemented by all top-level journal nodes.
type Node interface {
	node()
}

// CommentPrefix is the character that introduces a comment.
type CommentPrefix byte

const (
	PrefixSemicolon CommentPrefix = ';'
	PrefixHash      CommentPrefix = '#'
)

// EmptyLine marks a run of blank lines, collapsed to a single node.
type EmptyLine struct {
	Line int // first blank line of the run (1-indexed)
}

// SingleLineComment is a comment occupying a whole line.
type SingleLineComment struct {
	Line   int
	Indent uint16 // columns before the prefix
	Prefix CommentPrefix
	Body   []byte // trimmed, borrowed from the source
}

// InlineComment is a trailing comment on a directive, transaction header
// or posting line.
type InlineComment struct {
	Prefix CommentPrefix
	Body   []byte // trimmed, borrowed from the source
}

// Width returns the rendered width of the comment: prefix, one space and
// the body, or the bare prefix when the body is empty.
func (c *InlineComment) Width() int {
	if len(c.Body) == 0 {
		return 1
	}
	return 2 + Width(c.Body)
}

// MultilineComment holds the lines between "comment" and "end comment".
// Lines are borrowed from the source with line endings stripped.
type MultilineComment struct {
	Line  int // line of the "comment" opener
	Lines [][]byte
}

// Directive is a directive line such as "account Assets:Cash" or
// "include other.journal". Name is the directive keyword, which may span
// multiple words ("apply account"). Content is the raw remainder of the
// line up to any trailing comment. An Indent greater than zero marks a
// subdirective, an indented line attached to the directive above it.
type Directive struct {
	Line    int
	Indent  uint16
	Name    []byte
	Content []byte
	Comment *InlineComment

	// NameContentWidth caches the rendered width of the directive before
	// any trailing comment: indent, name and, when content is present,
	// the separating space and content.
	NameContentWidth uint16
}

// DirectiveGroup is a contiguous run of directives and the single-line
// comments interleaved with them. Trailing comments inside a group share
// one column, computed from MaxNameContentWidth.
type DirectiveGroup struct {
	Items []GroupItem

	// MaxNameContentWidth is the maximum NameContentWidth over the
	// directives of the group.
	MaxNameContentWidth uint16

	// HasComment reports whether any directive carries a trailing comment.
	// Interleaved comment items are aligned only when it is set.
	HasComment bool
}

// GroupItem is a directive or a comment inside a DirectiveGroup.
type GroupItem interface {
	groupItem()
}

// Transaction is a transaction header with its postings and comments.
// Headers start with a digit (dated), '~' (periodic) or '=' (auto posting
// rule). The header is stored raw; space runs are collapsed at render
// time, keeping the single double space a periodic header may carry
// between period and description.
type Transaction struct {
	Line          int
	Header        []byte
	HeaderComment *InlineComment

	// HeaderWidth is the width of the header after space collapsing.
	HeaderWidth uint16

	// PostingIndent is the indent of the first posting, reused for every
	// entry of the transaction. Before any posting, a leading comment
	// indented by two or more columns sets it. It stays zero when no entry
	// set it, which includes transactions whose only entries are comments
	// indented by fewer than two columns.
	PostingIndent uint16

	Entries []EntryItem

	// Alignment maxima over the postings of this transaction.
	MaxNameWidth uint16
	Amount       SegmentWidths
	Eq           SegmentWidths
	At           SegmentWidths

	// AlignHeaderComment reports whether the header comment shares the
	// posting comment column. It is false when the header itself would
	// overrun that column.
	AlignHeaderComment bool
}

// EntryItem is a posting or a comment inside a transaction.
type EntryItem interface {
	entryItem()
}

// Posting is one account line of a transaction.
type Posting struct {
	Line      int
	Name      []byte // account name; may contain single internal spaces
	NameWidth uint16
	Value     Value
	Comment   *InlineComment
}

// Value is the parsed value of a posting: an optional amount, an optional
// balance assertion and an optional price, each at most once. Segments
// are rendered in this fixed order regardless of their input order.
type Value struct {
	Amount *Segment
	Eq     *Segment
	At     *Segment
}

// IsZero reports whether the value has no segments at all.
func (v *Value) IsZero() bool {
	return v.Amount == nil && v.Eq == nil && v.At == nil
}

// Segment is one part of a posting value. For assertions Op is "=", "==",
// "=*" or "==*"; for prices it is "@" or "@@"; for amounts it is nil.
// Body is the trimmed text of the segment, borrowed from the source.
type Segment struct {
	Op   []byte
	Body []byte

	// Width split of Body for decimal alignment: Prefix covers a leading
	// commodity (non-digit scalars before the sign and first digit),
	// Integer covers the sign, digits and grouping separators before the
	// decimal mark, Fraction the decimal mark and everything after it.
	// Prefix + Integer + Fraction == Width(Body).
	Prefix   uint16
	Integer  uint16
	Fraction uint16
}

// SegmentWidths accumulates per-transaction maxima for one segment kind.
type SegmentWidths struct {
	Op       uint16
	Prefix   uint16
	Integer  uint16
	Fraction uint16
}

// IsZero reports whether no posting in the transaction carries this
// segment kind.
func (w SegmentWidths) IsZero() bool {
	return w.Op == 0 && w.Prefix == 0 && w.Integer == 0 && w.Fraction == 0
}

// BodyWidth returns the aligned width of the segment body column.
func (w SegmentWidths) BodyWidth() int {
	return int(w.Prefix) + int(w.Integer) + int(w.Fraction)
}

func (*EmptyLine) node()         {}
func (*SingleLineComment) node() {}
func (*MultilineComment) node()  {}
func (*DirectiveGroup) node()    {}
func (*Transaction) node()       {}

func (*Directive) groupItem()         {}
func (*SingleLineComment) groupItem() {}

func (*Posting) entryItem()           {}
func (*SingleLineComment) entryItem() {}
