// Package parser builds the journal CST in a single pass over the input
// bytes. Node payloads borrow from the input buffer; the parser allocates
// only for the tree containers themselves.
//
// The parser is line oriented and stateful: at any point at most one
// container is open (a multiline comment, a directive group or a
// transaction), and blank lines, transaction headers and end-of-input
// flush it. Alignment widths are cached on the nodes as they are built,
// so the formatter never re-scans slices.
package parser

import (
	"bytes"
	"unicode/utf8"

	"github.com/mondeja/hledger-fmt/cst"
)

// entrySpacing is the canonical spacing used when deciding whether a
// transaction's header comment can share the posting comment column.
const entrySpacing = 2

// Directive keywords recognized at column 0, longest first so that
// "apply account" wins over a hypothetical "apply" and "end apply
// account" over "end". The "comment" keyword opens a multiline comment
// and is handled before keyword matching.
var keywords = [][]byte{
	[]byte("end apply account"),
	[]byte("apply account"),
	[]byte("decimal-mark"),
	[]byte("commodity"),
	[]byte("account"),
	[]byte("include"),
	[]byte("alias"),
	[]byte("year"),
	[]byte("tag"),
	[]byte("D"),
	[]byte("P"),
	[]byte("Y"),
}

// Parse parses journal source into a CST. The name identifies the source
// in error messages; src must remain alive as long as the tree, which
// borrows from it.
func Parse(name string, src []byte) (*cst.File, error) {
	if line, col, lineBytes, ok := firstInvalidUTF8(src); !ok {
		return nil, &SyntaxError{
			Name:        name,
			Kind:        InvalidUTF8,
			Line:        line,
			ColumnStart: col,
			ColumnEnd:   col + 1,
			Message:     "input is not valid UTF-8",
			Expected:    "UTF-8 encoded text",
			Excerpt:     excerpt(lineBytes),
		}
	}

	p := &parser{name: name, file: &cst.File{Name: name}}

	for start := 0; start < len(src); {
		var line []byte
		if nl := bytes.IndexByte(src[start:], '\n'); nl >= 0 {
			line = src[start : start+nl]
			start += nl + 1
		} else {
			line = src[start:]
			start = len(src)
		}
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		p.line++
		if err := p.processLine(line); err != nil {
			return nil, err
		}
	}

	if p.ml != nil {
		return nil, &SyntaxError{
			Name:        name,
			Kind:        UnterminatedComment,
			Line:        p.ml.line,
			ColumnStart: 1,
			ColumnEnd:   8,
			Message:     "multiline comment is never closed",
			Expected:    "a closing \"end comment\" line",
			Excerpt:     "comment",
		}
	}
	p.flush()

	return p.file, nil
}

type parser struct {
	name string
	file *cst.File
	line int

	ml    *multiline
	group *cst.DirectiveGroup
	txn   *openTransaction
}

type multiline struct {
	line  int
	lines [][]byte
}

// openTransaction carries the transaction being built plus bookkeeping
// that does not survive the flush.
type openTransaction struct {
	node *cst.Transaction

	// indentFromComment is set when the posting indent was fixed by a
	// leading comment entry; the first real posting overrides it.
	indentFromComment bool
	hasPosting        bool
	hasComment        bool // any posting with a trailing comment
}

func (p *parser) processLine(line []byte) error {
	if p.ml != nil {
		if bytes.Equal(bytes.TrimSpace(line), []byte("end comment")) {
			p.file.Nodes = append(p.file.Nodes, &cst.MultilineComment{
				Line:  p.ml.line,
				Lines: p.ml.lines,
			})
			p.ml = nil
			return nil
		}
		p.ml.lines = append(p.ml.lines, line)
		return nil
	}

	indent := 0
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}
	rest := line[indent:]

	if len(rest) == 0 {
		p.flush()
		if n := len(p.file.Nodes); n == 0 || !isEmptyLine(p.file.Nodes[n-1]) {
			p.file.Nodes = append(p.file.Nodes, &cst.EmptyLine{Line: p.line})
		}
		return nil
	}

	if bytes.Equal(bytes.TrimRight(rest, " \t"), []byte("comment")) {
		p.flush()
		p.ml = &multiline{line: p.line}
		return nil
	}

	if rest[0] == ';' || rest[0] == '#' {
		return p.processComment(line, indent, rest)
	}

	if indent == 0 {
		if kw := matchKeyword(rest); kw != nil {
			p.flushTransaction()
			return p.processDirective(line, kw)
		}
		if isHeaderStart(rest[0]) {
			p.flush()
			return p.processHeader(line)
		}
		return &SyntaxError{
			Name:        p.name,
			Kind:        UnknownConstruct,
			Line:        p.line,
			ColumnStart: 1,
			ColumnEnd:   2,
			Message:     "unrecognized line",
			Expected:    "a directive, a transaction header, a comment or a blank line",
			Excerpt:     excerpt(line),
		}
	}

	if p.txn != nil {
		return p.processPosting(line, indent, rest)
	}
	if p.group != nil {
		return p.processSubdirective(line, indent, rest)
	}
	return &SyntaxError{
		Name:        p.name,
		Kind:        UnexpectedIndent,
		Line:        p.line,
		ColumnStart: 1,
		ColumnEnd:   indent + 1,
		Message:     "indented line outside a transaction or directive group",
		Expected:    "a line at column 0",
		Excerpt:     excerpt(line),
	}
}

func (p *parser) processComment(line []byte, indent int, rest []byte) error {
	indentW, err := cst.NarrowWidth(indent, p.line)
	if err != nil {
		return err
	}
	c := &cst.SingleLineComment{
		Line:   p.line,
		Indent: indentW,
		Prefix: cst.CommentPrefix(rest[0]),
		Body:   commentBody(rest[1:]),
	}
	switch {
	case p.txn != nil:
		if p.txn.node.PostingIndent == 0 && !p.txn.hasPosting && indent >= 2 {
			// A leading comment fixes the indent until a posting shows up.
			p.txn.node.PostingIndent = indentW
			p.txn.indentFromComment = true
		}
		p.txn.node.Entries = append(p.txn.node.Entries, c)
	case p.group != nil:
		p.group.Items = append(p.group.Items, c)
	default:
		p.file.Nodes = append(p.file.Nodes, c)
	}
	return nil
}

func (p *parser) processDirective(line, kw []byte) error {
	rest := line[len(kw):]
	content, comment := splitContent(rest)

	d := &cst.Directive{
		Line:    p.line,
		Name:    line[:len(kw)],
		Content: content,
		Comment: comment,
	}
	w := cst.Width(d.Name)
	if len(content) > 0 {
		w += 1 + cst.Width(content)
	}
	nw, err := cst.NarrowWidth(w, p.line)
	if err != nil {
		return err
	}
	d.NameContentWidth = nw

	p.appendGroupItem(d)
	return nil
}

func (p *parser) processSubdirective(line []byte, indent int, rest []byte) error {
	name := rest
	if sp := bytes.IndexAny(rest, " \t"); sp >= 0 {
		name = rest[:sp]
	}
	content, comment := splitContent(rest[len(name):])

	indentW, err := cst.NarrowWidth(indent, p.line)
	if err != nil {
		return err
	}
	d := &cst.Directive{
		Line:    p.line,
		Indent:  indentW,
		Name:    name,
		Content: content,
		Comment: comment,
	}
	w := indent + cst.Width(name)
	if len(content) > 0 {
		w += 1 + cst.Width(content)
	}
	nw, err := cst.NarrowWidth(w, p.line)
	if err != nil {
		return err
	}
	d.NameContentWidth = nw

	p.appendGroupItem(d)
	return nil
}

func (p *parser) appendGroupItem(d *cst.Directive) {
	if p.group == nil {
		p.group = &cst.DirectiveGroup{}
	}
	p.group.Items = append(p.group.Items, d)
	if d.NameContentWidth > p.group.MaxNameContentWidth {
		p.group.MaxNameContentWidth = d.NameContentWidth
	}
	if d.Comment != nil {
		p.group.HasComment = true
	}
}

func (p *parser) processHeader(line []byte) error {
	header := line
	var comment *cst.InlineComment

	// In header free text '#' is literal; only ';' opens the comment.
	for i := 1; i < len(line); i++ {
		if line[i] == ';' && (line[i-1] == ' ' || line[i-1] == '\t') {
			header = line[:i]
			comment = &cst.InlineComment{
				Prefix: cst.PrefixSemicolon,
				Body:   commentBody(line[i+1:]),
			}
			break
		}
	}
	header = bytes.TrimRight(header, " \t")

	hw, err := cst.NarrowWidth(cst.CollapsedHeaderWidth(header), p.line)
	if err != nil {
		return err
	}
	p.txn = &openTransaction{node: &cst.Transaction{
		Line:          p.line,
		Header:        header,
		HeaderComment: comment,
		HeaderWidth:   hw,
	}}
	return nil
}

func (p *parser) processPosting(line []byte, indent int, rest []byte) error {
	t := p.txn
	indentW, err := cst.NarrowWidth(indent, p.line)
	if err != nil {
		return err
	}
	if t.node.PostingIndent == 0 || (t.indentFromComment && !t.hasPosting) {
		t.node.PostingIndent = indentW
		t.indentFromComment = false
	}
	t.hasPosting = true

	// The account name runs until two consecutive spaces, a tab or a
	// comment sentinel preceded by whitespace.
	nameEnd, restStart := len(rest), len(rest)
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '\t' {
			nameEnd, restStart = i, i+1
			break
		}
		if c == ' ' && i+1 < len(rest) && rest[i+1] == ' ' {
			nameEnd, restStart = i, i+2
			break
		}
		if (c == ';' || c == '#') && i > 0 && rest[i-1] == ' ' {
			nameEnd, restStart = i, i
			break
		}
	}
	name := bytes.TrimRight(rest[:nameEnd], " \t")
	after := rest[restStart:]

	rawValue, comment := splitContent(after)

	valueCol := indent + restStart + 1
	for len(rawValue) > 0 && (rawValue[0] == ' ' || rawValue[0] == '\t') {
		rawValue = rawValue[1:]
		valueCol++
	}
	value, err := parseValue(p.name, rawValue, p.line, valueCol)
	if err != nil {
		if se, ok := err.(*SyntaxError); ok && se.Excerpt == "" {
			se.Excerpt = excerpt(line)
		}
		return err
	}

	nw, err := cst.NarrowWidth(cst.Width(name), p.line)
	if err != nil {
		return err
	}

	posting := &cst.Posting{
		Line:      p.line,
		Name:      name,
		NameWidth: nw,
		Value:     value,
		Comment:   comment,
	}
	t.node.Entries = append(t.node.Entries, posting)

	if nw > t.node.MaxNameWidth {
		t.node.MaxNameWidth = nw
	}
	growSegment(&t.node.Amount, value.Amount)
	growSegment(&t.node.Eq, value.Eq)
	growSegment(&t.node.At, value.At)
	if comment != nil {
		t.hasComment = true
	}
	return nil
}

func growSegment(w *cst.SegmentWidths, s *cst.Segment) {
	if s == nil {
		return
	}
	if op := uint16(len(s.Op)); op > w.Op {
		w.Op = op
	}
	if s.Prefix > w.Prefix {
		w.Prefix = s.Prefix
	}
	if s.Integer > w.Integer {
		w.Integer = s.Integer
	}
	if s.Fraction > w.Fraction {
		w.Fraction = s.Fraction
	}
}

func (p *parser) flush() {
	p.flushGroup()
	p.flushTransaction()
}

func (p *parser) flushGroup() {
	if p.group == nil {
		return
	}
	p.file.Nodes = append(p.file.Nodes, p.group)
	p.group = nil
}

func (p *parser) flushTransaction() {
	if p.txn == nil {
		return
	}
	t := p.txn.node
	if p.txn.hasComment {
		col := cst.PostingCommentColumn(t, entrySpacing)
		t.AlignHeaderComment = int(t.HeaderWidth)+entrySpacing <= col
	}
	p.file.Nodes = append(p.file.Nodes, t)
	p.txn = nil
}

// splitContent separates a raw line remainder into its content and an
// optional trailing comment. The comment starts at a ';' or '#' that is
// the first byte or is preceded by whitespace.
func splitContent(rest []byte) ([]byte, *cst.InlineComment) {
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c != ';' && c != '#' {
			continue
		}
		if i > 0 {
			prev := rest[i-1]
			if prev != ' ' && prev != '\t' {
				continue
			}
		}
		return bytes.TrimSpace(rest[:i]), &cst.InlineComment{
			Prefix: cst.CommentPrefix(c),
			Body:   commentBody(rest[i+1:]),
		}
	}
	return bytes.TrimSpace(rest), nil
}

// commentBody trims a single leading space and any trailing whitespace,
// preserving deliberate extra indentation inside the comment.
func commentBody(b []byte) []byte {
	if len(b) > 0 && b[0] == ' ' {
		b = b[1:]
	}
	return bytes.TrimRight(b, " \t")
}

func matchKeyword(rest []byte) []byte {
	for _, kw := range keywords {
		if !bytes.HasPrefix(rest, kw) {
			continue
		}
		if len(rest) == len(kw) || rest[len(kw)] == ' ' || rest[len(kw)] == '\t' {
			return kw
		}
	}
	return nil
}

func isHeaderStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '~' || c == '='
}

func isEmptyLine(n cst.Node) bool {
	_, ok := n.(*cst.EmptyLine)
	return ok
}

// firstInvalidUTF8 scans src for the first invalid byte, returning its
// line, 1-indexed byte column and line content. ok is true when the
// whole input is valid.
func firstInvalidUTF8(src []byte) (line, col int, lineBytes []byte, ok bool) {
	line = 1
	lineStart := 0
	for i := 0; i < len(src); {
		c := src[i]
		if c < utf8.RuneSelf {
			if c == '\n' {
				line++
				lineStart = i + 1
			}
			i++
			continue
		}
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			end := len(src)
			if nl := bytes.IndexByte(src[lineStart:], '\n'); nl >= 0 {
				end = lineStart + nl
			}
			return line, i - lineStart + 1, src[lineStart:end], false
		}
		i += size
	}
	return 0, 0, nil, true
}
