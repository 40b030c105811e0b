package parser

import (
	"bytes"

	"github.com/mondeja/hledger-fmt/cst"
)

// parseValue splits the raw value of a posting into its amount, balance
// assertion and price segments. Segments may appear in any order in the
// input but each kind at most once. col is the 1-indexed column where raw
// starts, used for error positions.
func parseValue(name string, raw []byte, line, col int) (cst.Value, error) {
	var v cst.Value

	// Body of the segment currently being scanned. The amount, when
	// present, is always the text before the first operator.
	start := 0
	op := []byte(nil)
	opCol := col
	inQuote := false

	flush := func(end, nextCol int) error {
		body := bytes.TrimSpace(raw[start:end])
		seg, err := newSegment(name, op, body, line, opCol)
		if err != nil {
			return err
		}
		switch {
		case op == nil:
			v.Amount = seg
		case op[0] == '=':
			if v.Eq != nil {
				return duplicateOperator(name, op, line, opCol)
			}
			v.Eq = seg
		default:
			if v.At != nil {
				return duplicateOperator(name, op, line, opCol)
			}
			v.At = seg
		}
		opCol = nextCol
		return nil
	}

	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			i++
		case inQuote:
			i++
		case c == '=':
			// Assertion operators only open a segment at a boundary, so
			// a '=' inside a commodity stays literal.
			if i > 0 && raw[i-1] != ' ' && raw[i-1] != '\t' {
				i++
				continue
			}
			n := 1
			if i+n < len(raw) && raw[i+n] == '=' {
				n++
			}
			if i+n < len(raw) && raw[i+n] == '*' {
				n++
			}
			if err := flush(i, col+i); err != nil {
				return v, err
			}
			op = raw[i : i+n]
			i += n
			start = i
		case c == '@':
			n := 1
			if i+n < len(raw) && raw[i+n] == '@' {
				n++
			}
			if err := flush(i, col+i); err != nil {
				return v, err
			}
			op = raw[i : i+n]
			i += n
			start = i
		default:
			i++
		}
	}
	if err := flush(len(raw), 0); err != nil {
		return v, err
	}

	return v, nil
}

// newSegment builds a value segment, splitting the body into commodity
// prefix, integer and fraction widths. A nil op with an empty body yields
// no segment; an operator with an empty body is an error.
func newSegment(name string, op, body []byte, line, col int) (*cst.Segment, error) {
	if len(body) == 0 {
		if op == nil {
			return nil, nil
		}
		return nil, &SyntaxError{
			Name:        name,
			Kind:        MalformedAmount,
			Line:        line,
			ColumnStart: col,
			ColumnEnd:   col + len(op),
			Message:     "operator '" + string(op) + "' without an amount",
			Expected:    "an amount",
		}
	}

	prefix, integer := splitAmount(body)

	pw, err := cst.NarrowWidth(cst.Width(prefix), line)
	if err != nil {
		return nil, err
	}
	iw, err := cst.NarrowWidth(cst.Width(integer), line)
	if err != nil {
		return nil, err
	}
	fw, err := cst.NarrowWidth(cst.Width(body)-int(pw)-int(iw), line)
	if err != nil {
		return nil, err
	}

	return &cst.Segment{
		Op:       op,
		Body:     body,
		Prefix:   pw,
		Integer:  iw,
		Fraction: fw,
	}, nil
}

func duplicateOperator(name string, op []byte, line, col int) error {
	return &SyntaxError{
		Name:        name,
		Kind:        DuplicateValueOperator,
		Line:        line,
		ColumnStart: col,
		ColumnEnd:   col + len(op),
		Message:     "duplicate '" + string(op) + "' operator",
		Expected:    "a single assertion and a single price per posting",
	}
}

// splitAmount splits an amount body into its commodity prefix and integer
// part. The prefix is the leading run of non-digit bytes, stopping before
// any trailing whitespace or sign so that "$ 10" and "$-10" share the
// prefix "$". The integer part runs from the end of the prefix to the
// decimal mark, or to the end of the numeric run when there is none.
func splitAmount(body []byte) (prefix, integer []byte) {
	p := 0
	for p < len(body) && !isDigit(body[p]) {
		p++
	}
	// Exclude a sign and the whitespace around it from the prefix.
	for p > 0 {
		c := body[p-1]
		if c == '+' || c == '-' || c == ' ' || c == '\t' {
			p--
			continue
		}
		break
	}
	prefix = body[:p]

	mark := decimalMark(body[p:])
	if mark < 0 {
		// No decimal mark: the integer part covers the numeric run,
		// grouping separators included.
		end := p
		for end < len(body) {
			c := body[end]
			if isDigit(c) || c == '.' || c == ',' || c == '+' || c == '-' || c == ' ' || c == '\t' {
				end++
				continue
			}
			break
		}
		// Interior whitespace belongs to the integer part only up to the
		// last digit, so a trailing commodity keeps its separating space.
		for end > p && !isDigit(body[end-1]) {
			end--
		}
		return prefix, body[p:end]
	}
	return prefix, body[p : p+mark]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
