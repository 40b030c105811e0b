package parser

import (
	"fmt"
	"unicode/utf8"
)

// ErrorKind classifies syntax errors.
type ErrorKind int

const (
	// UnknownConstruct is a column-0 line that is not a comment, a known
	// directive keyword or a transaction header.
	UnknownConstruct ErrorKind = iota

	// UnexpectedIndent is an indented line with no open transaction or
	// directive group.
	UnexpectedIndent

	// UnterminatedComment is a "comment" block without "end comment".
	UnterminatedComment

	// DuplicateValueOperator is a posting value with two assertions or
	// two prices.
	DuplicateValueOperator

	// MalformedAmount is a value operator with an empty right-hand side.
	MalformedAmount

	// InvalidUTF8 is input that is not valid UTF-8.
	InvalidUTF8
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownConstruct:
		return "unknown construct"
	case UnexpectedIndent:
		return "unexpected indent"
	case UnterminatedComment:
		return "unterminated comment"
	case DuplicateValueOperator:
		return "duplicate value operator"
	case MalformedAmount:
		return "malformed amount"
	case InvalidUTF8:
		return "invalid UTF-8"
	}
	return "syntax error"
}

// SyntaxError is a parse failure at a source location. Parsing is
// fail-fast: the first error aborts the parse.
type SyntaxError struct {
	Name        string // source name, usually a file path
	Kind        ErrorKind
	Line        int // 1-indexed
	ColumnStart int // 1-indexed, inclusive
	ColumnEnd   int // 1-indexed, exclusive
	Message     string
	Expected    string
	Excerpt     string // offending line, truncated to at most 120 bytes
}

func (e *SyntaxError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Line, e.ColumnStart, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.ColumnStart, e.Message)
}

// excerpt truncates a line to at most 120 bytes without splitting a
// multi-byte scalar.
func excerpt(line []byte) string {
	const max = 120
	if len(line) <= max {
		return string(line)
	}
	end := max
	for end > 0 && !utf8.RuneStart(line[end]) {
		end--
	}
	return string(line[:end])
}
