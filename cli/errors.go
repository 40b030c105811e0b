package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mondeja/hledger-fmt/parser"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error with styling and context. Syntax errors
// get an hledger-style source context block:
//
//	hledger-fmt error: main.journal:3:15:
//	  | 2024-01-01 opening
//	3 |   a:cash  $10 @
//	  |               ^
//	operator '@' without an amount
//	Expected an amount
func (r *ErrorRenderer) Render(err error) string {
	if e, ok := err.(*parser.SyntaxError); ok {
		return r.renderSyntaxError(e)
	}
	return err.Error()
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, err := range errs {
		buf.WriteString(r.Render(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

func (r *ErrorRenderer) renderSyntaxError(e *parser.SyntaxError) string {
	var buf strings.Builder

	header := fmt.Sprintf("hledger-fmt error: %s:%d:%d:", e.Name, e.Line, e.ColumnStart)
	buf.WriteString(errorStyle.Render(header))
	buf.WriteByte('\n')

	previous, offending := r.contextLines(e)

	lineno := strconv.Itoa(e.Line)
	gutter := strings.Repeat(" ", len(lineno))

	if previous != "" {
		fmt.Fprintf(&buf, "%s | %s\n", gutter, errContextStyle.Render(previous))
	}
	fmt.Fprintf(&buf, "%s | %s\n", lineno, offending)

	start, end := caretSpan(offending, e.ColumnStart, e.ColumnEnd)
	carets := strings.Repeat("^", end-start)
	fmt.Fprintf(&buf, "%s | %s%s\n", gutter, strings.Repeat(" ", start), errCaretStyle.Render(carets))

	buf.WriteString(e.Message)
	buf.WriteByte('\n')
	if e.Expected != "" {
		fmt.Fprintf(&buf, "Expected %s\n", e.Expected)
	}

	return buf.String()
}

// contextLines returns the line before the error and the offending line
// itself, falling back to the error's excerpt when the source is not
// available.
func (r *ErrorRenderer) contextLines(e *parser.SyntaxError) (previous, offending string) {
	if r.source == nil {
		return "", e.Excerpt
	}
	lines := strings.Split(string(r.source), "\n")
	if e.Line-2 >= 0 && e.Line-2 < len(lines) {
		previous = strings.TrimSuffix(lines[e.Line-2], "\r")
	}
	if e.Line-1 >= 0 && e.Line-1 < len(lines) {
		offending = strings.TrimSuffix(lines[e.Line-1], "\r")
	} else {
		offending = e.Excerpt
	}
	return previous, offending
}

// caretSpan converts the byte columns of a syntax error into display
// columns on the offending line, so the caret run sits under the right
// cells even with multi-byte or wide characters.
func caretSpan(line string, colStart, colEnd int) (start, end int) {
	startByte := colStart - 1
	endByte := colEnd - 1
	if startByte < 0 {
		startByte = 0
	}
	if startByte > len(line) {
		startByte = len(line)
	}
	if endByte < startByte {
		endByte = startByte
	}
	if endByte > len(line) {
		endByte = len(line)
	}

	start = runewidth.StringWidth(line[:startByte])
	end = start + runewidth.StringWidth(line[startByte:endByte])
	if end == start {
		end = start + 1
	}
	return start, end
}
