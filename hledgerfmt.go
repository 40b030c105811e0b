// Package hledgerfmt formats hledger journal files: parse once into a
// lossless syntax tree, then render it back with postings, values and
// trailing comments aligned into columns.
//
// The root package is a thin façade over the cst, parser and formatter
// packages for callers that want the common parse-then-format flow.
package hledgerfmt

import (
	"github.com/mondeja/hledger-fmt/cst"
	"github.com/mondeja/hledger-fmt/formatter"
	"github.com/mondeja/hledger-fmt/parser"
)

// Parse parses journal source into its syntax tree. The name identifies
// the source in error messages. The tree borrows from src, which must
// stay alive as long as the tree is used.
func Parse(name string, src []byte) (*cst.File, error) {
	return parser.Parse(name, src)
}

// Format renders a parsed journal to canonical text.
func Format(file *cst.File, opts ...formatter.Option) []byte {
	return formatter.New(opts...).Format(file)
}

// FormatBytes parses and formats journal source in one call. The output
// buffer is pre-sized to the input length plus a quarter unless an
// explicit size option overrides it.
func FormatBytes(name string, src []byte, opts ...formatter.Option) ([]byte, error) {
	file, err := parser.Parse(name, src)
	if err != nil {
		return nil, err
	}
	sized := make([]formatter.Option, 0, len(opts)+1)
	sized = append(sized, formatter.WithEstimatedOutputSize(len(src)+len(src)/4))
	sized = append(sized, opts...)
	return formatter.New(sized...).Format(file), nil
}

// FormatString is FormatBytes for string input and output.
func FormatString(name, src string, opts ...formatter.Option) (string, error) {
	out, err := FormatBytes(name, []byte(src), opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
