package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/mondeja/hledger-fmt/parser"
)

func TestErrorRenderer(t *testing.T) {
	t.Run("syntax error with source context", func(t *testing.T) {
		src := []byte("2024-01-01 opening\n  a:cash  $10 @\n")
		_, err := parser.Parse("main.journal", src)
		assert.Error(t, err)

		out := NewErrorRenderer(src).Render(err)
		assert.Contains(t, out, "hledger-fmt error: main.journal:2:")
		assert.Contains(t, out, "| 2024-01-01 opening")
		assert.Contains(t, out, "2 |   a:cash  $10 @")
		assert.Contains(t, out, "^")
		assert.Contains(t, out, "Expected an amount")
	})

	t.Run("falls back to the excerpt without source", func(t *testing.T) {
		_, err := parser.Parse("main.journal", []byte("what is this\n"))
		assert.Error(t, err)

		out := NewErrorRenderer(nil).Render(err)
		assert.Contains(t, out, "1 | what is this")
	})

	t.Run("plain errors render as-is", func(t *testing.T) {
		out := NewErrorRenderer(nil).Render(errors.New("boom"))
		assert.Equal(t, out, "boom")
	})
}

func TestErrorRendererRenderAll(t *testing.T) {
	r := NewErrorRenderer(nil)

	assert.Equal(t, r.RenderAll(nil), "")

	out := r.RenderAll([]error{errors.New("first"), errors.New("second")})
	assert.Equal(t, out, "first\n\nsecond")
}

func TestCaretSpan(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		colStart   int
		colEnd     int
		start, end int
	}{
		{"ascii", "abcdef", 2, 4, 1, 3},
		{"zero width gets one caret", "abc", 2, 2, 1, 2},
		{"multibyte before the span", "€uro x", 5, 6, 2, 3},
		{"columns past the line clamp", "ab", 9, 12, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := caretSpan(tt.line, tt.colStart, tt.colEnd)
			assert.Equal(t, start, tt.start)
			assert.Equal(t, end, tt.end)
		})
	}

	t.Run("caret sits under the offending byte", func(t *testing.T) {
		line := "  a:cash  $10 @"
		start, _ := caretSpan(line, strings.IndexByte(line, '@')+1, len(line)+1)
		assert.Equal(t, start, strings.IndexByte(line, '@'))
	})
}
