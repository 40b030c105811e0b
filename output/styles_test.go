package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/muesli/termenv"
)

func TestPlainStylesPassThrough(t *testing.T) {
	var buf bytes.Buffer
	styles := NewPlainStyles(&buf)

	// The ascii profile never emits escape sequences.
	for name, fn := range map[string]func(string) string{
		"Success":     styles.Success,
		"Error":       styles.Error,
		"Warning":     styles.Warning,
		"FilePath":    styles.FilePath,
		"DiffAdded":   styles.DiffAdded,
		"DiffRemoved": styles.DiffRemoved,
		"DiffHunk":    styles.DiffHunk,
		"Keyword":     styles.Keyword,
		"Dim":         styles.Dim,
	} {
		t.Run(name, func(t *testing.T) {
			got := fn("plain")
			assert.Equal(t, got, "plain")
			assert.False(t, strings.Contains(got, "\x1b["))
		})
	}
}

func TestPlainStylesProfile(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, NewPlainStyles(&buf).Profile(), termenv.Ascii)
}

func TestStylesKeepText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Success", styles.Success("formatted main.journal"), "formatted main.journal"},
		{"Error", styles.Error("not formatted"), "not formatted"},
		{"FilePath", styles.FilePath("books/2024.hledger"), "books/2024.hledger"},
		{"DiffAdded", styles.DiffAdded("+  a:cash  $ 10"), "+  a:cash"},
		{"DiffRemoved", styles.DiffRemoved("-  a:cash $10"), "-  a:cash"},
		{"DiffHunk", styles.DiffHunk("@@ -1,3 +1,3 @@"), "@@"},
		{"Keyword", styles.Keyword("commodity"), "commodity"},
		{"Dim", styles.Dim("5ms"), "5ms"},
		{"Warning", styles.Warning("512ms"), "512ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.got, tt.want)
		})
	}
}
