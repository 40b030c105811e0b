package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/mondeja/hledger-fmt/output"
)

// unifiedDiff computes the unified diff between the original and the
// formatted content of a file.
func unifiedDiff(path string, before, after []byte) string {
	edits := myers.ComputeEdits(span.URIFromPath(path), string(before), string(after))
	return fmt.Sprint(gotextdiff.ToUnified(path, path+" (formatted)", string(before), edits))
}

// printDiff writes a diff with per-line styling: additions green,
// removals red, hunk headers magenta. The "==== path" banner separates
// diffs when several files changed.
func printDiff(w io.Writer, styles *output.Styles, path, diff string) {
	fmt.Fprintf(w, "==== %s\n", styles.FilePath(path))
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, styles.DiffHunk(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, styles.DiffAdded(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, styles.DiffRemoved(line))
		case line == "":
			// Trailing split artifact; context lines always carry a
			// leading space, so a truly empty line is never content.
		default:
			fmt.Fprintln(w, line)
		}
	}
}
