package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	hledgerfmt "github.com/mondeja/hledger-fmt"
	"github.com/mondeja/hledger-fmt/finder"
	"github.com/mondeja/hledger-fmt/formatter"
	"github.com/mondeja/hledger-fmt/output"
	"github.com/mondeja/hledger-fmt/telemetry"
)

type FormatCmd struct {
	Files        []FileOrStdin `help:"Journal files or directories (use '-' for stdin, omit to search the working directory)." arg:"" optional:""`
	Fix          bool          `help:"Rewrite changed files in place instead of printing a diff."`
	Yes          bool          `help:"Assume yes for confirmation prompts." short:"y"`
	EntrySpacing int           `help:"Spaces between aligned posting columns." default:"2"`
}

// fileChange is a file whose formatted content differs from disk.
type fileChange struct {
	path   string
	before []byte
	after  []byte
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()
	styles := newStyles(ctx, globals)

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, styles)
		}()
	}
	timer := telemetry.FromContext(runCtx).Start("Format")
	defer timer.End()

	opts := []formatter.Option{formatter.WithEntrySpacing(cmd.EntrySpacing)}

	paths, stdin, err := cmd.resolveFiles()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(ExitError)
	}

	// Stdin is a filter: formatted text goes to stdout, errors abort.
	if stdin != nil {
		out, err := hledgerfmt.FormatBytes(stdin.Filename, stdin.Contents, opts...)
		if err != nil {
			renderParseError(ctx, stdin.Contents, err)
			return NewCommandError(ExitError)
		}
		_, _ = ctx.Stdout.Write(out)
		return nil
	}

	if len(paths) == 0 {
		printInfof(ctx.Stderr, "no journal files found")
		return nil
	}

	var changed []fileChange
	hadError := false
	for _, path := range paths {
		t := timer.Child(path)
		src, err := os.ReadFile(path)
		if err != nil {
			printError(ctx.Stderr, err.Error())
			hadError = true
			t.End()
			continue
		}
		out, err := hledgerfmt.FormatBytes(path, src, opts...)
		t.End()
		if err != nil {
			renderParseError(ctx, src, err)
			hadError = true
			continue
		}
		if !bytes.Equal(src, out) {
			changed = append(changed, fileChange{path: path, before: src, after: out})
		}
	}

	if cmd.Fix {
		if err := cmd.applyChanges(ctx, styles, changed); err != nil {
			return err
		}
	} else {
		for _, c := range changed {
			printDiff(ctx.Stdout, styles, c.path, unifiedDiff(c.path, c.before, c.after))
		}
	}

	switch {
	case hadError:
		return NewCommandError(ExitError)
	case len(changed) > 0:
		return NewCommandError(ExitChanged)
	}
	return nil
}

// applyChanges rewrites changed files in place, asking for confirmation
// when more than one file is affected and --yes was not given.
func (cmd *FormatCmd) applyChanges(ctx *kong.Context, styles *output.Styles, changed []fileChange) error {
	if len(changed) == 0 {
		return nil
	}

	if len(changed) > 1 && !cmd.Yes {
		ok, err := promptYesNo(ctx, fmt.Sprintf("Rewrite %d journal files?", len(changed)))
		if err != nil {
			return err
		}
		if !ok {
			printInfof(ctx.Stderr, "no files written")
			return NewCommandError(ExitChanged)
		}
	}

	for _, c := range changed {
		mode := os.FileMode(0o644)
		if info, err := os.Stat(c.path); err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(c.path, c.after, mode); err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(ExitError)
		}
		printSuccess(ctx.Stderr, fmt.Sprintf("formatted %s", pathStyle.Render(c.path)))
	}
	return nil
}

// resolveFiles expands the positional arguments into journal paths. A
// single "-" argument selects stdin mode; directories are searched for
// journal files, and no arguments at all searches the working
// directory.
func (cmd *FormatCmd) resolveFiles() (paths []string, stdin *FileOrStdin, err error) {
	if len(cmd.Files) == 1 && cmd.Files[0].IsStdin() {
		return nil, &cmd.Files[0], nil
	}

	if len(cmd.Files) == 0 {
		paths, err = finder.Find(".")
		return paths, nil, err
	}

	args := make([]string, 0, len(cmd.Files))
	for i := range cmd.Files {
		if cmd.Files[i].IsStdin() {
			return nil, nil, fmt.Errorf("'-' cannot be combined with file arguments")
		}
		args = append(args, cmd.Files[i].Filename)
	}
	paths, err = finder.Expand(args)
	return paths, nil, err
}

func renderParseError(ctx *kong.Context, source []byte, err error) {
	renderer := NewErrorRenderer(source)
	_, _ = fmt.Fprint(ctx.Stderr, renderer.Render(err))
	_, _ = fmt.Fprintln(ctx.Stderr)
}

func newStyles(ctx *kong.Context, globals *Globals) *output.Styles {
	if globals.NoColor {
		return output.NewPlainStyles(ctx.Stdout)
	}
	return output.NewStyles(ctx.Stdout)
}
