package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	hledgerfmt "github.com/mondeja/hledger-fmt"
	"github.com/mondeja/hledger-fmt/finder"
	"github.com/mondeja/hledger-fmt/telemetry"
)

type CheckCmd struct {
	Files []FileOrStdin `help:"Journal files or directories (use '-' for stdin, omit to search the working directory)." arg:"" optional:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
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
	timer := telemetry.FromContext(runCtx).Start("Check")
	defer timer.End()

	if len(cmd.Files) == 1 && cmd.Files[0].IsStdin() {
		f := &cmd.Files[0]
		out, err := hledgerfmt.FormatBytes(f.Filename, f.Contents)
		if err != nil {
			renderParseError(ctx, f.Contents, err)
			return NewCommandError(ExitError)
		}
		if !bytes.Equal(f.Contents, out) {
			printError(ctx.Stderr, "stdin is not formatted")
			return NewCommandError(ExitChanged)
		}
		printSuccess(ctx.Stderr, "stdin is formatted")
		return nil
	}

	var paths []string
	var err error
	if len(cmd.Files) == 0 {
		paths, err = finder.Find(".")
	} else {
		args := make([]string, 0, len(cmd.Files))
		for i := range cmd.Files {
			args = append(args, cmd.Files[i].Filename)
		}
		paths, err = finder.Expand(args)
	}
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(ExitError)
	}
	if len(paths) == 0 {
		printInfof(ctx.Stderr, "no journal files found")
		return nil
	}

	unformatted := 0
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
		out, err := hledgerfmt.FormatBytes(path, src)
		t.End()
		if err != nil {
			renderParseError(ctx, src, err)
			hadError = true
			continue
		}
		if !bytes.Equal(src, out) {
			printError(ctx.Stderr, fmt.Sprintf("%s is not formatted", pathStyle.Render(path)))
			unformatted++
			continue
		}
		printSuccess(ctx.Stderr, pathStyle.Render(path))
	}

	switch {
	case hadError:
		return NewCommandError(ExitError)
	case unformatted > 0:
		return NewCommandError(ExitChanged)
	}
	return nil
}
