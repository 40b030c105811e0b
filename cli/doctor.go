package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/mondeja/hledger-fmt/finder"
)

// DoctorCmd reports environment information useful in bug reports.
type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *kong.Context, globals *Globals) error {
	styles := newStyles(ctx, globals)

	version := Version
	if version == "" {
		version = "dev"
	}
	fmt.Fprintf(ctx.Stdout, "%s %s\n", styles.Keyword("version"), version)
	if CommitSHA != "" {
		fmt.Fprintf(ctx.Stdout, "%s %s\n", styles.Keyword("commit"), CommitSHA)
	}

	fmt.Fprintf(ctx.Stdout, "%s %s\n", styles.Keyword("color profile"), colorProfileName(styles.Profile()))

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		fmt.Fprintf(ctx.Stdout, "%s %dx%d\n", styles.Keyword("terminal"), w, h)
	} else {
		fmt.Fprintf(ctx.Stdout, "%s not a terminal\n", styles.Keyword("terminal"))
	}

	files, err := finder.Find(".")
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(ExitError)
	}
	fmt.Fprintf(ctx.Stdout, "%s %d\n", styles.Keyword("journal files"), len(files))
	for _, f := range files {
		fmt.Fprintf(ctx.Stdout, "  %s\n", styles.FilePath(f))
	}

	return nil
}

func colorProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "no color"
	}
}
