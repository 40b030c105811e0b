// Package output provides adaptive terminal styling for the CLI.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles renders text with ANSI colors when the writer supports them.
type Styles struct {
	output *termenv.Output
}

// NewStyles detects the writer's color profile.
func NewStyles(w io.Writer) *Styles {
	return &Styles{output: termenv.NewOutput(w)}
}

// NewPlainStyles never emits escape sequences.
func NewPlainStyles(w io.Writer) *Styles {
	return &Styles{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Profile returns the detected color profile.
func (s *Styles) Profile() termenv.Profile {
	return s.output.Profile
}

func (s *Styles) colored(text, color string, bold bool) string {
	styled := s.output.String(text).Foreground(s.output.Color(color))
	if bold {
		styled = styled.Bold()
	}
	return styled.String()
}

// Success is green and bold.
func (s *Styles) Success(text string) string { return s.colored(text, "2", true) }

// Error is red and bold.
func (s *Styles) Error(text string) string { return s.colored(text, "1", true) }

// Warning is yellow and bold.
func (s *Styles) Warning(text string) string { return s.colored(text, "3", true) }

// FilePath is cyan.
func (s *Styles) FilePath(text string) string { return s.colored(text, "6", false) }

// DiffAdded is green.
func (s *Styles) DiffAdded(text string) string { return s.colored(text, "2", false) }

// DiffRemoved is red.
func (s *Styles) DiffRemoved(text string) string { return s.colored(text, "1", false) }

// DiffHunk is magenta.
func (s *Styles) DiffHunk(text string) string { return s.colored(text, "5", false) }

// Keyword is bold.
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).Bold().String()
}

// Dim is faint, for secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}
