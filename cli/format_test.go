package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFormatCmdResolveFiles(t *testing.T) {
	dir := t.TempDir()
	journal := filepath.Join(dir, "main.journal")
	assert.NoError(t, os.WriteFile(journal, []byte("; x\n"), 0o644))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "books"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "books", "2024.hledger"), []byte("; y\n"), 0o644))

	t.Run("stdin alone selects filter mode", func(t *testing.T) {
		cmd := &FormatCmd{Files: []FileOrStdin{{Filename: "<stdin>", Contents: []byte("; z\n")}}}
		paths, stdin, err := cmd.resolveFiles()
		assert.NoError(t, err)
		assert.Equal(t, len(paths), 0)
		assert.NotZero(t, stdin)
		assert.Equal(t, string(stdin.Contents), "; z\n")
	})

	t.Run("stdin mixed with files is rejected", func(t *testing.T) {
		cmd := &FormatCmd{Files: []FileOrStdin{
			{Filename: journal},
			{Filename: "<stdin>"},
		}}
		_, _, err := cmd.resolveFiles()
		assert.Error(t, err)
	})

	t.Run("directories expand to journal files", func(t *testing.T) {
		cmd := &FormatCmd{Files: []FileOrStdin{{Filename: dir}}}
		paths, stdin, err := cmd.resolveFiles()
		assert.NoError(t, err)
		assert.Zero(t, stdin)
		assert.Equal(t, paths, []string{
			filepath.Join(dir, "books/2024.hledger"),
			filepath.Join(dir, "main.journal"),
		})
	})

	t.Run("no arguments search the working directory", func(t *testing.T) {
		t.Chdir(dir)
		cmd := &FormatCmd{}
		paths, stdin, err := cmd.resolveFiles()
		assert.NoError(t, err)
		assert.Zero(t, stdin)
		assert.Equal(t, paths, []string{"books/2024.hledger", "main.journal"})
	})
}
