// Package finder discovers hledger journal files under a directory.
package finder

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/exp/slices"
)

// Patterns are the glob patterns that identify journal files.
var Patterns = []string{
	"**/*.journal",
	"**/*.hledger",
	"**/*.j",
}

// Find walks root and returns the relative paths of all journal files,
// sorted. Hidden directories (".git" and friends) are skipped.
func Find(root string) ([]string, error) {
	return FindFS(os.DirFS(root))
}

// FindFS is Find over an fs.FS, which tests use with in-memory trees.
func FindFS(fsys fs.FS) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range Patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if hidden(m) {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	slices.Sort(files)
	return files, nil
}

// Expand resolves each argument to journal files: directories are
// searched recursively, plain paths pass through untouched.
func Expand(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := Find(arg)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			files = append(files, filepath.Join(arg, f))
		}
	}
	return files, nil
}

func hidden(path string) bool {
	for _, part := range splitSlash(path) {
		if len(part) > 1 && part[0] == '.' {
			return true
		}
	}
	return false
}

func splitSlash(path string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			parts = append(parts, path[start:i])
			start = i + 1
		}
	}
	return append(parts, path[start:])
}
