package cli

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	hledgerfmt "github.com/mondeja/hledger-fmt"
	"github.com/mondeja/hledger-fmt/output"
)

// watchDebounce coalesces the burst of write events editors produce
// when saving a file.
const watchDebounce = 200 * time.Millisecond

type WatchCmd struct {
	Paths []string `help:"Files or directories to watch (omit for the working directory)." arg:"" optional:""`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	styles := newStyles(ctx, globals)

	roots := cmd.Paths
	if len(roots) == 0 {
		roots = []string{"."}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(ExitError)
	}
	defer func() { _ = watcher.Close() }()

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(ExitError)
		}
		// Watching the directory instead of the file survives the
		// rename-and-replace dance most editors do on save.
		dir := root
		if !info.IsDir() {
			dir = filepath.Dir(root)
		}
		if err := watcher.Add(dir); err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(ExitError)
		}
	}

	printInfof(ctx.Stderr, "watching %d path(s), press Ctrl-C to stop", len(roots))

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deb := newDebouncer(func(path string) {
		reportChange(ctx, styles, path)
	})

	for {
		select {
		case <-sigCtx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !journalPath(ev.Name) {
				continue
			}
			deb.hit(ev.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

// journalPath reports whether a path looks like a journal file.
func journalPath(path string) bool {
	switch filepath.Ext(path) {
	case ".journal", ".hledger", ".j":
		return true
	}
	return false
}

// debouncer delays a callback per path until events stop arriving.
type debouncer struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	fn     func(path string)
}

func newDebouncer(fn func(path string)) *debouncer {
	return &debouncer{timers: make(map[string]*time.Timer), fn: fn}
}

func (d *debouncer) hit(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[path]; ok {
		t.Reset(watchDebounce)
		return
	}
	d.timers[path] = time.AfterFunc(watchDebounce, func() {
		d.mu.Lock()
		delete(d.timers, path)
		d.mu.Unlock()
		d.fn(path)
	})
}

// reportChange formats one file and prints its diff, mirroring the
// diff mode of the format command.
func reportChange(ctx *kong.Context, styles *output.Styles, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}
	out, err := hledgerfmt.FormatBytes(path, src)
	if err != nil {
		renderParseError(ctx, src, err)
		return
	}
	if bytes.Equal(src, out) {
		printSuccess(ctx.Stderr, pathStyle.Render(path))
		return
	}
	printDiff(ctx.Stdout, styles, path, unifiedDiff(path, src, out))
}
