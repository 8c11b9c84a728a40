/*
Package watch reloads a theme when its source file changes.

Watching is polling-based: CheckModified compares the file's
modification time against the last observed one. The launcher calls it
from a UI timer, so no background goroutine is involved.

Reloader enforces the reload discipline for live trees: the new tree is
parsed completely off to the side and then swapped in atomically, so a
renderer reading the current tree never observes a partial update. A
failed reload keeps the previous tree in place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package watch

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/wolfyui/wolfy/theme"
)

// tracer traces with key 'wolfy.theme.watch'.
func tracer() tracing.Trace {
	return tracing.Select("wolfy.theme.watch")
}

// Watcher detects changes of a single file by polling its modification
// time.
type Watcher struct {
	path    string
	modTime time.Time
	known   bool
}

// NewWatcher creates a watcher for the given path. A missing file is
// not an error; the watcher reports a modification once it appears.
func NewWatcher(path string) *Watcher {
	w := &Watcher{path: path}
	w.Reset()
	return w
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// CheckModified reports whether the file changed since the last check
// and updates the internal state when it did.
func (w *Watcher) CheckModified() bool {
	modTime, ok := w.stat()
	switch {
	case ok && w.known && modTime.After(w.modTime):
		w.modTime = modTime
		return true
	case ok && !w.known:
		// file appeared or became readable
		w.modTime = modTime
		w.known = true
		return true
	}
	return false
}

// Reset takes the file's current modification time as the baseline.
// Useful after a reload to prevent an immediate re-trigger.
func (w *Watcher) Reset() {
	w.modTime, w.known = w.stat()
}

func (w *Watcher) stat() (time.Time, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Reloader combines a watcher with an atomically swapped theme tree.
// Current may be called from a reader while CheckReload runs; readers
// always see either the old or the new complete tree.
type Reloader struct {
	watcher *Watcher
	current atomic.Pointer[theme.Tree]
}

// NewReloader loads the theme file and starts watching it. When the
// initial load fails the reloader starts with an empty tree and the
// error is returned for logging; the reloader is still usable and will
// pick the file up once it parses.
func NewReloader(path string) (*Reloader, error) {
	r := &Reloader{watcher: NewWatcher(path)}
	tree, err := theme.Load(path)
	if err != nil {
		tree = theme.Empty()
	}
	r.current.Store(tree)
	return r, err
}

// Current returns the live tree. The reference is replaced wholesale on
// reload, never mutated.
func (r *Reloader) Current() *theme.Tree {
	return r.current.Load()
}

// Watcher exposes the underlying file watcher.
func (r *Reloader) Watcher() *Watcher {
	return r.watcher
}

// CheckReload polls the file and swaps in a freshly parsed tree when it
// changed. It reports whether a swap happened. A parse failure leaves
// the previous tree live and returns the error.
func (r *Reloader) CheckReload() (bool, error) {
	if !r.watcher.CheckModified() {
		return false, nil
	}
	tree, err := theme.Load(r.watcher.Path())
	if err != nil {
		tracer().Errorf("theme reload failed, keeping previous tree: %v", err)
		return false, err
	}
	r.current.Store(tree)
	tracer().Infof("theme reloaded from %s", r.watcher.Path())
	return true, nil
}
