package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const changeBuffer = 100

// Watcher watches the application tree recursively with fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	skipNames map[string]struct{}
	skipPaths map[string]struct{}
	changes   chan ports.SourceChange
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithSkipNames excludes directories with any of the given base names.
func WithSkipNames(names ...string) Option {
	return func(w *Watcher) {
		for _, n := range names {
			w.skipNames[n] = struct{}{}
		}
	}
}

// WithSkipPaths excludes the directory trees rooted at the given absolute paths.
func WithSkipPaths(paths ...string) Option {
	return func(w *Watcher) {
		for _, p := range paths {
			w.skipPaths[filepath.Clean(p)] = struct{}{}
		}
	}
}

// NewWatcher creates a new file system watcher. Version-control metadata and the
// sourcehook workspace directory are always skipped.
func NewWatcher(logger ports.Logger, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	w := &Watcher{
		fsWatcher: fw,
		logger:    logger,
		skipNames: map[string]struct{}{
			".git":             {},
			".jj":              {},
			domain.HookDirName: {},
		},
		skipPaths: make(map[string]struct{}),
		changes:   make(chan ports.SourceChange, changeBuffer),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Changes returns the changes seen under the root. It ends when the watcher stops.
func (w *Watcher) Changes() iter.Seq[ports.SourceChange] {
	return func(yield func(ports.SourceChange) bool) {
		for change := range w.changes {
			if !yield(change) {
				return
			}
		}
	}
}

func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Skip directories that vanish or cannot be read
			}
			if d.IsDir() {
				if w.shouldSkip(path) {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

func (w *Watcher) shouldSkip(dir string) bool {
	if _, ok := w.skipNames[filepath.Base(dir)]; ok {
		return true
	}
	_, ok := w.skipPaths[filepath.Clean(dir)]
	return ok
}

//nolint:cyclop // one case per fsnotify channel
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			change, ok := toSourceChange(event)
			if !ok {
				continue
			}

			select {
			case w.changes <- change:
			case <-ctx.Done():
				return
			}

			if change.Kind == ports.ChangeCreated {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					for dir := range w.watchRecursively(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// toSourceChange drops chmod-only events, which never change compiled output.
func toSourceChange(event fsnotify.Event) (ports.SourceChange, bool) {
	var kind ports.ChangeKind
	switch {
	case event.Has(fsnotify.Write):
		kind = ports.ChangeModified
	case event.Has(fsnotify.Create):
		kind = ports.ChangeCreated
	case event.Has(fsnotify.Remove):
		kind = ports.ChangeRemoved
	case event.Has(fsnotify.Rename):
		kind = ports.ChangeRenamed
	default:
		return ports.SourceChange{}, false
	}
	return ports.SourceChange{Path: event.Name, Kind: kind}, true
}

// Relay feeds every changed path into d until changes ends, then flushes d.
func Relay(changes iter.Seq[ports.SourceChange], d *Debouncer) {
	for change := range changes {
		d.Add(change.Path)
	}
	d.Flush()
}
