// Package watch reports modifications of a single file identified by a path
// expression.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MacroPower/filemonitor/pkg/fmerrors"
	"github.com/MacroPower/filemonitor/pkg/pathutil"
)

// Event describes a detected modification.
type Event struct {
	ModTime time.Time `json:"modTime" yaml:"modTime"`
	Path    string    `json:"path"    yaml:"path"`
}

// Watcher watches the file a path expression resolves to. The resolver must
// operate on the host filesystem, since change notifications come from the
// operating system.
type Watcher struct {
	since    time.Time
	resolver *pathutil.Resolver
	logger   *slog.Logger
	path     string
}

// Option configures a [Watcher].
type Option func(*Watcher)

// WithSince reports the file as modified right away if it was modified after
// t. By default, only modifications made after [Watcher.Run] starts are
// reported.
func WithSince(t time.Time) Option {
	return func(w *Watcher) {
		w.since = t
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// New creates a [Watcher] for the file pathExpr resolves to.
func New(r *pathutil.Resolver, pathExpr string, opts ...Option) *Watcher {
	w := &Watcher{
		resolver: r,
		path:     r.ResolveAbsolute(pathExpr),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	w.logger = w.logger.With(slog.String("path", w.path))

	return w
}

// Path returns the resolved path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run watches the file until ctx is done, calling fn for every modification.
// It fails with a [*fmerrors.FileNotFoundError] if the file does not exist
// when Run starts. A file that is temporarily missing later on (for example
// while being replaced) is not an error.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	last := w.since
	if last.IsZero() {
		modTime, err := w.resolver.LastModifiedTime(w.path)
		if err != nil {
			return err
		}

		last = modTime
	} else if err := w.resolver.EnsureFileExists(w.path); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close() //nolint:errcheck // Best-effort close.

	// Watch the directory rather than the file, so that editors replacing the
	// file do not end the watch.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.logger.Debug("watching file")

	last, err = w.check(last, fn)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("stopped watching file")

			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != w.path {
				continue
			}

			w.logger.Debug("got file event", slog.String("op", ev.Op.String()))

			last, err = w.check(last, fn)
			if err != nil {
				return err
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}

// check calls fn if the file was modified after last, and returns the new
// reference time.
func (w *Watcher) check(last time.Time, fn func(Event)) (time.Time, error) {
	modTime, err := w.resolver.LastModifiedTime(w.path)
	if errors.Is(err, fmerrors.ErrFileNotFound) {
		w.logger.Debug("file is missing")

		return last, nil
	}

	if err != nil {
		return last, err
	}

	if !last.Before(modTime) {
		return last, nil
	}

	fn(Event{Path: w.path, ModTime: modTime})

	return modTime, nil
}
