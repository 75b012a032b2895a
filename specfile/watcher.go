// Copyright (c) 2025 BVK Chaitanya

package specfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bvk/cmdtree/tree"
	"github.com/fsnotify/fsnotify"
)

type WatchOptions struct {
	// Debounce is the quiet period after the last file event before the spec
	// file is reloaded.
	Debounce time.Duration

	// Tree holds the options used to build new trees.
	Tree *tree.Options

	Logger *slog.Logger
}

func (v *WatchOptions) setDefaults() {
	if v.Debounce == 0 {
		v.Debounce = 200 * time.Millisecond
	}
	if v.Logger == nil {
		v.Logger = slog.Default()
	}
}

func (v *WatchOptions) Check() error {
	if v.Debounce < 0 {
		return fmt.Errorf("debounce duration cannot be negative: %w", os.ErrInvalid)
	}
	if v.Tree != nil {
		if err := v.Tree.Check(); err != nil {
			return err
		}
	}
	return nil
}

// Watcher rebuilds the command tree whenever the spec file changes and hands
// the new tree to a callback, typically Dispatcher.Replace. When the file
// cannot be loaded the callback is not invoked, so the previous tree stays
// in service.
type Watcher struct {
	path     string
	reg      *Registry
	opts     WatchOptions
	onChange func(root *tree.Node) error

	fsw *fsnotify.Watcher

	closeCtx  context.Context
	causeFunc context.CancelCauseFunc
	wg        sync.WaitGroup

	mu      sync.Mutex
	reloads int
}

// NewWatcher starts watching the spec file. The parent directory is watched
// so that editors replacing the file through a rename are noticed.
func NewWatcher(path string, reg *Registry, onChange func(root *tree.Node) error, opts *WatchOptions) (*Watcher, error) {
	var wopts WatchOptions
	if opts != nil {
		wopts = *opts
	}
	wopts.setDefaults()
	if err := wopts.Check(); err != nil {
		return nil, err
	}
	if reg == nil || onChange == nil {
		return nil, fmt.Errorf("registry and callback are required: %w", os.ErrInvalid)
	}
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("could not watch %q: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		reg:      reg,
		opts:     wopts,
		onChange: onChange,
		fsw:      fsw,
	}
	w.closeCtx, w.causeFunc = context.WithCancelCause(context.Background())

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.goWatch(w.closeCtx)
	}()
	return w, nil
}

// Close stops the watcher and waits for the background goroutine to exit.
func (w *Watcher) Close() error {
	w.causeFunc(os.ErrClosed)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// Reloads returns the number of trees successfully handed to the callback.
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

func (w *Watcher) goWatch(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					w.opts.Logger.WarnContext(ctx, "spec file is moved or removed; keeping current command tree", "path", w.path)
				}
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.opts.Logger.WarnContext(ctx, "file watcher reported an error", "path", w.path, "err", err)

		case <-fire:
			fire = nil
			if err := w.Reload(ctx); err != nil {
				w.opts.Logger.ErrorContext(ctx, "could not reload spec file; keeping current command tree", "path", w.path, "err", err)
			}
		}
	}
}

// Reload loads the spec file immediately and passes the new tree to the
// callback.
func (w *Watcher) Reload(ctx context.Context) error {
	root, err := w.reg.LoadRoot(w.path, w.opts.Tree)
	if err != nil {
		return err
	}
	if err := w.onChange(root); err != nil {
		return fmt.Errorf("could not install new command tree: %w", err)
	}

	w.mu.Lock()
	w.reloads++
	w.mu.Unlock()

	w.opts.Logger.InfoContext(ctx, "reloaded command tree from spec file", "path", w.path, "commands", len(root.Literals()))
	return nil
}
