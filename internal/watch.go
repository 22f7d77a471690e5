package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	tt "github.com/objlint/objlint/internal/types"
)

// WatchHandler receives the result of re-linting a changed file.
type WatchHandler func(filename string, issues []tt.Issue, err error)

// Watcher re-runs the engine on Java files as they change on disk.
type Watcher struct {
	engine  *Engine
	fsw     *fsnotify.Watcher
	handler WatchHandler
	done    chan struct{}
}

func NewWatcher(engine *Engine, handler WatchHandler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	return &Watcher{engine: engine, fsw: fsw, handler: handler, done: make(chan struct{})}, nil
}

// Watch registers paths; directories are walked recursively.
func (w *Watcher) Watch(paths ...string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			if err := w.fsw.Add(path); err != nil {
				return err
			}
			continue
		}
		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return w.fsw.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	return nil
}

// Start runs the watch loop until Stop is called.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.handler("", nil, err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if filepath.Ext(event.Name) != ".java" {
		// newly created directories still need watching
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				_ = w.fsw.Add(event.Name)
			}
		}
		return
	}
	issues, err := w.engine.Run(event.Name)
	w.handler(event.Name, issues, err)
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsw.Close()
}
