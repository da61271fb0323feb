// Package filewatcher provides file system monitoring adapters.
package filewatcher

import (
	"context"
	"path/filepath"

	"github.com/coursechat/coursechat-go/internal/domain/ports"
	"github.com/coursechat/coursechat-go/internal/log"
	"github.com/fsnotify/fsnotify"
)

// FSNotifyWatcher implements ports.CatalogWatcher using fsnotify.
// It watches the catalog file's directory (editors often replace the
// file rather than write it in place) and emits an event whenever the
// target file is created or written.
type FSNotifyWatcher struct {
	watcher *fsnotify.Watcher
	path    string
}

// NewFSNotifyWatcher creates a watcher for the given catalog file.
func NewFSNotifyWatcher(path string) (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FSNotifyWatcher{watcher: w, path: path}, nil
}

// Watch starts monitoring and emits one ChangeEvent per detected
// change to the catalog file.
func (w *FSNotifyWatcher) Watch(ctx context.Context) (<-chan ports.ChangeEvent, error) {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return nil, err
	}

	events := make(chan ports.ChangeEvent, 16)

	go func() {
		defer close(events)
		target := filepath.Clean(w.path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				select {
				case events <- ports.ChangeEvent{Path: event.Name}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("catalog watcher: %v", err)
			}
		}
	}()

	return events, nil
}

// Stop stops the watcher.
func (w *FSNotifyWatcher) Stop() error {
	return w.watcher.Close()
}
