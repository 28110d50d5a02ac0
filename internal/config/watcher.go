package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/convoview/go-convo-monitor/internal/util"
)

// Watcher watches the config file and emits the reloaded config whenever it
// changes on disk. The parent directory is watched rather than the file
// itself so that editors replacing the file atomically are still observed.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan *FileConfig
}

// NewWatcher starts watching the config file at path.
func NewWatcher(path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: watcher,
		path:    path,
		events:  make(chan *FileConfig, 4),
	}

	go w.processEvents()

	return w, nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(w.path)
			if err != nil {
				util.LogWarnf("Ignoring config reload: %v", err)
				continue
			}
			if cfg == nil {
				continue
			}

			select {
			case w.events <- cfg:
			default:
				// Drop the event if nobody is draining; a later write
				// will carry the newest content anyway.
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Config watch error: " + err.Error())
		}
	}
}

// Events returns the channel of reloaded configs.
func (w *Watcher) Events() <-chan *FileConfig {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
