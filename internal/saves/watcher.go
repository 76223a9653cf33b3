package saves

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"skyedit/internal/log"
)

// debounce collapses the burst of events the game produces per save
const debounce = 150 * time.Millisecond

// Watcher monitors a save folder and reports when save files change
type Watcher struct {
	Dir     string
	Changes <-chan string // Path of the changed save file

	changes chan string
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for dir; call Start to begin watching
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 16)
	return &Watcher{
		Dir:     dir,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the save folder. On failure the watcher is closed
// and must not be stopped.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		w.watcher.Close()
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			if !IsSave(filepath.Base(event.Name)) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("save folder watch error", "dir", w.Dir, "error", err)
		}
	}
}

// emit never blocks the loop; a full channel drops the event
func (w *Watcher) emit(file string) {
	select {
	case w.changes <- file:
	default:
		log.Debug("dropping save folder event", "file", file)
	}
}
