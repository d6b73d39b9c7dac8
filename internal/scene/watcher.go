package scene

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hierarchyplus/hierarchy-plus/internal/logging"
)

// DefaultDebounce collapses bursts of file events into one reload
const DefaultDebounce = 250 * time.Millisecond

type watchTarget struct {
	path     string
	dir      bool
	onChange func()
	timer    *time.Timer
}

// Watcher reports changes to watched files and folders. Callbacks are handed
// to dispatch so they can run on the UI goroutine.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dispatch  func(func())
	debounce  time.Duration

	mu      sync.Mutex
	targets map[string]*watchTarget

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher starts a watcher. A nil dispatch calls callbacks directly on the
// watcher goroutine.
func NewWatcher(dispatch func(func())) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		dispatch:  dispatch,
		debounce:  DefaultDebounce,
		targets:   make(map[string]*watchTarget),
		done:      make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// SetDebounce changes the quiet period before a callback fires
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// WatchFile calls onChange whenever path is written, replaced or removed.
// The parent folder is watched so atomic saves are seen.
func (w *Watcher) WatchFile(path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.replaceTarget(&watchTarget{path: abs, onChange: onChange})
	return nil
}

// WatchDir calls onChange whenever anything below dir changes
func (w *Watcher) WatchDir(dir string, onChange func()) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if err := w.addTree(abs); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.replaceTarget(&watchTarget{path: abs, dir: true, onChange: onChange})
	return nil
}

// Unwatch stops reporting changes for a path passed to WatchFile or WatchDir
func (w *Watcher) Unwatch(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.targets[abs]; ok {
		if t.timer != nil {
			t.timer.Stop()
		}
		delete(w.targets, abs)
	}
}

// Close stops the watcher and waits for its goroutine
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	for _, t := range w.targets {
		if t.timer != nil {
			t.timer.Stop()
		}
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) replaceTarget(t *watchTarget) {
	if old, ok := w.targets[t.path]; ok && old.timer != nil {
		old.timer.Stop()
	}
	w.targets[t.path] = t
}

// addTree watches dir and every folder below it
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Warnf("File watcher error: %v", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	name := filepath.Clean(event.Name)

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(name); err == nil && info.IsDir() && w.underWatchedDir(name) {
			if err := w.addTree(name); err != nil {
				logging.Warnf("%v", err)
			}
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, t := range w.targets {
		if !t.matches(name) {
			continue
		}
		w.schedule(t)
	}
}

func (w *Watcher) underWatchedDir(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, t := range w.targets {
		if t.dir && t.matches(name) {
			return true
		}
	}
	return false
}

// schedule restarts the debounce timer of t. Callers hold w.mu.
func (w *Watcher) schedule(t *watchTarget) {
	if t.timer != nil {
		t.timer.Stop()
	}
	onChange := t.onChange
	t.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.dispatch(onChange)
	})
}

func (t *watchTarget) matches(name string) bool {
	if !t.dir {
		return name == t.path
	}
	return name == t.path || strings.HasPrefix(name, t.path+string(filepath.Separator))
}
