// Package watcher ingests draw CSV files dropped into a directory. It
// watches the directory with fsnotify; when a *.csv file appears (or is
// rewritten) it waits for writes to settle, imports the file into the
// store and moves it into a processed/ subdirectory so it is never
// imported twice.
package watcher

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lakay-labs/tiraj/internal/importer"
)

// settleDelay is how long a file must stay quiet before it is imported.
// CSV drops are small; one second comfortably outlasts any copy.
const settleDelay = 1 * time.Second

// Watcher watches one drop directory and imports into one table.
type Watcher struct {
	dir    string
	table  string
	target importer.Target

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup

	mu       sync.Mutex
	pending  map[string]*time.Timer
	importFn func(path string)
}

// New creates a Watcher for dir, importing into table on target.
func New(dir, table string, target importer.Target) (*Watcher, error) {
	if target == nil {
		return nil, fmt.Errorf("target cannot be nil")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path %s is not a directory", dir)
	}

	w := &Watcher{
		dir:     dir,
		table:   table,
		target:  target,
		stopCh:  make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}
	w.importFn = w.importFile
	return w, nil
}

// Start begins watching. Files already sitting in the directory are
// imported immediately, then new drops are handled as they arrive.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.fsw = fsw

	w.importExisting()

	w.wg.Add(1)
	go w.run()
	return nil
}

// Stop halts the watcher. Pending debounce timers are cancelled; a file
// mid-settle will be picked up by importExisting on the next Start.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	if w.fsw != nil {
		w.fsw.Close()
	}
	w.wg.Wait()

	w.mu.Lock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()
	return nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !shouldImport(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.schedule(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher: fsnotify error: %v", err)
		case <-w.stopCh:
			return
		}
	}
}

// schedule (re)arms the settle timer for path. Repeated write events keep
// pushing the import back until the file goes quiet.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(settleDelay, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.importFn(path)
	})
}

func (w *Watcher) importExisting() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		log.Printf("watcher: cannot list %s: %v", w.dir, err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || !shouldImport(e.Name()) {
			continue
		}
		w.importFn(filepath.Join(w.dir, e.Name()))
	}
}

func (w *Watcher) importFile(path string) {
	res, err := importer.ImportFile(w.target, w.table, path)
	if err != nil {
		log.Printf("watcher: import %s failed: %v", path, err)
		return
	}
	log.Printf("watcher: imported %s: %d record(s), %d skipped", filepath.Base(path), res.Imported, res.Skipped)

	processed := filepath.Join(w.dir, "processed")
	if err := os.MkdirAll(processed, 0755); err != nil {
		log.Printf("watcher: cannot create %s: %v", processed, err)
		return
	}
	dest := filepath.Join(processed, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		log.Printf("watcher: cannot archive %s: %v", path, err)
	}
}

// shouldImport reports whether a path looks like a draw CSV drop.
func shouldImport(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false // editor/copy temp files
	}
	return strings.EqualFold(filepath.Ext(base), ".csv")
}
