package classify

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a tables file into a Classifier whenever it changes on
// disk. A reload that fails to parse is logged and the previous tables stay.
type Watcher struct {
	path       string
	classifier *Classifier
	log        *zap.Logger

	watcher *fsnotify.Watcher
	reloads chan error

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher loads the tables at path into c and prepares to watch it.
func NewWatcher(path string, c *Classifier, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	t, err := ReadTables(abs)
	if err != nil {
		return nil, err
	}
	c.Swap(t)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		path:       abs,
		classifier: c,
		log:        log,
		watcher:    fw,
		reloads:    make(chan error, 16),
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}, nil
}

// Reloads reports the outcome of every reload attempt (nil on success).
// Results are dropped when nobody is reading.
func (w *Watcher) Reloads() <-chan error { return w.reloads }

// Start watches the tables file until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	// editors replace files on save, so watch the directory and filter
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.running = true

	go w.run(ctx)
	w.log.Debug("watching tables", zap.String("path", w.path))
	return nil
}

// Stop ends the watch and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("failed to close watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("tables watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	t, err := ReadTables(w.path)
	if err != nil {
		w.log.Warn("keeping previous tables", zap.String("path", w.path), zap.Error(err))
	} else {
		w.classifier.Swap(t)
		w.log.Debug("reloaded tables", zap.String("path", w.path))
	}

	select {
	case w.reloads <- err:
	default:
	}
}
