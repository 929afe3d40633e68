package parser

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Root is the directory to watch recursively.
	Root string

	// DebounceDelay is how long to wait for more changes before processing.
	DebounceDelay time.Duration

	// Logger for watch events.
	Logger *slog.Logger
}

// WatchOperation indicates the type of file operation.
type WatchOperation string

const (
	OpCreate WatchOperation = "create"
	OpModify WatchOperation = "modify"
	OpDelete WatchOperation = "delete"
)

// WatchEvent is one debounced file change with its re-parse result.
type WatchEvent struct {
	// Path is relative to the watch root.
	Path string

	// Operation is the type of change.
	Operation WatchOperation

	// Result is the parse result (nil for delete operations).
	Result *FileResult

	// Error if re-parsing failed.
	Error error
}

// Watcher watches for source file changes and emits parse results. Events
// whose content hash matches the last seen hash are suppressed.
type Watcher struct {
	config  WatcherConfig
	parser  *Parser
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changes before processing.
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation

	// Content hashes for change suppression.
	hashMu sync.RWMutex
	hashes map[string]string // path → content hash

	events chan WatchEvent
}

// NewWatcher creates a file watcher over the configured root.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		parser:  NewParser(config.Root),
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]fsnotify.Op),
		hashes:  make(map[string]string),
		events:  make(chan WatchEvent, 100),
	}, nil
}

// Events returns the channel of watch events.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start begins watching the root for changes.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.config.Root); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("File watcher started",
		"root", w.config.Root,
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.events)
	return w.watcher.Close()
}

// IndexDirectory performs the initial parse of all target files under the
// root and records their hashes for change suppression.
func (w *Watcher) IndexDirectory(ctx context.Context) ([]*FileResult, error) {
	results, err := w.parser.ParseDirectory(ctx, w.config.Root)
	if err != nil {
		return nil, err
	}

	for _, result := range results {
		w.setHash(result.Path, result.Hash)
	}

	return results, nil
}

func (w *Watcher) setHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

func (w *Watcher) getHash(path string) (string, bool) {
	w.hashMu.RLock()
	defer w.hashMu.RUnlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

// addWatchesRecursive adds watches to all directories under root.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}

		if path != root && skipDir(filepath.Base(path)) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}

		return nil
	})
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent accumulates a single fsnotify event.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if !IsTargetFile(path) {
		// Watch newly created directories.
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() && !skipDir(filepath.Base(path)) {
				if err := w.watcher.Add(path); err != nil {
					w.logger.Warn("Failed to watch new directory",
						"path", path,
						"error", err)
				}
			}
		}
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	relPath, _ := filepath.Rel(w.config.Root, path)
	w.logger.Debug("File change detected",
		"path", relPath,
		"op", event.Op.String())
}

// flushPending processes accumulated changes.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		relPath, _ := filepath.Rel(w.config.Root, path)
		event := WatchEvent{Path: relPath}

		if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			event.Operation = OpDelete

			w.hashMu.Lock()
			delete(w.hashes, relPath)
			w.hashMu.Unlock()

			w.sendEvent(event)
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			event.Operation = OpDelete
			w.sendEvent(event)
			continue
		}

		result, err := w.parser.ParseFile(ctx, path)
		if err != nil {
			event.Error = err
			w.sendEvent(event)
			continue
		}

		oldHash, hadHash := w.getHash(relPath)
		if hadHash && oldHash == result.Hash {
			// Content unchanged, skip.
			continue
		}
		w.setHash(relPath, result.Hash)

		if op.Has(fsnotify.Create) || !hadHash {
			event.Operation = OpCreate
		} else {
			event.Operation = OpModify
		}
		event.Result = result

		w.sendEvent(event)
	}
}

// sendEvent sends an event without blocking the flush loop.
func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event",
			"path", event.Path,
			"op", event.Operation)
	default:
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path)
	}
}
