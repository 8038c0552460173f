package config

import (
	"path/filepath"
	"sync"
	"time"

	"careernav/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// PromptWatcher reloads roadmap prompt override files when they change on
// disk, so operators can tune prompt wording without restarting the
// service. Watches the parent directories rather than the files themselves:
// editors and config-management tools typically replace files via rename,
// which drops inotify watches on the file inode.
type PromptWatcher struct {
	watcher  *fsnotify.Watcher
	config   *Config
	logger   *errors.Logger
	files    map[string]struct{} // absolute paths of watched prompt files
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewPromptWatcher creates a watcher for the configured prompt files.
// Returns (nil, nil) when no prompt files are configured.
func NewPromptWatcher(cfg *Config, logger *errors.Logger) (*PromptWatcher, error) {
	paths := cfg.PromptFiles()
	if len(paths) == 0 {
		return nil, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"failed to create prompt file watcher", err)
	}

	files := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, errors.NewIOError(errors.ErrCodeFileNotFound,
				"failed to resolve prompt file path", err).WithContext("path", p)
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
				"failed to watch prompt file directory", err).WithContext("dir", dir)
		}
	}

	return &PromptWatcher{
		watcher:  watcher,
		config:   cfg,
		logger:   logger,
		files:    files,
		debounce: time.Second,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine
func (w *PromptWatcher) Start() {
	w.logger.Info("Prompt file watcher started", "files", len(w.files))
	go w.run()
}

// Stop stops the watcher and waits for the loop to exit
func (w *PromptWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	<-w.doneCh
}

func (w *PromptWatcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.LogError(err, "Prompt file watcher error")
		case <-w.stopCh:
			return
		}
	}
}

func (w *PromptWatcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	if _, watched := w.files[abs]; !watched {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("Prompt file change detected",
		"file", abs,
		"op", event.Op.String())

	// Debounce bursts of events from a single save
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *PromptWatcher) reload() {
	if err := w.config.loadPromptsFromFiles(); err != nil {
		// Keep serving the previously loaded prompts on a bad reload
		w.logger.LogError(err, "Prompt reload failed, keeping previous prompts")
		return
	}
	w.logger.Info("Roadmap prompts reloaded from files")
}
