package config

import "sync"

var (
	loadedPromptsMu sync.RWMutex
	loadedPrompts   LoadedRoadmapPrompts
)

// LoadedRoadmapPrompts holds prompt content loaded from external files.
// Empty fields mean no file override is configured; the prompt resolution
// chain then falls through to inline config values and finally defaults.
type LoadedRoadmapPrompts struct {
	System string
	User   string
}

// GetRoadmapPrompts returns a copy of the currently loaded prompt
// overrides. Safe for concurrent use with the prompt file watcher.
func GetRoadmapPrompts() LoadedRoadmapPrompts {
	loadedPromptsMu.RLock()
	defer loadedPromptsMu.RUnlock()
	return loadedPrompts
}

// setRoadmapPrompts replaces the loaded prompt overrides atomically
func setRoadmapPrompts(p LoadedRoadmapPrompts) {
	loadedPromptsMu.Lock()
	defer loadedPromptsMu.Unlock()
	loadedPrompts = p
}
