package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles loads custom roadmap prompts from external files if
// file paths are configured. Called once during LoadConfig; the prompt
// watcher calls it again when a watched file changes.
func (c *Config) loadPromptsFromFiles() error {
	prompts := c.GetRoadmapConfig().CustomPrompts

	var loaded LoadedRoadmapPrompts

	if prompts.SystemPromptFile != "" {
		content, err := loadPromptFromFile(prompts.SystemPromptFile, "system")
		if err != nil {
			return err
		}
		loaded.System = content
	}

	if prompts.UserPromptFile != "" {
		content, err := loadPromptFromFile(prompts.UserPromptFile, "user")
		if err != nil {
			return err
		}
		loaded.User = content
	}

	setRoadmapPrompts(loaded)
	return nil
}

// PromptFiles returns the configured prompt file paths, for the watcher
func (c *Config) PromptFiles() []string {
	prompts := c.GetRoadmapConfig().CustomPrompts
	var files []string
	if prompts.SystemPromptFile != "" {
		files = append(files, prompts.SystemPromptFile)
	}
	if prompts.UserPromptFile != "" {
		files = append(files, prompts.UserPromptFile)
	}
	return files
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func loadPromptFromFile(filePath, promptType string) (string, error) {
	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s prompt file '%s': %w", promptType, filePath, err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s prompt file not found: %s", promptType, absPath)
	}

	// Read file content
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s prompt file '%s': %w", promptType, absPath, err)
	}

	// Validate content is not empty
	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s prompt file '%s' is empty", promptType, absPath)
	}

	log.Printf("[CONFIG] Successfully loaded %s prompt from file: %s (%d characters)",
		promptType, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	validateFile := func(filePath, promptType string) {
		if filePath == "" {
			return // No file specified, skip validation
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s prompt: %s", promptType, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s prompt file not found: %s", promptType, absPath))
		}
	}

	prompts := c.GetRoadmapConfig().CustomPrompts
	validateFile(prompts.SystemPromptFile, "system")
	validateFile(prompts.UserPromptFile, "user")

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation errors: %s", strings.Join(validationErrors, "; "))
	}
	return nil
}
