package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPromptsFromFiles(t *testing.T) {
	// Create temporary directory for test files
	tempDir := t.TempDir()

	// Create test prompt files
	systemPromptContent := "Test system prompt for roadmap generation"
	userPromptContent := "Test user prompt template: %s, %s, %s"

	systemPromptFile := filepath.Join(tempDir, "system.roadmap.md")
	userPromptFile := filepath.Join(tempDir, "user.roadmap.md")

	if err := os.WriteFile(systemPromptFile, []byte(systemPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test system prompt file: %v", err)
	}

	if err := os.WriteFile(userPromptFile, []byte(userPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test user prompt file: %v", err)
	}

	// Create test config
	config := &Config{
		AI: AIConfig{
			Roadmap: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPromptFile: systemPromptFile,
					UserPromptFile:   userPromptFile,
				},
			},
		},
	}

	// Test file loading
	err := config.loadPromptsFromFiles()
	if err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}
	t.Cleanup(func() { setRoadmapPrompts(LoadedRoadmapPrompts{}) })

	// Verify content was loaded into the global prompt store
	loaded := GetRoadmapPrompts()

	if loaded.System != systemPromptContent {
		t.Errorf("Expected loaded system prompt content '%s', got '%s'",
			systemPromptContent, loaded.System)
	}

	if loaded.User != userPromptContent {
		t.Errorf("Expected loaded user prompt content '%s', got '%s'",
			userPromptContent, loaded.User)
	}

	// Verify file paths are preserved (new immutable design)
	if config.AI.Roadmap.CustomPrompts.SystemPromptFile != systemPromptFile {
		t.Error("Expected system prompt file path to be preserved")
	}

	if config.AI.Roadmap.CustomPrompts.UserPromptFile != userPromptFile {
		t.Error("Expected user prompt file path to be preserved")
	}
}

func TestValidatePromptFiles(t *testing.T) {
	// Create temporary directory for test files
	tempDir := t.TempDir()

	// Create a valid test file
	validFile := filepath.Join(tempDir, "valid.md")
	if err := os.WriteFile(validFile, []byte("Valid content"), 0600); err != nil {
		t.Fatalf("Failed to create valid test file: %v", err)
	}

	// Test with valid file
	config := &Config{
		AI: AIConfig{
			Roadmap: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPromptFile: validFile,
				},
			},
		},
	}

	err := config.validatePromptFiles()
	if err != nil {
		t.Errorf("Expected validation to pass for valid file, got error: %v", err)
	}

	// Test with non-existent file
	config.AI.Roadmap.CustomPrompts.SystemPromptFile = filepath.Join(tempDir, "nonexistent.md")

	err = config.validatePromptFiles()
	if err == nil {
		t.Error("Expected validation to fail for non-existent file")
	}
}

func TestLoadPromptFromFile(t *testing.T) {
	// Create temporary directory for test files
	tempDir := t.TempDir()

	// Test with valid file
	content := "Test prompt content"
	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	loadedContent, err := loadPromptFromFile(testFile, "system")
	if err != nil {
		t.Fatalf("Failed to load prompt from file: %v", err)
	}

	if loadedContent != content {
		t.Errorf("Expected content '%s', got '%s'", content, loadedContent)
	}

	// Test with empty file
	emptyFile := filepath.Join(tempDir, "empty.md")
	if err := os.WriteFile(emptyFile, []byte(""), 0600); err != nil {
		t.Fatalf("Failed to create empty test file: %v", err)
	}

	_, err = loadPromptFromFile(emptyFile, "system")
	if err == nil {
		t.Error("Expected error for empty file")
	}

	// Test with non-existent file
	_, err = loadPromptFromFile(filepath.Join(tempDir, "nonexistent.md"), "system")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestPromptFiles(t *testing.T) {
	tempDir := t.TempDir()
	systemFile := filepath.Join(tempDir, "system.md")
	userFile := filepath.Join(tempDir, "user.md")

	tests := []struct {
		name     string
		prompts  PromptConfig
		expected int
	}{
		{
			name:     "no files configured",
			prompts:  PromptConfig{},
			expected: 0,
		},
		{
			name:     "system file only",
			prompts:  PromptConfig{SystemPromptFile: systemFile},
			expected: 1,
		},
		{
			name:     "both files",
			prompts:  PromptConfig{SystemPromptFile: systemFile, UserPromptFile: userFile},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				AI: AIConfig{
					Roadmap: OperationAIConfig{CustomPrompts: tt.prompts},
				},
			}
			files := config.PromptFiles()
			if len(files) != tt.expected {
				t.Errorf("Expected %d prompt files, got %d: %v", tt.expected, len(files), files)
			}
		})
	}
}
