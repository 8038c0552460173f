package roadmap

import (
	"strings"
	"testing"

	"careernav/internal/config"
)

func TestPromptBuilderDefaults(t *testing.T) {
	builder := NewPromptBuilder(config.PromptConfig{})

	system, user := builder.Build([]string{"python", "sql"}, "ML Engineer", "resume body")

	if system != DefaultSystemPrompt {
		t.Error("Empty config should use the default system prompt")
	}
	for _, want := range []string{"python, sql", "ML Engineer", "resume body..."} {
		if !strings.Contains(user, want) {
			t.Errorf("User prompt missing %q:\n%s", want, user)
		}
	}
}

func TestPromptBuilderCustomPrompts(t *testing.T) {
	builder := NewPromptBuilder(config.PromptConfig{
		SystemPrompt: "custom system",
		UserPrompt:   "skills=%s role=%s context=%s",
	})

	system, user := builder.Build([]string{"docker"}, "DevOps Engineer", "text")

	if system != "custom system" {
		t.Errorf("Expected custom system prompt, got %q", system)
	}
	if user != "skills=docker role=DevOps Engineer context=text..." {
		t.Errorf("Unexpected user prompt: %q", user)
	}
}

func TestPromptBuilderNoSkills(t *testing.T) {
	builder := NewPromptBuilder(config.PromptConfig{})

	_, user := builder.Build(nil, "Software Engineer", "text")

	if !strings.Contains(user, "No specific skills detected") {
		t.Error("Empty skill list should be rendered as a placeholder")
	}
}

func TestPromptBuilderTruncatesResume(t *testing.T) {
	builder := NewPromptBuilder(config.PromptConfig{})
	long := strings.Repeat("x", resumeContextLimit+500)

	_, user := builder.Build([]string{"python"}, "ML Engineer", long)

	if strings.Contains(user, strings.Repeat("x", resumeContextLimit+1)) {
		t.Error("Resume context should be capped")
	}
	if !strings.Contains(user, strings.Repeat("x", resumeContextLimit)+"...") {
		t.Error("Truncated resume context should end with an ellipsis")
	}
}

func TestPromptBuilderDeterministic(t *testing.T) {
	builder := NewPromptBuilder(config.PromptConfig{})

	s1, u1 := builder.Build([]string{"python"}, "ML Engineer", "resume")
	s2, u2 := builder.Build([]string{"python"}, "ML Engineer", "resume")

	if s1 != s2 || u1 != u2 {
		t.Error("Prompt building should be deterministic for identical inputs")
	}
}
