package roadmap

import (
	"fmt"
	"strings"

	"careernav/internal/config"
)

// resumeContextLimit bounds how much resume text is embedded in the user
// prompt. Resumes can be arbitrarily long; the roadmap only needs enough
// context to anchor the skills list.
const resumeContextLimit = 1000

// DefaultSystemPrompt instructs the model to emit nothing but the roadmap
// JSON object. The wording is a behavioral contract with the parser: it
// names the exact four required keys, demands string durations, double
// quoting, and no trailing commas. A stricter prompt reduces but never
// eliminates malformed output, which is why the repair parser exists.
const DefaultSystemPrompt = `You are a career development expert AI.
You must respond with a valid JSON object containing exactly these keys (only JSON format):
"skills_gap", "learning_path", "certifications", "projects".
Important: All string values must be properly quoted. Duration values in learning_path must be strings (e.g. "6 months" not 6 months).
All keys and string values must be double-quoted. Never emit trailing commas.
Do not include any explanation or text outside the JSON structure.`

// DefaultUserPromptTemplate is expanded with the detected skills, the
// target role, and the truncated resume context, in that order.
const DefaultUserPromptTemplate = `Create a detailed career roadmap based on this information:

Resume Skills: %s
Target Role: %s
Resume Context: %s

Respond with a JSON object containing:

1. "skills_gap": Array of strings, each prefixed with either "Required: " or "Preferred: "
   Example: ["Required: Python", "Preferred: Docker"]

2. "learning_path": Array of objects, each with:
   - "title": phase name (string)
   - "duration": time period (string, e.g., "6 months" or "12 weeks")
   - "tasks": array of specific tasks (strings)

3. "certifications": Array of certification names (strings)

4. "projects": Array of objects, each with:
   - "title": project name (string)
   - "description": detailed description (string)`

// PromptBuilder assembles the system and user prompts for a roadmap
// request. Prompt text resolution order: file override, inline config
// value, hardcoded default.
type PromptBuilder struct {
	custom config.PromptConfig
}

// NewPromptBuilder creates a builder using the given custom prompt configuration
func NewPromptBuilder(custom config.PromptConfig) *PromptBuilder {
	return &PromptBuilder{custom: custom}
}

// Build returns the (system, user) prompt pair for the given inputs.
// Pure with respect to its arguments: the same skills, role, and resume
// text always produce the same prompts for a given prompt configuration.
func (b *PromptBuilder) Build(skills []string, targetRole, resumeText string) (string, string) {
	loaded := config.GetRoadmapPrompts()

	systemPrompt := resolvePrompt(loaded.System, b.custom.SystemPrompt, DefaultSystemPrompt)
	userTemplate := resolvePrompt(loaded.User, b.custom.UserPrompt, DefaultUserPromptTemplate)

	return systemPrompt, fmt.Sprintf(userTemplate,
		formatSkills(skills),
		targetRole,
		truncateResume(resumeText))
}

// formatSkills renders the detected skills for prompt interpolation
func formatSkills(skills []string) string {
	if len(skills) == 0 {
		return "No specific skills detected"
	}
	return strings.Join(skills, ", ")
}

// truncateResume caps the resume context at resumeContextLimit characters.
// The trailing ellipsis signals truncation to the model.
func truncateResume(resumeText string) string {
	if len(resumeText) > resumeContextLimit {
		resumeText = resumeText[:resumeContextLimit]
	}
	return resumeText + "..."
}

// resolvePrompt selects the correct prompt string based on a clear priority order:
// 1. A prompt loaded from a file.
// 2. A prompt defined directly in the configuration.
// 3. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
