package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"careernav/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "MatchList", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchList", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "Roadmap", &RoadmapTextFormatter{})
	registry.RegisterFormatter("markdown", "Roadmap", &RoadmapMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case []types.RankedMatch:
		return "MatchList"
	case *types.Roadmap:
		return "Roadmap"
	case types.Roadmap:
		return "Roadmap"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// MatchTextFormatter handles text formatting for ranked job matches
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	matches, ok := data.([]types.RankedMatch)
	if !ok {
		return "", fmt.Errorf("expected []RankedMatch, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB MATCHES ===\n\n")
	if len(matches) == 0 {
		output.WriteString("No jobs to match against.\n")
		return output.String(), nil
	}

	for i, m := range matches {
		output.WriteString(fmt.Sprintf("%d. %s at %s\n", i+1, m.Title, m.Company))
		output.WriteString(fmt.Sprintf("   Match: %s\n\n", m.MatchPercentage))
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "MatchList"
}

// MatchMarkdownFormatter handles markdown formatting for ranked job matches
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	matches, ok := data.([]types.RankedMatch)
	if !ok {
		return "", fmt.Errorf("expected []RankedMatch, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Matches\n\n")
	if len(matches) == 0 {
		output.WriteString("No jobs to match against.\n")
		return output.String(), nil
	}

	output.WriteString("| Rank | Title | Company | Match |\n")
	output.WriteString("|------|-------|---------|-------|\n")
	for i, m := range matches {
		output.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", i+1, m.Title, m.Company, m.MatchPercentage))
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "MatchList"
}

// RoadmapTextFormatter handles text formatting for career roadmaps
type RoadmapTextFormatter struct{}

func (rtf *RoadmapTextFormatter) Format(data any) (string, error) {
	roadmap, err := asRoadmap(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("=== SKILLS GAP ===\n")
	if len(roadmap.SkillsGap) == 0 {
		output.WriteString("No gaps identified.\n")
	}
	for _, entry := range roadmap.SkillsGap {
		output.WriteString(fmt.Sprintf("- %v\n", entry))
	}
	output.WriteString("\n")

	output.WriteString("=== LEARNING PATH ===\n")
	for i, phase := range roadmap.LearningPath {
		title, duration, tasks := phaseFields(phase)
		output.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, title, duration))
		for _, task := range tasks {
			output.WriteString(fmt.Sprintf("   - %s\n", task))
		}
	}
	output.WriteString("\n")

	output.WriteString("=== CERTIFICATIONS ===\n")
	for _, cert := range asList(roadmap.Certifications) {
		output.WriteString(fmt.Sprintf("- %v\n", cert))
	}
	output.WriteString("\n")

	output.WriteString("=== PROJECT IDEAS ===\n")
	for _, project := range asList(roadmap.Projects) {
		title, description := projectFields(project)
		output.WriteString(fmt.Sprintf("- %s\n", title))
		if description != "" {
			output.WriteString(fmt.Sprintf("  %s\n", description))
		}
	}

	return output.String(), nil
}

func (rtf *RoadmapTextFormatter) SupportedType() string {
	return "Roadmap"
}

// RoadmapMarkdownFormatter handles markdown formatting for career roadmaps
type RoadmapMarkdownFormatter struct{}

func (rmf *RoadmapMarkdownFormatter) Format(data any) (string, error) {
	roadmap, err := asRoadmap(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("# Career Roadmap\n\n")

	output.WriteString("## Skills Gap\n\n")
	if len(roadmap.SkillsGap) == 0 {
		output.WriteString("No gaps identified.\n")
	}
	for _, entry := range roadmap.SkillsGap {
		output.WriteString(fmt.Sprintf("- %v\n", entry))
	}
	output.WriteString("\n")

	output.WriteString("## Learning Path\n\n")
	for i, phase := range roadmap.LearningPath {
		title, duration, tasks := phaseFields(phase)
		output.WriteString(fmt.Sprintf("### %d. %s (%s)\n\n", i+1, title, duration))
		for _, task := range tasks {
			output.WriteString(fmt.Sprintf("- %s\n", task))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Certifications\n\n")
	for _, cert := range asList(roadmap.Certifications) {
		output.WriteString(fmt.Sprintf("- %v\n", cert))
	}
	output.WriteString("\n")

	output.WriteString("## Project Ideas\n\n")
	for _, project := range asList(roadmap.Projects) {
		title, description := projectFields(project)
		output.WriteString(fmt.Sprintf("### %s\n\n", title))
		if description != "" {
			output.WriteString(description)
			output.WriteString("\n\n")
		}
	}

	return output.String(), nil
}

func (rmf *RoadmapMarkdownFormatter) SupportedType() string {
	return "Roadmap"
}

func asRoadmap(data any) (*types.Roadmap, error) {
	switch v := data.(type) {
	case *types.Roadmap:
		return v, nil
	case types.Roadmap:
		return &v, nil
	default:
		return nil, fmt.Errorf("expected Roadmap, got %T", data)
	}
}

// phaseFields extracts the display fields from a learning phase. Phases are
// typed values on the fallback path and decoded maps on the LLM path.
func phaseFields(phase any) (title, duration string, tasks []string) {
	switch p := phase.(type) {
	case types.LearningPhase:
		return p.Title, p.Duration, p.Tasks
	case map[string]any:
		title, _ = p["title"].(string)
		duration, _ = p["duration"].(string)
		if rawTasks, ok := p["tasks"].([]any); ok {
			for _, t := range rawTasks {
				tasks = append(tasks, fmt.Sprintf("%v", t))
			}
		}
		return title, duration, tasks
	default:
		return fmt.Sprintf("%v", phase), "", nil
	}
}

// projectFields extracts the display fields from a project idea
func projectFields(project any) (title, description string) {
	switch p := project.(type) {
	case types.ProjectIdea:
		return p.Title, p.Description
	case map[string]any:
		title, _ = p["title"].(string)
		description, _ = p["description"].(string)
		return title, description
	default:
		return fmt.Sprintf("%v", project), ""
	}
}

// asList normalizes the loosely typed certifications/projects values
func asList(v any) []any {
	switch list := v.(type) {
	case []any:
		return list
	case []string:
		result := make([]any, len(list))
		for i, s := range list {
			result[i] = s
		}
		return result
	case []types.ProjectIdea:
		result := make([]any, len(list))
		for i, p := range list {
			result[i] = p
		}
		return result
	case nil:
		return nil
	default:
		return []any{v}
	}
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
