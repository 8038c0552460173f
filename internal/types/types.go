package types

import "time"

// Resume represents an uploaded resume document
type Resume struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Content    string    `json:"content"`
	Skills     []string  `json:"skills,omitempty"`
	Processed  bool      `json:"processed"`
	UploadDate time.Time `json:"uploadDate"`
}

// JobPosting represents a job listing candidates are matched against
type JobPosting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// RankedMatch represents one job scored against a resume
type RankedMatch struct {
	JobID           string  `json:"job_id"`
	Title           string  `json:"title"`
	Company         string  `json:"company"`
	Score           float64 `json:"score"`
	MatchPercentage string  `json:"match_percentage"` // score*100 formatted "%.1f%%"
}

// LearningPhase represents one phase of a learning path
type LearningPhase struct {
	Title    string   `json:"title"`
	Duration string   `json:"duration"` // always a string, e.g. "1-2 months"
	Tasks    []string `json:"tasks"`
}

// ProjectIdea represents a suggested portfolio project
type ProjectIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Roadmap is the career roadmap returned to callers. The four keys are
// always present. The element types are loose (any) because LLM-produced
// roadmaps are validated only down to the level the schema contract
// requires: skills_gap and learning_path must be sequences, the other two
// keys must be present. Fallback-generated roadmaps fill these fields with
// LearningPhase and ProjectIdea values.
type Roadmap struct {
	SkillsGap      []any `json:"skills_gap"`
	LearningPath   []any `json:"learning_path"`
	Certifications any   `json:"certifications"`
	Projects       any   `json:"projects"`
}

// RoadmapInput represents the input for generating a career roadmap
type RoadmapInput struct {
	ResumeText string `json:"resumeText"`
	TargetRole string `json:"targetRole"`
}

// RoleProfile declares the required and preferred skills for a target role,
// used by the fallback roadmap generator
type RoleProfile struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}
