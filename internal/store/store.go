package store

import (
	"context"

	"careernav/internal/types"
)

// ResumeStore persists uploaded resumes. Get returns a
// RESUME_NOT_FOUND AppError for unknown ids.
type ResumeStore interface {
	Save(ctx context.Context, resume *types.Resume) (string, error)
	Get(ctx context.Context, id string) (*types.Resume, error)
	// SetSkills records the extracted skills and marks the resume processed.
	SetSkills(ctx context.Context, id string, skills []string) error
}

// JobStore holds the job postings resumes are matched against
type JobStore interface {
	List(ctx context.Context) ([]types.JobPosting, error)
	Seed(ctx context.Context, jobs []types.JobPosting) error
	Count(ctx context.Context) (int, error)
}
