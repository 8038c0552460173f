package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"careernav/internal/errors"
	"careernav/internal/types"
)

// MemoryResumeStore is a concurrency-safe in-memory ResumeStore.
// Values are copied on the way in and out so callers can never mutate
// stored state through a shared pointer.
type MemoryResumeStore struct {
	mu      sync.RWMutex
	resumes map[string]types.Resume
}

// NewMemoryResumeStore creates an empty in-memory resume store
func NewMemoryResumeStore() *MemoryResumeStore {
	return &MemoryResumeStore{resumes: make(map[string]types.Resume)}
}

// Save stores a resume and returns its assigned id. A zero upload date is
// filled with the current time.
func (s *MemoryResumeStore) Save(_ context.Context, resume *types.Resume) (string, error) {
	if resume == nil {
		return "", errors.NewValidationError(errors.ErrCodeInvalidRequest, "resume is nil", nil)
	}

	stored := *resume
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.UploadDate.IsZero() {
		stored.UploadDate = time.Now().UTC()
	}
	stored.Skills = append([]string(nil), resume.Skills...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes[stored.ID] = stored
	return stored.ID, nil
}

// Get returns a copy of the resume with the given id
func (s *MemoryResumeStore) Get(_ context.Context, id string) (*types.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.resumes[id]
	if !ok {
		return nil, errors.NewValidationError(errors.ErrCodeResumeNotFound,
			fmt.Sprintf("resume not found: %s", id), nil)
	}

	result := stored
	result.Skills = append([]string(nil), stored.Skills...)
	return &result, nil
}

// SetSkills records extracted skills and flips the processed flag
func (s *MemoryResumeStore) SetSkills(_ context.Context, id string, skills []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.resumes[id]
	if !ok {
		return errors.NewValidationError(errors.ErrCodeResumeNotFound,
			fmt.Sprintf("resume not found: %s", id), nil)
	}

	stored.Skills = append([]string(nil), skills...)
	stored.Processed = true
	s.resumes[id] = stored
	return nil
}

// MemoryJobStore is a concurrency-safe in-memory JobStore
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs []types.JobPosting
}

// NewMemoryJobStore creates an empty in-memory job store
func NewMemoryJobStore() *MemoryJobStore {
	return &MemoryJobStore{}
}

// List returns all job postings in insertion order
func (s *MemoryJobStore) List(_ context.Context) ([]types.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.JobPosting, len(s.jobs))
	copy(result, s.jobs)
	return result, nil
}

// Seed appends job postings, assigning ids where absent
func (s *MemoryJobStore) Seed(_ context.Context, jobs []types.JobPosting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		s.jobs = append(s.jobs, job)
	}
	return nil
}

// Count returns the number of stored postings
func (s *MemoryJobStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs), nil
}
