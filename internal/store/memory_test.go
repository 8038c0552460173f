package store

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"careernav/internal/errors"
	"careernav/internal/types"
)

func TestResumeStoreSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryResumeStore()

	id, err := s.Save(ctx, &types.Resume{
		Filename: "resume.txt",
		Content:  "Python developer with SQL experience",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Fatal("Save should assign an id")
	}

	resume, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if resume.Filename != "resume.txt" {
		t.Errorf("Unexpected filename: %s", resume.Filename)
	}
	if resume.Processed {
		t.Error("New resume should not be processed")
	}
	if resume.UploadDate.IsZero() {
		t.Error("Save should set the upload date")
	}
}

func TestResumeStoreGetUnknown(t *testing.T) {
	_, err := NewMemoryResumeStore().Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("Get should fail for an unknown id")
	}

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeResumeNotFound {
		t.Errorf("Expected code %s, got %s", errors.ErrCodeResumeNotFound, appErr.Code)
	}
}

func TestResumeStoreSetSkills(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryResumeStore()

	id, err := s.Save(ctx, &types.Resume{Filename: "r.txt", Content: "text"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := s.SetSkills(ctx, id, []string{"python", "sql"}); err != nil {
		t.Fatalf("SetSkills failed: %v", err)
	}

	resume, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !resume.Processed {
		t.Error("SetSkills should mark the resume processed")
	}
	if len(resume.Skills) != 2 {
		t.Errorf("Expected 2 skills, got %v", resume.Skills)
	}

	if err := s.SetSkills(ctx, "missing", nil); err == nil {
		t.Error("SetSkills should fail for an unknown id")
	}
}

func TestResumeStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryResumeStore()

	id, _ := s.Save(ctx, &types.Resume{Filename: "r.txt", Content: "text", Skills: []string{"python"}})

	first, _ := s.Get(ctx, id)
	first.Skills[0] = "mutated"
	first.Content = "mutated"

	second, _ := s.Get(ctx, id)
	if second.Skills[0] != "python" || second.Content != "text" {
		t.Error("Stored resume should be isolated from caller mutations")
	}
}

func TestJobStoreSeedAndList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryJobStore()

	if err := s.Seed(ctx, SampleJobs()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	jobs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(jobs) != 4 {
		t.Fatalf("Expected 4 sample jobs, got %d", len(jobs))
	}
	for i, job := range jobs {
		if job.ID == "" {
			t.Errorf("Job %d should have an assigned id", i)
		}
		if job.Description == "" || len(job.Requirements) == 0 {
			t.Errorf("Job %q should carry a description and requirements", job.Title)
		}
	}
	if jobs[0].Title != "Software Engineer" || jobs[3].Company != "Cloud Systems Inc" {
		t.Error("Seed should preserve insertion order")
	}
}

func TestSeedSampleJobsIfEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryJobStore()

	seeded, err := SeedSampleJobsIfEmpty(ctx, s)
	if err != nil {
		t.Fatalf("SeedSampleJobsIfEmpty failed: %v", err)
	}
	if !seeded {
		t.Error("Empty store should be seeded")
	}

	seeded, err = SeedSampleJobsIfEmpty(ctx, s)
	if err != nil {
		t.Fatalf("Second SeedSampleJobsIfEmpty failed: %v", err)
	}
	if seeded {
		t.Error("Non-empty store should not be reseeded")
	}

	count, _ := s.Count(ctx)
	if count != 4 {
		t.Errorf("Expected 4 jobs after idempotent seeding, got %d", count)
	}
}

func TestStoresConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	resumes := NewMemoryResumeStore()
	jobs := NewMemoryJobStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := resumes.Save(ctx, &types.Resume{Filename: "r.txt", Content: "text"})
			if err != nil {
				t.Errorf("Save failed: %v", err)
				return
			}
			if _, err := resumes.Get(ctx, id); err != nil {
				t.Errorf("Get failed: %v", err)
			}
			if err := resumes.SetSkills(ctx, id, []string{"python"}); err != nil {
				t.Errorf("SetSkills failed: %v", err)
			}
			if err := jobs.Seed(ctx, []types.JobPosting{{Title: "T", Company: "C"}}); err != nil {
				t.Errorf("Seed failed: %v", err)
			}
			if _, err := jobs.List(ctx); err != nil {
				t.Errorf("List failed: %v", err)
			}
		}()
	}
	wg.Wait()

	count, _ := jobs.Count(ctx)
	if count != 20 {
		t.Errorf("Expected 20 jobs, got %d", count)
	}
}
