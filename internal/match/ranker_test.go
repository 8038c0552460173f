package match

import (
	stderrors "errors"
	"math"
	"testing"

	"careernav/internal/errors"
	"careernav/internal/textproc"
	"careernav/internal/types"
)

func newTestRanker() *Ranker {
	return NewRanker(textproc.NewResources())
}

func TestRankIdenticalDescriptionRanksFirst(t *testing.T) {
	ranker := newTestRanker()
	resume := "Senior Python engineer building scalable cloud applications with Docker and AWS"

	jobs := []types.JobPosting{
		{ID: "1", Title: "Gardener", Company: "Green Co", Description: "Pruning hedges and planting flower beds"},
		{ID: "2", Title: "Platform Engineer", Company: "Cloud Co", Description: resume},
		{ID: "3", Title: "Accountant", Company: "Ledger Ltd", Description: "Quarterly bookkeeping and tax filings"},
	}

	matches, err := ranker.Rank(resume, jobs)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Rank() returned %d matches, want 3", len(matches))
	}
	if matches[0].JobID != "2" {
		t.Errorf("top match = job %s, want job 2 (identical description)", matches[0].JobID)
	}
	if math.Abs(matches[0].Score-1.0) > 1e-9 {
		t.Errorf("top score = %v, want 1.0", matches[0].Score)
	}
	if matches[0].MatchPercentage != "100.0%" {
		t.Errorf("top match percentage = %q, want %q", matches[0].MatchPercentage, "100.0%")
	}
}

func TestRankNoOverlapScoresZeroStableOrder(t *testing.T) {
	ranker := newTestRanker()

	jobs := []types.JobPosting{
		{ID: "a", Title: "Chef", Company: "Bistro", Description: "Seasonal menus and pastry work"},
		{ID: "b", Title: "Florist", Company: "Petals", Description: "Bouquet arrangement and flower delivery"},
		{ID: "c", Title: "Barista", Company: "Brew", Description: "Espresso drinks and latte art"},
	}

	matches, err := ranker.Rank("kernel driver development in rust", jobs)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	for _, m := range matches {
		if m.Score > 1e-9 {
			t.Errorf("job %s score = %v, want ~0", m.JobID, m.Score)
		}
		if m.MatchPercentage != "0.0%" {
			t.Errorf("job %s percentage = %q, want %q", m.JobID, m.MatchPercentage, "0.0%")
		}
	}

	// All-equal scores keep submission order
	wantOrder := []string{"a", "b", "c"}
	for i, m := range matches {
		if m.JobID != wantOrder[i] {
			t.Errorf("position %d = job %s, want job %s", i, m.JobID, wantOrder[i])
		}
	}
}

func TestRankScoresWithinUnitInterval(t *testing.T) {
	ranker := newTestRanker()
	resume := "python react aws ci/cd pipelines microservices"

	jobs := []types.JobPosting{
		{ID: "1", Description: "python developer with react experience"},
		{ID: "2", Description: "aws infrastructure and ci/cd automation"},
		{ID: "3", Description: "unrelated librarian role"},
	}

	matches, err := ranker.Rank(resume, jobs)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	for _, m := range matches {
		if m.Score < 0 || m.Score > 1 {
			t.Errorf("job %s score %v outside [0,1]", m.JobID, m.Score)
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not in descending order at position %d", i)
		}
	}
}

func TestRankEmptyJobCorpus(t *testing.T) {
	ranker := newTestRanker()

	_, err := ranker.Rank("python engineer", nil)
	if err == nil {
		t.Fatal("Rank() with no jobs: expected error, got nil")
	}
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeEmptyJobCorpus {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeEmptyJobCorpus)
	}
}

func TestRankEmptyVocabulary(t *testing.T) {
	ranker := newTestRanker()

	// Stopwords and punctuation only: normalization leaves nothing
	jobs := []types.JobPosting{
		{ID: "1", Description: "the of and ..."},
	}
	_, err := ranker.Rank("a an the !!!", jobs)
	if err == nil {
		t.Fatal("Rank() with empty vocabulary: expected error, got nil")
	}
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeEmptyCorpus {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeEmptyCorpus)
	}
}

func TestBuildVocabularyMaxFeatures(t *testing.T) {
	docs := [][]string{
		{"alpha", "alpha", "alpha", "beta", "beta", "gamma"},
		{"delta", "alpha", "beta"},
	}

	vocab := buildVocabulary(docs, 2)
	if len(vocab) != 2 {
		t.Fatalf("vocabulary size = %d, want 2", len(vocab))
	}
	// alpha (4) and beta (3) are the most frequent corpus-wide
	if _, ok := vocab["alpha"]; !ok {
		t.Error("expected alpha in capped vocabulary")
	}
	if _, ok := vocab["beta"]; !ok {
		t.Error("expected beta in capped vocabulary")
	}
}
