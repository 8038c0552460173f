package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"careernav/internal/errors"
	"careernav/internal/textproc"
	"careernav/internal/types"
)

// defaultMaxFeatures caps the TF-IDF vocabulary size. When the corpus has
// more distinct terms, the most frequent ones across the corpus are kept.
const defaultMaxFeatures = 5000

// Ranker scores job postings against a resume using TF-IDF cosine
// similarity. The vector space is request-scoped: every call to Rank fits
// a fresh vocabulary over the resume plus the submitted jobs, with the
// resume at position 0. Scores are therefore comparable within one call
// but not across calls.
type Ranker struct {
	resources   *textproc.Resources
	maxFeatures int
}

// NewRanker creates a ranker sharing the given normalization resources
func NewRanker(resources *textproc.Resources) *Ranker {
	return &Ranker{
		resources:   resources,
		maxFeatures: defaultMaxFeatures,
	}
}

// Rank returns one RankedMatch per job, highest similarity first. Ties keep
// the submitted job order (stable sort). Scores are in [0,1]; the
// percentage string is score*100 formatted to one decimal place.
//
// An empty job slice is a caller error: the job store is responsible for
// seeding a default set before ranking. If normalization leaves no terms at
// all (resume and every description reduce to nothing), the vector space
// cannot be built and an EMPTY_CORPUS error is returned.
func (r *Ranker) Rank(resumeText string, jobs []types.JobPosting) ([]types.RankedMatch, error) {
	if len(jobs) == 0 {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyJobCorpus,
			"no job postings to rank against", nil)
	}

	docs := make([][]string, 0, len(jobs)+1)
	docs = append(docs, strings.Fields(r.resources.Normalize(resumeText)))
	for _, job := range jobs {
		docs = append(docs, strings.Fields(r.resources.Normalize(job.Description)))
	}

	vocab := buildVocabulary(docs, r.maxFeatures)
	if len(vocab) == 0 {
		return nil, errors.NewInternalError(errors.ErrCodeEmptyCorpus,
			"empty vocabulary: no terms survived normalization", nil)
	}

	vectors := vectorize(docs, vocab)
	resumeVec := vectors[0]

	matches := make([]types.RankedMatch, len(jobs))
	for i, job := range jobs {
		score := dot(resumeVec, vectors[i+1])
		// Guard against float drift outside [0,1]
		if score < 0 {
			score = 0
		} else if score > 1 {
			score = 1
		}
		matches[i] = types.RankedMatch{
			JobID:           job.ID,
			Title:           job.Title,
			Company:         job.Company,
			Score:           score,
			MatchPercentage: fmt.Sprintf("%.1f%%", score*100),
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	return matches, nil
}

// buildVocabulary assigns an index to each term kept in the vector space.
// When the corpus exceeds maxFeatures distinct terms, the most frequent
// terms across the whole corpus win; frequency ties break alphabetically so
// the selection is deterministic.
func buildVocabulary(docs [][]string, maxFeatures int) map[string]int {
	freq := make(map[string]int)
	for _, doc := range docs {
		for _, term := range doc {
			freq[term]++
		}
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	sort.Strings(terms)
	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

// vectorize produces one L2-normalized TF-IDF vector per document. IDF is
// smoothed: ln((1+n)/(1+df)) + 1, so terms appearing in every document
// still carry weight and a fresh corpus never divides by zero.
func vectorize(docs [][]string, vocab map[string]int) [][]float64 {
	n := len(docs)
	df := make([]int, len(vocab))
	vectors := make([][]float64, n)

	for d, doc := range docs {
		vec := make([]float64, len(vocab))
		for _, term := range doc {
			if i, ok := vocab[term]; ok {
				vec[i]++
			}
		}
		for i, count := range vec {
			if count > 0 {
				df[i]++
			}
		}
		vectors[d] = vec
	}

	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	for _, vec := range vectors {
		var norm float64
		for i := range vec {
			vec[i] *= idf[i]
			norm += vec[i] * vec[i]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for i := range vec {
				vec[i] /= norm
			}
		}
	}
	return vectors
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
