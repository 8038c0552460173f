package textproc

import "strings"

// Lemmatizer reduces English nouns to their singular base form. It covers
// the plural patterns that actually occur in resume and job-posting text:
// irregular and invariant nouns via a fixed table (tech terms ending in "s"
// like kubernetes stay as-is), then ordered suffix rules. Words the rules
// do not recognize pass through unchanged.
type Lemmatizer struct {
	irregular map[string]string
}

// NewLemmatizer builds a lemmatizer with the irregular-noun table
func NewLemmatizer() *Lemmatizer {
	return &Lemmatizer{
		irregular: map[string]string{
			"analyses": "analysis",
			"children": "child",
			"criteria": "criterion",
			"data":     "data",
			"devops":   "devops",
			"jenkins":  "jenkins",
			"kubernetes": "kubernetes",
			"postgres": "postgres",
			"redis":    "redis",
			"feet":     "foot",
			"indices":  "index",
			"matrices": "matrix",
			"media":    "media",
			"men":      "man",
			"mice":     "mouse",
			"people":   "person",
			"teeth":    "tooth",
			"women":    "woman",
		},
	}
}

// Lemmatize returns the singular base form of word. The input must already
// be lowercase.
func (l *Lemmatizer) Lemmatize(word string) string {
	if base, ok := l.irregular[word]; ok {
		return base
	}
	if len(word) <= 3 || !strings.HasSuffix(word, "s") {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		// technologies -> technology, libraries -> library
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"),
		strings.HasSuffix(word, "shes"),
		strings.HasSuffix(word, "ches"),
		strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zes"):
		// processes -> process, batches -> batch
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"), strings.HasSuffix(word, "is"):
		// class, focus, analysis: not plurals
		return word
	default:
		// applications -> application, skills -> skill
		return word[:len(word)-1]
	}
}
