package textproc

import "strings"

// Resources holds the immutable text-processing assets shared by every
// request: the stopword set and the lemmatizer. Build once at startup and
// treat as read-only; Normalize never mutates shared state, so a single
// Resources value is safe for concurrent use.
type Resources struct {
	stopwords map[string]struct{}
	lemmatizer *Lemmatizer
}

// NewResources builds the shared normalization assets
func NewResources() *Resources {
	stop := make(map[string]struct{}, len(englishStopwords))
	for _, w := range englishStopwords {
		stop[w] = struct{}{}
	}
	return &Resources{
		stopwords:  stop,
		lemmatizer: NewLemmatizer(),
	}
}

// Normalize lowercases the input, tokenizes it into alphanumeric runs,
// drops English stopwords, lemmatizes the survivors, and joins them with
// single spaces. Deterministic: the same input always yields the same
// output. An empty input yields an empty string.
func (r *Resources) Normalize(text string) string {
	tokens := Tokenize(strings.ToLower(text))

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, isStop := r.stopwords[tok]; isStop {
			continue
		}
		out = append(out, r.lemmatizer.Lemmatize(tok))
	}
	return strings.Join(out, " ")
}

// Tokenize splits text into maximal runs of letters and digits. Anything
// else (punctuation, whitespace, symbols) is a separator and is dropped,
// so "node.js" tokenizes to ["node", "js"].
func Tokenize(text string) []string {
	var tokens []string
	start := -1
	for i, ch := range text {
		if isAlnum(ch) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

func isAlnum(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}
