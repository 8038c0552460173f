package roadmap

import (
	"encoding/json"
	"regexp"
	"strings"

	"careernav/internal/errors"
	"careernav/internal/types"
)

// requiredKeys are the top-level keys every roadmap must carry
var requiredKeys = []string{"skills_gap", "learning_path", "certifications", "projects"}

// trailingCommaPattern matches a comma sitting directly before a closing
// brace or bracket (possibly separated by whitespace). This is the failure
// class LLMs reliably produce; the repair targets exactly it rather than
// attempting a general forgiving-JSON parser, so behavior stays auditable.
var trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)

// Parse turns raw LLM output into a validated roadmap. The attempt chain:
//
//  1. Direct JSON parse of the trimmed text.
//  2. Trailing-comma repair, then re-parse.
//  3. Validation: all four required keys present, skills_gap and
//     learning_path are JSON arrays.
//
// Parse failures and validation failures are indistinguishable to the
// caller: both return an AI_RESPONSE_PARSE_FAILED error and the caller is
// expected to fall back. The raw text is attached as error context for
// diagnostics.
func Parse(raw string) (*types.Roadmap, error) {
	text := strings.TrimSpace(raw)

	data, err := tryParse(text)
	if err != nil {
		repaired := repairTrailingCommas(text)
		data, err = tryParse(repaired)
		if err != nil {
			return nil, errors.NewAIError(errors.ErrCodeAIResponseParse,
				"roadmap response is not valid JSON after repair", err).
				WithContext("response_length", len(raw))
		}
	}

	return validateRoadmap(data)
}

func tryParse(text string) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// repairTrailingCommas strips commas that directly precede a closing } or
// ]. Applied to a fixpoint so repeated commas (",,}") are also removed.
func repairTrailingCommas(text string) string {
	for {
		repaired := trailingCommaPattern.ReplaceAllString(text, "$1")
		if repaired == text {
			return repaired
		}
		text = repaired
	}
}

// validateRoadmap checks the parsed object against the roadmap schema
// invariant: four keys present, skills_gap and learning_path are
// sequences. Element-level shapes are deliberately not enforced; the
// consumer renders whatever the model produced once the structure holds.
func validateRoadmap(data map[string]any) (*types.Roadmap, error) {
	for _, key := range requiredKeys {
		if _, ok := data[key]; !ok {
			return nil, errors.NewAIError(errors.ErrCodeAIResponseParse,
				"roadmap response is missing a required key", nil).
				WithContext("missing_key", key)
		}
	}

	skillsGap, ok := data["skills_gap"].([]any)
	if !ok {
		return nil, errors.NewAIError(errors.ErrCodeAIResponseParse,
			"skills_gap must be an array", nil)
	}

	learningPath, ok := data["learning_path"].([]any)
	if !ok {
		return nil, errors.NewAIError(errors.ErrCodeAIResponseParse,
			"learning_path must be an array", nil)
	}

	return &types.Roadmap{
		SkillsGap:      skillsGap,
		LearningPath:   learningPath,
		Certifications: data["certifications"],
		Projects:       data["projects"],
	}, nil
}
