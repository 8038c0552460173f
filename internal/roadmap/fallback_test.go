package roadmap

import (
	"encoding/json"
	"reflect"
	"testing"

	"careernav/internal/types"
)

func TestFallbackValidateProfiles(t *testing.T) {
	if err := NewGenerator().ValidateProfiles(); err != nil {
		t.Fatalf("Built-in role profiles should validate: %v", err)
	}
}

func TestFallbackSchemaCompleteForAllRoles(t *testing.T) {
	gen := NewGenerator()
	roles := []string{
		"Software Engineer",
		"Full Stack Developer",
		"ML Engineer",
		"Data Scientist",
		"Blockchain Wizard", // unknown, served by the default profile
	}

	for _, role := range roles {
		t.Run(role, func(t *testing.T) {
			roadmap := gen.Generate(role, nil)

			// Round-trip through JSON and check the schema the same way the
			// response parser does: the fallback must satisfy its own contract.
			raw, err := json.Marshal(roadmap)
			if err != nil {
				t.Fatalf("Fallback roadmap should marshal: %v", err)
			}
			if _, err := Parse(string(raw)); err != nil {
				t.Errorf("Fallback roadmap should satisfy the roadmap schema: %v", err)
			}

			if len(roadmap.LearningPath) != 2 {
				t.Errorf("Expected 2 learning phases, got %d", len(roadmap.LearningPath))
			}
			phase, ok := roadmap.LearningPath[0].(types.LearningPhase)
			if !ok {
				t.Fatalf("Expected typed learning phase, got %T", roadmap.LearningPath[0])
			}
			if phase.Title != "Master Core Skills" || phase.Duration != "1-2 months" {
				t.Errorf("Unexpected first phase: %+v", phase)
			}
			if len(phase.Tasks) == 0 || len(phase.Tasks) > 3 {
				t.Errorf("First phase should carry 1-3 course tasks, got %d", len(phase.Tasks))
			}
		})
	}
}

func TestFallbackSkillsGap(t *testing.T) {
	gen := NewGenerator()

	t.Run("NoSkills", func(t *testing.T) {
		roadmap := gen.Generate("ML Engineer", nil)
		want := []any{
			"Required: Python",
			"Required: Machine Learning",
			"Required: SQL",
			"Required: Statistics",
			"Preferred: Deep Learning",
			"Preferred: NLP",
			"Preferred: MLOps",
			"Preferred: Cloud ML",
		}
		if !reflect.DeepEqual(roadmap.SkillsGap, want) {
			t.Errorf("Unexpected skills gap:\ngot  %v\nwant %v", roadmap.SkillsGap, want)
		}
	})

	t.Run("CaseInsensitiveMatch", func(t *testing.T) {
		roadmap := gen.Generate("ML Engineer", []string{"python"})
		for _, entry := range roadmap.SkillsGap {
			if entry == "Required: Python" {
				t.Error("Possessed skill should not appear in the gap")
			}
		}
	})

	t.Run("TrimmedMatch", func(t *testing.T) {
		roadmap := gen.Generate("Data Scientist", []string{"  SQL  ", "Statistics"})
		for _, entry := range roadmap.SkillsGap {
			if entry == "Required: SQL" || entry == "Required: Statistics" {
				t.Errorf("Possessed skill leaked into the gap: %v", entry)
			}
		}
	})

	t.Run("AllSkillsCovered", func(t *testing.T) {
		roadmap := gen.Generate("ML Engineer", []string{
			"Python", "Machine Learning", "SQL", "Statistics",
			"Deep Learning", "NLP", "MLOps", "Cloud ML",
		})
		if len(roadmap.SkillsGap) != 0 {
			t.Errorf("Expected empty gap, got %v", roadmap.SkillsGap)
		}
		if roadmap.SkillsGap == nil {
			t.Error("skills_gap must stay a non-nil array for serialization")
		}
	})
}

func TestFallbackRoleSpecificContent(t *testing.T) {
	gen := NewGenerator()
	roadmap := gen.Generate("DevOps Engineer", nil)

	projects, ok := roadmap.Projects.([]types.ProjectIdea)
	if !ok {
		t.Fatalf("Expected typed projects, got %T", roadmap.Projects)
	}
	if len(projects) != 2 {
		t.Fatalf("Expected 2 project ideas, got %d", len(projects))
	}
	if projects[0].Title != "DevOps Engineer Portfolio Project" {
		t.Errorf("Portfolio project should name the target role, got %q", projects[0].Title)
	}
	if projects[1].Title != "Open Source Contribution" {
		t.Errorf("Unexpected second project: %q", projects[1].Title)
	}

	certs, ok := roadmap.Certifications.([]string)
	if !ok {
		t.Fatalf("Expected string certifications, got %T", roadmap.Certifications)
	}
	if len(certs) != 3 {
		t.Errorf("Expected 3 certifications, got %d", len(certs))
	}
}

func TestFallbackDeterministic(t *testing.T) {
	gen := NewGenerator()
	first := gen.Generate("Software Engineer", []string{"Python"})
	second := gen.Generate("Software Engineer", []string{"Python"})
	if !reflect.DeepEqual(first, second) {
		t.Error("Fallback generation should be deterministic")
	}
}
