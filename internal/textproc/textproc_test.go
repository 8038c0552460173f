package textproc

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	res := NewResources()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and drops stopwords",
			input: "The quick developer is building APIs",
			want:  "quick developer building api",
		},
		{
			name:  "punctuation separates tokens",
			input: "node.js, docker/kubernetes!",
			want:  "node js docker kubernetes",
		},
		{
			name:  "lemmatizes plurals",
			input: "skills applications technologies",
			want:  "skill application technology",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only stopwords",
			input: "the and of a",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := res.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	res := NewResources()
	input := "Senior Python engineer with AWS and Docker experience"
	first := res.Normalize(input)
	for i := 0; i < 10; i++ {
		if got := res.Normalize(input); got != first {
			t.Fatalf("Normalize not deterministic: got %q, want %q", got, first)
		}
	}
}

func TestLemmatize(t *testing.T) {
	l := NewLemmatizer()

	tests := []struct {
		word string
		want string
	}{
		{"skills", "skill"},
		{"technologies", "technology"},
		{"processes", "process"},
		{"batches", "batch"},
		{"boxes", "box"},
		{"class", "class"},
		{"analysis", "analysis"},
		{"analyses", "analysis"},
		{"data", "data"},
		{"people", "person"},
		{"aws", "aws"},
		{"is", "is"},
		{"engineer", "engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := l.Lemmatize(tt.word); got != tt.want {
				t.Errorf("Lemmatize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestExtractSkills(t *testing.T) {
	t.Run("returns matches in vocabulary order", func(t *testing.T) {
		text := "Experienced with Docker, AWS, Python and React"
		want := []string{"python", "react", "aws", "docker"}
		if got := ExtractSkills(text); !reflect.DeepEqual(got, want) {
			t.Errorf("ExtractSkills() = %v, want %v", got, want)
		}
	})

	t.Run("substring containment matches sql inside postgresql", func(t *testing.T) {
		got := ExtractSkills("We use PostgreSQL in production")
		want := []string{"sql"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExtractSkills() = %v, want %v", got, want)
		}
	})

	t.Run("java matches inside javascript", func(t *testing.T) {
		got := ExtractSkills("JavaScript frontend work")
		want := []string{"java", "javascript"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExtractSkills() = %v, want %v", got, want)
		}
	})

	t.Run("no matches yields nil", func(t *testing.T) {
		if got := ExtractSkills("gardening and carpentry"); got != nil {
			t.Errorf("ExtractSkills() = %v, want nil", got)
		}
	})
}
