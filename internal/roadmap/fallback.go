package roadmap

import (
	"fmt"
	"strings"

	"careernav/internal/errors"
	"careernav/internal/types"
)

// roleProfiles is the process-wide role profile table consumed by the
// fallback generator. Skill order inside each profile is meaningful: the
// generated skills gap preserves it. The table is read-only after init;
// Generator copies everything it hands out.
var roleProfiles = map[string]types.RoleProfile{
	"Software Engineer": {
		Required:  []string{"Python", "JavaScript", "SQL", "Git", "CI/CD"},
		Preferred: []string{"React", "Node.js", "Docker", "Cloud platforms"},
	},
	"Full Stack Developer": {
		Required:  []string{"JavaScript", "HTML/CSS", "React", "Node.js", "SQL"},
		Preferred: []string{"TypeScript", "MongoDB", "AWS", "Docker"},
	},
	"ML Engineer": {
		Required:  []string{"Python", "Machine Learning", "SQL", "Statistics"},
		Preferred: []string{"Deep Learning", "NLP", "MLOps", "Cloud ML"},
	},
	"Data Scientist": {
		Required:  []string{"Python", "Statistics", "SQL", "Data Analysis"},
		Preferred: []string{"Machine Learning", "Data Visualization", "Big Data"},
	},
}

// defaultProfile covers target roles absent from the table, so the
// generator can serve any role string a caller sends.
var defaultProfile = types.RoleProfile{
	Required:  []string{"Programming", "Problem Solving", "Version Control"},
	Preferred: []string{"Cloud Computing", "Agile Methodologies"},
}

// Generator produces deterministic roadmaps when the LLM path is
// unavailable or its output cannot be salvaged. Generate never fails: the
// profile table is validated once at startup, and unknown roles get the
// generic default profile.
type Generator struct {
	profiles map[string]types.RoleProfile
	fallback types.RoleProfile
}

// NewGenerator creates a generator over the built-in role profile table
func NewGenerator() *Generator {
	return &Generator{
		profiles: roleProfiles,
		fallback: defaultProfile,
	}
}

// ValidateProfiles checks the role profile table at startup. A malformed
// profile is a boot failure, never a per-request error: once this passes,
// Generate is infallible.
func (g *Generator) ValidateProfiles() error {
	check := func(role string, profile types.RoleProfile) error {
		if len(profile.Required) == 0 {
			return errors.NewConfigError(errors.ErrCodeInvalidRole,
				fmt.Sprintf("role profile %q has no required skills", role), nil)
		}
		if len(profile.Preferred) == 0 {
			return errors.NewConfigError(errors.ErrCodeInvalidRole,
				fmt.Sprintf("role profile %q has no preferred skills", role), nil)
		}
		return nil
	}

	for role, profile := range g.profiles {
		if err := check(role, profile); err != nil {
			return err
		}
	}
	return check("(default)", g.fallback)
}

// Generate builds the fallback roadmap for a target role given the skills
// currently on the resume. Skill comparison is case-insensitive and
// whitespace-trimmed; gap order follows the profile's declared order,
// required before preferred.
func (g *Generator) Generate(targetRole string, currentSkills []string) *types.Roadmap {
	profile, ok := g.profiles[targetRole]
	if !ok {
		profile = g.fallback
	}

	have := make(map[string]struct{}, len(currentSkills))
	for _, skill := range currentSkills {
		have[normalizeSkill(skill)] = struct{}{}
	}

	var gap []any
	for _, skill := range profile.Required {
		if _, present := have[normalizeSkill(skill)]; !present {
			gap = append(gap, "Required: "+skill)
		}
	}
	for _, skill := range profile.Preferred {
		if _, present := have[normalizeSkill(skill)]; !present {
			gap = append(gap, "Preferred: "+skill)
		}
	}
	if gap == nil {
		gap = []any{} // schema requires the key even with nothing missing
	}

	coreSkills := profile.Required
	if len(coreSkills) > 3 {
		coreSkills = coreSkills[:3]
	}
	courseTasks := make([]string, len(coreSkills))
	for i, skill := range coreSkills {
		courseTasks[i] = "Complete online courses in " + skill
	}

	return &types.Roadmap{
		SkillsGap: gap,
		LearningPath: []any{
			types.LearningPhase{
				Title:    "Master Core Skills",
				Duration: "1-2 months",
				Tasks:    courseTasks,
			},
			types.LearningPhase{
				Title:    "Build Practical Experience",
				Duration: "2-3 months",
				Tasks: []string{
					"Work on personal projects",
					"Contribute to open source",
					"Build portfolio projects",
				},
			},
		},
		Certifications: []string{
			"AWS Certified Developer",
			"Professional Scrum Developer",
			"Role-specific technical certification",
		},
		Projects: []types.ProjectIdea{
			{
				Title:       fmt.Sprintf("%s Portfolio Project", targetRole),
				Description: fmt.Sprintf("Build a comprehensive project showcasing key %s skills", targetRole),
			},
			{
				Title:       "Open Source Contribution",
				Description: "Contribute to relevant open source projects in your domain",
			},
		},
	}
}

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
