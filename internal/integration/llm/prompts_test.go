package llm

import (
	"strings"
	"testing"

	"github.com/careerforge/careerforge-api/internal/entity"
)

func TestPromptsAreDeterministic(t *testing.T) {
	jd := "We need a Go engineer with PostgreSQL experience."

	builders := map[string]func() string{
		"section plan": func() string {
			p := sectionPlanPrompt(jd, entity.ResumeSections)
			return p.System + "\x00" + p.User
		},
		"work section": func() string {
			p := resumeSectionPrompt(entity.SectionWork, jd, []entity.WorkEntry{{Company: "Acme", Position: "Dev"}})
			return p.System + "\x00" + p.User
		},
		"skill extraction": func() string {
			p := skillExtractionPrompt(jd)
			return p.System + "\x00" + p.User
		},
		"skill formatting": func() string {
			p := skillFormattingPrompt([]string{"Go", "PostgreSQL"}, []entity.SkillGroup{{Name: "Languages", Keywords: []string{"Go"}}})
			return p.System + "\x00" + p.User
		},
		"role questions": func() string {
			p := roleQuestionsPrompt("Backend Engineer", entity.DifficultyMedium)
			return p.System + "\x00" + p.User
		},
		"prep questions": func() string {
			p := prepQuestionsPrompt(jd)
			return p.System + "\x00" + p.User
		},
		"feedback": func() string {
			p := feedbackPrompt(entity.AnswerReview{Question: "Why us?", Answer: "Because."})
			return p.System + "\x00" + p.User
		},
		"job info": func() string {
			p := jobInfoPrompt(jd)
			return p.System + "\x00" + p.User
		},
		"roadmap": func() string {
			p := roadmapPrompt("Junior Dev", "2 years", "Senior Dev", "1 year", jd)
			return p.System + "\x00" + p.User
		},
	}

	for name, build := range builders {
		first := build()
		for i := 0; i < 3; i++ {
			if build() != first {
				t.Errorf("%s prompt changed between calls with identical input", name)
			}
		}
	}
}

func TestSectionPlanPromptContent(t *testing.T) {
	p := sectionPlanPrompt("some job", entity.ResumeSections)

	if !strings.Contains(p.User, "some job") {
		t.Error("user prompt does not carry the job description")
	}
	for _, section := range entity.ResumeSections {
		if !strings.Contains(p.System, section) {
			t.Errorf("system prompt does not mention section %q", section)
		}
	}
	if !strings.Contains(p.System, "single JSON value") {
		t.Error("system prompt does not demand JSON-only output")
	}
}

func TestFeedbackPromptSubstitutesMissingAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{"empty answer", "", entity.NoAnswerSentinel},
		{"whitespace answer", "   \n", entity.NoAnswerSentinel},
		{"real answer", "I used the STAR method.", "I used the STAR method."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := feedbackPrompt(entity.AnswerReview{Question: "Q", Answer: tt.answer})
			if !strings.Contains(p.User, tt.want) {
				t.Errorf("user prompt does not contain %q:\n%s", tt.want, p.User)
			}
		})
	}
}

func TestRoadmapPromptOptionalParts(t *testing.T) {
	with := roadmapPrompt("Dev", "3 years", "Lead", "6 months", "job text")
	if !strings.Contains(with.User, "6 months") || !strings.Contains(with.User, "job text") {
		t.Error("optional timeline and job description missing from prompt")
	}

	without := roadmapPrompt("Dev", "3 years", "Lead", "", "")
	if strings.Contains(without.User, "timeline") || strings.Contains(without.User, "job description") {
		t.Errorf("empty optional fields should not appear in prompt:\n%s", without.User)
	}
}

func TestSkillExtractionPromptIsFreeText(t *testing.T) {
	p := skillExtractionPrompt("job")
	if strings.Contains(p.System, "JSON") {
		t.Error("extraction stage must ask for plain text, not JSON")
	}
	if !strings.Contains(p.System, "one skill per line") {
		t.Error("extraction stage should ask for line-separated skills")
	}
}
