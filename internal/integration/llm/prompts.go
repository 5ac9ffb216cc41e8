package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
	"github.com/careerforge/careerforge-api/internal/generation/schema"
)

// Prompt builders are pure functions of their inputs: same arguments, same
// prompt, byte for byte. Variability in output comes from the provider only.

const jsonOnlyRule = "Respond with a single JSON value and nothing else. " +
	"No markdown fences, no commentary before or after the JSON."

func jsonSystem(role string, d *schema.Descriptor) string {
	var sb strings.Builder
	sb.WriteString(role)
	sb.WriteString("\n\n")
	sb.WriteString(jsonOnlyRule)
	sb.WriteString("\n\nThe JSON must have exactly this shape:\n")
	sb.WriteString(d.Instruction())
	return sb.String()
}

func sectionPlanPrompt(jobDescription string, sections []string) generation.Prompt {
	return generation.Prompt{
		System: jsonSystem(
			"You are a resume strategist. Given a job description, decide which "+
				"resume sections matter most for this role and how much space each "+
				"deserves. List sections in the order they should appear. Choose only "+
				"from: "+strings.Join(sections, ", ")+". Each section at most once.",
			sectionPlanSchema(),
		),
		User: "Job description:\n\n" + jobDescription,
	}
}

func resumeSectionPrompt(section, jobDescription string, profile any) generation.Prompt {
	var role string
	var descriptor *schema.Descriptor
	switch section {
	case entity.SectionWork:
		role = "You are a resume writer. Rewrite the candidate's work experience to " +
			"emphasize what the job description asks for. Keep every employer, title " +
			"and date factual; only rephrase and reorder highlights."
		descriptor = workSectionSchema()
	case entity.SectionEducation:
		role = "You are a resume writer. Present the candidate's education, keeping " +
			"every institution, degree and date factual."
		descriptor = educationSectionSchema()
	case entity.SectionProjects:
		role = "You are a resume writer. Present the candidate's projects, leading " +
			"with the ones most relevant to the job description. Keep project names " +
			"and facts accurate."
		descriptor = projectsSectionSchema()
	case entity.SectionCertificates:
		role = "You are a resume writer. List the candidate's certificates, most " +
			"relevant to the job description first. Do not invent certificates."
		descriptor = certificatesSectionSchema()
	default:
		role = "You are a resume writer."
		descriptor = workSectionSchema()
	}

	profileJSON, _ := json.MarshalIndent(profile, "", "  ")

	return generation.Prompt{
		System: jsonSystem(role, descriptor),
		User: fmt.Sprintf("Job description:\n\n%s\n\nCandidate's current %s section:\n\n%s",
			jobDescription, section, profileJSON),
	}
}

func skillExtractionPrompt(jobDescription string) generation.Prompt {
	return generation.Prompt{
		System: "You are a technical recruiter. Extract the concrete skills, " +
			"technologies and competencies this job description asks for. " +
			"Respond with one skill per line, nothing else. No headers, no numbering.",
		User: "Job description:\n\n" + jobDescription,
	}
}

func skillFormattingPrompt(keywords []string, profile any) generation.Prompt {
	profileJSON, _ := json.MarshalIndent(profile, "", "  ")
	return generation.Prompt{
		System: jsonSystem(
			"You are a resume writer. Group the candidate's skills that match the "+
				"required skill list below. Use only skills from the required list; "+
				"do not add skills of your own.",
			skillGroupsSchema(),
		),
		User: fmt.Sprintf("Required skills:\n%s\n\nCandidate's current skills section:\n\n%s",
			strings.Join(keywords, "\n"), profileJSON),
	}
}

func roleQuestionsPrompt(role, difficulty string) generation.Prompt {
	return generation.Prompt{
		System: jsonSystem(
			fmt.Sprintf("You are an experienced interviewer. Produce exactly %d "+
				"interview questions for the given role at %s difficulty, mixing "+
				"behavioral and technical questions.", entity.RoleQuestionCount, difficulty),
			roleQuestionsSchema(),
		),
		User: "Role: " + role,
	}
}

func prepQuestionsPrompt(jobDescription string) generation.Prompt {
	return generation.Prompt{
		System: jsonSystem(
			"You are an experienced interviewer. From the job description, produce "+
				"likely interview questions grouped into these categories, in this "+
				"order: "+strings.Join(entity.PrepCategories, ", ")+". "+
				"Each category gets 3 to 5 questions.",
			prepCategoriesSchema(),
		),
		User: "Job description:\n\n" + jobDescription,
	}
}

func feedbackPrompt(review entity.AnswerReview) generation.Prompt {
	answer := review.Answer
	if strings.TrimSpace(answer) == "" {
		answer = entity.NoAnswerSentinel
	}
	return generation.Prompt{
		System: jsonSystem(
			"You are an interview coach. Give direct, specific feedback on the "+
				"candidate's answer: what worked, what was missing, and one concrete "+
				"way to improve it. If no answer was provided, say what a strong "+
				"answer would cover.",
			feedbackSchema(),
		),
		User: fmt.Sprintf("Question: %s\n\nCandidate's answer: %s", review.Question, answer),
	}
}

func jobInfoPrompt(jobDescription string) generation.Prompt {
	return generation.Prompt{
		System: jsonSystem(
			"Extract the company name and the job title from the job description. "+
				"Use an empty string for anything the text does not state.",
			jobInfoSchema(),
		),
		User: "Job description:\n\n" + jobDescription,
	}
}

func roadmapPrompt(currentRole, experience, careerGoal, timeline, jobDescription string) generation.Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current role: %s\n", currentRole)
	fmt.Fprintf(&sb, "Experience: %s\n", experience)
	fmt.Fprintf(&sb, "Career goal: %s\n", careerGoal)
	if timeline != "" {
		fmt.Fprintf(&sb, "Desired timeline: %s\n", timeline)
	}
	if jobDescription != "" {
		fmt.Fprintf(&sb, "\nTarget job description:\n\n%s\n", jobDescription)
	}

	return generation.Prompt{
		System: jsonSystem(
			fmt.Sprintf("You are a career mentor. Build a step-by-step roadmap from "+
				"the candidate's current position to their goal, with realistic time "+
				"estimates and concrete learning resources. Be concise: keep every "+
				"string under %d characters and the whole document compact.",
				entity.RoadmapMaxStringChars),
			roadmapSchema(),
		),
		User: sb.String(),
	}
}
