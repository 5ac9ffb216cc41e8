package llm

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
)

// MockConnector returns canned generation output for local development
// without a provider key. Selected via ENABLE_MOCKS.
type MockConnector struct{}

func NewMockConnector() *MockConnector {
	return &MockConnector{}
}

func (m *MockConnector) PlanResumeSections(ctx context.Context, jobDescription string) generation.Result[[]generation.SectionTask] {
	ctxzap.Info(ctx, "[MOCK] planning resume sections")
	return generation.Ok([]generation.SectionTask{
		{Section: entity.SectionWork, Weight: 40},
		{Section: entity.SectionSkills, Weight: 25},
		{Section: entity.SectionEducation, Weight: 15},
	})
}

func (m *MockConnector) GenerateWorkSection(ctx context.Context, jobDescription string, current []entity.WorkEntry) generation.Result[[]entity.WorkEntry] {
	ctxzap.Info(ctx, "[MOCK] generating work section")
	if len(current) > 0 {
		return generation.Ok(current)
	}
	return generation.Ok([]entity.WorkEntry{
		{
			Company:   "Acme Corp",
			Position:  "Software Engineer",
			StartDate: "2022-01",
			Highlights: []string{
				"Built and operated backend services handling 10k requests per minute",
				"Cut deployment time from 40 minutes to 8 by reworking the CI pipeline",
			},
		},
	})
}

func (m *MockConnector) GenerateEducationSection(ctx context.Context, jobDescription string, current []entity.EducationEntry) generation.Result[[]entity.EducationEntry] {
	ctxzap.Info(ctx, "[MOCK] generating education section")
	if len(current) > 0 {
		return generation.Ok(current)
	}
	return generation.Ok([]entity.EducationEntry{
		{Institution: "State University", Area: "Computer Science", StudyType: "B.Sc.", StartDate: "2016-09", EndDate: "2020-06"},
	})
}

func (m *MockConnector) GenerateProjectsSection(ctx context.Context, jobDescription string, current []entity.ProjectEntry) generation.Result[[]entity.ProjectEntry] {
	ctxzap.Info(ctx, "[MOCK] generating projects section")
	if len(current) > 0 {
		return generation.Ok(current)
	}
	return generation.Ok([]entity.ProjectEntry{
		{Name: "Open Source CLI", Description: "Command-line tool for bulk data imports", Highlights: []string{"500+ GitHub stars"}},
	})
}

func (m *MockConnector) GenerateCertificatesSection(ctx context.Context, jobDescription string, current []entity.CertificateEntry) generation.Result[[]entity.CertificateEntry] {
	ctxzap.Info(ctx, "[MOCK] generating certificates section")
	if len(current) > 0 {
		return generation.Ok(current)
	}
	return generation.Ok([]entity.CertificateEntry{
		{Name: "AWS Certified Developer", Issuer: "Amazon Web Services", Date: "2023-05"},
	})
}

func (m *MockConnector) GenerateSkillsSection(ctx context.Context, jobDescription string, current []entity.SkillGroup) generation.Result[[]entity.SkillGroup] {
	ctxzap.Info(ctx, "[MOCK] generating skills section")
	return generation.Ok([]entity.SkillGroup{
		{Name: "Languages", Keywords: []string{"Go", "SQL", "Python"}},
		{Name: "Infrastructure", Keywords: []string{"Docker", "Kubernetes", "PostgreSQL"}},
	})
}

func (m *MockConnector) GenerateRoleQuestions(ctx context.Context, role, difficulty string) generation.Result[[]entity.InterviewQuestion] {
	ctxzap.Info(ctx, "[MOCK] generating role questions")
	questions := make([]entity.InterviewQuestion, 0, entity.RoleQuestionCount)
	seeds := []entity.InterviewQuestion{
		{
			Question:     "Tell me about a project you are most proud of and your role in it.",
			Type:         "Behavioral",
			Difficulty:   difficulty,
			Hint:         "Use the STAR structure: situation, task, action, result.",
			SampleAnswer: "On my last team I led the migration of our billing service, which cut incident volume by half.",
		},
		{
			Question:     "How do you approach debugging a production issue you cannot reproduce locally?",
			Type:         "Technical",
			Difficulty:   difficulty,
			Hint:         "Walk through observability tools and hypothesis narrowing.",
			SampleAnswer: "I start from logs and metrics around the incident window, form a hypothesis, and add targeted instrumentation.",
		},
		{
			Question:     "Describe a time you disagreed with a teammate on a technical decision.",
			Type:         "Behavioral",
			Difficulty:   difficulty,
			Hint:         "Show how you reached a decision, not who won.",
			SampleAnswer: "We prototyped both approaches against realistic load and let the numbers decide.",
		},
		{
			Question:     "How would you design a rate limiter for a public API?",
			Type:         "Technical",
			Difficulty:   difficulty,
			Hint:         "Mention algorithm choice and distributed state.",
			SampleAnswer: "A token bucket per API key, with counters in a shared store so limits hold across instances.",
		},
		{
			Question:     "What do you do in your first month in a new role?",
			Type:         "Behavioral",
			Difficulty:   difficulty,
			Hint:         "Balance learning the system with early contributions.",
			SampleAnswer: "I pair widely, ship a few small fixes to learn the release path, and map the ownership boundaries.",
		},
	}
	questions = append(questions, seeds...)
	return generation.Ok(questions)
}

func (m *MockConnector) GeneratePrepQuestions(ctx context.Context, jobDescription string) generation.Result[[]entity.PrepCategory] {
	ctxzap.Info(ctx, "[MOCK] generating prep questions")
	categories := make([]entity.PrepCategory, 0, len(entity.PrepCategories))
	for _, name := range entity.PrepCategories {
		categories = append(categories, entity.PrepCategory{
			Category: name,
			Questions: []entity.InterviewQuestion{
				{
					Question:     "Why are you interested in this position?",
					Type:         name,
					Difficulty:   entity.DifficultyEasy,
					Hint:         "Connect your experience to what the posting emphasizes.",
					SampleAnswer: "The role combines the backend work I do today with the scale problems I want to grow into.",
				},
				{
					Question:     "What would you want to accomplish in your first quarter?",
					Type:         name,
					Difficulty:   entity.DifficultyMedium,
					Hint:         "Be concrete and tie goals to the team's roadmap.",
					SampleAnswer: "Ship one meaningful improvement end to end while building context on the main systems.",
				},
				{
					Question:     "Describe the hardest problem you solved in the last year.",
					Type:         name,
					Difficulty:   entity.DifficultyHard,
					Hint:         "Pick a problem with real constraints and explain the trade-offs.",
					SampleAnswer: "I untangled a data race in our job scheduler that only appeared under production load.",
				},
			},
		})
	}
	return generation.Ok(categories)
}

func (m *MockConnector) GenerateFeedback(ctx context.Context, review entity.AnswerReview) generation.Result[string] {
	ctxzap.Info(ctx, "[MOCK] generating feedback")
	if review.Answer == "" || review.Answer == entity.NoAnswerSentinel {
		return generation.Ok("No answer was given. A strong answer would state the situation, your specific actions, and a measurable outcome.")
	}
	return generation.Ok("Good structure and a clear outcome. Strengthen it by quantifying the impact and naming the specific decision you made.")
}

func (m *MockConnector) ExtractJobInfo(ctx context.Context, jobDescription string) generation.Result[entity.JobInfo] {
	ctxzap.Info(ctx, "[MOCK] extracting job info")
	return generation.Ok(entity.JobInfo{Company: "Acme Corp", Role: "Senior Software Engineer"})
}

func (m *MockConnector) GenerateRoadmap(ctx context.Context, currentRole, experience, careerGoal, timeline, jobDescription string) generation.Result[entity.Roadmap] {
	ctxzap.Info(ctx, "[MOCK] generating roadmap")
	return generation.Ok(entity.Roadmap{
		Title:         "From " + currentRole + " to " + careerGoal,
		Start:         currentRole,
		Goal:          careerGoal,
		EstimatedTime: "12 months",
		Considerations: []string{
			"Progress depends on getting real project experience, not only coursework",
		},
		Steps: []entity.RoadmapStep{
			{
				Title:         "Close the core skill gaps",
				Summary:       "Identify the three skills the target role requires that you use least today and practice them on real tasks.",
				EstimatedTime: "3 months",
				Resources: []entity.RoadmapResource{
					{Name: "Designing Data-Intensive Applications", Purpose: "System design foundations", EstimatedTime: "6 weeks"},
				},
				Suggestions: []string{"Volunteer for work at the edge of your current comfort zone"},
			},
			{
				Title:         "Build visible proof",
				Summary:       "Lead one project end to end and document the outcome in terms the target role cares about.",
				EstimatedTime: "4 months",
			},
			{
				Title:         "Target the move",
				Summary:       "Update your resume around the new evidence and interview deliberately.",
				EstimatedTime: "2 months",
			},
		},
	})
}
