package entity

import "time"

// Question difficulty values. Anything else from the provider is a schema
// violation.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Prep question categories for job-description-based generation.
var PrepCategories = []string{"Behavioral", "Technical", "Problem Solving", "Culture Fit"}

// RoleQuestionCount is the fixed size of a role-based question set.
const RoleQuestionCount = 5

// NoAnswerSentinel replaces a missing answer before feedback generation.
const NoAnswerSentinel = "No answer provided."

// InterviewQuestion is a generated question. It deliberately has no
// userAnswer field; the assembler attaches one where the flow calls for it.
type InterviewQuestion struct {
	Question     string `json:"question"`
	Type         string `json:"type"`
	Difficulty   string `json:"difficulty"`
	Hint         string `json:"hint"`
	SampleAnswer string `json:"sampleAnswer"`
}

// PrepQuestion is an InterviewQuestion with the caller-facing answer slot
// attached by the response assembler.
type PrepQuestion struct {
	InterviewQuestion
	UserAnswer string `json:"userAnswer"`
}

// PrepCategory groups generated prep questions by category.
type PrepCategory struct {
	Category  string              `json:"category"`
	Questions []InterviewQuestion `json:"questions"`
}

// AssembledPrepCategory is a prep category after assembly.
type AssembledPrepCategory struct {
	Category  string         `json:"category"`
	Questions []PrepQuestion `json:"questions"`
}

// AssemblePrepCategories converts generated categories to the caller-facing
// shape, attaching an empty userAnswer slot to every question.
func AssemblePrepCategories(categories []PrepCategory) []AssembledPrepCategory {
	assembled := make([]AssembledPrepCategory, 0, len(categories))
	for _, category := range categories {
		questions := make([]PrepQuestion, 0, len(category.Questions))
		for _, q := range category.Questions {
			questions = append(questions, PrepQuestion{InterviewQuestion: q, UserAnswer: ""})
		}
		assembled = append(assembled, AssembledPrepCategory{
			Category:  category.Category,
			Questions: questions,
		})
	}
	return assembled
}

// AnswerReview is one question/answer pair submitted for feedback.
type AnswerReview struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// AnswerFeedback is the generated feedback for one answer. Feedback is a
// single line; embedded newlines are stripped during assembly.
type AnswerFeedback struct {
	Question string `json:"question"`
	Feedback string `json:"feedback"`
}

// Interview session status values.
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// SessionQuestion is one question inside a mock-interview session, with the
// user's answer and, after completion, generated feedback.
type SessionQuestion struct {
	InterviewQuestion
	UserAnswer string `json:"userAnswer"`
	Feedback   string `json:"feedback,omitempty"`
}

// InterviewSession is a persisted mock-interview run.
type InterviewSession struct {
	ID             string            `json:"id"`
	Role           string            `json:"role,omitempty"`
	JobDescription string            `json:"jobDescription,omitempty"`
	Status         string            `json:"status"`
	Questions      []SessionQuestion `json:"questions"`
	CreatedAt      time.Time         `json:"createdAt"`
	CompletedAt    *time.Time        `json:"completedAt,omitempty"`
}
