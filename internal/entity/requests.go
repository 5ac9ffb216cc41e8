package entity

// Request and response bodies for the HTTP API. Responses carry an explicit
// success flag so callers can branch without inspecting the status code.

type GenerateResumeRequest struct {
	JobDescription string `json:"jobDescription"`
	Profile        Resume `json:"profile"`
}

type GenerateResumeResponse struct {
	Success        bool     `json:"success"`
	Resume         Resume   `json:"resume"`
	FailedSections []string `json:"failedSections,omitempty"`
}

type SaveResumeRequest struct {
	Title  string `json:"title"`
	Resume Resume `json:"resume"`
}

type RoleQuestionsRequest struct {
	Role string `json:"role"`
}

type RoleQuestionsResponse struct {
	Success   bool                `json:"success"`
	Questions []InterviewQuestion `json:"questions"`
}

type PrepQuestionsRequest struct {
	JobDescription string `json:"jobDescription"`
}

type PrepQuestionsResponse struct {
	Success    bool                    `json:"success"`
	Categories []AssembledPrepCategory `json:"categories"`
}

type FeedbackRequest struct {
	Questions []AnswerReview `json:"questions"`
}

type FeedbackResponse struct {
	Success  bool             `json:"success"`
	Feedback []AnswerFeedback `json:"feedback"`
}

type StartSessionRequest struct {
	Role           string `json:"role,omitempty"`
	JobDescription string `json:"jobDescription,omitempty"`
}

type SubmitSessionAnswerRequest struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

type SessionResponse struct {
	Success bool              `json:"success"`
	Session *InterviewSession `json:"session"`
}

type GenerateRoadmapRequest struct {
	CurrentRole    string `json:"currentRole"`
	Experience     string `json:"experience"`
	CareerGoal     string `json:"careerGoal"`
	Timeline       string `json:"timeline,omitempty"`
	JobDescription string `json:"jobDescription,omitempty"`
}

type RoadmapResponse struct {
	Success bool          `json:"success"`
	Roadmap CareerRoadmap `json:"roadmap"`
}

type CreateApplicationRequest struct {
	Company        string            `json:"company"`
	Role           string            `json:"role"`
	URL            string            `json:"url,omitempty"`
	JobDescription string            `json:"jobDescription,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	Status         ApplicationStatus `json:"status,omitempty"`
}

type UpdateApplicationRequest struct {
	Status *ApplicationStatus `json:"status,omitempty"`
	Notes  *string            `json:"notes,omitempty"`
}

type ImportApplicationRequest struct {
	URL string `json:"url"`
}

// ErrorResponse is the uniform failure shape. Details is only populated for
// input-validation failures; generation and provider failures stay generic.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}
