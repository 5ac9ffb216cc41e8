package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/config"
	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
	"github.com/careerforge/careerforge-api/internal/generation/schema"
)

// Connector is the generation-backed side of the application: every method
// is one logical task built from a prompt and an output schema. Methods
// return a tagged result instead of a bare error so callers can tell a
// transport failure from a malformed response.
type Connector struct {
	client generation.Client
	cfg    config.LLMConfig
}

func NewConnector(cfg config.LLMConfig) *Connector {
	return &Connector{
		client: newOpenAIClient(cfg),
		cfg:    cfg,
	}
}

// newConnectorWithClient substitutes the provider. Used by tests.
func newConnectorWithClient(cfg config.LLMConfig, client generation.Client) *Connector {
	return &Connector{client: client, cfg: cfg}
}

func (c *Connector) request(prompt generation.Prompt, d *schema.Descriptor) generation.Request {
	return generation.Request{
		Prompt:      prompt,
		Schema:      d,
		MaxTokens:   c.cfg.MaxOutputTokens,
		Temperature: c.cfg.Temperature,
	}
}

// PlanResumeSections asks for an ordered section plan for the job
// description. The plan is validated here so an invalid plan never reaches
// the per-section stage.
func (c *Connector) PlanResumeSections(ctx context.Context, jobDescription string) generation.Result[[]generation.SectionTask] {
	ctxzap.Debug(ctx, "planning resume sections")

	result := generation.Generate[[]generation.SectionTask](ctx, c.client,
		c.request(sectionPlanPrompt(jobDescription, entity.ResumeSections), sectionPlanSchema()))
	if result.Failed() {
		return result
	}

	plan := result.Value()
	if err := generation.ValidatePlan(plan, entity.ResumeSections); err != nil {
		return generation.Fail[[]generation.SectionTask](generation.FailureSchema, err)
	}

	ctxzap.Debug(ctx, "section plan ready", zap.Int("sections", len(plan)))
	return generation.Ok(plan)
}

func (c *Connector) GenerateWorkSection(ctx context.Context, jobDescription string, current []entity.WorkEntry) generation.Result[[]entity.WorkEntry] {
	return generation.Generate[[]entity.WorkEntry](ctx, c.client,
		c.request(resumeSectionPrompt(entity.SectionWork, jobDescription, current), workSectionSchema()))
}

func (c *Connector) GenerateEducationSection(ctx context.Context, jobDescription string, current []entity.EducationEntry) generation.Result[[]entity.EducationEntry] {
	return generation.Generate[[]entity.EducationEntry](ctx, c.client,
		c.request(resumeSectionPrompt(entity.SectionEducation, jobDescription, current), educationSectionSchema()))
}

func (c *Connector) GenerateProjectsSection(ctx context.Context, jobDescription string, current []entity.ProjectEntry) generation.Result[[]entity.ProjectEntry] {
	return generation.Generate[[]entity.ProjectEntry](ctx, c.client,
		c.request(resumeSectionPrompt(entity.SectionProjects, jobDescription, current), projectsSectionSchema()))
}

func (c *Connector) GenerateCertificatesSection(ctx context.Context, jobDescription string, current []entity.CertificateEntry) generation.Result[[]entity.CertificateEntry] {
	return generation.Generate[[]entity.CertificateEntry](ctx, c.client,
		c.request(resumeSectionPrompt(entity.SectionCertificates, jobDescription, current), certificatesSectionSchema()))
}

// GenerateSkillsSection runs the two-stage skills pipeline: a free-text
// extraction pass over the job description builds a closed vocabulary, then
// a schema-bound formatting pass groups the matching skills. Keywords
// outside the vocabulary are dropped after validation, never kept.
func (c *Connector) GenerateSkillsSection(ctx context.Context, jobDescription string, current []entity.SkillGroup) generation.Result[[]entity.SkillGroup] {
	extracted := generation.GenerateText(ctx, c.client,
		c.request(skillExtractionPrompt(jobDescription), nil))
	if extracted.Failed() {
		return generation.FailFrom[[]entity.SkillGroup](extracted.Err())
	}

	keywords := generation.ParseKeywords(extracted.Value())
	if len(keywords) == 0 {
		return generation.Fail[[]entity.SkillGroup](generation.FailureSchema,
			fmt.Errorf("skill extraction produced no keywords"))
	}
	vocabulary := generation.NewVocabulary(keywords)

	formatted := generation.Generate[[]entity.SkillGroup](ctx, c.client,
		c.request(skillFormattingPrompt(keywords, current), skillGroupsSchema()))
	if formatted.Failed() {
		return formatted
	}

	groups := make([]entity.SkillGroup, 0, len(formatted.Value()))
	dropped := 0
	for _, group := range formatted.Value() {
		kept, droppedHere := vocabulary.Filter(group.Keywords)
		dropped += len(droppedHere)
		if len(kept) == 0 {
			continue
		}
		groups = append(groups, entity.SkillGroup{Name: group.Name, Keywords: kept})
	}
	if dropped > 0 {
		ctxzap.Debug(ctx, "dropped out-of-vocabulary skills", zap.Int("count", dropped))
	}
	if len(groups) == 0 {
		return generation.Fail[[]entity.SkillGroup](generation.FailureSchema,
			fmt.Errorf("no skill groups survived vocabulary filtering"))
	}

	return generation.Ok(groups)
}

func (c *Connector) GenerateRoleQuestions(ctx context.Context, role, difficulty string) generation.Result[[]entity.InterviewQuestion] {
	ctxzap.Debug(ctx, "generating role questions", zap.String("difficulty", difficulty))
	return generation.Generate[[]entity.InterviewQuestion](ctx, c.client,
		c.request(roleQuestionsPrompt(role, difficulty), roleQuestionsSchema()))
}

func (c *Connector) GeneratePrepQuestions(ctx context.Context, jobDescription string) generation.Result[[]entity.PrepCategory] {
	ctxzap.Debug(ctx, "generating prep questions")
	return generation.Generate[[]entity.PrepCategory](ctx, c.client,
		c.request(prepQuestionsPrompt(jobDescription), prepCategoriesSchema()))
}

type feedbackPayload struct {
	Feedback string `json:"feedback"`
}

// GenerateFeedback returns feedback text for one answered question.
func (c *Connector) GenerateFeedback(ctx context.Context, review entity.AnswerReview) generation.Result[string] {
	result := generation.Generate[feedbackPayload](ctx, c.client,
		c.request(feedbackPrompt(review), feedbackSchema()))
	if result.Failed() {
		return generation.FailFrom[string](result.Err())
	}
	return generation.Ok(result.Value().Feedback)
}

func (c *Connector) ExtractJobInfo(ctx context.Context, jobDescription string) generation.Result[entity.JobInfo] {
	ctxzap.Debug(ctx, "extracting job info")
	return generation.Generate[entity.JobInfo](ctx, c.client,
		c.request(jobInfoPrompt(jobDescription), jobInfoSchema()))
}

// GenerateRoadmap produces a career roadmap. Besides the per-string schema
// limits, the marshalled document must fit the global character budget; an
// oversized document is a schema failure, not a truncation.
func (c *Connector) GenerateRoadmap(ctx context.Context, currentRole, experience, careerGoal, timeline, jobDescription string) generation.Result[entity.Roadmap] {
	result := generation.Generate[entity.Roadmap](ctx, c.client,
		c.request(roadmapPrompt(currentRole, experience, careerGoal, timeline, jobDescription), roadmapSchema()))
	if result.Failed() {
		return result
	}

	marshalled, err := json.Marshal(result.Value())
	if err != nil {
		return generation.Fail[entity.Roadmap](generation.FailureSchema,
			fmt.Errorf("marshal roadmap: %w", err))
	}
	if len(marshalled) > entity.RoadmapMaxChars {
		return generation.Fail[entity.Roadmap](generation.FailureSchema,
			fmt.Errorf("roadmap document is %d characters, limit is %d", len(marshalled), entity.RoadmapMaxChars))
	}

	return result
}
