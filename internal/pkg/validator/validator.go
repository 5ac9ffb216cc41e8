// Package validator checks inbound request payloads before any usecase or
// generation call runs. A failed check produces field-level complaints and
// guarantees zero calls to the generation provider for that request.
package validator

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/careerforge/careerforge-api/internal/entity"
)

// Validator validates API request payloads.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// fieldErrors accumulates complaints and converts to the error returned to
// handlers.
type fieldErrors struct {
	errs entity.ValidationErrors
}

func (f *fieldErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.errs = append(f.errs, entity.FieldError{Field: field, Message: "must not be empty"})
	}
}

func (f *fieldErrors) add(field, message string) {
	f.errs = append(f.errs, entity.FieldError{Field: field, Message: message})
}

func (f *fieldErrors) result() error {
	if len(f.errs) > 0 {
		return f.errs
	}
	return nil
}

func (v *Validator) ValidateGenerateResume(req *entity.GenerateResumeRequest) error {
	var f fieldErrors
	f.require("jobDescription", req.JobDescription)
	f.require("profile.basics.name", req.Profile.Basics.Name)
	return f.result()
}

func (v *Validator) ValidateSaveResume(req *entity.SaveResumeRequest) error {
	var f fieldErrors
	f.require("title", req.Title)
	f.require("resume.basics.name", req.Resume.Basics.Name)
	return f.result()
}

func (v *Validator) ValidateRoleQuestions(req *entity.RoleQuestionsRequest) error {
	var f fieldErrors
	f.require("role", req.Role)
	return f.result()
}

func (v *Validator) ValidatePrepQuestions(req *entity.PrepQuestionsRequest) error {
	var f fieldErrors
	f.require("jobDescription", req.JobDescription)
	return f.result()
}

func (v *Validator) ValidateFeedback(req *entity.FeedbackRequest) error {
	var f fieldErrors
	if len(req.Questions) == 0 {
		f.add("questions", "must contain at least one question")
	}
	for i, q := range req.Questions {
		if strings.TrimSpace(q.Question) == "" {
			f.add("questions", "entry "+strconv.Itoa(i)+" has an empty question")
		}
	}
	return f.result()
}

func (v *Validator) ValidateStartSession(req *entity.StartSessionRequest) error {
	var f fieldErrors
	if strings.TrimSpace(req.Role) == "" && strings.TrimSpace(req.JobDescription) == "" {
		f.add("role", "either role or jobDescription must be set")
	}
	return f.result()
}

func (v *Validator) ValidateSubmitSessionAnswer(req *entity.SubmitSessionAnswerRequest) error {
	var f fieldErrors
	if req.QuestionIndex < 0 {
		f.add("questionIndex", "must not be negative")
	}
	f.require("answer", req.Answer)
	return f.result()
}

func (v *Validator) ValidateGenerateRoadmap(req *entity.GenerateRoadmapRequest) error {
	var f fieldErrors
	f.require("currentRole", req.CurrentRole)
	f.require("experience", req.Experience)
	f.require("careerGoal", req.CareerGoal)
	return f.result()
}

func (v *Validator) ValidateCreateApplication(req *entity.CreateApplicationRequest) error {
	var f fieldErrors
	f.require("company", req.Company)
	f.require("role", req.Role)
	if req.Status != "" && !req.Status.IsValid() {
		f.add("status", "unknown status value")
	}
	return f.result()
}

func (v *Validator) ValidateUpdateApplication(req *entity.UpdateApplicationRequest) error {
	var f fieldErrors
	if req.Status == nil && req.Notes == nil {
		f.add("status", "at least one of status or notes must be set")
	}
	if req.Status != nil && !req.Status.IsValid() {
		f.add("status", "unknown status value")
	}
	return f.result()
}

func (v *Validator) ValidateImportApplication(req *entity.ImportApplicationRequest) error {
	var f fieldErrors
	f.require("url", req.URL)
	if req.URL != "" {
		parsed, err := url.Parse(req.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			f.add("url", "must be an absolute http(s) URL")
		}
	}
	return f.result()
}
