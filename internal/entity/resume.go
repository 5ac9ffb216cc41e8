package entity

import "time"

// Resume section names that generation may target. Basics is deliberately
// absent: identity data always comes from the caller's profile and is never
// overwritten by generated content.
const (
	SectionWork         = "work"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionCertificates = "certificates"
)

// ResumeSections lists every section a plan may include, in canonical order.
var ResumeSections = []string{
	SectionWork,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertificates,
}

// Per-section generation caps.
const (
	MaxSectionEntries  = 4
	MaxEntryHighlights = 5
	MaxSkillKeywords   = 7
)

// ResumeBasics is the caller-authoritative identity block.
type ResumeBasics struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	URL      string `json:"url,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type WorkEntry struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Location   string   `json:"location,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type EducationEntry struct {
	Institution string   `json:"institution"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

type SkillGroup struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

type ProjectEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

type CertificateEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Resume is both the caller's raw profile and the assembled output shape.
type Resume struct {
	Basics       ResumeBasics       `json:"basics"`
	Work         []WorkEntry        `json:"work,omitempty"`
	Education    []EducationEntry   `json:"education,omitempty"`
	Skills       []SkillGroup       `json:"skills,omitempty"`
	Projects     []ProjectEntry     `json:"projects,omitempty"`
	Certificates []CertificateEntry `json:"certificates,omitempty"`
}

// GeneratedResume is the result of a tailoring run: the assembled document
// plus the sections that failed and were omitted.
type GeneratedResume struct {
	Resume         Resume   `json:"resume"`
	FailedSections []string `json:"failedSections,omitempty"`
}

// ResumeDocument is a resume the caller explicitly saved.
type ResumeDocument struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Resume    Resume    `json:"resume"`
	CreatedAt time.Time `json:"createdAt"`
}
