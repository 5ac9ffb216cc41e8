package entity

// Size budgets for roadmap generation. The global budget is checked against
// the marshalled document; the per-string budget is enforced by the output
// schema.
const (
	RoadmapMaxChars       = 9000
	RoadmapMaxStringChars = 200
)

type RoadmapResource struct {
	Name          string   `json:"name"`
	Purpose       string   `json:"purpose"`
	Details       string   `json:"details,omitempty"`
	Links         []string `json:"links,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
}

type RoadmapStep struct {
	Title         string            `json:"title"`
	Summary       string            `json:"summary"`
	EstimatedTime string            `json:"estimatedTime"`
	Resources     []RoadmapResource `json:"resources,omitempty"`
	Suggestions   []string          `json:"suggestions,omitempty"`
}

type Roadmap struct {
	Title              string        `json:"title"`
	Start              string        `json:"start"`
	Goal               string        `json:"goal"`
	EstimatedTime      string        `json:"estimatedTime"`
	Considerations     []string      `json:"considerations,omitempty"`
	Steps              []RoadmapStep `json:"steps"`
	AlternativePathway string        `json:"alternativePathway,omitempty"`
}

// JobInfo is extracted from a job description by a preliminary call when
// one is supplied with a roadmap request.
type JobInfo struct {
	Company string `json:"company"`
	Role    string `json:"role"`
}

// CareerRoadmap is the assembled response: caller-derived job info alongside
// the generated roadmap. Company and role come from extraction, never from
// the roadmap call itself.
type CareerRoadmap struct {
	Company string  `json:"company,omitempty"`
	Role    string  `json:"role,omitempty"`
	Roadmap Roadmap `json:"roadmap"`
}
