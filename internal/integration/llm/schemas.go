package llm

import (
	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
	"github.com/careerforge/careerforge-api/internal/generation/schema"
)

// Output shapes for every schema-bound call. Descriptors serve double duty:
// they render the format block of the system instruction and they validate
// the provider response before a value escapes the connector.

func sectionPlanSchema() *schema.Descriptor {
	return schema.Array("ordered section plan",
		schema.Object("",
			schema.Req("section", schema.Enum("resume section to generate", entity.ResumeSections...)),
			schema.Req("weight", schema.IntRange("relative size of the section", generation.WeightMin, generation.WeightMax)),
		),
	)
}

func highlightsSchema() *schema.Descriptor {
	return schema.ArrayRange("achievement bullet points",
		schema.String("one concrete, quantified achievement"),
		0, entity.MaxEntryHighlights,
	)
}

func workSectionSchema() *schema.Descriptor {
	return schema.ArrayRange("work experience entries, most recent first",
		schema.Object("",
			schema.Req("company", schema.String("employer name")),
			schema.Req("position", schema.String("job title")),
			schema.Opt("startDate", schema.String("YYYY-MM")),
			schema.Opt("endDate", schema.String("YYYY-MM, empty if current")),
			schema.Opt("location", schema.String("")),
			schema.Opt("highlights", highlightsSchema()),
		),
		1, entity.MaxSectionEntries,
	)
}

func educationSectionSchema() *schema.Descriptor {
	return schema.ArrayRange("education entries, most recent first",
		schema.Object("",
			schema.Req("institution", schema.String("school or university name")),
			schema.Opt("area", schema.String("field of study")),
			schema.Opt("studyType", schema.String("degree type")),
			schema.Opt("startDate", schema.String("YYYY-MM")),
			schema.Opt("endDate", schema.String("YYYY-MM")),
			schema.Opt("highlights", highlightsSchema()),
		),
		1, entity.MaxSectionEntries,
	)
}

func skillGroupsSchema() *schema.Descriptor {
	return schema.ArrayRange("skill groups",
		schema.Object("",
			schema.Req("name", schema.String("group name, e.g. Languages")),
			schema.Req("keywords", schema.ArrayRange("skills in this group",
				schema.String("one skill"), 1, entity.MaxSkillKeywords)),
		),
		1, entity.MaxSectionEntries,
	)
}

func projectsSectionSchema() *schema.Descriptor {
	return schema.ArrayRange("project entries",
		schema.Object("",
			schema.Req("name", schema.String("project name")),
			schema.Opt("description", schema.String("one-sentence description")),
			schema.Opt("url", schema.String("")),
			schema.Opt("highlights", highlightsSchema()),
		),
		1, entity.MaxSectionEntries,
	)
}

func certificatesSectionSchema() *schema.Descriptor {
	return schema.ArrayRange("certificate entries",
		schema.Object("",
			schema.Req("name", schema.String("certificate name")),
			schema.Opt("issuer", schema.String("issuing organization")),
			schema.Opt("date", schema.String("YYYY-MM")),
		),
		1, entity.MaxSectionEntries,
	)
}

func interviewQuestionSchema() *schema.Descriptor {
	return schema.Object("",
		schema.Req("question", schema.NonEmptyString("the interview question")),
		schema.Req("type", schema.NonEmptyString("question category, e.g. Behavioral")),
		schema.Req("difficulty", schema.Enum("", entity.Difficulties...)),
		schema.Req("hint", schema.NonEmptyString("short hint on how to approach the answer")),
		schema.Req("sampleAnswer", schema.NonEmptyString("a strong example answer")),
	)
}

func roleQuestionsSchema() *schema.Descriptor {
	return schema.ArrayRange("interview questions for the role",
		interviewQuestionSchema(),
		entity.RoleQuestionCount, entity.RoleQuestionCount,
	)
}

func prepCategoriesSchema() *schema.Descriptor {
	return schema.ArrayRange("question categories",
		schema.Object("",
			schema.Req("category", schema.Enum("", entity.PrepCategories...)),
			schema.Req("questions", schema.ArrayRange("questions in this category",
				interviewQuestionSchema(), 3, 5)),
		),
		len(entity.PrepCategories), len(entity.PrepCategories),
	)
}

func feedbackSchema() *schema.Descriptor {
	return schema.Object("",
		schema.Req("feedback", schema.String("one paragraph of feedback on the answer")),
	)
}

func jobInfoSchema() *schema.Descriptor {
	return schema.Object("",
		schema.Req("company", schema.String("company name, empty string if not stated")),
		schema.Req("role", schema.String("job title, empty string if not stated")),
	)
}

func roadmapSchema() *schema.Descriptor {
	capped := func(hint string) *schema.Descriptor {
		return schema.StringMax(hint, entity.RoadmapMaxStringChars)
	}
	resource := schema.Object("",
		schema.Req("name", capped("resource name")),
		schema.Req("purpose", capped("what this resource is for")),
		schema.Opt("details", capped("")),
		schema.Opt("links", schema.ArrayRange("", capped("URL"), 0, 3)),
		schema.Opt("estimatedTime", capped("e.g. 2 weeks")),
	)
	step := schema.Object("",
		schema.Req("title", capped("step title")),
		schema.Req("summary", capped("what to do in this step")),
		schema.Req("estimatedTime", capped("e.g. 1 month")),
		schema.Opt("resources", schema.ArrayRange("", resource, 0, 4)),
		schema.Opt("suggestions", schema.ArrayRange("", capped("practical tip"), 0, 4)),
	)
	return schema.Object("",
		schema.Req("title", capped("roadmap title")),
		schema.Req("start", capped("starting point")),
		schema.Req("goal", capped("target position")),
		schema.Req("estimatedTime", capped("overall time estimate")),
		schema.Opt("considerations", schema.ArrayRange("", capped("thing to keep in mind"), 0, 5)),
		schema.Req("steps", schema.ArrayRange("ordered roadmap steps", step, 3, 8)),
		schema.Opt("alternativePathway", capped("alternative route to the goal")),
	)
}
