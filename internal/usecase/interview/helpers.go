package interview

import (
	"strings"

	"github.com/careerforge/careerforge-api/internal/entity"
)

// flattenFeedback collapses generated feedback to a single line. Providers
// sometimes format feedback as paragraphs or lists even when asked not to.
func flattenFeedback(text string) string {
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}

// answerOrSentinel substitutes the no-answer sentinel for blank answers so
// the feedback prompt always has something to review.
func answerOrSentinel(answer string) string {
	if strings.TrimSpace(answer) == "" {
		return entity.NoAnswerSentinel
	}
	return answer
}
