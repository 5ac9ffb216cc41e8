package generation

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Section is one successfully generated part of a multi-section document.
type Section[T any] struct {
	Name  string
	Value T
}

// SectionFailure records a section whose generation failed. The failure is
// absorbed here, never propagated: the assembled document simply omits the
// section.
type SectionFailure struct {
	Name string
	Err  *Error
}

// AssembleSections runs one generator call per planned section, in plan
// order, isolating failures per section. Successful sections come back in
// plan order regardless of anything the generator does internally; failed
// sections are recorded and skipped.
func AssembleSections[T any](
	ctx context.Context,
	plan []SectionTask,
	generate func(ctx context.Context, task SectionTask) Result[T],
) ([]Section[T], []SectionFailure) {
	sections := make([]Section[T], 0, len(plan))
	var failures []SectionFailure

	for _, task := range plan {
		result := generate(ctx, task)
		if result.Failed() {
			ctxzap.Warn(ctx, "section generation failed, continuing with remaining sections",
				zap.String("section", task.Section),
				zap.String("failure_kind", result.Err().Kind.String()),
				zap.Error(result.Err().Err),
			)
			failures = append(failures, SectionFailure{Name: task.Section, Err: result.Err()})
			continue
		}
		sections = append(sections, Section[T]{Name: task.Section, Value: result.Value()})
	}

	return sections, failures
}
