package generation

import (
	"fmt"
)

// Weight limits for a section plan. The per-section weight is a relative
// size hint for a future rendering stage; the budget keeps headroom for a
// fixed preamble section.
const (
	WeightMin    = 10
	WeightMax    = 50
	WeightBudget = 85
)

// SectionTask is one unit of work in a multi-section generation, produced by
// a preliminary planning call.
type SectionTask struct {
	Section string `json:"section"`
	Weight  int    `json:"weight"`
}

// ValidatePlan rejects a section plan before it drives any generation:
// every section must be in the allowed set, appear at most once, carry a
// weight in [WeightMin, WeightMax], and the weights must sum to at most
// WeightBudget.
func ValidatePlan(plan []SectionTask, allowed []string) error {
	if len(plan) == 0 {
		return fmt.Errorf("plan contains no sections")
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(plan))
	total := 0
	for _, task := range plan {
		if _, ok := allowedSet[task.Section]; !ok {
			return fmt.Errorf("unknown section %q in plan", task.Section)
		}
		if _, dup := seen[task.Section]; dup {
			return fmt.Errorf("section %q appears twice in plan", task.Section)
		}
		seen[task.Section] = struct{}{}

		if task.Weight < WeightMin || task.Weight > WeightMax {
			return fmt.Errorf("section %q weight %d outside range [%d, %d]",
				task.Section, task.Weight, WeightMin, WeightMax)
		}
		total += task.Weight
	}

	if total > WeightBudget {
		return fmt.Errorf("plan weights sum to %d, budget is %d", total, WeightBudget)
	}

	return nil
}
