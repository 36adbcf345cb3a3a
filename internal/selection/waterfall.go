package selection

import "github.com/sandeepkv93/focald/internal/model"

// SessionOutcome distinguishes an empty working set from one the user
// finished during this session.
type SessionOutcome string

const (
	SessionWorking SessionOutcome = "working"
	SessionAllDone SessionOutcome = "all_done"
	SessionEmpty   SessionOutcome = "empty"
)

// NextByPriority returns the first incomplete todo from the highest
// non-empty priority tier, in stable input order. This is the Focus Mode
// waterfall: no due-date or energy tiebreaks, just tiers.
func NextByPriority(candidates []model.Todo) (model.Todo, bool) {
	tiers := [4][]model.Todo{}
	for _, todo := range candidates {
		if todo.IsCompleted || todo.Archived {
			continue
		}
		rank := todo.Priority.Rank()
		tiers[rank] = append(tiers[rank], todo)
	}
	for _, tier := range tiers {
		if len(tier) > 0 {
			return tier[0], true
		}
	}
	return model.Todo{}, false
}

// Outcome reports where a focus session stands given what is left and what
// was completed since it started.
func Outcome(candidates []model.Todo, completedThisSession int) SessionOutcome {
	if _, ok := NextByPriority(candidates); ok {
		return SessionWorking
	}
	if completedThisSession > 0 {
		return SessionAllDone
	}
	return SessionEmpty
}
