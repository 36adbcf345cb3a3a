// Package classify derives the coarse cost signals the selection engine
// and the day gauge run on: priority rank, effort tier, and the aggregate
// energy load of a day's schedule.
package classify

import (
	"time"

	"github.com/sandeepkv93/focald/internal/model"
)

// Tier is a low/medium/high classification of a todo's cost. Tiers are
// computed on demand, never stored.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	default:
		return "high"
	}
}

// shortEstimate is the cut-off under which a todo counts as low effort
// regardless of its energy or priority.
const shortEstimate = 15 * time.Minute

// PriorityRank orders priorities for selection: high=0, medium=1, low=2,
// none=3. Lower sorts first.
func PriorityRank(p model.Priority) int { return p.Rank() }

// EffortTier classifies a todo. Low wins on any of a short estimate, a
// restful/light energy level, or a low/none priority; high is reserved for
// high-priority items that also demand real energy.
func EffortTier(todo model.Todo) Tier {
	short := todo.EstimatedDuration > 0 && todo.EstimatedDuration <= shortEstimate
	lowPriority := todo.Priority == model.PriorityLow || todo.Priority == model.PriorityNone
	if short || todo.Energy <= model.EnergyLight || lowPriority {
		return TierLow
	}
	if todo.Energy <= model.EnergyModerate || todo.Priority != model.PriorityHigh {
		return TierMedium
	}
	return TierHigh
}

// DefaultDayCapacity is the load treated as a full day: eight hours of
// moderate-energy work (8h x energy 2 = 16 points).
const DefaultDayCapacity = 16.0

// DayLoad sums energy x duration-hours over every task occurring on date.
// Completed tasks still count; the gauge answers "how much does this
// schedule ask of you", not "how much is left".
func DayLoad(tasks []model.Task, date time.Time) float64 {
	var points float64
	for _, task := range tasks {
		if !task.OccursOn(date) {
			continue
		}
		points += float64(task.Energy) * task.Duration.Hours()
	}
	return points
}

// LoadPercent scales load points against a capacity to the 0-100 gauge.
func LoadPercent(points, capacity float64) int {
	if capacity <= 0 || points <= 0 {
		return 0
	}
	pct := int(points / capacity * 100)
	if pct > 100 {
		return 100
	}
	return pct
}
