// Package selection implements the two ranking algorithms behind Calm Mode
// and Focus Mode. Everything here is a pure function of the candidate set,
// an explicit now, and the caller's parameters; results are recomputed from
// scratch on every call.
package selection

import (
	"sort"
	"time"

	"github.com/sandeepkv93/focald/internal/classify"
	"github.com/sandeepkv93/focald/internal/model"
)

// UserEnergy is how much the user has to give right now, coarser than a
// task's 0-4 energy cost.
type UserEnergy string

const (
	UserEnergyLow    UserEnergy = "low"
	UserEnergyMedium UserEnergy = "medium"
	UserEnergyHigh   UserEnergy = "high"
)

func (e UserEnergy) IsValid() bool {
	switch e {
	case UserEnergyLow, UserEnergyMedium, UserEnergyHigh:
		return true
	default:
		return false
	}
}

// allows reports whether a todo of the given tier is reasonable at this
// energy: low energy admits only low-tier work, medium admits low and
// medium, high admits everything.
func (e UserEnergy) allows(tier classify.Tier) bool {
	switch e {
	case UserEnergyLow:
		return tier == classify.TierLow
	case UserEnergyMedium:
		return tier != classify.TierHigh
	default:
		return true
	}
}

const DefaultUpNextLimit = 3

type CalmParams struct {
	Energy  UserEnergy
	Skipped map[string]bool
	Limit   int
	ShowAll bool
}

// CalmResult carries the hero task plus the capped "up next" slice. Total
// counts every eligible todo; Remaining is what the cap hid.
type CalmResult struct {
	Hero      model.Todo
	HasHero   bool
	UpNext    []model.Todo
	Remaining int
	Total     int
}

// EnergyMatched filters candidates to those compatible with the requested
// energy, drops skipped ids, and orders the rest by priority rank, overdue,
// due today, due date (nulls last), then creation time as the stable
// tiebreak. The input slice is never mutated.
func EnergyMatched(candidates []model.Todo, now time.Time, p CalmParams) CalmResult {
	if p.Limit <= 0 {
		p.Limit = DefaultUpNextLimit
	}

	eligible := make([]model.Todo, 0, len(candidates))
	for _, todo := range candidates {
		if todo.IsCompleted || todo.Archived {
			continue
		}
		if p.Skipped[todo.ID] {
			continue
		}
		if !p.Energy.allows(classify.EffortTier(todo)) {
			continue
		}
		eligible = append(eligible, todo)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return lessCalm(eligible[i], eligible[j], now)
	})

	result := CalmResult{Total: len(eligible)}
	if len(eligible) == 0 {
		return result
	}
	result.Hero = eligible[0]
	result.HasHero = true

	rest := eligible[1:]
	if p.ShowAll || len(rest) <= p.Limit {
		result.UpNext = rest
		return result
	}
	result.UpNext = rest[:p.Limit]
	result.Remaining = len(rest) - p.Limit
	return result
}

func lessCalm(a, b model.Todo, now time.Time) bool {
	if ra, rb := classify.PriorityRank(a.Priority), classify.PriorityRank(b.Priority); ra != rb {
		return ra < rb
	}
	if ao, bo := a.IsOverdue(now), b.IsOverdue(now); ao != bo {
		return ao
	}
	if at, bt := a.IsDueToday(now), b.IsDueToday(now); at != bt {
		return at
	}
	switch {
	case a.DueDate != nil && b.DueDate != nil:
		if !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}
	case a.DueDate != nil:
		return true
	case b.DueDate != nil:
		return false
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
