package selection

import (
	"testing"
	"time"

	"github.com/sandeepkv93/focald/internal/model"
)

func wfTodo(id string, p model.Priority) model.Todo {
	return model.Todo{ID: id, Title: id, Priority: p, CreatedAt: time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)}
}

func TestWaterfallPicksHighestTierFirst(t *testing.T) {
	high := wfTodo("H", model.PriorityHigh)
	medium := wfTodo("M", model.PriorityMedium)

	next, ok := NextByPriority([]model.Todo{medium, high})
	if !ok || next.ID != "H" {
		t.Fatalf("expected H first, got %+v ok=%v", next, ok)
	}

	doneAt := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	high.IsCompleted = true
	high.CompletedAt = &doneAt
	next, ok = NextByPriority([]model.Todo{medium, high})
	if !ok || next.ID != "M" {
		t.Fatalf("expected M after completing H, got %+v ok=%v", next, ok)
	}
}

func TestWaterfallStableWithinTier(t *testing.T) {
	first := wfTodo("first", model.PriorityLow)
	second := wfTodo("second", model.PriorityLow)

	next, ok := NextByPriority([]model.Todo{first, second})
	if !ok || next.ID != "first" {
		t.Fatalf("expected stable insertion order, got %+v", next)
	}
}

func TestWaterfallSessionOutcomes(t *testing.T) {
	h := wfTodo("H", model.PriorityHigh)
	m := wfTodo("M", model.PriorityMedium)
	working := []model.Todo{h, m}

	if got := Outcome(working, 0); got != SessionWorking {
		t.Fatalf("expected working, got %s", got)
	}

	doneAt := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	h.IsCompleted = true
	h.CompletedAt = &doneAt
	m.IsCompleted = true
	m.CompletedAt = &doneAt
	if got := Outcome([]model.Todo{h, m}, 2); got != SessionAllDone {
		t.Fatalf("expected all done after 2 completions, got %s", got)
	}
	if got := Outcome(nil, 0); got != SessionEmpty {
		t.Fatalf("expected empty for a fresh empty set, got %s", got)
	}
}
