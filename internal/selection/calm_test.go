package selection

import (
	"reflect"
	"testing"
	"time"

	"github.com/sandeepkv93/focald/internal/model"
)

var calmNow = time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

func calmTodo(id string, priority model.Priority, energy model.Energy, est time.Duration, createdMin int) model.Todo {
	return model.Todo{
		ID:                id,
		Title:             id,
		Priority:          priority,
		Energy:            energy,
		EstimatedDuration: est,
		CreatedAt:         calmNow.Add(-time.Duration(100-createdMin) * time.Minute),
	}
}

func idsOf(todos []model.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func TestEnergyMatchedFilterByTier(t *testing.T) {
	t1 := calmTodo("T1", model.PriorityHigh, model.EnergyHigh, time.Hour, 1)
	t2 := calmTodo("T2", model.PriorityLow, model.EnergyRestful, 10*time.Minute, 2)
	t3 := calmTodo("T3", model.PriorityMedium, model.EnergyModerate, time.Hour, 3)
	candidates := []model.Todo{t1, t2, t3}

	low := EnergyMatched(candidates, calmNow, CalmParams{Energy: UserEnergyLow})
	if !low.HasHero || low.Hero.ID != "T2" || low.Total != 1 {
		t.Fatalf("low energy should select only T2, got %+v", low)
	}

	high := EnergyMatched(candidates, calmNow, CalmParams{Energy: UserEnergyHigh})
	got := append([]string{high.Hero.ID}, idsOf(high.UpNext)...)
	want := []string{"T1", "T3", "T2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("high energy order = %v, want %v", got, want)
	}
}

func TestEnergyMatchedMediumExcludesHighTier(t *testing.T) {
	demanding := calmTodo("demand", model.PriorityHigh, model.EnergyIntense, time.Hour, 1)
	light := calmTodo("light", model.PriorityMedium, model.EnergyModerate, time.Hour, 2)

	res := EnergyMatched([]model.Todo{demanding, light}, calmNow, CalmParams{Energy: UserEnergyMedium})
	if !res.HasHero || res.Hero.ID != "light" || res.Total != 1 {
		t.Fatalf("medium energy should hide high-tier work, got %+v", res)
	}
}

func TestEnergyMatchedOrderingTiebreaks(t *testing.T) {
	overdueDate := calmNow.AddDate(0, 0, -2)
	todayDate := calmNow
	laterDate := calmNow.AddDate(0, 0, 5)

	overdue := calmTodo("overdue", model.PriorityMedium, model.EnergyModerate, time.Hour, 4)
	overdue.DueDate = &overdueDate
	today := calmTodo("today", model.PriorityMedium, model.EnergyModerate, time.Hour, 3)
	today.DueDate = &todayDate
	later := calmTodo("later", model.PriorityMedium, model.EnergyModerate, time.Hour, 2)
	later.DueDate = &laterDate
	dateless := calmTodo("dateless", model.PriorityMedium, model.EnergyModerate, time.Hour, 1)

	res := EnergyMatched([]model.Todo{dateless, later, today, overdue}, calmNow, CalmParams{Energy: UserEnergyHigh, ShowAll: true})
	got := append([]string{res.Hero.ID}, idsOf(res.UpNext)...)
	want := []string{"overdue", "today", "later", "dateless"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tiebreak order = %v, want %v", got, want)
	}
}

func TestEnergyMatchedSkipAndLimit(t *testing.T) {
	todos := []model.Todo{
		calmTodo("a", model.PriorityHigh, model.EnergyHigh, time.Hour, 1),
		calmTodo("b", model.PriorityHigh, model.EnergyHigh, time.Hour, 2),
		calmTodo("c", model.PriorityHigh, model.EnergyHigh, time.Hour, 3),
		calmTodo("d", model.PriorityHigh, model.EnergyHigh, time.Hour, 4),
		calmTodo("e", model.PriorityHigh, model.EnergyHigh, time.Hour, 5),
	}

	res := EnergyMatched(todos, calmNow, CalmParams{
		Energy:  UserEnergyHigh,
		Skipped: map[string]bool{"a": true},
		Limit:   2,
	})
	if res.Hero.ID != "b" {
		t.Fatalf("expected hero b after skipping a, got %s", res.Hero.ID)
	}
	if !reflect.DeepEqual(idsOf(res.UpNext), []string{"c", "d"}) || res.Remaining != 1 {
		t.Fatalf("unexpected up next window: %+v", res)
	}

	all := EnergyMatched(todos, calmNow, CalmParams{Energy: UserEnergyHigh, Skipped: map[string]bool{"a": true}, Limit: 2, ShowAll: true})
	if len(all.UpNext) != 3 || all.Remaining != 0 {
		t.Fatalf("show-all should surface the cap, got %+v", all)
	}
}

func TestEnergyMatchedDeterminism(t *testing.T) {
	todos := []model.Todo{
		calmTodo("x", model.PriorityMedium, model.EnergyModerate, time.Hour, 1),
		calmTodo("y", model.PriorityMedium, model.EnergyModerate, time.Hour, 1),
		calmTodo("z", model.PriorityHigh, model.EnergyHigh, time.Hour, 1),
	}
	params := CalmParams{Energy: UserEnergyHigh, ShowAll: true}

	first := EnergyMatched(todos, calmNow, params)
	second := EnergyMatched(todos, calmNow, params)
	if !reflect.DeepEqual(idsOf(append([]model.Todo{first.Hero}, first.UpNext...)), idsOf(append([]model.Todo{second.Hero}, second.UpNext...))) {
		t.Fatal("identical inputs produced different orderings")
	}
}

func TestEnergyMatchedIgnoresCompletedAndArchived(t *testing.T) {
	done := calmTodo("done", model.PriorityHigh, model.EnergyHigh, time.Hour, 1)
	doneAt := calmNow
	done.IsCompleted = true
	done.CompletedAt = &doneAt
	archived := calmTodo("archived", model.PriorityHigh, model.EnergyHigh, time.Hour, 2)
	archived.Archived = true

	res := EnergyMatched([]model.Todo{done, archived}, calmNow, CalmParams{Energy: UserEnergyHigh})
	if res.HasHero || res.Total != 0 {
		t.Fatalf("completed/archived todos leaked into selection: %+v", res)
	}
}
