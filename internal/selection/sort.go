package selection

import (
	"sort"
	"time"

	"github.com/sandeepkv93/focald/internal/model"
)

// ByPriorityGroups orders todos the way the list views group them:
// incomplete first by rank then creation time, completed last by most
// recent completion. The input is not mutated.
func ByPriorityGroups(todos []model.Todo) []model.Todo {
	out := append([]model.Todo(nil), todos...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsCompleted != b.IsCompleted {
			return !a.IsCompleted
		}
		if a.IsCompleted {
			return completedAfter(a, b)
		}
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return out
}

func completedAfter(a, b model.Todo) bool {
	at, bt := time.Time{}, time.Time{}
	if a.CompletedAt != nil {
		at = *a.CompletedAt
	}
	if b.CompletedAt != nil {
		bt = *b.CompletedAt
	}
	return at.After(bt)
}

// Active drops archived and completed todos, preserving order.
func Active(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, todo := range todos {
		if todo.Archived || todo.IsCompleted {
			continue
		}
		out = append(out, todo)
	}
	return out
}

// InCategory filters by the optional taxonomy tag; an empty category
// matches everything.
func InCategory(todos []model.Todo, category string) []model.Todo {
	if category == "" {
		return todos
	}
	out := make([]model.Todo, 0, len(todos))
	for _, todo := range todos {
		if todo.Category == category {
			out = append(out, todo)
		}
	}
	return out
}
