package model

import "strings"

// Subtask is owned by exactly one parent record and ordered by an explicit
// OrderIndex rather than slice position.
type Subtask struct {
	ID         string
	Title      string
	Done       bool
	OrderIndex int
}

func (s Subtask) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return invalidf("subtask.id", "required")
	}
	if strings.TrimSpace(s.Title) == "" {
		return invalidf("subtask.title", "required")
	}
	if s.OrderIndex < 0 {
		return invalidf("subtask.order_index", "negative index %d", s.OrderIndex)
	}
	return nil
}

// reindexSubtasks restores sequential order indexes after a removal,
// preserving relative order.
func reindexSubtasks(subs []Subtask) {
	for i := range subs {
		subs[i].OrderIndex = i
	}
}

func removeSubtask(subs []Subtask, id string) ([]Subtask, bool) {
	for i := range subs {
		if subs[i].ID == id {
			out := append(subs[:i:i], subs[i+1:]...)
			reindexSubtasks(out)
			return out, true
		}
	}
	return subs, false
}

func toggleSubtask(subs []Subtask, id string) bool {
	for i := range subs {
		if subs[i].ID == id {
			subs[i].Done = !subs[i].Done
			return true
		}
	}
	return false
}

func completedSubtasks(subs []Subtask) int {
	n := 0
	for _, s := range subs {
		if s.Done {
			n++
		}
	}
	return n
}
