package model

import (
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Todo is an unscheduled, priority and due-date bound item. DueMinute is a
// minute-of-day refinement of DueDate and is only meaningful when DueDate
// is set.
type Todo struct {
	ID                string
	Title             string
	Icon              string
	Color             string
	Priority          Priority
	Category          string
	DueDate           *time.Time
	DueMinute         *int
	EstimatedDuration time.Duration
	Energy            Energy
	Recurrence        RecurrenceRule
	Reminder          ReminderOption
	Notes             string
	Subtasks          []Subtask
	IsCompleted       bool
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Archived          bool
}

func (t Todo) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return invalidf("id", "required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return invalidf("title", "required")
	}
	if !t.Priority.IsValid() {
		return invalidf("priority", "unknown priority %q", t.Priority)
	}
	if t.EstimatedDuration < 0 {
		return invalidf("estimated_duration", "negative duration %s", t.EstimatedDuration)
	}
	if !t.Energy.IsValid() {
		return invalidf("energy", "level %d outside 0-4", int(t.Energy))
	}
	if err := t.Recurrence.Validate(); err != nil {
		return err
	}
	if !t.Reminder.IsValid() {
		return invalidf("reminder", "unknown option %q", t.Reminder)
	}
	if t.DueMinute != nil {
		if t.DueDate == nil {
			return invalidf("due_minute", "set without a due date")
		}
		if *t.DueMinute < 0 || *t.DueMinute >= minutesPerDay {
			return invalidf("due_minute", "minute %d outside 0-1439", *t.DueMinute)
		}
	}
	if t.CreatedAt.IsZero() {
		return invalidf("created_at", "required")
	}
	if t.IsCompleted && t.CompletedAt == nil {
		return invalidf("completed_at", "required when todo is completed")
	}
	if !t.IsCompleted && t.CompletedAt != nil {
		return invalidf("completed_at", "must be empty when todo is not completed")
	}
	for _, s := range t.Subtasks {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DueAt resolves the due instant: the due minute on the due day when one is
// set, otherwise the end of the due day so a dateline-only todo is not
// overdue until the day has passed.
func (t Todo) DueAt() (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	day := dayFloor(*t.DueDate)
	if t.DueMinute != nil {
		return day.Add(time.Duration(*t.DueMinute) * time.Minute), true
	}
	return day.AddDate(0, 0, 1), true
}

func (t Todo) IsOverdue(now time.Time) bool {
	due, ok := t.DueAt()
	if !ok || t.IsCompleted {
		return false
	}
	return now.After(due) || now.Equal(due)
}

func (t Todo) IsDueToday(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return sameDay(*t.DueDate, now)
}

func (t Todo) CompletedSubtasks() int { return completedSubtasks(t.Subtasks) }

func (t Todo) SubtaskProgress() float64 {
	if len(t.Subtasks) == 0 {
		return 0
	}
	return float64(t.CompletedSubtasks()) / float64(len(t.Subtasks))
}

func (t *Todo) ToggleCompletion(now time.Time) {
	t.IsCompleted = !t.IsCompleted
	if t.IsCompleted {
		at := now
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = now
}

func (t *Todo) SetPriority(p Priority, now time.Time) {
	t.Priority = p
	t.UpdatedAt = now
}

func (t *Todo) Archive(now time.Time) {
	t.Archived = true
	t.UpdatedAt = now
}

func (t *Todo) Unarchive(now time.Time) {
	t.Archived = false
	t.UpdatedAt = now
}

func (t *Todo) AddSubtask(id, title string, now time.Time) {
	t.Subtasks = append(t.Subtasks, Subtask{ID: id, Title: title, OrderIndex: len(t.Subtasks)})
	t.UpdatedAt = now
}

func (t *Todo) RemoveSubtask(id string, now time.Time) bool {
	out, removed := removeSubtask(t.Subtasks, id)
	if removed {
		t.Subtasks = out
		t.UpdatedAt = now
	}
	return removed
}

func (t *Todo) ToggleSubtask(id string, now time.Time) bool {
	if toggleSubtask(t.Subtasks, id) {
		t.UpdatedAt = now
		return true
	}
	return false
}
