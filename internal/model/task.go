package model

import (
	"strings"
	"time"
)

const (
	DefaultIcon     = "📝"
	DefaultColor    = "sage"
	DefaultDuration = time.Hour
)

// Task is a scheduled, calendar-bound item. Derived state (end time,
// overdue, active) is always computed against an explicit now, never a
// wall clock read inside the model.
type Task struct {
	ID          string
	Title       string
	Icon        string
	Color       string
	StartTime   time.Time
	Duration    time.Duration
	Recurrence  RecurrenceRule
	Reminder    ReminderOption
	Energy      Energy
	Notes       string
	Subtasks    []Subtask
	IsCompleted bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return invalidf("id", "required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return invalidf("title", "required")
	}
	if t.StartTime.IsZero() {
		return invalidf("start_time", "required")
	}
	if t.Duration < 0 {
		return invalidf("duration", "negative duration %s", t.Duration)
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
	if t.CreatedAt.IsZero() {
		return invalidf("created_at", "required")
	}
	if t.IsCompleted && t.CompletedAt == nil {
		return invalidf("completed_at", "required when task is completed")
	}
	if !t.IsCompleted && t.CompletedAt != nil {
		return invalidf("completed_at", "must be empty when task is not completed")
	}
	for _, s := range t.Subtasks {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t Task) EndTime() time.Time {
	return t.StartTime.Add(t.Duration)
}

func (t Task) IsPast(now time.Time) bool {
	return now.After(t.EndTime())
}

func (t Task) IsActive(now time.Time) bool {
	return !now.Before(t.StartTime) && !now.After(t.EndTime()) && !t.IsCompleted
}

func (t Task) IsOverdue(now time.Time) bool {
	return t.IsPast(now) && !t.IsCompleted
}

// OccursOn reports whether this task appears on date, expanding its
// recurrence rule from the start time anchor.
func (t Task) OccursOn(date time.Time) bool {
	return t.Recurrence.OccursOn(t.StartTime, date)
}

func (t Task) DurationLabel() string {
	return FormatDuration(t.Duration)
}

func (t Task) TimeRangeLabel() string {
	return FormatTimeRange(t.StartTime, t.EndTime())
}

func (t Task) CompletedSubtasks() int { return completedSubtasks(t.Subtasks) }

func (t Task) SubtaskProgress() float64 {
	if len(t.Subtasks) == 0 {
		return 0
	}
	return float64(t.CompletedSubtasks()) / float64(len(t.Subtasks))
}

// ToggleCompletion flips completion and stamps CompletedAt/UpdatedAt.
func (t *Task) ToggleCompletion(now time.Time) {
	t.IsCompleted = !t.IsCompleted
	if t.IsCompleted {
		at := now
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = now
}

func (t *Task) AddSubtask(id, title string, now time.Time) {
	t.Subtasks = append(t.Subtasks, Subtask{ID: id, Title: title, OrderIndex: len(t.Subtasks)})
	t.UpdatedAt = now
}

func (t *Task) RemoveSubtask(id string, now time.Time) bool {
	out, removed := removeSubtask(t.Subtasks, id)
	if removed {
		t.Subtasks = out
		t.UpdatedAt = now
	}
	return removed
}

func (t *Task) ToggleSubtask(id string, now time.Time) bool {
	if toggleSubtask(t.Subtasks, id) {
		t.UpdatedAt = now
		return true
	}
	return false
}
