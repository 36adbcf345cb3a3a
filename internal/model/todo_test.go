package model

import (
	"errors"
	"testing"
	"time"
)

func validTodo(now time.Time) Todo {
	return Todo{
		ID:         "todo-1",
		Title:      "Reply to landlord",
		Icon:       DefaultIcon,
		Color:      "sky",
		Priority:   PriorityMedium,
		Energy:     EnergyLight,
		Recurrence: NoRecurrence(),
		Reminder:   ReminderNone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestTodoValidateDueMinuteRequiresDueDate(t *testing.T) {
	now := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	todo := validTodo(now)
	minute := 9 * 60
	todo.DueMinute = &minute

	err := todo.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "due_minute" {
		t.Fatalf("expected due_minute validation error, got %v", err)
	}

	due := now.AddDate(0, 0, 1)
	todo.DueDate = &due
	if err := todo.Validate(); err != nil {
		t.Fatalf("expected valid todo, got %v", err)
	}

	badMinute := 1440
	todo.DueMinute = &badMinute
	if err := todo.Validate(); err == nil {
		t.Fatal("expected out-of-range minute to fail")
	}
}

func TestTodoOverdueAndDueToday(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

	todo := validTodo(now)
	yesterday := now.AddDate(0, 0, -1)
	todo.DueDate = &yesterday
	if !todo.IsOverdue(now) {
		t.Fatal("expected overdue for a past due date")
	}
	if todo.IsDueToday(now) {
		t.Fatal("yesterday is not due today")
	}

	today := now.Add(-2 * time.Hour)
	todo.DueDate = &today
	if todo.IsOverdue(now) {
		t.Fatal("date-only due today is not overdue until the day passes")
	}
	if !todo.IsDueToday(now) {
		t.Fatal("expected due today")
	}

	morning := 8 * 60
	todo.DueMinute = &morning
	if !todo.IsOverdue(now) {
		t.Fatal("minute-level due 08:00 should be overdue at noon")
	}

	todo.ToggleCompletion(now)
	if todo.IsOverdue(now) {
		t.Fatal("completed todo cannot be overdue")
	}
}

func TestTodoWithoutDueDateNeverOverdue(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	todo := validTodo(now)
	if todo.IsOverdue(now) || todo.IsDueToday(now) {
		t.Fatal("todo without a due date classified against one")
	}
}

func TestTodoArchiveRoundTrip(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	todo := validTodo(now)

	later := now.Add(time.Hour)
	todo.Archive(later)
	if !todo.Archived || !todo.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected archive state: %+v", todo)
	}

	todo.Unarchive(later.Add(time.Minute))
	if todo.Archived {
		t.Fatal("expected unarchive to clear the flag")
	}
}

func TestTodoSubtaskReindex(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	todo := validTodo(now)

	todo.AddSubtask("a", "draft", now)
	todo.AddSubtask("b", "send", now)
	todo.RemoveSubtask("a", now)
	if len(todo.Subtasks) != 1 || todo.Subtasks[0].OrderIndex != 0 {
		t.Fatalf("expected reindex from zero, got %+v", todo.Subtasks)
	}
}
