package scheduler

import (
	"time"

	"github.com/sandeepkv93/focald/internal/model"
)

// todoFallbackMinute is the due instant used for date-only todos: 09:00.
const todoFallbackMinute = 9 * 60

// PlanTask computes the next reminder for a task: the next occurrence of
// its start time minus the reminder lead. ok is false when the task wants
// no reminder or has no occurrence left to remind about.
func PlanTask(t model.Task, now time.Time) (ReminderEvent, bool) {
	offset, ok := t.Reminder.Offset()
	if !ok || t.IsCompleted {
		return ReminderEvent{}, false
	}
	// The occurrence must sit far enough out that the lead time still
	// leaves the trigger in the future.
	occ, ok := t.Recurrence.NextOccurrence(t.StartTime, now.Add(offset))
	if !ok {
		return ReminderEvent{}, false
	}
	return ReminderEvent{
		RecordID:  t.ID,
		Kind:      KindTask,
		Title:     t.Title,
		TriggerAt: occ.Add(-offset),
	}, true
}

// PlanTodo computes the reminder for a todo's due instant. Date-only due
// dates remind relative to a 09:00 fallback.
func PlanTodo(t model.Todo, now time.Time) (ReminderEvent, bool) {
	offset, ok := t.Reminder.Offset()
	if !ok || t.IsCompleted || t.Archived || t.DueDate == nil {
		return ReminderEvent{}, false
	}

	y, m, d := t.DueDate.Date()
	minute := todoFallbackMinute
	if t.DueMinute != nil {
		minute = *t.DueMinute
	}
	due := time.Date(y, m, d, 0, minute, 0, 0, t.DueDate.Location())

	trigger := due.Add(-offset)
	if !trigger.After(now) {
		return ReminderEvent{}, false
	}
	return ReminderEvent{
		RecordID:  t.ID,
		Kind:      KindTodo,
		Title:     t.Title,
		TriggerAt: trigger,
	}, true
}
