package store

import (
	"time"

	"github.com/sandeepkv93/focald/internal/model"
	"github.com/sandeepkv93/focald/internal/storage"
)

func taskToRow(t model.Task) storage.Task {
	return storage.Task{
		ID:             t.ID,
		Title:          t.Title,
		Icon:           t.Icon,
		Color:          t.Color,
		StartTime:      t.StartTime,
		DurationSec:    int64(t.Duration / time.Second),
		RecurrenceKind: string(t.Recurrence.Kind),
		RecurrenceDays: int(t.Recurrence.Days),
		Reminder:       string(t.Reminder),
		Energy:         int(t.Energy),
		Notes:          t.Notes,
		IsCompleted:    t.IsCompleted,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func taskFromRow(row storage.Task, subtasks []storage.Subtask) model.Task {
	return model.Task{
		ID:        row.ID,
		Title:     row.Title,
		Icon:      row.Icon,
		Color:     row.Color,
		StartTime: row.StartTime,
		Duration:  time.Duration(row.DurationSec) * time.Second,
		Recurrence: model.RecurrenceRule{
			Kind: model.RecurrenceKind(row.RecurrenceKind),
			Days: model.WeekdaySet(row.RecurrenceDays),
		},
		Reminder:    model.ReminderOption(row.Reminder),
		Energy:      model.Energy(row.Energy),
		Notes:       row.Notes,
		Subtasks:    subtasksFromRows(subtasks),
		IsCompleted: row.IsCompleted,
		CompletedAt: row.CompletedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func todoToRow(t model.Todo) storage.Todo {
	return storage.Todo{
		ID:             t.ID,
		Title:          t.Title,
		Icon:           t.Icon,
		Color:          t.Color,
		Priority:       string(t.Priority),
		Category:       t.Category,
		DueDate:        t.DueDate,
		DueMinute:      t.DueMinute,
		EstimatedSec:   int64(t.EstimatedDuration / time.Second),
		Energy:         int(t.Energy),
		RecurrenceKind: string(t.Recurrence.Kind),
		RecurrenceDays: int(t.Recurrence.Days),
		Reminder:       string(t.Reminder),
		Notes:          t.Notes,
		IsCompleted:    t.IsCompleted,
		Archived:       t.Archived,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func todoFromRow(row storage.Todo, subtasks []storage.Subtask) model.Todo {
	return model.Todo{
		ID:                row.ID,
		Title:             row.Title,
		Icon:              row.Icon,
		Color:             row.Color,
		Priority:          model.Priority(row.Priority),
		Category:          row.Category,
		DueDate:           row.DueDate,
		DueMinute:         row.DueMinute,
		EstimatedDuration: time.Duration(row.EstimatedSec) * time.Second,
		Energy:            model.Energy(row.Energy),
		Recurrence: model.RecurrenceRule{
			Kind: model.RecurrenceKind(row.RecurrenceKind),
			Days: model.WeekdaySet(row.RecurrenceDays),
		},
		Reminder:    model.ReminderOption(row.Reminder),
		Notes:       row.Notes,
		Subtasks:    subtasksFromRows(subtasks),
		IsCompleted: row.IsCompleted,
		Archived:    row.Archived,
		CompletedAt: row.CompletedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func subtasksToRows(recordID, recordKind string, subtasks []model.Subtask) []storage.Subtask {
	out := make([]storage.Subtask, 0, len(subtasks))
	for _, st := range subtasks {
		out = append(out, storage.Subtask{
			ID:         st.ID,
			RecordID:   recordID,
			RecordKind: recordKind,
			Title:      st.Title,
			Done:       st.Done,
			OrderIndex: st.OrderIndex,
		})
	}
	return out
}

func subtasksFromRows(rows []storage.Subtask) []model.Subtask {
	if len(rows) == 0 {
		return nil
	}
	out := make([]model.Subtask, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Subtask{
			ID:         row.ID,
			Title:      row.Title,
			Done:       row.Done,
			OrderIndex: row.OrderIndex,
		})
	}
	return out
}
