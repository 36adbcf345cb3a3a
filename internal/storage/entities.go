package storage

import "time"

// Row types mirror the sqlite schema. Conversion to and from the domain
// model lives in the store package.

type Task struct {
	ID             string
	Title          string
	Icon           string
	Color          string
	StartTime      time.Time
	DurationSec    int64
	RecurrenceKind string
	RecurrenceDays int
	Reminder       string
	Energy         int
	Notes          string
	IsCompleted    bool
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Todo struct {
	ID             string
	Title          string
	Icon           string
	Color          string
	Priority       string
	Category       string
	DueDate        *time.Time
	DueMinute      *int
	EstimatedSec   int64
	Energy         int
	RecurrenceKind string
	RecurrenceDays int
	Reminder       string
	Notes          string
	IsCompleted    bool
	Archived       bool
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Subtask rows hang off either a task or a todo; RecordKind tells which.
type Subtask struct {
	ID         string
	RecordID   string
	RecordKind string
	Title      string
	Done       bool
	OrderIndex int
}

const (
	RecordKindTask = "task"
	RecordKindTodo = "todo"
)

type TaskListFilter struct {
	Completed *bool
	Limit     int
	Offset    int
}

type TodoListFilter struct {
	Archived  *bool
	Completed *bool
	Category  string
	Limit     int
	Offset    int
}
