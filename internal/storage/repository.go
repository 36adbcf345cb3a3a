package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateTask(ctx context.Context, in Task) error
	GetTask(ctx context.Context, id string) (Task, error)
	UpdateTask(ctx context.Context, in Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error)

	CreateTodo(ctx context.Context, in Todo) error
	GetTodo(ctx context.Context, id string) (Todo, error)
	UpdateTodo(ctx context.Context, in Todo) error
	DeleteTodo(ctx context.Context, id string) error
	ListTodos(ctx context.Context, filter TodoListFilter) ([]Todo, error)

	ListSubtasks(ctx context.Context, recordID string) ([]Subtask, error)
	ReplaceSubtasks(ctx context.Context, recordID, recordKind string, subtasks []Subtask) error
}
