// Package store is the service layer: it validates domain records, owns
// identifier and timestamp minting, persists through the repository and
// keeps the reminder engine in sync with every mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/focald/internal/model"
	"github.com/sandeepkv93/focald/internal/scheduler"
	"github.com/sandeepkv93/focald/internal/storage"
)

// NotFoundError names the record a lookup missed. It unwraps to
// storage.ErrNotFound so errors.Is keeps working across layers.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("store: %s %q not found", e.Kind, e.ID)
}

func (e NotFoundError) Unwrap() error { return storage.ErrNotFound }

type Service struct {
	repo  storage.Repository
	sched *scheduler.Engine
	now   func() time.Time
	newID func() string
}

// NewService wires the repository and an optional reminder engine. A nil
// engine disables reminder planning; everything else works the same.
func NewService(repo storage.Repository, sched *scheduler.Engine) *Service {
	return &Service{
		repo:  repo,
		sched: sched,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *Service) CreateTask(ctx context.Context, in model.Task) (model.Task, error) {
	now := s.now()
	if in.ID == "" {
		in.ID = s.newID()
	}
	if in.Icon == "" {
		in.Icon = model.DefaultIcon
	}
	if in.Color == "" {
		in.Color = model.DefaultColor
	}
	if in.Duration == 0 {
		in.Duration = model.DefaultDuration
	}
	if in.Recurrence.Kind == "" {
		in.Recurrence = model.NoRecurrence()
	}
	in.CreatedAt = now
	in.UpdatedAt = now

	if err := in.Validate(); err != nil {
		return model.Task{}, err
	}
	if err := s.repo.CreateTask(ctx, taskToRow(in)); err != nil {
		return model.Task{}, err
	}
	if err := s.repo.ReplaceSubtasks(ctx, in.ID, storage.RecordKindTask, subtasksToRows(in.ID, storage.RecordKindTask, in.Subtasks)); err != nil {
		return model.Task{}, err
	}
	s.replanTask(in)
	return in, nil
}

func (s *Service) GetTask(ctx context.Context, id string) (model.Task, error) {
	row, err := s.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.Task{}, NotFoundError{Kind: "task", ID: id}
		}
		return model.Task{}, err
	}
	subtasks, err := s.repo.ListSubtasks(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	return taskFromRow(row, subtasks), nil
}

func (s *Service) SaveTask(ctx context.Context, in model.Task) (model.Task, error) {
	in.UpdatedAt = s.now()
	if err := in.Validate(); err != nil {
		return model.Task{}, err
	}
	if err := s.repo.UpdateTask(ctx, taskToRow(in)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.Task{}, NotFoundError{Kind: "task", ID: in.ID}
		}
		return model.Task{}, err
	}
	if err := s.repo.ReplaceSubtasks(ctx, in.ID, storage.RecordKindTask, subtasksToRows(in.ID, storage.RecordKindTask, in.Subtasks)); err != nil {
		return model.Task{}, err
	}
	s.replanTask(in)
	return in, nil
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NotFoundError{Kind: "task", ID: id}
		}
		return err
	}
	if err := s.repo.ReplaceSubtasks(ctx, id, storage.RecordKindTask, nil); err != nil {
		return err
	}
	if s.sched != nil {
		s.sched.CancelRecord(id)
	}
	return nil
}

func (s *Service) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	task.ToggleCompletion(s.now())
	return s.SaveTask(ctx, task)
}

func (s *Service) ToggleTaskSubtask(ctx context.Context, id, subtaskID string) (model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if !task.ToggleSubtask(subtaskID, s.now()) {
		return model.Task{}, NotFoundError{Kind: "subtask", ID: subtaskID}
	}
	return s.SaveTask(ctx, task)
}

func (s *Service) Tasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.repo.ListTasks(ctx, storage.TaskListFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		subtasks, subErr := s.repo.ListSubtasks(ctx, row.ID)
		if subErr != nil {
			return nil, subErr
		}
		out = append(out, taskFromRow(row, subtasks))
	}
	return out, nil
}

// TasksForDay expands recurrence: it returns every task whose rule lands
// on the given calendar day, ordered by start clock.
func (s *Service) TasksForDay(ctx context.Context, date time.Time) ([]model.Task, error) {
	all, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(all))
	for _, task := range all {
		if task.OccursOn(date) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *Service) CreateTodo(ctx context.Context, in model.Todo) (model.Todo, error) {
	now := s.now()
	if in.ID == "" {
		in.ID = s.newID()
	}
	if in.Icon == "" {
		in.Icon = model.DefaultIcon
	}
	if in.Color == "" {
		in.Color = model.DefaultColor
	}
	if in.Priority == "" {
		in.Priority = model.PriorityNone
	}
	if in.Recurrence.Kind == "" {
		in.Recurrence = model.NoRecurrence()
	}
	in.CreatedAt = now
	in.UpdatedAt = now

	if err := in.Validate(); err != nil {
		return model.Todo{}, err
	}
	if err := s.repo.CreateTodo(ctx, todoToRow(in)); err != nil {
		return model.Todo{}, err
	}
	if err := s.repo.ReplaceSubtasks(ctx, in.ID, storage.RecordKindTodo, subtasksToRows(in.ID, storage.RecordKindTodo, in.Subtasks)); err != nil {
		return model.Todo{}, err
	}
	s.replanTodo(in)
	return in, nil
}

func (s *Service) GetTodo(ctx context.Context, id string) (model.Todo, error) {
	row, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.Todo{}, NotFoundError{Kind: "todo", ID: id}
		}
		return model.Todo{}, err
	}
	subtasks, err := s.repo.ListSubtasks(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	return todoFromRow(row, subtasks), nil
}

func (s *Service) SaveTodo(ctx context.Context, in model.Todo) (model.Todo, error) {
	in.UpdatedAt = s.now()
	if err := in.Validate(); err != nil {
		return model.Todo{}, err
	}
	if err := s.repo.UpdateTodo(ctx, todoToRow(in)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.Todo{}, NotFoundError{Kind: "todo", ID: in.ID}
		}
		return model.Todo{}, err
	}
	if err := s.repo.ReplaceSubtasks(ctx, in.ID, storage.RecordKindTodo, subtasksToRows(in.ID, storage.RecordKindTodo, in.Subtasks)); err != nil {
		return model.Todo{}, err
	}
	s.replanTodo(in)
	return in, nil
}

func (s *Service) DeleteTodo(ctx context.Context, id string) error {
	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NotFoundError{Kind: "todo", ID: id}
		}
		return err
	}
	if err := s.repo.ReplaceSubtasks(ctx, id, storage.RecordKindTodo, nil); err != nil {
		return err
	}
	if s.sched != nil {
		s.sched.CancelRecord(id)
	}
	return nil
}

func (s *Service) ToggleTodo(ctx context.Context, id string) (model.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	todo.ToggleCompletion(s.now())
	return s.SaveTodo(ctx, todo)
}

func (s *Service) SetTodoPriority(ctx context.Context, id string, p model.Priority) (model.Todo, error) {
	if !p.IsValid() {
		return model.Todo{}, &model.ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", p)}
	}
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	todo.SetPriority(p, s.now())
	return s.SaveTodo(ctx, todo)
}

func (s *Service) ArchiveTodo(ctx context.Context, id string) (model.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	todo.Archive(s.now())
	return s.SaveTodo(ctx, todo)
}

func (s *Service) UnarchiveTodo(ctx context.Context, id string) (model.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	todo.Unarchive(s.now())
	return s.SaveTodo(ctx, todo)
}

func (s *Service) ActiveTodos(ctx context.Context) ([]model.Todo, error) {
	archived := false
	return s.listTodos(ctx, storage.TodoListFilter{Archived: &archived})
}

func (s *Service) ArchivedTodos(ctx context.Context) ([]model.Todo, error) {
	archived := true
	return s.listTodos(ctx, storage.TodoListFilter{Archived: &archived})
}

func (s *Service) TodosInCategory(ctx context.Context, category string) ([]model.Todo, error) {
	archived := false
	return s.listTodos(ctx, storage.TodoListFilter{Archived: &archived, Category: category})
}

func (s *Service) listTodos(ctx context.Context, filter storage.TodoListFilter) ([]model.Todo, error) {
	rows, err := s.repo.ListTodos(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]model.Todo, 0, len(rows))
	for _, row := range rows {
		subtasks, subErr := s.repo.ListSubtasks(ctx, row.ID)
		if subErr != nil {
			return nil, subErr
		}
		out = append(out, todoFromRow(row, subtasks))
	}
	return out, nil
}

// replanTask drops the task's pending reminders and schedules the next
// one, if any. Engine errors are swallowed: a stopped engine during
// shutdown must not fail the write that already committed.
func (s *Service) replanTask(t model.Task) {
	if s.sched == nil {
		return
	}
	s.sched.CancelRecord(t.ID)
	if ev, ok := scheduler.PlanTask(t, s.now()); ok {
		ev.ID = s.newID()
		_ = s.sched.Schedule(ev)
	}
}

func (s *Service) replanTodo(t model.Todo) {
	if s.sched == nil {
		return
	}
	s.sched.CancelRecord(t.ID)
	if ev, ok := scheduler.PlanTodo(t, s.now()); ok {
		ev.ID = s.newID()
		_ = s.sched.Schedule(ev)
	}
}
