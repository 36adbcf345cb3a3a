package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/focald/internal/model"
	"github.com/sandeepkv93/focald/internal/scheduler"
	"github.com/sandeepkv93/focald/internal/storage"
)

func setupService(t *testing.T, sched *scheduler.Engine) *Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "focald-store.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	svc := NewService(repo, sched)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc
}

func TestTaskCreateGetRoundTrip(t *testing.T) {
	svc := setupService(t, nil)
	ctx := context.Background()

	in := model.Task{
		Title:     "Deep work block",
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Duration:  90 * time.Minute,
		Recurrence: model.RecurrenceRule{
			Kind: model.RecurrenceCustom,
			Days: model.NewWeekdaySet(time.Monday, time.Wednesday),
		},
		Energy: model.EnergyHigh,
		Subtasks: []model.Subtask{
			{ID: "s1", Title: "Outline", OrderIndex: 0},
			{ID: "s2", Title: "Draft", OrderIndex: 1},
		},
	}
	created, err := svc.CreateTask(ctx, in)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected minted id")
	}
	if created.Icon != model.DefaultIcon || created.Color != model.DefaultColor {
		t.Fatalf("defaults not applied: %#v", created)
	}

	got, err := svc.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Recurrence.Kind != model.RecurrenceCustom || !got.Recurrence.Days.Has(time.Wednesday) {
		t.Fatalf("recurrence round trip: %#v", got.Recurrence)
	}
	if len(got.Subtasks) != 2 || got.Subtasks[1].Title != "Draft" {
		t.Fatalf("subtask round trip: %#v", got.Subtasks)
	}
	if got.Duration != 90*time.Minute {
		t.Fatalf("duration round trip: %v", got.Duration)
	}
}

func TestTaskCreateValidates(t *testing.T) {
	svc := setupService(t, nil)

	_, err := svc.CreateTask(context.Background(), model.Task{
		Title:     "   ",
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	})
	var verr *model.ValidationError
	if !errors.As(err, &verr) || verr.Field != "title" {
		t.Fatalf("expected title validation error, got %v", err)
	}
}

func TestCreateDefaultsZeroRecurrence(t *testing.T) {
	svc := setupService(t, nil)
	ctx := context.Background()

	// Palette-built records carry a zero-value rule; the service must fill
	// in None rather than bounce them off validation.
	task, err := svc.CreateTask(ctx, model.Task{
		Title:     "water plants",
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Recurrence.Kind != model.RecurrenceNone {
		t.Fatalf("expected recurrence None, got %q", task.Recurrence.Kind)
	}

	todo, err := svc.CreateTodo(ctx, model.Todo{Title: "call the bank"})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	if todo.Recurrence.Kind != model.RecurrenceNone {
		t.Fatalf("expected recurrence None, got %q", todo.Recurrence.Kind)
	}

	got, err := svc.GetTodo(ctx, todo.ID)
	if err != nil {
		t.Fatalf("GetTodo: %v", err)
	}
	if got.Recurrence.Kind != model.RecurrenceNone {
		t.Fatalf("expected stored recurrence None, got %q", got.Recurrence.Kind)
	}
}

func TestTaskToggleStampsCompletion(t *testing.T) {
	svc := setupService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, model.Task{
		Title:     "Water plants",
		StartTime: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	toggled, err := svc.ToggleTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle task: %v", err)
	}
	if !toggled.IsCompleted || toggled.CompletedAt == nil {
		t.Fatalf("expected completion stamp: %#v", toggled)
	}

	back, err := svc.ToggleTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if back.IsCompleted || back.CompletedAt != nil {
		t.Fatalf("expected completion cleared: %#v", back)
	}
}

func TestTasksForDayExpandsRecurrence(t *testing.T) {
	svc := setupService(t, nil)
	ctx := context.Background()

	// 2026-03-02 is a Monday.
	weekday, err := svc.CreateTask(ctx, model.Task{
		Title:      "Standup",
		StartTime:  time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Recurrence: model.RecurrenceRule{Kind: model.RecurrenceCustom, Days: model.Weekdays},
	})
	if err != nil {
		t.Fatalf("create weekday task: %v", err)
	}
	if _, err := svc.CreateTask(ctx, model.Task{
		Title:     "One-off",
		StartTime: time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("create one-off task: %v", err)
	}

	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	day, err := svc.TasksForDay(ctx, saturday)
	if err != nil {
		t.Fatalf("tasks for day: %v", err)
	}
	if len(day) != 0 {
		t.Fatalf("expected nothing on saturday, got %d", len(day))
	}

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	day, err = svc.TasksForDay(ctx, monday)
	if err != nil {
		t.Fatalf("tasks for day: %v", err)
	}
	if len(day) != 1 || day[0].ID != weekday.ID {
		t.Fatalf("expected only the weekday task on monday: %#v", day)
	}
}

func TestTodoArchiveLifecycle(t *testing.T) {
	svc := setupService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, model.Todo{Title: "Read paper"})
	if err != nil {
		t.Fatalf("create todo: %v", err)
	}
	if created.Priority != model.PriorityNone {
		t.Fatalf("expected default priority, got %q", created.Priority)
	}

	if _, err := svc.ArchiveTodo(ctx, created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	active, err := svc.ActiveTodos(ctx)
	if err != nil {
		t.Fatalf("active todos: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("archived todo still active: %#v", active)
	}
	archived, err := svc.ArchivedTodos(ctx)
	if err != nil {
		t.Fatalf("archived todos: %v", err)
	}
	if len(archived) != 1 || archived[0].ID != created.ID {
		t.Fatalf("unexpected archive list: %#v", archived)
	}

	if _, err := svc.UnarchiveTodo(ctx, created.ID); err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	active, err = svc.ActiveTodos(ctx)
	if err != nil {
		t.Fatalf("active todos: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected todo back in active list: %#v", active)
	}
}

func TestSetTodoPriorityRejectsUnknown(t *testing.T) {
	svc := setupService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, model.Todo{Title: "Sort inbox"})
	if err != nil {
		t.Fatalf("create todo: %v", err)
	}

	if _, err := svc.SetTodoPriority(ctx, created.ID, "Urgent"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	updated, err := svc.SetTodoPriority(ctx, created.ID, model.PriorityHigh)
	if err != nil {
		t.Fatalf("set priority: %v", err)
	}
	if updated.Priority != model.PriorityHigh {
		t.Fatalf("priority not applied: %q", updated.Priority)
	}
}

func TestNotFoundMapsAcrossLayers(t *testing.T) {
	svc := setupService(t, nil)
	ctx := context.Background()

	_, err := svc.GetTask(ctx, "ghost")
	var nf NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "task" || nf.ID != "ghost" {
		t.Fatalf("expected task NotFoundError, got %v", err)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("NotFoundError should unwrap to storage.ErrNotFound")
	}

	if err := svc.DeleteTodo(ctx, "ghost"); !errors.As(err, &nf) || nf.Kind != "todo" {
		t.Fatalf("expected todo NotFoundError, got %v", err)
	}
}

func TestMutationsKeepReminderEngineInSync(t *testing.T) {
	engine := scheduler.NewEngine(8)
	engine.Start()
	defer engine.Stop()

	svc := setupService(t, engine)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, model.Task{
		Title:      "Evening review",
		StartTime:  time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC),
		Recurrence: model.RecurrenceRule{Kind: model.RecurrenceDaily},
		Reminder:   model.ReminderQuarter,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if got := engine.Pending(); got != 1 {
		t.Fatalf("pending after create: got=%d want=1", got)
	}

	// A save replans rather than stacking a second reminder.
	if _, err := svc.SaveTask(ctx, created); err != nil {
		t.Fatalf("save task: %v", err)
	}
	if got := engine.Pending(); got != 1 {
		t.Fatalf("pending after save: got=%d want=1", got)
	}

	if err := svc.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if got := engine.Pending(); got != 0 {
		t.Fatalf("pending after delete: got=%d want=0", got)
	}
}
