package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, icon, color, start_time, duration_sec, recurrence_kind, recurrence_days, reminder, energy, notes, is_completed, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Icon, in.Color, mustTime(in.StartTime), in.DurationSec,
		in.RecurrenceKind, in.RecurrenceDays, in.Reminder, in.Energy, in.Notes,
		boolInt(in.IsCompleted), nullTime(in.CompletedAt), mustTime(in.CreatedAt), mustTime(in.UpdatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, icon, color, start_time, duration_sec, recurrence_kind, recurrence_days, reminder, energy, notes, is_completed, completed_at, created_at, updated_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, icon = ?, color = ?, start_time = ?, duration_sec = ?, recurrence_kind = ?, recurrence_days = ?, reminder = ?, energy = ?, notes = ?, is_completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`,
		in.Title, in.Icon, in.Color, mustTime(in.StartTime), in.DurationSec,
		in.RecurrenceKind, in.RecurrenceDays, in.Reminder, in.Energy, in.Notes,
		boolInt(in.IsCompleted), nullTime(in.CompletedAt), mustTime(in.UpdatedAt), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	query := `SELECT id, title, icon, color, start_time, duration_sec, recurrence_kind, recurrence_days, reminder, energy, notes, is_completed, completed_at, created_at, updated_at FROM tasks`
	args := make([]any, 0, 3)
	if filter.Completed != nil {
		query += ` WHERE is_completed = ?`
		args = append(args, boolInt(*filter.Completed))
	}
	query += ` ORDER BY start_time ASC, created_at ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateTodo(ctx context.Context, in Todo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (id, title, icon, color, priority, category, due_date, due_minute, estimated_sec, energy, recurrence_kind, recurrence_days, reminder, notes, is_completed, archived, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Icon, in.Color, in.Priority, in.Category,
		nullTime(in.DueDate), nullInt(in.DueMinute), in.EstimatedSec,
		in.Energy, in.RecurrenceKind, in.RecurrenceDays, in.Reminder, in.Notes,
		boolInt(in.IsCompleted), boolInt(in.Archived), nullTime(in.CompletedAt),
		mustTime(in.CreatedAt), mustTime(in.UpdatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetTodo(ctx context.Context, id string) (Todo, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, icon, color, priority, category, due_date, due_minute, estimated_sec, energy, recurrence_kind, recurrence_days, reminder, notes, is_completed, archived, completed_at, created_at, updated_at
		FROM todos WHERE id = ?`, id)
	item, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Todo{}, ErrNotFound
		}
		return Todo{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateTodo(ctx context.Context, in Todo) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET title = ?, icon = ?, color = ?, priority = ?, category = ?, due_date = ?, due_minute = ?, estimated_sec = ?, energy = ?, recurrence_kind = ?, recurrence_days = ?, reminder = ?, notes = ?, is_completed = ?, archived = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`,
		in.Title, in.Icon, in.Color, in.Priority, in.Category,
		nullTime(in.DueDate), nullInt(in.DueMinute), in.EstimatedSec,
		in.Energy, in.RecurrenceKind, in.RecurrenceDays, in.Reminder, in.Notes,
		boolInt(in.IsCompleted), boolInt(in.Archived), nullTime(in.CompletedAt), mustTime(in.UpdatedAt), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTodo(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTodos(ctx context.Context, filter TodoListFilter) ([]Todo, error) {
	query := `SELECT id, title, icon, color, priority, category, due_date, due_minute, estimated_sec, energy, recurrence_kind, recurrence_days, reminder, notes, is_completed, archived, completed_at, created_at, updated_at FROM todos`
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if filter.Archived != nil {
		clauses = append(clauses, "archived = ?")
		args = append(args, boolInt(*filter.Archived))
	}
	if filter.Completed != nil {
		clauses = append(clauses, "is_completed = ?")
		args = append(args, boolInt(*filter.Completed))
	}
	if filter.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, filter.Category)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Todo, 0)
	for rows.Next() {
		item, scanErr := scanTodo(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ListSubtasks(ctx context.Context, recordID string) ([]Subtask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, record_id, record_kind, title, done, order_index
		FROM subtasks WHERE record_id = ? ORDER BY order_index ASC`, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Subtask, 0)
	for rows.Next() {
		item, scanErr := scanSubtask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// ReplaceSubtasks swaps a record's subtask rows in one transaction; the
// subtask list is small and always written whole.
func (r *SQLiteRepository) ReplaceSubtasks(ctx context.Context, recordID, recordKind string, subtasks []Subtask) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE record_id = ?`, recordID); err != nil {
		return err
	}
	for _, st := range subtasks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO subtasks (id, record_id, record_kind, title, done, order_index)
			VALUES (?, ?, ?, ?, ?, ?)`,
			st.ID, recordID, recordKind, st.Title, boolInt(st.Done), st.OrderIndex,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var start string
	var completed sql.NullString
	var isCompleted int
	var created string
	var updated string
	if err := s.Scan(&out.ID, &out.Title, &out.Icon, &out.Color, &start, &out.DurationSec,
		&out.RecurrenceKind, &out.RecurrenceDays, &out.Reminder, &out.Energy, &out.Notes,
		&isCompleted, &completed, &created, &updated); err != nil {
		return Task{}, err
	}
	startTime, err := parseRequiredTime(start)
	if err != nil {
		return Task{}, err
	}
	completedAt, err := parseNullableTime(completed)
	if err != nil {
		return Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Task{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return Task{}, err
	}
	out.StartTime = startTime
	out.IsCompleted = isCompleted == 1
	out.CompletedAt = completedAt
	out.CreatedAt = createdAt
	out.UpdatedAt = updatedAt
	return out, nil
}

func scanTodo(s scanner) (Todo, error) {
	var out Todo
	var due sql.NullString
	var dueMinute sql.NullInt64
	var isCompleted int
	var archived int
	var completed sql.NullString
	var created string
	var updated string
	if err := s.Scan(&out.ID, &out.Title, &out.Icon, &out.Color, &out.Priority, &out.Category,
		&due, &dueMinute, &out.EstimatedSec, &out.Energy, &out.RecurrenceKind, &out.RecurrenceDays,
		&out.Reminder, &out.Notes, &isCompleted, &archived, &completed, &created, &updated); err != nil {
		return Todo{}, err
	}
	dueDate, err := parseNullableTime(due)
	if err != nil {
		return Todo{}, err
	}
	completedAt, err := parseNullableTime(completed)
	if err != nil {
		return Todo{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Todo{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return Todo{}, err
	}
	out.DueDate = dueDate
	if dueMinute.Valid {
		minute := int(dueMinute.Int64)
		out.DueMinute = &minute
	}
	out.IsCompleted = isCompleted == 1
	out.Archived = archived == 1
	out.CompletedAt = completedAt
	out.CreatedAt = createdAt
	out.UpdatedAt = updatedAt
	return out, nil
}

func scanSubtask(s scanner) (Subtask, error) {
	var out Subtask
	var done int
	if err := s.Scan(&out.ID, &out.RecordID, &out.RecordKind, &out.Title, &done, &out.OrderIndex); err != nil {
		return Subtask{}, err
	}
	out.Done = done == 1
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
