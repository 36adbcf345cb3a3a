package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focald/internal/model"
	"github.com/sandeepkv93/focald/internal/selection"
	"github.com/sandeepkv93/focald/internal/views"
)

func (m Model) handleTodosKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ordered := selection.ByPriorityGroups(m.Todos)
	switch msg.String() {
	case "j", "down":
		m.TodoCursor = clamp(m.TodoCursor+1, 0, len(ordered)-1)
		return m, nil
	case "k", "up":
		m.TodoCursor = clamp(m.TodoCursor-1, 0, len(ordered)-1)
		return m, nil
	case "x", "enter":
		if todo, ok := m.selectedTodo(ordered); ok {
			return m.runTodoMutation(todo, "toggled", func(svc todoService, id string) error {
				_, err := svc.ToggleTodo(context.Background(), id)
				return err
			})
		}
	case "a":
		if todo, ok := m.selectedTodo(ordered); ok {
			return m.runTodoMutation(todo, "archived", func(svc todoService, id string) error {
				_, err := svc.ArchiveTodo(context.Background(), id)
				return err
			})
		}
	case "p":
		if todo, ok := m.selectedTodo(ordered); ok {
			next := nextPriority(todo.Priority)
			return m.runTodoMutation(todo, fmt.Sprintf("priority %s", next), func(svc todoService, id string) error {
				_, err := svc.SetTodoPriority(context.Background(), id, next)
				return err
			})
		}
	}
	return m, nil
}

// todoService is the slice of the store the todo keys need; it keeps the
// mutation helper testable with a fake.
type todoService interface {
	ToggleTodo(ctx context.Context, id string) (model.Todo, error)
	ArchiveTodo(ctx context.Context, id string) (model.Todo, error)
	UnarchiveTodo(ctx context.Context, id string) (model.Todo, error)
	SetTodoPriority(ctx context.Context, id string, p model.Priority) (model.Todo, error)
}

func (m Model) selectedTodo(ordered []model.Todo) (model.Todo, bool) {
	if len(ordered) == 0 || m.TodoCursor >= len(ordered) {
		return model.Todo{}, false
	}
	return ordered[m.TodoCursor], true
}

func (m Model) runTodoMutation(todo model.Todo, verb string, mutate func(todoService, string) error) (tea.Model, tea.Cmd) {
	if m.Svc == nil {
		return m, nil
	}
	svc := m.Svc
	run := func() tea.Msg {
		if err := mutate(svc, todo.ID); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: fmt.Sprintf("%s: %s", verb, todo.Title)}
	}
	return m, tea.Sequence(run, m.loadTodosCmd())
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityNone:
		return model.PriorityHigh
	case model.PriorityHigh:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityLow
	default:
		return model.PriorityNone
	}
}

func (m Model) loadTodosCmd() tea.Cmd {
	if m.Svc == nil {
		return nil
	}
	svc := m.Svc
	return func() tea.Msg {
		active, err := svc.ActiveTodos(context.Background())
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		archived, err := svc.ArchivedTodos(context.Background())
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetTodosMsg{Active: active, Archived: archived}
	}
}

func (m Model) renderTodosView() string {
	now := m.Now()
	ordered := selection.ByPriorityGroups(m.Todos)
	selected := ""
	if todo, ok := m.selectedTodo(ordered); ok {
		selected = todo.ID
	}

	groups := []views.TodoGroupData{
		{Title: "High"}, {Title: "Medium"}, {Title: "Low"}, {Title: "Someday"}, {Title: "Done"},
	}
	for _, todo := range ordered {
		item := todoItemData(todo, now)
		switch {
		case todo.IsCompleted:
			groups[4].Items = append(groups[4].Items, item)
		case todo.Priority == model.PriorityHigh:
			groups[0].Items = append(groups[0].Items, item)
		case todo.Priority == model.PriorityMedium:
			groups[1].Items = append(groups[1].Items, item)
		case todo.Priority == model.PriorityLow:
			groups[2].Items = append(groups[2].Items, item)
		default:
			groups[3].Items = append(groups[3].Items, item)
		}
	}

	return views.RenderTodosPanel(views.TodosPanelData{
		Groups:     groups,
		SelectedID: selected,
	})
}

func todoItemData(todo model.Todo, now time.Time) views.TodoItemData {
	due := ""
	if at, ok := todo.DueAt(); ok {
		if todo.DueMinute != nil {
			due = at.Format("Jan 2 15:04")
		} else {
			due = at.Format("Jan 2")
		}
	}
	return views.TodoItemData{
		ID:           todo.ID,
		Icon:         todo.Icon,
		Title:        todo.Title,
		PriorityIcon: todo.Priority.Icon(),
		DueLabel:     due,
		Overdue:      todo.IsOverdue(now),
		Done:         todo.IsCompleted,
	}
}
