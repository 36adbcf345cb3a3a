package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focald/internal/commands"
	"github.com/sandeepkv93/focald/internal/model"
	"github.com/sandeepkv93/focald/internal/selection"
	"github.com/sandeepkv93/focald/internal/suggest"
	"github.com/sandeepkv93/focald/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var followups []tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if m.Svc == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeHandlerMissing, Message: "storage not attached"}
			}
			todo := model.Todo{
				Title:    a.Title,
				Priority: priorityFromToken(a.Priority),
				Category: a.Category,
				Icon:     suggest.Icon(a.Title),
				Color:    suggest.Color(a.Title),
			}
			created, err := m.Svc.CreateTodo(context.Background(), todo)
			if err != nil {
				return commands.Result{}, err
			}
			followups = append(followups, m.loadTodosCmd())
			return commands.Result{Message: fmt.Sprintf("added todo: %s", created.Title)}, nil
		},
		Task: func(a commands.TaskArgs) (commands.Result, error) {
			if m.Svc == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeHandlerMissing, Message: "storage not attached"}
			}
			start := m.Now()
			if a.At != "" {
				start = clockOn(m.Date, a.At)
			}
			task := model.Task{
				Title:     a.Title,
				StartTime: start,
				Icon:      suggest.Icon(a.Title),
				Color:     suggest.Color(a.Title),
			}
			created, err := m.Svc.CreateTask(context.Background(), task)
			if err != nil {
				return commands.Result{}, err
			}
			followups = append(followups, m.loadDayCmd())
			return commands.Result{Message: fmt.Sprintf("added task: %s at %s", created.Title, created.StartTime.Format("15:04"))}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			if m.Svc == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeHandlerMissing, Message: "storage not attached"}
			}
			todo, ok := findTodoByTitle(m.Todos, a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo matching %q", a.Target)}
			}
			if _, err := m.Svc.ToggleTodo(context.Background(), todo.ID); err != nil {
				return commands.Result{}, err
			}
			followups = append(followups, m.loadTodosCmd())
			return commands.Result{Message: fmt.Sprintf("done: %s", todo.Title)}, nil
		},
		Skip: func(a commands.TargetArgs) (commands.Result, error) {
			todo, ok := findTodoByTitle(m.Todos, a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo matching %q", a.Target)}
			}
			m.Skipped[todo.ID] = true
			return commands.Result{Message: fmt.Sprintf("skipped: %s", todo.Title)}, nil
		},
		Archive: func(a commands.TargetArgs) (commands.Result, error) {
			if m.Svc == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeHandlerMissing, Message: "storage not attached"}
			}
			todo, ok := findTodoByTitle(m.Todos, a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo matching %q", a.Target)}
			}
			if _, err := m.Svc.ArchiveTodo(context.Background(), todo.ID); err != nil {
				return commands.Result{}, err
			}
			followups = append(followups, m.loadTodosCmd())
			return commands.Result{Message: fmt.Sprintf("archived: %s", todo.Title)}, nil
		},
		Unarchive: func(a commands.TargetArgs) (commands.Result, error) {
			if m.Svc == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeHandlerMissing, Message: "storage not attached"}
			}
			todo, ok := findTodoByTitle(m.Archived, a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no archived todo matching %q", a.Target)}
			}
			if _, err := m.Svc.UnarchiveTodo(context.Background(), todo.ID); err != nil {
				return commands.Result{}, err
			}
			followups = append(followups, m.loadTodosCmd())
			return commands.Result{Message: fmt.Sprintf("restored: %s", todo.Title)}, nil
		},
		Energy: func(a commands.EnergyArgs) (commands.Result, error) {
			m.Energy = selection.UserEnergy(a.Level)
			m.CurrentView = ViewCalm
			return commands.Result{Message: fmt.Sprintf("energy set to %s", a.Level)}, nil
		},
		Priority: func(a commands.PriorityArgs) (commands.Result, error) {
			if m.Svc == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeHandlerMissing, Message: "storage not attached"}
			}
			todo, ok := findTodoByTitle(m.Todos, a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo matching %q", a.Target)}
			}
			level := priorityFromToken(a.Level)
			if _, err := m.Svc.SetTodoPriority(context.Background(), todo.ID, level); err != nil {
				return commands.Result{}, err
			}
			followups = append(followups, m.loadTodosCmd())
			return commands.Result{Message: fmt.Sprintf("priority %s: %s", strings.ToLower(string(level)), todo.Title)}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			switch a.Subject {
			case "today":
				m.CurrentView = ViewDay
				m.Date = dayFloor(m.Now())
				followups = append(followups, m.loadDayCmd())
			case "todos", "archived":
				m.CurrentView = ViewTodos
			case "calm":
				m.CurrentView = ViewCalm
			case "focus":
				m.CurrentView = ViewFocus
			}
			if a.Category != "" {
				followups = append(followups, m.loadCategoryCmd(a.Category))
				return commands.Result{Message: fmt.Sprintf("showing %s in #%s", a.Subject, a.Category)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("showing %s", a.Subject)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	if len(followups) == 0 {
		return m, nil
	}
	return m, tea.Batch(followups...)
}

func (m Model) loadCategoryCmd(category string) tea.Cmd {
	if m.Svc == nil {
		return nil
	}
	svc := m.Svc
	archived := m.Archived
	return func() tea.Msg {
		items, err := svc.TodosInCategory(context.Background(), category)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetTodosMsg{Active: items, Archived: archived}
	}
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

// findTodoByTitle resolves a palette target against todo titles, exact
// match first, then unique-enough prefix, case-insensitive throughout.
func findTodoByTitle(todos []model.Todo, target string) (model.Todo, bool) {
	want := strings.ToLower(strings.TrimSpace(target))
	if want == "" {
		return model.Todo{}, false
	}
	for _, todo := range todos {
		if strings.ToLower(todo.Title) == want {
			return todo, true
		}
	}
	for _, todo := range todos {
		if strings.HasPrefix(strings.ToLower(todo.Title), want) {
			return todo, true
		}
	}
	return model.Todo{}, false
}

func priorityFromToken(token string) model.Priority {
	switch strings.ToLower(token) {
	case "high":
		return model.PriorityHigh
	case "medium":
		return model.PriorityMedium
	case "low":
		return model.PriorityLow
	default:
		return model.PriorityNone
	}
}

// clockOn pins an "HH:MM" clock onto the given calendar day. The clock is
// pre-validated by the command parser.
func clockOn(day time.Time, clock string) time.Time {
	parts := strings.SplitN(clock, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
