package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focald/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadDayCmd(), m.loadTodosCmd()}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForReminderCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Day:
			m.CurrentView = ViewDay
			return m, nil
		case m.Keys.Todos:
			m.CurrentView = ViewTodos
			return m, nil
		case m.Keys.Calm:
			m.CurrentView = ViewCalm
			return m, nil
		case m.Keys.Focus:
			m.CurrentView = ViewFocus
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewDay:
			return m.handleDayKey(typed)
		case ViewTodos:
			return m.handleTodosKey(typed)
		case ViewCalm:
			return m.handleCalmKey(typed)
		case ViewFocus:
			return m.handleFocusKey(typed)
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case SetDayTasksMsg:
		m.DayTasks = typed.Items
		m.DayCursor = clamp(m.DayCursor, 0, len(m.DayTasks)-1)
		return m, nil
	case SetTodosMsg:
		m.Todos = typed.Active
		m.Archived = typed.Archived
		m.TodoCursor = clamp(m.TodoCursor, 0, len(m.Todos)-1)
		return m, nil
	case FocusTickMsg:
		return m.onFocusTick()
	case ReminderDueMsg:
		m.ReminderLog = append(m.ReminderLog, typed.Event)
		if len(m.ReminderLog) > 20 {
			m.ReminderLog = m.ReminderLog[len(m.ReminderLog)-20:]
		}
		m.Status = StatusBar{Text: fmt.Sprintf("reminder: %s", typed.Event.Title), IsError: false}
		m.notify("Reminder", typed.Event.Title, "info")
		if m.Scheduler != nil {
			return m, waitForReminderCmd(m.Scheduler.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		status = fmt.Sprintf("status: %s", m.Status.Text)
	}
	mainPane := ""
	switch m.CurrentView {
	case ViewDay:
		mainPane = m.renderDayView()
	case ViewTodos:
		mainPane = m.renderTodosView()
	case ViewCalm:
		mainPane = m.renderCalmView()
	case ViewFocus:
		mainPane = m.renderFocusView()
	}
	sidePane := m.renderCommandPalette() + m.renderHelpIfVisible()

	notificationView := ""
	if len(m.ReminderLog) > 0 {
		last := m.ReminderLog[len(m.ReminderLog)-1]
		notificationView = views.RenderNotification("info", fmt.Sprintf("%s @ %s", last.Title, last.TriggerAt.Format("15:04")))
	}

	return views.RenderApp(views.AppData{
		Header:        fmt.Sprintf("focald | view: %s | %s", m.CurrentView, m.Date.Format("Mon Jan 2")),
		MainPane:      mainPane,
		SidePane:      sidePane,
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Notification:  notificationView,
		Footer:        fmt.Sprintf("keys: %s day | %s todos | %s calm | %s focus | / cmd | %s help | %s quit", m.Keys.Day, m.Keys.Todos, m.Keys.Calm, m.Keys.Focus, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewDay, ViewTodos, ViewCalm, ViewFocus:
		return true
	default:
		return false
	}
}
