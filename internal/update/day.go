package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focald/internal/classify"
	"github.com/sandeepkv93/focald/internal/model"
	"github.com/sandeepkv93/focald/internal/placement"
	"github.com/sandeepkv93/focald/internal/views"
)

func (m Model) handleDayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.DayCursor = clamp(m.DayCursor+1, 0, len(m.DayTasks)-1)
		return m, nil
	case "k", "up":
		m.DayCursor = clamp(m.DayCursor-1, 0, len(m.DayTasks)-1)
		return m, nil
	case "h", "left":
		m.Date = m.Date.AddDate(0, 0, -1)
		m.DayCursor = 0
		return m, m.loadDayCmd()
	case "l", "right":
		m.Date = m.Date.AddDate(0, 0, 1)
		m.DayCursor = 0
		return m, m.loadDayCmd()
	case "t":
		m.Date = dayFloor(m.Now())
		m.DayCursor = 0
		return m, m.loadDayCmd()
	case "x", "enter":
		return m.toggleSelectedTask()
	}
	return m, nil
}

func (m Model) toggleSelectedTask() (tea.Model, tea.Cmd) {
	if m.Svc == nil || len(m.DayTasks) == 0 {
		return m, nil
	}
	task := m.DayTasks[m.DayCursor]
	svc := m.Svc
	toggle := func() tea.Msg {
		if _, err := svc.ToggleTask(context.Background(), task.ID); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: fmt.Sprintf("toggled: %s", task.Title)}
	}
	return m, tea.Sequence(toggle, m.loadDayCmd())
}

func (m Model) loadDayCmd() tea.Cmd {
	if m.Svc == nil {
		return nil
	}
	svc := m.Svc
	date := m.Date
	return func() tea.Msg {
		items, err := svc.TasksForDay(context.Background(), date)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetDayTasksMsg{Items: items}
	}
}

func (m Model) renderDayView() string {
	now := m.Now()
	conflicted := make(map[string]bool)
	for i := 0; i < len(m.DayTasks); i++ {
		for j := i + 1; j < len(m.DayTasks); j++ {
			if placement.Overlaps(placement.TaskInterval(m.DayTasks[i]), placement.TaskInterval(m.DayTasks[j])) {
				conflicted[m.DayTasks[i].ID] = true
				conflicted[m.DayTasks[j].ID] = true
			}
		}
	}

	items := make([]views.DayItemData, 0, len(m.DayTasks))
	selected := ""
	for i, task := range m.DayTasks {
		if i == m.DayCursor {
			selected = task.ID
		}
		items = append(items, views.DayItemData{
			ID:        task.ID,
			Icon:      task.Icon,
			Title:     task.Title,
			TimeRange: task.TimeRangeLabel(),
			Energy:    task.Energy.Icon(),
			Done:      task.IsCompleted,
			Conflict:  conflicted[task.ID],
		})
	}

	dayStart := m.Date.Add(time.Duration(m.DayWindow.StartHour) * time.Hour)
	dayEnd := m.Date.Add(time.Duration(m.DayWindow.EndHour) * time.Hour)
	minGap := time.Duration(m.DayWindow.MinGapMinutes) * time.Minute
	freeSlots := make([]string, 0)
	if free, err := placement.FreeIntervals(m.DayTasks, dayStart, dayEnd, minGap); err == nil {
		for _, iv := range free {
			freeSlots = append(freeSlots, fmt.Sprintf("%s (%s)", model.FormatTimeRange(iv.Start, iv.End), model.FormatDuration(iv.Duration())))
		}
	}

	nextIn := ""
	if wait, ok := placement.TimeUntilNext(now, m.DayTasks); ok {
		nextIn = model.FormatDuration(wait)
	}

	load := classify.DayLoad(m.DayTasks, m.Date)
	loadLabel := fmt.Sprintf("%.1f pts (%d%%)", load, classify.LoadPercent(load, classify.DefaultDayCapacity))

	panel := views.RenderDayPanel(views.DayPanelData{
		Date:       m.Date.Format("Monday, Jan 2"),
		Items:      items,
		FreeSlots:  freeSlots,
		LoadLabel:  loadLabel,
		SelectedID: selected,
		NextIn:     nextIn,
	})
	if len(m.DayTasks) > 0 {
		if notes := m.DayTasks[m.DayCursor].Notes; notes != "" {
			panel += "\nnotes:\n" + views.RenderMarkdown(notes)
		}
	}
	return panel
}
