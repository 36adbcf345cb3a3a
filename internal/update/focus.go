package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focald/internal/classify"
	"github.com/sandeepkv93/focald/internal/selection"
	"github.com/sandeepkv93/focald/internal/views"
)

func (m Model) handleFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "space":
		m.Focus.Running = !m.Focus.Running
		if m.Focus.Running {
			return m, focusTickCmd()
		}
		return m, nil
	case "r":
		m.Focus.Running = false
		m.Focus.Phase = FocusPhaseWork
		m.Focus.RemainingSec = m.Focus.WorkDurationSec
		return m, nil
	case "n":
		m = m.advanceFocusPhase()
		return m, nil
	case "x", "enter":
		if next, ok := selection.NextByPriority(m.Todos); ok {
			m.Focus.CompletedNow++
			return m.runTodoMutation(next, "done", func(svc todoService, id string) error {
				_, err := svc.ToggleTodo(context.Background(), id)
				return err
			})
		}
	}
	return m, nil
}

func (m Model) onFocusTick() (tea.Model, tea.Cmd) {
	if !m.Focus.Running {
		return m, nil
	}
	m.Focus.RemainingSec--
	if m.Focus.RemainingSec <= 0 {
		m = m.advanceFocusPhase()
		return m, nil
	}
	return m, focusTickCmd()
}

func (m Model) advanceFocusPhase() Model {
	m.Focus.Running = false
	if m.Focus.Phase == FocusPhaseWork {
		m.Focus.Phase = FocusPhaseBreak
		m.Focus.RemainingSec = m.Focus.BreakDurationSec
	} else {
		m.Focus.Phase = FocusPhaseWork
		m.Focus.RemainingSec = m.Focus.WorkDurationSec
	}
	return m
}

func focusTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FocusTickMsg{} })
}

func (m Model) renderFocusView() string {
	data := views.FocusPanelData{
		Phase:        string(m.Focus.Phase),
		Timer:        fmt.Sprintf("%02d:%02d", m.Focus.RemainingSec/60, m.Focus.RemainingSec%60),
		CompletedNow: m.Focus.CompletedNow,
	}

	total := m.Focus.WorkDurationSec
	if m.Focus.Phase == FocusPhaseBreak {
		total = m.Focus.BreakDurationSec
	}
	pct := 0.0
	if total > 0 {
		pct = 1 - float64(m.Focus.RemainingSec)/float64(total)
	}
	data.ProgressView = m.focusProgress.ViewAs(pct)
	data.ProgressPct = int(pct * 100)

	if next, ok := selection.NextByPriority(m.Todos); ok {
		data.TaskTitle = next.Title
		data.Tier = classify.EffortTier(next).String()
	} else {
		switch selection.Outcome(m.Todos, m.Focus.CompletedNow) {
		case selection.SessionAllDone:
			data.Outcome = "all done, take the win"
			data.ShowEndPrompt = true
		default:
			data.Outcome = "(nothing to focus on)"
		}
	}
	return views.RenderFocusPanel(data)
}
