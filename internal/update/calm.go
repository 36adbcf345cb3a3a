package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focald/internal/selection"
	"github.com/sandeepkv93/focald/internal/views"
)

func (m Model) handleCalmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		m.Energy = cycleEnergy(m.Energy)
		m.Status = StatusBar{Text: "energy: " + string(m.Energy)}
		return m, nil
	case "s":
		if result := m.calmResult(); result.HasHero {
			m.Skipped[result.Hero.ID] = true
			m.Status = StatusBar{Text: "skipped: " + result.Hero.Title}
		}
		return m, nil
	case "a":
		m.ShowAll = !m.ShowAll
		return m, nil
	case "x", "enter":
		if result := m.calmResult(); result.HasHero {
			return m.runTodoMutation(result.Hero, "done", func(svc todoService, id string) error {
				_, err := svc.ToggleTodo(context.Background(), id)
				return err
			})
		}
	}
	return m, nil
}

func (m Model) calmResult() selection.CalmResult {
	return selection.EnergyMatched(m.Todos, m.Now(), selection.CalmParams{
		Energy:  m.Energy,
		Skipped: m.Skipped,
		Limit:   m.UpNextLimit,
		ShowAll: m.ShowAll,
	})
}

func (m Model) renderCalmView() string {
	now := m.Now()
	result := m.calmResult()

	data := views.CalmPanelData{
		Energy:    string(m.Energy),
		Remaining: result.Remaining,
		ShowAll:   m.ShowAll,
		AllClear:  !result.HasHero,
	}
	if result.HasHero {
		hero := todoItemData(result.Hero, now)
		data.Hero = &hero
		for _, todo := range result.UpNext {
			data.UpNext = append(data.UpNext, todoItemData(todo, now))
		}
	}
	return views.RenderCalmPanel(data)
}

func cycleEnergy(e selection.UserEnergy) selection.UserEnergy {
	switch e {
	case selection.UserEnergyLow:
		return selection.UserEnergyMedium
	case selection.UserEnergyMedium:
		return selection.UserEnergyHigh
	default:
		return selection.UserEnergyLow
	}
}
