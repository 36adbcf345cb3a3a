package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focald/internal/scheduler"
)

// waitForReminderCmd blocks on the engine's delivery channel and turns the
// next due event into a message. The Update loop re-arms it after every
// ReminderDueMsg so exactly one reader is waiting at a time.
func waitForReminderCmd(ch <-chan scheduler.ReminderEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}
