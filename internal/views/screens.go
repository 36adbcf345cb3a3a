package views

import (
	"fmt"
	"strings"
)

type DayItemData struct {
	ID        string
	Icon      string
	Title     string
	TimeRange string
	Energy    string
	Done      bool
	Conflict  bool
}

type DayPanelData struct {
	Date       string
	Items      []DayItemData
	FreeSlots  []string
	LoadLabel  string
	SelectedID string
	NextIn     string
}

type TodoItemData struct {
	ID           string
	Icon         string
	Title        string
	PriorityIcon string
	DueLabel     string
	Overdue      bool
	Done         bool
}

type TodosPanelData struct {
	Groups     []TodoGroupData
	SelectedID string
	Category   string
}

type TodoGroupData struct {
	Title string
	Items []TodoItemData
}

type CalmPanelData struct {
	Energy    string
	Hero      *TodoItemData
	UpNext    []TodoItemData
	Remaining int
	ShowAll   bool
	AllClear  bool
}

type FocusPanelData struct {
	TaskTitle     string
	Tier          string
	Phase         string
	Timer         string
	ProgressView  string
	ProgressPct   int
	CompletedNow  int
	Outcome       string
	ShowEndPrompt bool
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDayPanel(data DayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("day: %s\n", data.Date))
	b.WriteString("actions: [j/k]move [x]done [h/l]day [1]day [2]todos [3]calm [4]focus\n")
	if data.LoadLabel != "" {
		b.WriteString(fmt.Sprintf("load: %s\n", data.LoadLabel))
	}
	if data.NextIn != "" {
		b.WriteString(fmt.Sprintf("next task in: %s\n", data.NextIn))
	}
	if len(data.Items) == 0 {
		b.WriteString("\n(nothing scheduled)")
		return strings.TrimSpace(b.String())
	}
	b.WriteString("\n")
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		check := "[ ]"
		if item.Done {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s %s %s", cursor, check, item.TimeRange, item.Icon, item.Title, item.Energy))
		if item.Conflict {
			b.WriteString(" !overlap")
		}
		b.WriteString("\n")
	}
	if len(data.FreeSlots) > 0 {
		b.WriteString("\nfree:\n")
		for _, slot := range data.FreeSlots {
			b.WriteString("  " + slot + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderTodosPanel(data TodosPanelData) string {
	var b strings.Builder
	b.WriteString("todos:\n")
	b.WriteString("actions: [j/k]move [x]done [a]archive [p]priority [1-4]views\n")
	if data.Category != "" {
		b.WriteString(fmt.Sprintf("category: %s\n", data.Category))
	}
	empty := true
	for _, group := range data.Groups {
		if len(group.Items) == 0 {
			continue
		}
		empty = false
		b.WriteString(fmt.Sprintf("\n%s:\n", group.Title))
		for _, item := range group.Items {
			b.WriteString(renderTodoLine(item, data.SelectedID) + "\n")
		}
	}
	if empty {
		b.WriteString("\n(no todos)")
	}
	return strings.TrimSpace(b.String())
}

func RenderCalmPanel(data CalmPanelData) string {
	var b strings.Builder
	b.WriteString("calm:\n")
	b.WriteString(fmt.Sprintf("energy: %s\n", data.Energy))
	b.WriteString("actions: [e]energy [s]skip [x]done [a]show-all\n")
	if data.AllClear {
		b.WriteString("\nall clear: nothing needs you right now")
		return strings.TrimSpace(b.String())
	}
	if data.Hero != nil {
		b.WriteString("\nnow:\n")
		b.WriteString(renderTodoLine(*data.Hero, data.Hero.ID) + "\n")
	}
	if len(data.UpNext) > 0 {
		b.WriteString("\nup next:\n")
		for _, item := range data.UpNext {
			b.WriteString(renderTodoLine(item, "") + "\n")
		}
	}
	if data.Remaining > 0 && !data.ShowAll {
		b.WriteString(fmt.Sprintf("\n(+%d more)", data.Remaining))
	}
	return strings.TrimSpace(b.String())
}

func RenderFocusPanel(data FocusPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	if data.TaskTitle != "" {
		b.WriteString(fmt.Sprintf("task: %s [%s]\n", data.TaskTitle, data.Tier))
	} else {
		b.WriteString(fmt.Sprintf("task: %s\n", data.Outcome))
	}
	b.WriteString(fmt.Sprintf("phase: %s\n", strings.ToUpper(data.Phase)))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("completed this session: %d\n", data.CompletedNow))
	b.WriteString("actions: [space]start/pause [x]done [r]reset [n]next-phase\n")
	if data.ShowEndPrompt {
		b.WriteString("prompt: session ended, press [n] to continue")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderTodoLine(item TodoItemData, selectedID string) string {
	cursor := " "
	if selectedID != "" && selectedID == item.ID {
		cursor = ">"
	}
	check := "[ ]"
	if item.Done {
		check = "[x]"
	}
	line := fmt.Sprintf("%s %s %s %s %s", cursor, check, item.PriorityIcon, item.Icon, item.Title)
	if item.DueLabel != "" {
		if item.Overdue {
			line += fmt.Sprintf(" overdue:%s", item.DueLabel)
		} else {
			line += fmt.Sprintf(" due:%s", item.DueLabel)
		}
	}
	return line
}
