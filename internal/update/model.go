package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/focald/internal/config"
	"github.com/sandeepkv93/focald/internal/model"
	"github.com/sandeepkv93/focald/internal/scheduler"
	"github.com/sandeepkv93/focald/internal/selection"
	"github.com/sandeepkv93/focald/internal/store"
)

type View string

const (
	ViewDay   View = "Day"
	ViewTodos View = "Todos"
	ViewCalm  View = "Calm"
	ViewFocus View = "Focus"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Day   string
	Todos string
	Calm  string
	Focus string
	Help  string
	Quit  string
}

type FocusPhase string

const (
	FocusPhaseWork  FocusPhase = "work"
	FocusPhaseBreak FocusPhase = "break"
)

type FocusState struct {
	WorkDurationSec  int
	BreakDurationSec int
	RemainingSec     int
	Running          bool
	Phase            FocusPhase
	CompletedNow     int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView View
	Date        time.Time
	Now         func() time.Time

	DayTasks   []model.Task
	Todos      []model.Todo
	Archived   []model.Todo
	DayCursor  int
	TodoCursor int

	Energy  selection.UserEnergy
	Skipped map[string]bool
	ShowAll bool

	Focus FocusState

	Svc         *store.Service
	Scheduler   *scheduler.Engine
	ReminderLog []scheduler.ReminderEvent

	Palette        CommandPaletteState
	HelpVisible    bool
	DesktopEnabled bool
	notifier       DesktopNotifier

	Status    StatusBar
	Keys      GlobalKeyMap
	Quitting  bool
	LastError error

	DayWindow   config.DayConfig
	UpNextLimit int

	commandInput  textinput.Model
	focusProgress progress.Model
	helpModel     help.Model
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SetDayTasksMsg struct {
	Items []model.Task
}

type SetTodosMsg struct {
	Active   []model.Todo
	Archived []model.Todo
}

type FocusTickMsg struct{}

type ReminderDueMsg struct {
	Event scheduler.ReminderEvent
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewDay,
		Now:         func() time.Time { return time.Now().UTC() },
		Energy:      selection.UserEnergyMedium,
		Skipped:     make(map[string]bool),
		Focus: FocusState{
			WorkDurationSec:  25 * 60,
			BreakDurationSec: 5 * 60,
			RemainingSec:     25 * 60,
			Phase:            FocusPhaseWork,
		},
		DesktopEnabled: false,
		notifier:       NoopDesktopNotifier{},
		DayWindow: config.DayConfig{
			StartHour:     7,
			EndHour:       22,
			MinGapMinutes: 5,
		},
		UpNextLimit: selection.DefaultUpNextLimit,
		Keys: GlobalKeyMap{
			Day:   "1",
			Todos: "2",
			Calm:  "3",
			Focus: "4",
			Help:  "?",
			Quit:  "q",
		},
	}
	m.Date = dayFloor(m.Now())
	m.initBubbleComponents()
	return m
}

func NewModelWithRuntime(svc *store.Service, engine *scheduler.Engine, notifier DesktopNotifier, cfg *config.Config) Model {
	m := NewModel()
	m.Svc = svc
	m.Scheduler = engine
	if notifier != nil {
		m.notifier = notifier
	}
	if cfg != nil {
		m.DesktopEnabled = cfg.Notifications.Desktop
		m.DayWindow = cfg.Day
		if cfg.Calm.UpNextLimit > 0 {
			m.UpNextLimit = cfg.Calm.UpNextLimit
		}
		if cfg.Focus.WorkMinutes > 0 {
			m.Focus.WorkDurationSec = cfg.Focus.WorkMinutes * 60
		}
		if cfg.Focus.BreakMinutes > 0 {
			m.Focus.BreakDurationSec = cfg.Focus.BreakMinutes * 60
		}
		m.Focus.RemainingSec = m.Focus.WorkDurationSec
	}
	return m
}

func (m *Model) initBubbleComponents() {
	input := textinput.New()
	input.Placeholder = "add pay rent !high #finance"
	input.CharLimit = 120
	m.commandInput = input

	m.focusProgress = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
}

func (m *Model) notify(title, body, level string) {
	if !m.DesktopEnabled || m.notifier == nil {
		return
	}
	_ = m.notifier.Send(Notification{Title: title, Body: body, Level: level, At: m.Now()})
}

func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
