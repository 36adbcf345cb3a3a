package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	mainPaneWidth = 64
	sidePaneWidth = 42
)

type AppData struct {
	Header        string
	MainPane      string
	SidePane      string
	StatusLine    string
	StatusIsError bool
	Notification  string
	Footer        string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("174"))
	mainStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(mainPaneWidth)
	sideStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(sidePaneWidth)
	noticeStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(lipgloss.Color("179"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// RenderApp lays out the shell: one wide pane for the current view, with a
// side pane that only appears while the palette or help panel has content.
func RenderApp(data AppData) string {
	row := mainStyle.Render(data.MainPane)
	if strings.TrimSpace(data.SidePane) != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, sideStyle.Render(data.SidePane))
	}

	lines := []string{headerStyle.Render(data.Header), row}
	if data.StatusLine != "" {
		style := statusStyle
		if data.StatusIsError {
			style = errorStyle
		}
		lines = append(lines, style.Render(data.StatusLine))
	}
	if data.Notification != "" {
		lines = append(lines, noticeStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders task notes, wrapped to fit inside the main pane.
// On renderer failure the raw markdown is better than nothing.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(mainPaneWidth-4),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
