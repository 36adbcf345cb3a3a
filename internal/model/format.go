package model

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration the way the cards do: "1h 30m", "1h",
// "45m"; zero is "0m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Minute)
	hours := total / 60
	minutes := total % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

func FormatTimeRange(start, end time.Time) string {
	return FormatClock(start) + " - " + FormatClock(end)
}
