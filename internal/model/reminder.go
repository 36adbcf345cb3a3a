package model

import "time"

// ReminderOption is the lead time before a task's start (or a todo's due
// instant) at which a reminder should fire.
type ReminderOption string

const (
	ReminderNone     ReminderOption = "None"
	ReminderFiveMin  ReminderOption = "5 min"
	ReminderQuarter  ReminderOption = "15 min"
	ReminderHalfHour ReminderOption = "30 min"
	ReminderOneHour  ReminderOption = "1 hour"
)

func (r ReminderOption) IsValid() bool {
	switch r {
	case ReminderNone, ReminderFiveMin, ReminderQuarter, ReminderHalfHour, ReminderOneHour, "":
		return true
	default:
		return false
	}
}

// Offset reports the lead time; ok is false when no reminder is wanted.
func (r ReminderOption) Offset() (time.Duration, bool) {
	switch r {
	case ReminderFiveMin:
		return 5 * time.Minute, true
	case ReminderQuarter:
		return 15 * time.Minute, true
	case ReminderHalfHour:
		return 30 * time.Minute, true
	case ReminderOneHour:
		return time.Hour, true
	default:
		return 0, false
	}
}
