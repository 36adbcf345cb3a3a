package model

import (
	"fmt"
	"time"
)

type RecurrenceKind string

const (
	RecurrenceNone   RecurrenceKind = "None"
	RecurrenceDaily  RecurrenceKind = "Daily"
	RecurrenceWeekly RecurrenceKind = "Weekly"
	RecurrenceCustom RecurrenceKind = "Custom"
)

func (k RecurrenceKind) IsValid() bool {
	switch k {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceCustom:
		return true
	default:
		return false
	}
}

// RecurrenceRule decides on which calendar days a record repeats. Days is
// only consulted for the Custom kind. A Custom rule with an empty day set is
// valid but never matches; repeating daily by accident would be worse than
// not repeating at all.
type RecurrenceRule struct {
	Kind RecurrenceKind
	Days WeekdaySet
}

func NoRecurrence() RecurrenceRule {
	return RecurrenceRule{Kind: RecurrenceNone}
}

func (r RecurrenceRule) Validate() error {
	if !r.Kind.IsValid() {
		return invalidf("recurrence", "unknown kind %q", r.Kind)
	}
	return nil
}

func (r RecurrenceRule) IsRecurring() bool {
	return r.Kind != RecurrenceNone && r.Kind != ""
}

// OccursOn reports whether a record anchored at anchor occurs on the
// calendar day of date. Comparisons are day-granular; the anchor's clock
// time plays no part here.
func (r RecurrenceRule) OccursOn(anchor, date time.Time) bool {
	anchorDay := dayFloor(anchor)
	day := dayFloor(date)

	switch r.Kind {
	case RecurrenceNone, "":
		return day.Equal(anchorDay)
	case RecurrenceDaily:
		return !day.Before(anchorDay)
	case RecurrenceWeekly:
		return !day.Before(anchorDay) && day.Weekday() == anchorDay.Weekday()
	case RecurrenceCustom:
		if r.Days.IsEmpty() {
			return false
		}
		return !day.Before(anchorDay) && r.Days.Has(day.Weekday())
	default:
		return false
	}
}

// NextOccurrence returns the first occurrence instant strictly after
// `after`, carrying the anchor's clock time onto the matched day. ok is
// false when no further occurrence exists.
func (r RecurrenceRule) NextOccurrence(anchor, after time.Time) (time.Time, bool) {
	switch r.Kind {
	case RecurrenceNone, "":
		if anchor.After(after) {
			return anchor, true
		}
		return time.Time{}, false
	case RecurrenceCustom:
		if r.Days.IsEmpty() {
			return time.Time{}, false
		}
	}

	probe := dayFloor(after)
	if candidate := withAnchorClock(probe, anchor); !candidate.After(after) {
		probe = probe.AddDate(0, 0, 1)
	}
	if anchorDay := dayFloor(anchor); probe.Before(anchorDay) {
		probe = anchorDay
	}
	// A match is at most one week out for every recurring kind.
	for i := 0; i < 8; i++ {
		if r.OccursOn(anchor, probe) {
			occ := withAnchorClock(probe, anchor)
			if occ.After(after) {
				return occ, true
			}
		}
		probe = probe.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// PreviousOccurrence returns the last occurrence instant strictly before
// `before`, or ok=false when the rule had not started yet.
func (r RecurrenceRule) PreviousOccurrence(anchor, before time.Time) (time.Time, bool) {
	switch r.Kind {
	case RecurrenceNone, "":
		if anchor.Before(before) {
			return anchor, true
		}
		return time.Time{}, false
	case RecurrenceCustom:
		if r.Days.IsEmpty() {
			return time.Time{}, false
		}
	}

	anchorDay := dayFloor(anchor)
	probe := dayFloor(before)
	if candidate := withAnchorClock(probe, anchor); !candidate.Before(before) {
		probe = probe.AddDate(0, 0, -1)
	}
	for i := 0; i < 8; i++ {
		if probe.Before(anchorDay) {
			return time.Time{}, false
		}
		if r.OccursOn(anchor, probe) {
			occ := withAnchorClock(probe, anchor)
			if occ.Before(before) {
				return occ, true
			}
		}
		probe = probe.AddDate(0, 0, -1)
	}
	return time.Time{}, false
}

// DisplayLabel renders the rule for pickers and capsules.
func (r RecurrenceRule) DisplayLabel() string {
	switch r.Kind {
	case RecurrenceNone, "":
		return "None"
	case RecurrenceDaily:
		return "Daily"
	case RecurrenceWeekly:
		return "Weekly"
	case RecurrenceCustom:
		return r.Days.Label()
	default:
		return fmt.Sprintf("Unknown (%s)", string(r.Kind))
	}
}

func dayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return dayFloor(a).Equal(dayFloor(b))
}

func withAnchorClock(date time.Time, anchor time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
}
