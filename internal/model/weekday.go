package model

import (
	"strings"
	"time"
)

// WeekdaySet is a bitmask over time.Weekday (bit 0 = Sunday, matching the
// 0-based day indexing used across the app).
type WeekdaySet uint8

const allWeekdayBits WeekdaySet = 1<<7 - 1

var (
	Weekdays = NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	Weekends = NewWeekdaySet(time.Sunday, time.Saturday)
	Everyday = Weekdays | Weekends
)

var shortDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// WeekdaySetFromIndexes builds a set from raw 0-6 day indexes, rejecting
// anything outside that range.
func WeekdaySetFromIndexes(indexes []int) (WeekdaySet, error) {
	var s WeekdaySet
	for _, idx := range indexes {
		if idx < 0 || idx > 6 {
			return 0, invalidf("repeat_days", "day index %d outside 0-6", idx)
		}
		s |= 1 << uint(idx)
	}
	return s, nil
}

func (s WeekdaySet) Has(d time.Weekday) bool { return s&(1<<uint(d)) != 0 }

func (s WeekdaySet) Add(d time.Weekday) WeekdaySet { return s | 1<<uint(d) }

func (s WeekdaySet) Remove(d time.Weekday) WeekdaySet { return s &^ (1 << uint(d)) }

func (s WeekdaySet) IsEmpty() bool { return s&allWeekdayBits == 0 }

func (s WeekdaySet) Count() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

func (s WeekdaySet) Days() []time.Weekday {
	out := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Label maps the set back to a display name. The preset match is lossy
// best-effort, checked as weekdays, then weekends, then every day; anything
// else lists short day names ascending by day index.
func (s WeekdaySet) Label() string {
	switch s & allWeekdayBits {
	case Weekdays:
		return "Weekdays"
	case Weekends:
		return "Weekends"
	case Everyday:
		return "Every day"
	case 0:
		return "Never"
	}
	names := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			names = append(names, shortDayNames[d])
		}
	}
	return strings.Join(names, ", ")
}
