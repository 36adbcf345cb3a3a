// Package placement answers "does this fit" questions about a day's
// schedule: interval overlap, merged occupied spans, the free gaps between
// them, and how long until the next task starts.
package placement

import (
	"sort"
	"time"

	"github.com/sandeepkv93/focald/internal/model"
)

// DefaultMinGap is the smallest free gap worth surfacing; anything shorter
// is visual noise on the timeline.
const DefaultMinGap = 5 * time.Minute

// Interval is a half-open [Start, End) span of the day.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Duration() time.Duration { return iv.End.Sub(iv.Start) }

// TaskInterval is the span a task occupies.
func TaskInterval(t model.Task) Interval {
	return Interval{Start: t.StartTime, End: t.EndTime()}
}

// Overlaps uses half-open semantics: touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// OccupiedSpans merges the tasks' intervals into non-overlapping spans
// sorted by start. Adjacent spans are coalesced; a back-to-back schedule is
// one block, not many.
func OccupiedSpans(tasks []model.Task) []Interval {
	if len(tasks) == 0 {
		return nil
	}
	spans := make([]Interval, 0, len(tasks))
	for _, t := range tasks {
		spans = append(spans, TaskInterval(t))
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start.Before(spans[j].Start) })

	merged := spans[:1]
	for _, span := range spans[1:] {
		last := &merged[len(merged)-1]
		if !span.Start.After(last.End) {
			if span.End.After(last.End) {
				last.End = span.End
			}
			continue
		}
		merged = append(merged, span)
	}
	return merged
}

// FreeIntervals returns the gaps between occupied spans inside
// [dayStart, dayEnd), dropping gaps shorter than minGap. Pass minGap zero
// to keep every gap.
func FreeIntervals(tasks []model.Task, dayStart, dayEnd time.Time, minGap time.Duration) ([]Interval, error) {
	if !dayStart.Before(dayEnd) {
		return nil, &model.ValidationError{Field: "day_end", Reason: "day end must be after day start"}
	}
	if minGap < 0 {
		return nil, &model.ValidationError{Field: "min_gap", Reason: "negative minimum gap"}
	}

	free := make([]Interval, 0, len(tasks)+1)
	cursor := dayStart
	for _, span := range OccupiedSpans(tasks) {
		if !span.End.After(dayStart) || !span.Start.Before(dayEnd) {
			continue
		}
		if span.Start.After(cursor) {
			free = append(free, Interval{Start: cursor, End: minTime(span.Start, dayEnd)})
		}
		if span.End.After(cursor) {
			cursor = span.End
		}
	}
	if cursor.Before(dayEnd) {
		free = append(free, Interval{Start: cursor, End: dayEnd})
	}

	if minGap == 0 {
		return free, nil
	}
	kept := free[:0]
	for _, gap := range free {
		if gap.Duration() >= minGap {
			kept = append(kept, gap)
		}
	}
	return kept, nil
}

// TimeUntilNext is the wait until the first task starting strictly after
// now on now's calendar day; ok is false when nothing remains today.
func TimeUntilNext(now time.Time, tasks []model.Task) (time.Duration, bool) {
	var best time.Time
	found := false
	for _, t := range tasks {
		if !t.StartTime.After(now) || !sameDay(t.StartTime, now) {
			continue
		}
		if !found || t.StartTime.Before(best) {
			best = t.StartTime
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best.Sub(now), true
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
