package placement

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/focald/internal/model"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 2, 9, hour, minute, 0, 0, time.UTC)
}

func spanTask(id string, start time.Time, d time.Duration) model.Task {
	return model.Task{ID: id, Title: id, StartTime: start, Duration: d, Recurrence: model.NoRecurrence()}
}

func TestOverlapsSymmetry(t *testing.T) {
	cases := []struct {
		a, b Interval
		want bool
	}{
		{Interval{at(9, 0), at(10, 0)}, Interval{at(9, 30), at(11, 0)}, true},
		{Interval{at(9, 0), at(10, 0)}, Interval{at(10, 0), at(11, 0)}, false}, // touching
		{Interval{at(9, 0), at(10, 0)}, Interval{at(12, 0), at(13, 0)}, false},
		{Interval{at(9, 0), at(12, 0)}, Interval{at(10, 0), at(11, 0)}, true}, // containment
	}
	for i, tc := range cases {
		if got := Overlaps(tc.a, tc.b); got != tc.want {
			t.Fatalf("case %d: Overlaps = %v, want %v", i, got, tc.want)
		}
		if Overlaps(tc.a, tc.b) != Overlaps(tc.b, tc.a) {
			t.Fatalf("case %d: overlap not symmetric", i)
		}
	}

	self := Interval{at(9, 0), at(10, 0)}
	if !Overlaps(self, self) {
		t.Fatal("non-zero interval must overlap itself")
	}
}

func TestOccupiedSpansMerge(t *testing.T) {
	tasks := []model.Task{
		spanTask("b", at(9, 30), time.Hour),
		spanTask("a", at(9, 0), time.Hour),
		spanTask("c", at(10, 30), 30*time.Minute), // touches merged [9:00,10:30)
		spanTask("d", at(14, 0), time.Hour),
	}

	spans := OccupiedSpans(tasks)
	if len(spans) != 2 {
		t.Fatalf("expected 2 merged spans, got %d: %+v", len(spans), spans)
	}
	if !spans[0].Start.Equal(at(9, 0)) || !spans[0].End.Equal(at(11, 0)) {
		t.Fatalf("unexpected first span: %+v", spans[0])
	}
	if !spans[1].Start.Equal(at(14, 0)) || !spans[1].End.Equal(at(15, 0)) {
		t.Fatalf("unexpected second span: %+v", spans[1])
	}
}

func TestFreeIntervalsRoundTrip(t *testing.T) {
	dayStart, dayEnd := at(7, 0), at(22, 0)
	tasks := []model.Task{
		spanTask("breakfast", at(8, 0), 30*time.Minute),
		spanTask("standup", at(9, 0), 15*time.Minute),
		spanTask("deep", at(9, 15), 2*time.Hour), // touches standup
		spanTask("gym", at(18, 0), time.Hour),
	}

	free, err := FreeIntervals(tasks, dayStart, dayEnd, 0)
	if err != nil {
		t.Fatalf("free intervals: %v", err)
	}

	// Merge free gaps with occupied spans; together they must tile the day.
	all := append(append([]Interval{}, OccupiedSpans(tasks)...), free...)
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if Overlaps(all[i], all[j]) {
				t.Fatalf("double coverage between %+v and %+v", all[i], all[j])
			}
		}
	}
	var total time.Duration
	for _, iv := range all {
		total += iv.Duration()
	}
	if total != dayEnd.Sub(dayStart) {
		t.Fatalf("coverage %v does not tile the %v day", total, dayEnd.Sub(dayStart))
	}
}

func TestFreeIntervalsMinGapDropsSlivers(t *testing.T) {
	dayStart, dayEnd := at(9, 0), at(12, 0)
	tasks := []model.Task{
		spanTask("a", at(9, 0), time.Hour),
		spanTask("b", at(10, 3), 30*time.Minute), // 3 minute sliver after a
	}

	free, err := FreeIntervals(tasks, dayStart, dayEnd, DefaultMinGap)
	if err != nil {
		t.Fatalf("free intervals: %v", err)
	}
	if len(free) != 1 || !free[0].Start.Equal(at(10, 33)) || !free[0].End.Equal(at(12, 0)) {
		t.Fatalf("expected only the trailing gap, got %+v", free)
	}
}

func TestFreeIntervalsClipsToDayWindow(t *testing.T) {
	dayStart, dayEnd := at(9, 0), at(17, 0)
	// early sits entirely before the window, cross straddles day start,
	// late straddles day end.
	tasks := []model.Task{
		spanTask("early", at(6, 0), 2*time.Hour),
		spanTask("cross", at(8, 30), time.Hour),
		spanTask("late", at(16, 30), 2*time.Hour),
	}

	free, err := FreeIntervals(tasks, dayStart, dayEnd, 0)
	if err != nil {
		t.Fatalf("free intervals: %v", err)
	}
	if len(free) != 1 || !free[0].Start.Equal(at(9, 30)) || !free[0].End.Equal(at(16, 30)) {
		t.Fatalf("expected one clipped gap, got %+v", free)
	}
}

func TestFreeIntervalsValidation(t *testing.T) {
	_, err := FreeIntervals(nil, at(12, 0), at(9, 0), 0)
	var verr *model.ValidationError
	if !errors.As(err, &verr) || verr.Field != "day_end" {
		t.Fatalf("expected day_end validation error, got %v", err)
	}
	if _, err := FreeIntervals(nil, at(9, 0), at(12, 0), -time.Minute); err == nil {
		t.Fatal("expected negative min gap to fail")
	}
}

func TestTimeUntilNext(t *testing.T) {
	now := at(12, 0)
	tasks := []model.Task{
		spanTask("past", at(9, 0), time.Hour),
		spanTask("next", at(14, 30), time.Hour),
		spanTask("later", at(16, 0), time.Hour),
		spanTask("tomorrow", at(10, 0).AddDate(0, 0, 1), time.Hour),
	}

	wait, ok := TimeUntilNext(now, tasks)
	if !ok || wait != 2*time.Hour+30*time.Minute {
		t.Fatalf("unexpected wait: %v ok=%v", wait, ok)
	}

	if _, ok := TimeUntilNext(at(20, 0), tasks); ok {
		t.Fatal("expected nothing left today after the last start")
	}
}
