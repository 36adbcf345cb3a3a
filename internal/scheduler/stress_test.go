package scheduler

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// Workers schedule near-term task and todo reminders alongside far-future
// ones for per-worker "held" records; the held records are then canceled in
// bulk. Every near-term event must be delivered and nothing held may fire.
func TestEngineStressScheduleAndCancel(t *testing.T) {
	engine := NewEngine(4096)
	engine.Start()
	defer engine.Stop()

	const workers = 8
	const perWorker = 150
	deliverTotal := workers * perWorker

	now := time.Now().UTC()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				kind := KindTask
				if i%2 == 1 {
					kind = KindTodo
				}
				due := ReminderEvent{
					ID:        fmt.Sprintf("due-%d-%d", w, i),
					RecordID:  fmt.Sprintf("record-%d-%d", w, i),
					Kind:      kind,
					Title:     fmt.Sprintf("reminder %d/%d", w, i),
					TriggerAt: now.Add(time.Duration((w+i)%50+10) * time.Millisecond),
				}
				if err := engine.Schedule(due); err != nil {
					t.Errorf("schedule due event: %v", err)
					return
				}
				held := ReminderEvent{
					ID:        fmt.Sprintf("held-%d-%d", w, i),
					RecordID:  fmt.Sprintf("held-record-%d", w),
					Kind:      kind,
					Title:     fmt.Sprintf("held %d/%d", w, i),
					TriggerAt: now.Add(time.Hour),
				}
				if err := engine.Schedule(held); err != nil {
					t.Errorf("schedule held event: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	canceled := 0
	for w := 0; w < workers; w++ {
		canceled += engine.CancelRecord(fmt.Sprintf("held-record-%d", w))
	}
	if canceled != deliverTotal {
		t.Fatalf("unexpected cancel count: got=%d want=%d", canceled, deliverTotal)
	}

	deadline := time.After(5 * time.Second)
	received := 0
	for received < deliverTotal {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting events: received=%d total=%d dropped=%d", received, deliverTotal, engine.Dropped())
		case ev := <-engine.C():
			if ev.TriggerAt.After(now.Add(time.Minute)) {
				t.Fatalf("canceled far-future event fired: %s", ev.ID)
			}
			received++
		}
	}

	if pending := engine.Pending(); pending != 0 {
		t.Fatalf("expected empty heap after delivery and cancel, got pending=%d", pending)
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected zero drops with active consumer, got=%d", engine.Dropped())
	}
}
