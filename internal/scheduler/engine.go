// Package scheduler hosts reminder delivery. The engine owns a min-heap of
// pending reminders and a single timer loop; the planner decides what to
// put on the heap. The engine never touches records: callers compute the
// trigger instants and consume fired events from C().
package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidTriggerTime = errors.New("scheduler: invalid trigger time")
	ErrStopped            = errors.New("scheduler: engine stopped")
)

type RecordKind string

const (
	KindTask RecordKind = "task"
	KindTodo RecordKind = "todo"
)

// ReminderEvent is one planned delivery for a record.
type ReminderEvent struct {
	ID        string
	RecordID  string
	Kind      RecordKind
	Title     string
	TriggerAt time.Time
}

type reminderHeap []ReminderEvent

func (h reminderHeap) Len() int { return len(h) }

func (h reminderHeap) Less(i, j int) bool {
	return h[i].TriggerAt.Before(h[j].TriggerAt)
}

func (h reminderHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *reminderHeap) Push(x any) {
	*h = append(*h, x.(ReminderEvent))
}

func (h *reminderHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

type Engine struct {
	mu      sync.Mutex
	pending reminderHeap
	out     chan ReminderEvent
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		pending: make(reminderHeap, 0),
		out:     make(chan ReminderEvent, bufferSize),
		wakeup:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (e *Engine) C() <-chan ReminderEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.pending)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Schedule(ev ReminderEvent) error {
	if ev.TriggerAt.IsZero() {
		return ErrInvalidTriggerTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}

	heap.Push(&e.pending, ev)
	e.signalWakeup()
	return nil
}

// CancelRecord drops every pending reminder for a record and reports how
// many were removed. Deleting a record must leave nothing behind to fire.
func (e *Engine) CancelRecord(recordID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.pending[:0]
	removed := 0
	for _, ev := range e.pending {
		if ev.RecordID == recordID {
			removed++
			continue
		}
		kept = append(kept, ev)
	}
	if removed == 0 {
		return 0
	}
	e.pending = kept
	heap.Init(&e.pending)
	e.signalWakeup()
	return removed
}

// Pending reports the queued reminder count.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.TriggerAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now().UTC())
			for _, ev := range due {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (ReminderEvent, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending) == 0 {
		return ReminderEvent{}, false
	}
	return e.pending[0], true
}

func (e *Engine) popDue(now time.Time) []ReminderEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]ReminderEvent, 0)
	for len(e.pending) > 0 {
		next := e.pending[0]
		if next.TriggerAt.After(now) {
			break
		}
		out = append(out, heap.Pop(&e.pending).(ReminderEvent))
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
