// Package sched provides a single-threaded virtual-time event queue.
// Hosts advance it by a fixed step once per display refresh; timers fire
// in deadline order on the caller's goroutine, so callbacks never need locks.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled timer. The zero Handle is never issued.
type Handle uint64

type timer struct {
	id    Handle
	at    time.Duration
	every time.Duration // 0 for one-shot timers
	fn    func()
	index int
}

// Loop is a virtual clock with one-shot and periodic timers.
// It is not safe for concurrent use; all calls must come from the goroutine
// that drives Advance.
type Loop struct {
	now    time.Duration
	nextID Handle
	queue  timerQueue
	byID   map[Handle]*timer
}

// New creates a loop positioned at virtual time zero.
func New() *Loop {
	return &Loop{byID: make(map[Handle]*timer)}
}

// Now returns the current virtual time.
func (l *Loop) Now() time.Duration {
	return l.now
}

// After schedules fn to run once, d after the current virtual time.
func (l *Loop) After(d time.Duration, fn func()) Handle {
	return l.schedule(d, 0, fn)
}

// Every schedules fn to run every d, first firing d from now.
// Non-positive intervals are rejected with a zero Handle.
func (l *Loop) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		return 0
	}
	return l.schedule(d, d, fn)
}

func (l *Loop) schedule(delay, every time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	l.nextID++
	t := &timer{
		id:    l.nextID,
		at:    l.now + delay,
		every: every,
		fn:    fn,
	}
	l.byID[t.id] = t
	heap.Push(&l.queue, t)
	return t.id
}

// Cancel removes a pending timer. It reports whether the timer was pending.
// Cancelling from inside any callback, including the timer's own, is allowed.
func (l *Loop) Cancel(h Handle) bool {
	t, ok := l.byID[h]
	if !ok {
		return false
	}
	delete(l.byID, h)
	if t.index >= 0 {
		heap.Remove(&l.queue, t.index)
	}
	return true
}

// Pending returns the number of scheduled timers.
func (l *Loop) Pending() int {
	return len(l.byID)
}

// Active reports whether h is still scheduled.
func (l *Loop) Active(h Handle) bool {
	_, ok := l.byID[h]
	return ok
}

// Advance moves virtual time forward by d, firing every timer that falls due.
// Timers due at the same instant fire in the order they were created.
// Non-positive durations are ignored; time never runs backwards.
func (l *Loop) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	target := l.now + d

	for l.queue.Len() > 0 {
		next := l.queue[0]
		if next.at > target {
			break
		}
		heap.Pop(&l.queue)
		l.now = next.at

		if next.every > 0 {
			// Re-arm before running so the callback can cancel it.
			next.at += next.every
			heap.Push(&l.queue, next)
		} else {
			delete(l.byID, next.id)
		}
		next.fn()
	}

	l.now = target
}

// timerQueue is a min-heap ordered by deadline, then by creation order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].id < q[j].id
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
