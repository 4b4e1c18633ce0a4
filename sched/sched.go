// Package sched is a timer scheduler shared between mainline code and
// interrupt context. The pending-timer list lives in a critical.Cell, so
// every traversal and mutation is token-gated; handlers run inside the
// dispatching section.
package sched

import "baremetal/critical"

// Handler results.
const (
	Done       = 0 // remove the timer
	Reschedule = 1 // reinsert using the updated WakeTime
)

// Timer is a scheduled event. Handlers run with interrupts masked; a
// handler may return Reschedule to run again, and must advance WakeTime
// before doing so - a handler that reschedules without moving its WakeTime
// past now keeps Dispatch in its loop forever.
type Timer struct {
	WakeTime uint32
	Handler  func(*Timer) uint8
	Next     *Timer
}

// timers is the head of the pending list, sorted by WakeTime.
var timers = critical.NewCell[*Timer](nil)

// Schedule inserts t into the pending list.
func Schedule(t *Timer) {
	critical.With(func(cs critical.Section) {
		insert(timers.Borrow(cs), t)
	})
}

func insert(head **Timer, t *Timer) {
	cur := head
	for *cur != nil && (*cur).WakeTime <= t.WakeTime {
		cur = &(*cur).Next
	}
	t.Next = *cur
	*cur = t
}

// Cancel removes t from the pending list and reports whether it was there.
func Cancel(t *Timer) bool {
	removed := false
	critical.With(func(cs critical.Section) {
		for cur := timers.Borrow(cs); *cur != nil; cur = &(*cur).Next {
			if *cur == t {
				*cur = t.Next
				t.Next = nil
				removed = true
				return
			}
		}
	})
	return removed
}

// Next reports the earliest pending WakeTime. Idle loops use it to pick a
// sleep deadline.
func Next() (uint32, bool) {
	var wake uint32
	var ok bool
	critical.With(func(cs critical.Section) {
		if head := *timers.Borrow(cs); head != nil {
			wake, ok = head.WakeTime, true
		}
	})
	return wake, ok
}

// Dispatch runs every timer due at now, in WakeTime order. A handler
// returning Reschedule is reinserted with its updated WakeTime and runs
// again in the same call if still due.
func Dispatch(now uint32) {
	critical.With(func(cs critical.Section) {
		head := timers.Borrow(cs)
		for *head != nil && (*head).WakeTime <= now {
			t := *head
			*head = t.Next
			t.Next = nil
			if t.Handler(t) == Reschedule {
				insert(head, t)
			}
		}
	})
}
