package sched

import (
	"testing"

	"baremetal/critical"
)

func resetTimers() {
	timers = critical.NewCell[*Timer](nil)
}

func TestDispatchOrder(t *testing.T) {
	resetTimers()

	var order []uint32
	mk := func(wake uint32) *Timer {
		return &Timer{
			WakeTime: wake,
			Handler: func(tm *Timer) uint8 {
				order = append(order, tm.WakeTime)
				return Done
			},
		}
	}

	Schedule(mk(30))
	Schedule(mk(10))
	Schedule(mk(20))

	Dispatch(100)

	if len(order) != 3 || order[0] != 10 || order[1] != 20 || order[2] != 30 {
		t.Errorf("expected [10 20 30], got %v", order)
	}
}

func TestDispatchOnlyDue(t *testing.T) {
	resetTimers()

	fired := make(map[uint32]bool)
	mk := func(wake uint32) *Timer {
		return &Timer{
			WakeTime: wake,
			Handler: func(tm *Timer) uint8 {
				fired[tm.WakeTime] = true
				return Done
			},
		}
	}

	Schedule(mk(10))
	Schedule(mk(50))

	Dispatch(20)

	if !fired[10] || fired[50] {
		t.Errorf("wrong timers fired: %v", fired)
	}
	wake, ok := Next()
	if !ok || wake != 50 {
		t.Errorf("expected next wake 50, got %d (ok=%v)", wake, ok)
	}
}

func TestReschedule(t *testing.T) {
	resetTimers()

	runs := 0
	Schedule(&Timer{
		WakeTime: 10,
		Handler: func(tm *Timer) uint8 {
			runs++
			if runs == 3 {
				return Done
			}
			tm.WakeTime += 10
			return Reschedule
		},
	})

	// Due at 10, 20 and 30; all within one dispatch at 35.
	Dispatch(35)

	if runs != 3 {
		t.Errorf("expected 3 runs, got %d", runs)
	}
	if _, ok := Next(); ok {
		t.Error("expected empty timer list")
	}
}

func TestRescheduleBeyondNow(t *testing.T) {
	resetTimers()

	runs := 0
	Schedule(&Timer{
		WakeTime: 10,
		Handler: func(tm *Timer) uint8 {
			runs++
			tm.WakeTime += 100
			return Reschedule
		},
	})

	Dispatch(35)

	if runs != 1 {
		t.Errorf("expected 1 run, got %d", runs)
	}
	wake, ok := Next()
	if !ok || wake != 110 {
		t.Errorf("expected next wake 110, got %d (ok=%v)", wake, ok)
	}
}

func TestCancel(t *testing.T) {
	resetTimers()

	fired := false
	tm := &Timer{
		WakeTime: 10,
		Handler: func(*Timer) uint8 {
			fired = true
			return Done
		},
	}

	Schedule(tm)
	if !Cancel(tm) {
		t.Error("Cancel reported the timer missing")
	}
	if Cancel(tm) {
		t.Error("second Cancel reported the timer present")
	}

	Dispatch(100)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestNextEmpty(t *testing.T) {
	resetTimers()

	if _, ok := Next(); ok {
		t.Error("Next reported a timer on an empty list")
	}
}

// Handlers run inside the dispatching section; scheduling from one takes a
// nested section and must not deadlock or corrupt the list.
func TestScheduleFromHandler(t *testing.T) {
	resetTimers()

	var order []string
	Schedule(&Timer{
		WakeTime: 10,
		Handler: func(*Timer) uint8 {
			order = append(order, "first")
			Schedule(&Timer{
				WakeTime: 20,
				Handler: func(*Timer) uint8 {
					order = append(order, "second")
					return Done
				},
			})
			return Done
		},
	})

	Dispatch(15)
	Dispatch(25)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}

func TestTickConversions(t *testing.T) {
	if got := TicksFromUS(100); got != 1200 {
		t.Errorf("TicksFromUS(100) = %d", got)
	}
	if got := TicksToUS(1200); got != 100 {
		t.Errorf("TicksToUS(1200) = %d", got)
	}
}
