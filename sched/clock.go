package sched

// TimerFreq is the tick rate assumed by the conversion helpers, matching
// the usual 12MHz system-timer configuration on small Cortex-M parts.
const TimerFreq = 12000000

const ticksPerUS = TimerFreq / 1000000

// TicksFromUS converts microseconds to timer ticks.
func TicksFromUS(us uint32) uint32 {
	return us * ticksPerUS
}

// TicksToUS converts timer ticks to microseconds.
func TicksToUS(ticks uint32) uint32 {
	return ticks / ticksPerUS
}
