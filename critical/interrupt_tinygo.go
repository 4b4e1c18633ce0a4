//go:build tinygo

package critical

import "runtime/interrupt"

// State is the saved interrupt-enable state threaded from disable to
// restore so that sections nest.
type State = interrupt.State

func disable() State {
	return interrupt.Disable()
}

func restore(s State) {
	interrupt.Restore(s)
}
