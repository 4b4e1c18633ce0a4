//go:build !tinygo

// Package sim provides a simulated interrupt controller for host builds,
// so code written against critical sections can be exercised under go test
// with hardware-shaped delivery semantics: a pended line runs its handler
// immediately while unmasked, and otherwise at the moment the mask is fully
// released.
package sim

import (
	"baremetal/critical"
	"baremetal/irq"
)

// Controller models a single-core interrupt controller. It implements
// critical.Masker, so once installed, critical.With holds off delivery the
// way a hardware mask would.
//
// Like the hardware it stands in for, it assumes a single execution
// context; it is not safe for concurrent use.
type Controller struct {
	depth     int
	inHandler bool
	handlers  map[uint8]func(critical.Section)
	pending   []uint8
}

// New returns a controller with no handlers and delivery unmasked, and
// installs it as the critical masker. Tests should restore the default with
// critical.SetMasker(nil) when done.
func New() *Controller {
	c := &Controller{handlers: make(map[uint8]func(critical.Section))}
	critical.SetMasker(c)
	return c
}

// Disable implements critical.Masker.
func (c *Controller) Disable() critical.State {
	prev := critical.State(c.depth)
	c.depth++
	return prev
}

// Restore implements critical.Masker. Releasing the outermost mask delivers
// everything pended while it was held.
func (c *Controller) Restore(s critical.State) {
	c.depth = int(s)
	if c.depth == 0 {
		c.deliver()
	}
}

// Register installs the handler for line, replacing any previous one.
// Handlers run with delivery masked and receive the section token for that
// invocation, so they can borrow cells directly.
func (c *Controller) Register(line irq.Line, handler func(critical.Section)) {
	c.handlers[line.IRQNum()] = handler
}

// Pend asserts line. While unmasked, the handler runs before Pend returns.
// While masked, or from within another handler, the line is queued and
// delivered in FIFO order at the next full unmask. Lines with no registered
// handler are dropped.
func (c *Controller) Pend(line irq.Line) {
	n := line.IRQNum()
	if c.depth > 0 || c.inHandler {
		c.pending = append(c.pending, n)
		return
	}
	c.run(n)
	c.deliver()
}

// Pended reports how many asserted lines are waiting for delivery.
func (c *Controller) Pended() int {
	return len(c.pending)
}

func (c *Controller) run(n uint8) {
	h := c.handlers[n]
	if h == nil {
		return
	}
	c.inHandler = true
	critical.With(func(cs critical.Section) {
		h(cs)
	})
	c.inHandler = false
}

func (c *Controller) deliver() {
	if c.inHandler {
		// Unmask at the end of a handler's own section; the caller's
		// drain loop picks up anything still pending.
		return
	}
	for len(c.pending) > 0 {
		n := c.pending[0]
		c.pending = c.pending[1:]
		c.run(n)
	}
}
