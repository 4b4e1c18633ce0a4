// Package irq names hardware interrupt lines.
//
// The package interprets nothing itself; it exists so that masking,
// priority and vector-dispatch code elsewhere can be written against one
// identifier shape instead of each platform binding inventing its own.
package irq

// Line identifies a hardware interrupt line. Platform bindings implement
// it on their interrupt definitions. The binding's mapping from a Line to
// its number must be injective and stable; nothing here can check that.
type Line interface {
	IRQNum() uint8
}

// Num is a bare numeric interrupt line, for platforms whose binding is the
// identity mapping and for host simulation.
type Num uint8

// IRQNum returns the line number.
func (n Num) IRQNum() uint8 {
	return uint8(n)
}
