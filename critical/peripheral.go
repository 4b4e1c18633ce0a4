package critical

import "unsafe"

// Peripheral is a memory-mapped register block of layout T at a fixed
// address. Access is token-gated exactly like Cell: mainline code borrows
// the block under a Section, proving no handler that touches the same
// registers can run concurrently.
//
// The address is held as a plain uintptr. On hardware that is an MMIO
// address outside the Go heap; host tests may point one at an ordinary
// struct variable instead.
type Peripheral[T any] struct {
	addr uintptr
}

// At records a register block at addr. The caller asserts that a T with the
// platform's register layout really lives there; that assertion is the
// unsafe part, not the later borrows.
func At[T any](addr uintptr) Peripheral[T] {
	return Peripheral[T]{addr: addr}
}

// Borrow returns the register block for the remainder of the section.
func (p Peripheral[T]) Borrow(cs Section) *T {
	cs.check()
	return (*T)(unsafe.Pointer(p.addr))
}

// Reg returns the raw register pointer with no token. Interrupt service
// routines, which already run with interrupts masked by the hardware, may
// use it; everything else goes through Borrow.
func (p Peripheral[T]) Reg() *T {
	return (*T)(unsafe.Pointer(p.addr))
}

// Addr returns the base address of the register block.
func (p Peripheral[T]) Addr() uintptr {
	return p.addr
}
