package critical

// Cell owns a value shared between mainline code and interrupt handlers.
// The value is reachable only through Borrow, so every access carries proof
// that interrupts are disabled. The cell itself never locks, allocates or
// blocks.
//
// Cells are usually package-level, initialized before interrupts are first
// enabled:
//
//	var events = critical.NewCell[uint32](0)
//
// T is unconstrained: the token discipline is what makes sharing safe, not
// any property of the wrapped type.
type Cell[T any] struct {
	v T
}

// NewCell wraps v. It has no preconditions and never fails.
func NewCell[T any](v T) Cell[T] {
	return Cell[T]{v: v}
}

// Borrow returns the address of the wrapped value. The pointer is valid for
// the remainder of the section that produced cs and must not be retained
// past it. Borrowing several cells under one token is fine; the token
// proves the machine state, not exclusivity over any one cell.
func (c *Cell[T]) Borrow(cs Section) *T {
	cs.check()
	return &c.v
}

// Get copies the wrapped value out under cs.
func (c *Cell[T]) Get(cs Section) T {
	return *c.Borrow(cs)
}

// Set replaces the wrapped value under cs.
func (c *Cell[T]) Set(cs Section, v T) {
	*c.Borrow(cs) = v
}
