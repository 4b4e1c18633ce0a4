//go:build !tinygo

package critical

// State is the saved interrupt-enable state threaded from disable to
// restore so that sections nest.
type State uintptr

// Masker is the interrupt-masking provider used on non-TinyGo builds.
// Hardware targets mask through runtime/interrupt; a host process has no
// interrupt controller, so tests install a stand-in (see the sim package).
//
// Disable must return the prior state and Restore must accept it, so that
// nested sections restore correctly. A Masker that fails to actually hold
// off delivery between Disable and Restore voids the whole contract; that
// is its responsibility, not checked here.
type Masker interface {
	Disable() State
	Restore(State)
}

// countMasker is the default host masker: a bare nesting counter with no
// delivery semantics, enough for code that only needs sections to nest.
type countMasker struct {
	depth State
}

func (m *countMasker) Disable() State {
	prev := m.depth
	m.depth++
	return prev
}

func (m *countMasker) Restore(s State) {
	m.depth = s
}

var masker Masker = &countMasker{}

// SetMasker installs the host masking provider. Passing nil reverts to the
// default nesting counter. Install before the first With; swapping maskers
// inside a live section leaves the old one's state unrestored.
func SetMasker(m Masker) {
	if m == nil {
		masker = &countMasker{}
		return
	}
	masker = m
}

func disable() State {
	return masker.Disable()
}

func restore(s State) {
	masker.Restore(s)
}
