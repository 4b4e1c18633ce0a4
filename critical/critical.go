// Package critical provides interrupt-masked critical sections and
// token-gated containers for sharing state between mainline code and
// interrupt handlers on single-core bare-metal targets.
//
// The model is capability-based: With disables interrupts and hands the
// callback a Section token; Cell and Peripheral only give out their contents
// in exchange for a live token. No lock, counter or atomic is involved at
// access time - the interrupt mask the token stands for is the entire
// mutual-exclusion mechanism.
//
// Go cannot tie a pointer's lifetime to a lexical scope the way a borrow
// checker would, so token escape is caught at run time instead of compile
// time: a Section used after its With call has returned panics. Treat every
// Section and every pointer obtained through Borrow as valid only until the
// enclosing With returns.
package critical

// Section proves that the holder is executing inside a critical section,
// with interrupts disabled on the current core. It carries no shared data;
// its only role is to exist, and to stop existing when the section ends.
//
// Sections are created by With and nowhere else. A Section is a small value
// stamped with its place in the section stack; copying one does not extend
// its life, and the zero value is rejected by every accessor. Do not hand a
// Section to another goroutine or core: it is only meaningful on the
// execution context whose interrupt mask it describes.
type Section struct {
	depth uint32
	epoch uint32
}

// maxNest bounds critical-section nesting. With panics beyond it.
const maxNest = 32

// Section bookkeeping. Plain package state is enough: the contract is a
// single execution context, and With only touches it with interrupts
// already disabled. Nothing here allocates, so taking a section inside an
// interrupt handler never invokes the collector.
var (
	nestDepth uint32
	epochs    [maxNest]uint32
)

// A token is live while its frame is still on the section stack and no
// later section has reused that depth. Token epochs are offset by one so
// the zero value can never match.
func (cs Section) check() {
	if cs.depth >= nestDepth || cs.epoch != epochs[cs.depth]+1 {
		panic("critical: Section used outside its critical section")
	}
}

// With disables interrupts, runs fn with a Section scoped to that call, and
// restores the previous interrupt state on every exit path, including panic.
//
// Nesting is permitted: the masker returns its prior state from Disable and
// accepts it back in Restore, so an inner With restores to "still disabled"
// and the outer token stays live throughout.
//
// Results leave the section by closure capture. Capture values, not pointers
// obtained from Borrow; a captured borrow outlives its token, and the panic
// on the token's next use is the only guard rail left once that happens.
func With(fn func(cs Section)) {
	st := disable()
	d := nestDepth
	if d >= maxNest {
		restore(st)
		panic("critical: sections nested too deeply")
	}
	nestDepth = d + 1
	defer func() {
		epochs[d]++
		nestDepth = d
		restore(st)
	}()
	fn(Section{depth: d, epoch: epochs[d] + 1})
}
