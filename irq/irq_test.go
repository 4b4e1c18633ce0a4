package irq

import "testing"

func TestNumIdentity(t *testing.T) {
	for _, n := range []uint8{0, 1, 13, 255} {
		if got := Num(n).IRQNum(); got != n {
			t.Errorf("Num(%d).IRQNum() = %d", n, got)
		}
	}
}

// uartIRQ mimics a platform binding with its own interrupt type.
type uartIRQ struct {
	base uint8
	idx  uint8
}

func (u uartIRQ) IRQNum() uint8 {
	return u.base + u.idx
}

func TestCustomLine(t *testing.T) {
	var line Line = uartIRQ{base: 20, idx: 1}
	if line.IRQNum() != 21 {
		t.Errorf("expected 21, got %d", line.IRQNum())
	}
}
