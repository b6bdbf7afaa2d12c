package qoi15

import "testing"

func TestBitShifterRoundTrip(t *testing.T) {
	b := NewBitShifter(1)
	for _, v := range []uint16{0x0000, 0x0001, 0xAAAA, 0xFFFF, 0x7FFF} {
		got := b.Set(b.Get(v))
		want := v & 0xFFFE
		if got != want {
			t.Errorf("Set(Get(%#04x)) = %#04x, want %#04x", v, got, want)
		}
	}
}

func TestBitShifterPanicsOnZeroShift(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero shift")
		}
	}()
	NewBitShifter(0)
}
