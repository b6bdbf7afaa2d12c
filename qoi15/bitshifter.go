package qoi15

// BitShifter discards the least-significant bits of a 16-bit sample on
// encode and re-inserts zero bits on decode, reserving the high bit of
// the 16-bit container for the literal/packed discriminator.
type BitShifter struct {
	shift uint
}

// NewBitShifter returns a BitShifter for the given shift amount. shift
// must be at least 1, matching the C++ original's static_assert.
func NewBitShifter(shift uint) BitShifter {
	if shift == 0 {
		panic("qoi15: BitShifter shift must be larger than 0")
	}
	return BitShifter{shift: shift}
}

// Get downshifts value, dropping its low bits.
func (b BitShifter) Get(value uint16) uint16 {
	return value >> b.shift
}

// Set upshifts value, padding the vacated low bits with zero.
func (b BitShifter) Set(value uint16) uint16 {
	return value << b.shift
}
