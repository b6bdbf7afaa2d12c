package qoi15

// Chunker packs three independent 5-bit sub-codewords into one 16-bit
// packed container, and splits a packed container back into its three
// sub-codewords. Bit 15 of a packed container is always zero.
type Chunker struct{}

// Get splits a packed container into its three 5-bit sub-codewords,
// low field first.
func (Chunker) Get(value uint16) (first, second, third uint8) {
	first = uint8(value & 0x1F)
	second = uint8((value >> 5) & 0x1F)
	third = uint8((value >> 10) & 0x1F)
	return first, second, third
}

// Set packs three 5-bit sub-codewords into one 16-bit container.
func (Chunker) Set(first, second, third uint8) uint16 {
	return uint16(first) | uint16(second)<<5 | uint16(third)<<10
}
