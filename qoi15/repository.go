package qoi15

// repository accumulates codeword output for one encode call: full
// 16-bit literal words are written straight through, while 5-bit
// sub-codewords are buffered until three have arrived and can be packed
// by a Chunker into one container word. Keeping PushWord and PushSub as
// separate entry points lets each caller stay oblivious to how the
// other kind of output is framed.
type repository struct {
	chunker Chunker
	buffer  []uint16
	count   int
	pending []uint8
}

// newRepository allocates a repository sized for the worst case where
// every sample becomes a literal container (one output word per input
// sample).
func newRepository(maxSize int) *repository {
	return &repository{
		buffer: make([]uint16, maxSize),
	}
}

// PushWord appends a full 16-bit container word, flushing any pending
// sub-codewords first so relative output order is preserved.
func (r *repository) PushWord(value uint16) {
	if len(r.pending) > 0 {
		r.Flush()
	}
	r.buffer[r.count] = value
	r.count++
}

// PushSub buffers a 5-bit sub-codeword, packing it with its two
// neighbors into a container word once three have accumulated.
func (r *repository) PushSub(value uint8) {
	r.pending = append(r.pending, value)
	if len(r.pending) == 3 {
		r.buffer[r.count] = r.chunker.Set(r.pending[0], r.pending[1], r.pending[2])
		r.count++
		r.pending = r.pending[:0]
	}
}

// Flush packs any trailing 1 or 2 sub-codewords into a single zero-padded
// container word. The padding sub-codewords are zero-valued RunLength
// sub-codewords (tag 00, value 000), which a decoder expands to a
// zero-length run contributing no samples.
func (r *repository) Flush() {
	if len(r.pending) == 0 {
		return
	}
	var fields [3]uint8
	copy(fields[:], r.pending)
	r.buffer[r.count] = r.chunker.Set(fields[0], fields[1], fields[2])
	r.count++
	r.pending = r.pending[:0]
}

// Words returns the container words accumulated so far.
func (r *repository) Words() []uint16 {
	return r.buffer[:r.count]
}
