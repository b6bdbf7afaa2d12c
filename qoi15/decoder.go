package qoi15

// Decoder is the Encoder's inverse: it consumes packed containers and
// literal container words and reconstructs the original (LSB-truncated)
// sample sequence.
type Decoder struct {
	bitShifter   BitShifter
	runLength    RunLength
	differential Differential
	table        Table
	raw          Raw15bit
	chunker      Chunker
	variant      variantParams
	shift        uint
}

// NewDecoder constructs a Decoder for the named tag-layout variant and
// bit shift. Both must match the Encoder that produced the stream; the
// wire format does not self-describe either choice.
func NewDecoder(variant string, shift uint) (*Decoder, error) {
	if shift == 0 || shift > 7 {
		return nil, ErrInvalidShift
	}
	p, err := lookupVariant(variant)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		bitShifter:   NewBitShifter(shift),
		runLength:    DefaultRunLength(),
		differential: p.newDifferential(),
		table:        p.newTable(),
		variant:      p,
		shift:        shift,
	}, nil
}

// Decode reconstructs exactly outputSize samples from words. It returns
// ErrPrematureEOF if the input is exhausted first, and
// ErrOutputSizeMismatch if the stream decodes to more samples than
// outputSize (which is what trailing sub-codewords other than zero-length
// run padding produce). ErrInvalidPadding is returned for a sub-codeword
// that matches none of the variant's tags.
func (d *Decoder) Decode(words []uint16, outputSize int) ([]uint16, error) {
	table := NewTable(len(d.table.ref), d.table.header, d.table.mask, d.table.hashBit)
	output := make([]uint16, 0, outputSize)

	var previous uint16 = tableUninitialized
	var leftovers []uint8
	var runValues []uint8
	cursor := 0

	flushRun := func() {
		if len(runValues) == 0 {
			return
		}
		length := d.runLength.Set(runValues)
		runValues = runValues[:0]
		for i := 0; i < length; i++ {
			output = append(output, d.bitShifter.Set(previous))
		}
	}

	for cursor < len(words) || len(leftovers) > 0 {
		if len(leftovers) > 0 {
			value := leftovers[0]
			leftovers = leftovers[1:]

			if d.runLength.CheckHeader(value) {
				runValues = append(runValues, value)
				continue
			}
			flushRun()

			switch {
			case d.differential.CheckHeader(value):
				diff := d.differential.Set(value)
				current := d.differential.Add(previous, diff)
				output = append(output, d.bitShifter.Set(current))
				previous = current
			case d.table.CheckHeader(value):
				hash := table.Set(value)
				current := table.Refer(hash)
				output = append(output, d.bitShifter.Set(current))
				previous = current
			default:
				return nil, ErrInvalidPadding
			}
			continue
		}

		if cursor >= len(words) {
			break
		}
		word := words[cursor]
		cursor++

		if d.raw.IsValid(word) {
			flushRun()
			current := d.raw.Set(word)
			hash := table.Hash(current)
			table.Insert(hash, current)
			output = append(output, d.bitShifter.Set(current))
			previous = current
			continue
		}

		first, second, third := d.chunker.Get(word)
		leftovers = append(leftovers, first, second, third)
	}

	flushRun()

	if len(output) < outputSize {
		return nil, ErrPrematureEOF
	}
	if len(output) != outputSize {
		return nil, ErrOutputSizeMismatch
	}
	return output, nil
}
