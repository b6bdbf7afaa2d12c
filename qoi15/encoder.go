package qoi15

// Encoder drives strategy selection over a sequence of 16-bit samples,
// arbitrating between RunLength, Differential, Table, and Raw15bit in
// that fixed priority order, per sample.
//
// An Encoder holds no state between calls to Encode; construct a fresh
// one (or call Encode more than once on the same instance — each call
// resets the hash table and previous-sample register) for each
// independent image.
type Encoder struct {
	bitShifter   BitShifter
	runLength    RunLength
	differential Differential
	table        Table
	raw          Raw15bit
	variant      variantParams
	shift        uint
}

// NewEncoder constructs an Encoder using the named tag-layout variant
// (VariantDefault or VariantTableFirst) and the given internal bit
// shift, which controls how many low bits of each sample are discarded
// before encoding (default 1). A Decoder must be constructed with the
// same shift, since the wire format carries no record of it.
func NewEncoder(variant string, shift uint) (*Encoder, error) {
	if shift == 0 || shift > 7 {
		return nil, ErrInvalidShift
	}
	p, err := lookupVariant(variant)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		bitShifter:   NewBitShifter(shift),
		runLength:    DefaultRunLength(),
		differential: p.newDifferential(),
		table:        p.newTable(),
		variant:      p,
		shift:        shift,
	}, nil
}

// Encode consumes samples in raster order and returns a shorter (or, in
// the pathological all-literal case, equal-length) sequence of 16-bit
// codeword containers. Use EncodeWithStats to also get per-strategy
// usage counts.
func (e *Encoder) Encode(samples []uint16) []uint16 {
	words, _ := e.EncodeWithStats(samples)
	return words
}

// EncodeWithStats is Encode plus a breakdown of how many input samples
// each strategy absorbed, for callers that want to tune a variant
// choice or just report on compression behavior.
func (e *Encoder) EncodeWithStats(samples []uint16) ([]uint16, Stats) {
	table := NewTable(len(e.table.ref), e.table.header, e.table.mask, e.table.hashBit)
	repo := newRepository(len(samples))

	var stats Stats
	var previous uint16 = tableUninitialized
	var run int

	flushRun := func() {
		if run == 0 {
			return
		}
		for _, v := range e.runLength.Get(run) {
			repo.PushSub(v)
		}
		stats.RunLengthSamples += run
		run = 0
	}

	for _, sample := range samples {
		current := e.bitShifter.Get(sample)

		if current == previous {
			run++
			continue
		}
		flushRun()

		diff := e.differential.Sub(previous, current)
		if e.differential.IsValid(diff) {
			repo.PushSub(e.differential.Get(diff))
			previous = current
			stats.DifferentialHits++
			continue
		}

		hash := table.Hash(current)
		if table.Refer(hash) == current {
			repo.PushSub(e.table.Get(hash))
			previous = current
			stats.TableHits++
			continue
		}

		table.Insert(hash, current)
		repo.PushWord(e.raw.Get(current))
		previous = current
		stats.RawLiterals++
	}
	flushRun()
	repo.Flush()

	return repo.Words(), stats
}
