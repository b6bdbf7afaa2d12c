package qoi15

// Stats counts how many input samples were absorbed by each strategy
// during one Encode call. The counters are cheap enough to always
// collect rather than gate behind a build flag.
type Stats struct {
	RunLengthSamples int
	DifferentialHits int
	TableHits        int
	RawLiterals      int
}
