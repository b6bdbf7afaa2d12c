package qoi15

import (
	"testing"

	"github.com/wagpa/qoi15/internal/syntheticimage"
)

func roundTrip(t *testing.T, variant string, samples []uint16) []uint16 {
	t.Helper()
	enc, err := NewEncoder(variant, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	words := enc.Encode(samples)

	dec, err := NewDecoder(variant, 1)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	out, err := dec.Decode(words, len(samples))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return out
}

// TestRoundTripLSBMasked checks that for any input of 15-bit-clean
// samples, decode(encode(X)) == X.
func TestRoundTripLSBMasked(t *testing.T) {
	for _, variant := range Variants() {
		t.Run(variant, func(t *testing.T) {
			samples := mixedPatternSamples()
			out := roundTrip(t, variant, samples)
			if len(out) != len(samples) {
				t.Fatalf("len(out) = %d, want %d", len(out), len(samples))
			}
			for i := range samples {
				if out[i] != samples[i] {
					t.Errorf("out[%d] = %#04x, want %#04x", i, out[i], samples[i])
				}
			}
		})
	}
}

// TestLSBLoss is property 2: for arbitrary 16-bit input, decoded[i] ==
// input[i] & 0xFFFE.
func TestLSBLoss(t *testing.T) {
	samples := []uint16{0x0001, 0x0003, 0xFFFF, 0x1235, 0x1235, 0xABCD}
	out := roundTrip(t, VariantDefault, samples)
	for i, s := range samples {
		want := s & 0xFFFE
		if out[i] != want {
			t.Errorf("out[%d] = %#04x, want %#04x", i, out[i], want)
		}
	}
}

// TestCompressionBound checks that the encoded output never grows past
// the input length, exercised over a synthetic image corpus.
func TestCompressionBound(t *testing.T) {
	for _, img := range syntheticimage.Corpus(96, 96) {
		t.Run(img.Name, func(t *testing.T) {
			enc, err := NewEncoder(VariantDefault, 1)
			if err != nil {
				t.Fatalf("NewEncoder: %v", err)
			}
			words := enc.Encode(img.Samples)
			if len(words) > len(img.Samples) {
				t.Errorf("len(words) = %d, want <= %d", len(words), len(img.Samples))
			}

			dec, err := NewDecoder(VariantDefault, 1)
			if err != nil {
				t.Fatalf("NewDecoder: %v", err)
			}
			out, err := dec.Decode(words, len(img.Samples))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			for i := range img.Samples {
				if out[i] != img.Samples[i] {
					t.Fatalf("sample %d: out=%#04x want=%#04x", i, out[i], img.Samples[i])
				}
			}
		})
	}
}

// TestLiteralVsPackedDisjoint is property 4: every output word's bit 15
// consistently discriminates literal vs packed form.
func TestLiteralVsPackedDisjoint(t *testing.T) {
	enc, err := NewEncoder(VariantDefault, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	words := enc.Encode(allRawSamples())

	var raw Raw15bit
	for i, w := range words {
		if !raw.IsValid(w) {
			t.Errorf("word[%d] = %#04x is not a literal, but the all-raw corpus should only emit literals", i, w)
		}
	}
}

// TestMixedPatternRoundTrip round-trips a fixture mixing a run,
// differentiable ramps, and raw literals in one pass.
func TestMixedPatternRoundTrip(t *testing.T) {
	samples := mixedPatternSamples()
	if len(samples) != 42 {
		t.Fatalf("test fixture has %d samples, want 42", len(samples))
	}
	out := roundTrip(t, VariantDefault, samples)
	for i := range samples {
		if out[i] != samples[i] {
			t.Fatalf("out[%d] = %#04x, want %#04x", i, out[i], samples[i])
		}
	}
}

// TestPureRunRoundTrip is end-to-end scenario 2: 513 copies of the same
// sample round-trip via a handful of RunLength sub-codewords.
func TestPureRunRoundTrip(t *testing.T) {
	samples := make([]uint16, 513)
	for i := range samples {
		samples[i] = 0xFFFE
	}
	enc, err := NewEncoder(VariantDefault, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	words, stats := enc.EncodeWithStats(samples)
	if stats.RunLengthSamples != 512 {
		t.Errorf("RunLengthSamples = %d, want 512 (first sample is a raw literal)", stats.RunLengthSamples)
	}
	if len(words) >= len(samples) {
		t.Errorf("len(words) = %d, want well under %d", len(words), len(samples))
	}

	dec, err := NewDecoder(VariantDefault, 1)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	out, err := dec.Decode(words, len(samples))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range samples {
		if out[i] != samples[i] {
			t.Fatalf("out[%d] = %#04x, want %#04x", i, out[i], samples[i])
		}
	}
}

// TestAllRawWorstCase is end-to-end scenario 3: every sample emits a
// literal container, so output length equals input length.
func TestAllRawWorstCase(t *testing.T) {
	samples := allRawSamples()
	enc, err := NewEncoder(VariantDefault, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	words, stats := enc.EncodeWithStats(samples)
	if stats.RawLiterals != len(samples) {
		t.Errorf("RawLiterals = %d, want %d", stats.RawLiterals, len(samples))
	}
	if len(words) != len(samples) {
		t.Errorf("len(words) = %d, want %d", len(words), len(samples))
	}
}

// TestSingleSample is end-to-end scenario 4.
func TestSingleSample(t *testing.T) {
	out := roundTrip(t, VariantDefault, []uint16{0x1234})
	if len(out) != 1 || out[0] != 0x1234&0xFFFE {
		t.Fatalf("out = %v, want [%#04x]", out, 0x1234&0xFFFE)
	}
}

// TestImageCorpusRoundTrip is end-to-end scenario 5, using the synthetic
// corpus standing in for real photographs.
func TestImageCorpusRoundTrip(t *testing.T) {
	for _, img := range syntheticimage.Corpus(64, 64) {
		t.Run(img.Name, func(t *testing.T) {
			out := roundTrip(t, VariantDefault, img.Samples)
			for i := range img.Samples {
				if out[i] != img.Samples[i] {
					t.Fatalf("sample %d: out=%#04x want=%#04x", i, out[i], img.Samples[i])
				}
			}
		})
	}
}

// TestDifferentialBoundaryFallsThrough is end-to-end scenario 6: a delta
// of 16 exceeds Differential's max of 8 and must fall through to Table
// or Raw, but still round-trips.
func TestDifferentialBoundaryFallsThrough(t *testing.T) {
	// current-sample-space values 0x0100 and 0x0100+16, expressed as raw
	// 16-bit inputs by re-applying the shift the Encoder will undo.
	samples := []uint16{0x0100 << 1, (0x0100 + 16) << 1}
	enc, err := NewEncoder(VariantDefault, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	words, stats := enc.EncodeWithStats(samples)
	if stats.DifferentialHits != 0 {
		t.Errorf("DifferentialHits = %d, want 0 (delta 16 exceeds max 8)", stats.DifferentialHits)
	}

	dec, err := NewDecoder(VariantDefault, 1)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	out, err := dec.Decode(words, len(samples))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range samples {
		if out[i] != samples[i]&0xFFFE {
			t.Fatalf("out[%d] = %#04x, want %#04x", i, out[i], samples[i]&0xFFFE)
		}
	}
}

// TestEmptyInput exercises the boundary the main loop never touches.
func TestEmptyInput(t *testing.T) {
	enc, err := NewEncoder(VariantDefault, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	words, stats := enc.EncodeWithStats(nil)
	if len(words) != 0 {
		t.Fatalf("Encode(nil) = %v, want empty", words)
	}
	if stats != (Stats{}) {
		t.Fatalf("Encode(nil) stats = %+v, want zero value", stats)
	}

	dec, err := NewDecoder(VariantDefault, 1)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	out, err := dec.Decode(nil, 0)
	if err != nil {
		t.Fatalf("Decode(nil, 0): %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("Decode(nil, 0) = %v, want empty", out)
	}
}

// TestDecodePrematureEOF checks that asking for more samples than the
// stream can produce is a fatal error.
func TestDecodePrematureEOF(t *testing.T) {
	enc, _ := NewEncoder(VariantDefault, 1)
	words := enc.Encode([]uint16{0x1234, 0x5678})

	dec, _ := NewDecoder(VariantDefault, 1)
	if _, err := dec.Decode(words, 10); err != ErrPrematureEOF {
		t.Fatalf("Decode with inflated outputSize: err = %v, want %v", err, ErrPrematureEOF)
	}
}

// mixedPatternSamples mixes a flat run, linear ramps, and a sawtooth,
// exercising run-length, differential, and raw-literal output in one
// fixture. No sample in it is a table hit.
func mixedPatternSamples() []uint16 {
	return []uint16{
		0x0000, 0x0010, 0x0020, 0x0030, 0x0040, 0x0050, 0x0060,
		0x0100, 0x0110, 0x0120, 0x0130, 0x0140, 0x0150, 0x0160,
		0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000,
		0x0000, 0x0002, 0x0004, 0x0006, 0x0008, 0x000A, 0x000C, 0x000E,
		0x0010, 0x0012, 0x0014, 0x0016, 0x0018, 0x001A,
		0x0018, 0x0016, 0x0014, 0x0012, 0x0010, 0x000E, 0x000C,
	}
}

func BenchmarkEncode(b *testing.B) {
	for _, img := range syntheticimage.Corpus(256, 256) {
		b.Run(img.Name, func(b *testing.B) {
			b.StopTimer()
			enc, err := NewEncoder(VariantDefault, 1)
			if err != nil {
				b.Fatal(err)
			}
			b.StartTimer()

			for i := 0; i < b.N; i++ {
				enc.Encode(img.Samples)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, img := range syntheticimage.Corpus(256, 256) {
		b.Run(img.Name, func(b *testing.B) {
			b.StopTimer()
			enc, err := NewEncoder(VariantDefault, 1)
			if err != nil {
				b.Fatal(err)
			}
			words := enc.Encode(img.Samples)
			dec, err := NewDecoder(VariantDefault, 1)
			if err != nil {
				b.Fatal(err)
			}
			b.StartTimer()

			for i := 0; i < b.N; i++ {
				if _, err := dec.Decode(words, len(img.Samples)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// allRawSamples returns 64 samples spaced far enough apart that none are
// differentially reachable. They all hash to the same table slot, which
// always holds the previous (different) sample, so none is a table hit
// and every one of them forces a Raw15bit literal.
func allRawSamples() []uint16 {
	samples := make([]uint16, 64)
	for i := range samples {
		samples[i] = uint16(i * 1024)
	}
	return samples
}
