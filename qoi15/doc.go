// Package qoi15 implements a lossless codec for 16-bit single-channel
// sample data, carrying the useful signal in the top 15 bits of every
// sample. It combines run-length, differential, and hash-table strategies
// with a raw 15-bit literal fallback, and packs the three non-literal
// strategies' 5-bit sub-codewords into 16-bit containers.
//
// An entire buffer is encoded or decoded in one call; there is no
// streaming or random-access support, and no image I/O lives in this
// package — callers own framing, files, and pixel conversion.
package qoi15
