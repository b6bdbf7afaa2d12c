package qoi15

import "errors"

var (
	// ErrInvalidShift is returned when constructing an Encoder or Decoder
	// with a bit-shift outside the valid range.
	ErrInvalidShift = errors.New("qoi15: shift must be between 1 and 7")

	// ErrUnknownVariant is returned when a variant name does not match any
	// registered tag layout.
	ErrUnknownVariant = errors.New("qoi15: unknown codec variant")

	// ErrPrematureEOF is returned by Decode when the encoded stream is
	// exhausted before outputSize samples have been produced.
	ErrPrematureEOF = errors.New("qoi15: premature end of encoded stream")

	// ErrInvalidPadding is returned by Decode when a sub-codeword matches
	// none of the run-length, differential, or table tags.
	ErrInvalidPadding = errors.New("qoi15: invalid padding in encoded stream")

	// ErrOutputSizeMismatch is returned by Decode when the decoded sample
	// count does not match the requested output size.
	ErrOutputSizeMismatch = errors.New("qoi15: decoded sample count does not match output size")
)
