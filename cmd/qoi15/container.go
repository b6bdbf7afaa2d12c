package main

import (
	"encoding/binary"
	"fmt"
	"io"
)

// The container format below wraps an encoded codeword stream with the
// metadata a decoder needs to reconstruct it, following the same
// fixed-header style as a typical image container: a magic, dimensions,
// and a couple of codec-selection bytes, all big-endian.

const containerMagic = "QO15"

var variantByte = map[string]byte{
	"default":     0,
	"table-first": 1,
}

var byteVariant = map[byte]string{
	0: "default",
	1: "table-first",
}

type containerHeader struct {
	Width         uint32
	Height        uint32
	Shift         uint8
	Variant       byte
	CodewordCount uint32
}

// writeContainer frames an encoded codeword stream with the metadata a
// decoder needs: the compressed stream does not self-delimit, so
// width/height/shift/variant and the codeword count all have to travel
// alongside it.
func writeContainer(w io.Writer, h containerHeader, words []uint16) error {
	buf := make([]byte, 0, 4+4+4+1+1+4)
	buf = append(buf, containerMagic...)
	buf = binary.BigEndian.AppendUint32(buf, h.Width)
	buf = binary.BigEndian.AppendUint32(buf, h.Height)
	buf = append(buf, h.Shift, h.Variant)
	buf = binary.BigEndian.AppendUint32(buf, h.CodewordCount)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write container header: %w", err)
	}

	payload := make([]byte, len(words)*2)
	for i, word := range words {
		binary.BigEndian.PutUint16(payload[i*2:], word)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write container payload: %w", err)
	}
	return nil
}

// readContainer reverses writeContainer.
func readContainer(r io.Reader) (containerHeader, []uint16, error) {
	headerBuf := make([]byte, 4+4+4+1+1+4)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return containerHeader{}, nil, fmt.Errorf("read container header: %w", err)
	}
	if string(headerBuf[:4]) != containerMagic {
		return containerHeader{}, nil, fmt.Errorf("bad container magic %q", headerBuf[:4])
	}
	h := containerHeader{
		Width:         binary.BigEndian.Uint32(headerBuf[4:8]),
		Height:        binary.BigEndian.Uint32(headerBuf[8:12]),
		Shift:         headerBuf[12],
		Variant:       headerBuf[13],
		CodewordCount: binary.BigEndian.Uint32(headerBuf[14:18]),
	}

	payload := make([]byte, int(h.CodewordCount)*2)
	if _, err := io.ReadFull(r, payload); err != nil {
		return containerHeader{}, nil, fmt.Errorf("read container payload: %w", err)
	}
	words := make([]uint16, h.CodewordCount)
	for i := range words {
		words[i] = binary.BigEndian.Uint16(payload[i*2:])
	}
	return h, words, nil
}
