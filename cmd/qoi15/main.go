// Command qoi15 encodes a 16-bit grayscale PNG into the QOI15 codeword
// container format, or decodes a container back into a PNG for
// inspection. Image I/O and container framing live here rather than in
// the qoi15 package: the codec operates on sample slices and has no
// business knowing about PNG or file headers.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/wagpa/qoi15/qoi15"
)

func main() {
	mode := flag.String("mode", "", "encode or decode")
	in := flag.String("in", "", "input file path")
	out := flag.String("out", "", "output file path")
	shift := flag.Uint("shift", 1, "internal bit shift (encode only)")
	variant := flag.String("variant", qoi15.VariantDefault, "codec variant: default or table-first")
	flag.Parse()

	switch *mode {
	case "encode":
		if err := encodeFile(*in, *out, uint(*shift), *variant); err != nil {
			log.Fatalf("encode: %v", err)
		}
	case "decode":
		if err := decodeFile(*in, *out); err != nil {
			log.Fatalf("decode: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: qoi15 -mode encode|decode -in FILE -out FILE")
		os.Exit(2)
	}
}

func encodeFile(inPath, outPath string, shift uint, variant string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return err
	}
	samples, width, height := toGray16Samples(img)

	enc, err := qoi15.NewEncoder(variant, shift)
	if err != nil {
		return err
	}
	words, stats := enc.EncodeWithStats(samples)
	log.Printf("encoded %d samples into %d words (run=%d diff=%d table=%d raw=%d)",
		len(samples), len(words), stats.RunLengthSamples, stats.DifferentialHits, stats.TableHits, stats.RawLiterals)

	variantByte, ok := variantByte[variant]
	if !ok {
		return fmt.Errorf("unknown variant %q", variant)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return writeContainer(out, containerHeader{
		Width:         uint32(width),
		Height:        uint32(height),
		Shift:         uint8(shift),
		Variant:       variantByte,
		CodewordCount: uint32(len(words)),
	}, words)
}

func decodeFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	h, words, err := readContainer(in)
	if err != nil {
		return err
	}

	variant, ok := byteVariant[h.Variant]
	if !ok {
		return fmt.Errorf("unknown variant byte %d", h.Variant)
	}
	dec, err := qoi15.NewDecoder(variant, uint(h.Shift))
	if err != nil {
		return err
	}

	outputSize := int(h.Width) * int(h.Height)
	samples, err := dec.Decode(words, outputSize)
	if err != nil {
		return err
	}

	img := fromGray16Samples(samples, int(h.Width), int(h.Height))
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, img)
}

// toGray16Samples converts any decoded PNG to a flat 16-bit grayscale
// sample buffer. Color-to-monochrome conversion happens here, outside
// the codec, which only ever sees flat sample slices.
func toGray16Samples(img image.Image) (samples []uint16, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	samples = make([]uint16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			samples[y*width+x] = gray.Y
		}
	}
	return samples, width, height
}

func fromGray16Samples(samples []uint16, width, height int) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: samples[y*width+x]})
		}
	}
	return img
}
