// Package syntheticimage generates deterministic stand-ins for real
// photographs. Real monochromized photographs aren't available in this
// module, so these generators produce LSB-clean 16-bit sample buffers
// with the mix of smooth gradients, flat runs, and sharp edges a real
// photograph would exercise, without any dependency on external image
// assets.
package syntheticimage

import "math"

// Image is one synthetic sample buffer plus the dimensions it was
// generated at.
type Image struct {
	Name    string
	Width   int
	Height  int
	Samples []uint16
}

// Corpus returns a fixed set of named synthetic images, each width x
// height samples, every sample pre-masked so its least-significant bit
// is zero, matching what the codec's bit shifter would discard anyway.
func Corpus(width, height int) []Image {
	generators := []struct {
		name string
		fn   func(x, y, w, h int) uint16
	}{
		{"horizontal-gradient", horizontalGradient},
		{"vertical-gradient", verticalGradient},
		{"radial-gradient", radialGradient},
		{"flat-with-noise-band", flatWithNoiseBand},
		{"checker-blocks", checkerBlocks},
		{"diagonal-bands", diagonalBands},
		{"sine-texture", sineTexture},
	}

	images := make([]Image, 0, len(generators))
	for _, g := range generators {
		samples := make([]uint16, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				samples[y*width+x] = g.fn(x, y, width, height) & 0xFFFE
			}
		}
		images = append(images, Image{Name: g.name, Width: width, Height: height, Samples: samples})
	}
	return images
}

func horizontalGradient(x, _, w, _ int) uint16 {
	return uint16(float64(x) / float64(w) * 0xFFFE)
}

func verticalGradient(_, y, _, h int) uint16 {
	return uint16(float64(y) / float64(h) * 0xFFFE)
}

func radialGradient(x, y, w, h int) uint16 {
	cx, cy := float64(w)/2, float64(h)/2
	dx, dy := float64(x)-cx, float64(y)-cy
	d := math.Sqrt(dx*dx+dy*dy) / math.Sqrt(cx*cx+cy*cy)
	if d > 1 {
		d = 1
	}
	return uint16(d * 0xFFFE)
}

func flatWithNoiseBand(x, y, w, h int) uint16 {
	if y > h/3 && y < 2*h/3 {
		// pseudo-random but deterministic "texture" band, the way a
		// photograph's detail region breaks up an otherwise flat field.
		return uint16(((x*2654435761 + y*40503) % 0x8000) & 0xFFFE)
	}
	return 0x4000
}

func checkerBlocks(x, y, _, _ int) uint16 {
	const block = 16
	if ((x/block)+(y/block))%2 == 0 {
		return 0x1000
	}
	return 0x6000
}

func diagonalBands(x, y, _, _ int) uint16 {
	const band = 24
	return uint16(((x + y) / band % 4) * 0x2000)
}

func sineTexture(x, y, w, h int) uint16 {
	fx := math.Sin(float64(x) / float64(w) * 6.283185)
	fy := math.Cos(float64(y) / float64(h) * 6.283185)
	v := (fx + fy + 2) / 4 * 0xFFFE
	return uint16(v)
}
