package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/rmak/go-pathtracer/pkg/core"
)

// WritePPM serializes a frame as a plain-text PPM (P3) image: header, then
// one "r g b" line per pixel, rows top-to-bottom and columns left-to-right.
// Each accumulated color is averaged over the sample count, gamma-corrected,
// clamped, and mapped to an 8-bit channel value.
func WritePPM(w io.Writer, frame *Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}

	scale := 1.0 / float64(frame.SamplesPerPixel)
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b := pixelChannels(frame.At(x, y), scale)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// pixelChannels converts an accumulated linear color into 8-bit channels
func pixelChannels(color core.Vec3, scale float64) (int, int, int) {
	scaled := core.NewVec3(
		linearToGamma(color.X*scale),
		linearToGamma(color.Y*scale),
		linearToGamma(color.Z*scale),
	)

	// Clamp just under 1.0 so 256*value stays inside 8 bits
	clamped := scaled.Clamp(0.0, 0.999)
	return int(256 * clamped.X), int(256 * clamped.Y), int(256 * clamped.Z)
}

// linearToGamma applies the gamma-2 transfer function (square root)
func linearToGamma(component float64) float64 {
	if component > 0 {
		return math.Sqrt(component)
	}
	return 0
}
