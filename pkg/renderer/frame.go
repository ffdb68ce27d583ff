package renderer

import (
	"github.com/rmak/go-pathtracer/pkg/core"
)

// Frame holds accumulated (summed, not yet averaged) per-pixel colors for a
// render, row-major from the top-left corner. Division by the sample count
// happens at emission time.
type Frame struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Pixels          []core.Vec3
}

// NewFrame creates an empty frame
func NewFrame(width, height, samplesPerPixel int) *Frame {
	return &Frame{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		Pixels:          make([]core.Vec3, width*height),
	}
}

// Set stores the accumulated color for pixel (x, y)
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[y*f.Width+x] = color
}

// At returns the accumulated color for pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// AverageAt returns the sample-averaged color for pixel (x, y)
func (f *Frame) AverageAt(x, y int) core.Vec3 {
	return f.At(x, y).Divide(float64(f.SamplesPerPixel))
}
