package renderer

import (
	"strings"
	"testing"

	"github.com/rmak/go-pathtracer/pkg/core"
)

func TestWritePPM_Format(t *testing.T) {
	frame := NewFrame(2, 2, 1)
	frame.Set(0, 0, core.NewVec3(0.25, 0.25, 0.25)) // gamma 2 -> 0.5 -> 128
	frame.Set(1, 0, core.NewVec3(1, 0, 0))          // channel max clamps at 255
	frame.Set(0, 1, core.NewVec3(0, 0, 0))
	frame.Set(1, 1, core.NewVec3(4.0, -1.0, 0.0625)) // overflow and negative clamp

	var sb strings.Builder
	if err := WritePPM(&sb, frame); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"128 128 128\n" +
		"255 0 0\n" +
		"0 0 0\n" +
		"255 0 64\n"

	if sb.String() != expected {
		t.Errorf("Unexpected PPM output:\ngot:\n%s\nwant:\n%s", sb.String(), expected)
	}
}

func TestWritePPM_AveragesBySampleCount(t *testing.T) {
	// The frame stores summed colors; emission divides by the sample count
	frame := NewFrame(1, 1, 4)
	frame.Set(0, 0, core.NewVec3(1, 1, 1)) // average 0.25 -> gamma 0.5 -> 128

	var sb strings.Builder
	if err := WritePPM(&sb, frame); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n1 1\n255\n128 128 128\n"
	if sb.String() != expected {
		t.Errorf("Unexpected PPM output:\ngot:\n%s\nwant:\n%s", sb.String(), expected)
	}
}

func TestGammaCorrection_RoundTrip(t *testing.T) {
	// The square-root transfer function inverts exactly by squaring
	corrected := linearToGamma(0.0625)
	if corrected != 0.25 {
		t.Errorf("Expected gamma(0.0625)=0.25, got %f", corrected)
	}
	if corrected*corrected != 0.0625 {
		t.Errorf("Expected round-trip 0.0625, got %f", corrected*corrected)
	}

	// Non-positive values map to zero rather than NaN
	if got := linearToGamma(-1); got != 0 {
		t.Errorf("Expected gamma of negative value to be 0, got %f", got)
	}
}

func TestFrame_AveragingIdentity(t *testing.T) {
	// Summing N identical samples and dividing by N returns the original
	sample := core.NewVec3(0.2, 0.4, 0.6)
	const n = 7

	frame := NewFrame(1, 1, n)
	sum := core.Vec3{}
	for i := 0; i < n; i++ {
		sum = sum.Add(sample)
	}
	frame.Set(0, 0, sum)

	average := frame.AverageAt(0, 0)
	if average.Subtract(sample).Length() > 1e-12 {
		t.Errorf("Averaging N identical samples should be the identity: expected %v, got %v", sample, average)
	}
}
