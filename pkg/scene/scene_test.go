package scene

import (
	"testing"

	"github.com/rmak/go-pathtracer/pkg/core"
	"github.com/rmak/go-pathtracer/pkg/geometry"
	"github.com/rmak/go-pathtracer/pkg/renderer"
)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.GetCamera() == nil {
		t.Fatal("Scene should have a camera")
	}
	if s.GetCamera().Width() != 400 {
		t.Errorf("Expected default width 400, got %d", s.GetCamera().Width())
	}

	// Ground, center, hollow glass pair, metal
	if len(s.GetShapes()) != 5 {
		t.Errorf("Expected 5 shapes, got %d", len(s.GetShapes()))
	}

	top, bottom := s.GetBackgroundColors()
	if !top.Equals(core.NewVec3(0.5, 0.7, 1.0)) {
		t.Errorf("Expected sky blue top color, got %v", top)
	}
	if !bottom.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected white bottom color, got %v", bottom)
	}
}

func TestNewDefaultScene_CameraOverrides(t *testing.T) {
	s := NewDefaultScene(renderer.CameraConfig{Width: 120, SamplesPerPixel: 9})

	if s.GetCamera().Width() != 120 {
		t.Errorf("Expected width override 120, got %d", s.GetCamera().Width())
	}
	if s.GetCamera().Config().SamplesPerPixel != 9 {
		t.Errorf("Expected samples override 9, got %d", s.GetCamera().Config().SamplesPerPixel)
	}
	// Non-overridden fields keep the scene's defaults
	if s.GetCamera().Config().VFov != 20.0 {
		t.Errorf("Expected scene default vfov 20, got %f", s.GetCamera().Config().VFov)
	}
}

func TestNewCoverScene_Deterministic(t *testing.T) {
	a := NewCoverScene(1)
	b := NewCoverScene(1)

	if len(a.GetShapes()) != len(b.GetShapes()) {
		t.Fatalf("Same seed should produce the same shape count: %d vs %d",
			len(a.GetShapes()), len(b.GetShapes()))
	}

	for i := range a.GetShapes() {
		sa := a.GetShapes()[i].(*geometry.Sphere)
		sb := b.GetShapes()[i].(*geometry.Sphere)
		if !sa.Center.Equals(sb.Center) || sa.Radius != sb.Radius {
			t.Fatalf("Shape %d differs between identical seeds", i)
		}
	}
}

func TestNewCoverScene_Composition(t *testing.T) {
	s := NewCoverScene(42)

	// Ground plus three feature spheres plus most of the 22x22 grid (some
	// positions are skipped near the large metal sphere)
	count := len(s.GetShapes())
	if count < 400 || count > 488 {
		t.Errorf("Unexpected shape count %d", count)
	}

	ground := s.GetShapes()[0].(*geometry.Sphere)
	if ground.Radius != 1000 {
		t.Errorf("Expected ground radius 1000, got %f", ground.Radius)
	}

	if s.GetCamera().Config().DefocusAngle != 0.6 {
		t.Errorf("Expected wide aperture 0.6, got %f", s.GetCamera().Config().DefocusAngle)
	}
}
