package scene

import (
	"github.com/rmak/go-pathtracer/pkg/core"
	"github.com/rmak/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the camera, the
// geometry, and the background gradient colors.
type Scene struct {
	CameraConfig     renderer.CameraConfig
	Shapes           []core.Hittable
	BackgroundTop    core.Vec3
	BackgroundBottom core.Vec3

	camera *renderer.Camera
}

// NewScene creates a scene with the given camera configuration and the
// standard white-to-sky-blue background.
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		CameraConfig:     cameraConfig,
		Shapes:           make([]core.Hittable, 0),
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0), // Sky blue
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0), // White
		camera:           renderer.NewCamera(cameraConfig),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Hittable) {
	s.Shapes = append(s.Shapes, shapes...)
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetBackgroundColors returns the top and bottom gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.BackgroundTop, s.BackgroundBottom
}

// GetShapes returns the objects in the scene
func (s *Scene) GetShapes() []core.Hittable {
	return s.Shapes
}
