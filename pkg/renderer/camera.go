package renderer

import (
	"math"
	"math/rand"

	"github.com/rmak/go-pathtracer/pkg/core"
)

// CameraConfig contains camera configuration. Every field is optional: zero
// or absent values resolve to the documented defaults at construction time,
// never at render time.
type CameraConfig struct {
	Width           int       // Image width in pixels (default 400)
	AspectRatio     float64   // Width / height (default 16:9)
	SamplesPerPixel int       // Rays per pixel (default 100)
	MaxDepth        int       // Maximum ray bounce depth (default 50)
	VFov            float64   // Vertical field of view in degrees (default 90)
	LookFrom        core.Vec3 // Camera position (default origin)
	LookAt          core.Vec3 // Point the camera faces (default (0,0,-1))
	Up              core.Vec3 // World up direction (default (0,1,0))
	DefocusAngle    float64   // Aperture cone angle in degrees, <= 0 = pinhole
	FocusDistance   float64   // Distance to the focus plane, 0 = auto (LookFrom to LookAt)
}

// DefaultCameraConfig returns the default camera configuration
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   0,
	}
}

// MergeCameraConfig merges override values into a base config. Zero-valued
// override fields keep the base value.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	var zeroVec core.Vec3

	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.SamplesPerPixel != 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if !override.LookFrom.Equals(zeroVec) || !override.LookAt.Equals(zeroVec) {
		merged.LookFrom = override.LookFrom
		merged.LookAt = override.LookAt
	}
	if !override.Up.Equals(zeroVec) {
		merged.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		merged.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}

	return merged
}

// Camera generates rays for rendering. It is immutable once built and safe
// to share across parallel workers.
type Camera struct {
	config       CameraConfig
	width        int
	height       int
	center       core.Vec3
	pixel00      core.Vec3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3 // Offset between horizontally adjacent pixels
	pixelDeltaV  core.Vec3 // Offset between vertically adjacent pixels
	defocusDiskU core.Vec3 // Defocus disk horizontal basis
	defocusDiskV core.Vec3 // Defocus disk vertical basis
}

// NewCamera creates a camera from a configuration, resolving every unset
// field to its default.
func NewCamera(config CameraConfig) *Camera {
	config = resolveCameraConfig(config)

	width := config.Width
	height := int(float64(width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	center := config.LookFrom

	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = config.LookAt.Subtract(config.LookFrom).Length()
	}

	// Orthonormal camera basis: w points from the target back toward the
	// camera, u points right, v points up.
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport dimensions at the focus plane
	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta/2) * focusDist
	viewportHeight := 2 * halfHeight
	viewportWidth := viewportHeight * float64(width) / float64(height)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := center.
		Subtract(w.Multiply(focusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	// Defocus disk radius from the aperture cone angle
	defocusRadius := focusDist * math.Tan(config.DefocusAngle/2*math.Pi/180)
	defocusDiskU := u.Multiply(defocusRadius)
	defocusDiskV := v.Multiply(defocusRadius)

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		center:       center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: defocusDiskU,
		defocusDiskV: defocusDiskV,
	}
}

// resolveCameraConfig fills in defaults for zero-valued fields
func resolveCameraConfig(config CameraConfig) CameraConfig {
	resolved := MergeCameraConfig(DefaultCameraConfig(), config)
	if resolved.LookFrom.Equals(resolved.LookAt) {
		// A camera must face somewhere
		resolved.LookAt = resolved.LookFrom.Add(core.NewVec3(0, 0, -1))
	}
	return resolved
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Config returns the resolved camera configuration
func (c *Camera) Config() CameraConfig { return c.config }

// GetRay generates a ray for pixel (i, j) with a uniform random jitter
// within the pixel cell for antialiasing. With a positive defocus angle the
// ray origin is sampled on the defocus disk to simulate a finite aperture.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
