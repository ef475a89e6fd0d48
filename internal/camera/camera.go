// Package camera computes the view and projection transforms of the scene
// camera. The camera is either free-flying, attached above a body, or
// staring at a fixed point.
package camera

import (
	"math"

	"orrery/internal/mathutil"
)

// Defaults of a freshly reset camera.
const (
	DefaultFov   = 75.0
	DefaultPitch = -0.523598776 // -30 degrees
	DefaultNear  = 0.1
	DefaultFar   = 4000.0

	MaxFov = 180.0
)

// DefaultEye is the starting free-flight position.
var DefaultEye = mathutil.Vec3{9, 38, -40}

// Anchor is what an attached camera rides on.
type Anchor interface {
	WorldAnchor() mathutil.Vec4
	Angle() float64
}

// Camera holds the navigation state. Angles are radians, Fov is degrees.
type Camera struct {
	Eye   mathutil.Vec3
	Pitch float64
	Yaw   float64
	Fov   float64

	Aspect float64
	Near   float64
	Far    float64
}

// New returns a camera at the defaults for the given aspect ratio and far
// plane. A zero far plane uses DefaultFar.
func New(aspect, far float64) *Camera {
	if far <= 0 {
		far = DefaultFar
	}
	c := &Camera{Aspect: aspect, Near: DefaultNear, Far: far}
	c.Reset()
	return c
}

// Reset restores position, angles and field of view.
func (c *Camera) Reset() {
	c.Eye = DefaultEye
	c.Pitch = DefaultPitch
	c.Yaw = 0
	c.Fov = DefaultFov
}

// Direction is the unit look direction for the current angles.
func (c *Camera) Direction() mathutil.Vec3 {
	cp := math.Cos(c.Pitch)
	return mathutil.Vec3{cp * math.Sin(c.Yaw), math.Sin(c.Pitch), cp * math.Cos(c.Yaw)}
}

// Position returns the eye point. It is the anchor when attached.
func (c *Camera) Position(a Anchor) mathutil.Vec3 {
	if a != nil {
		return a.WorldAnchor().XYZ()
	}
	return c.Eye
}

// View builds the world-to-camera transform. When attached, the look
// direction turns with the anchor's spin so the view follows the orbit.
// When stare is non-nil the camera looks at it regardless of angles.
func (c *Camera) View(a Anchor, stare *mathutil.Vec3) mathutil.Mat4 {
	eye := c.Position(a)
	dir := c.Direction()
	if a != nil {
		dir = mathutil.RotY(mathutil.Deg2Rad(-a.Angle())).MulVec4(dir.Dir()).XYZ()
	}
	ref := eye.Add(dir)
	if stare != nil {
		ref = *stare
	}
	return mathutil.LookAt(eye, ref, mathutil.YAxis)
}

// Projection is the perspective transform for the current field of view.
func (c *Camera) Projection() mathutil.Mat4 {
	return mathutil.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// Zoom widens (positive) or narrows the field of view, clamped to [0, 180].
func (c *Camera) Zoom(delta float64) {
	c.Fov = math.Max(0, math.Min(MaxFov, c.Fov+delta))
}

// Walk moves the eye in the horizontal plane relative to the yaw: forward
// along the look direction, strafe to the left.
func (c *Camera) Walk(forward, strafe float64) {
	s, co := math.Sin(c.Yaw), math.Cos(c.Yaw)
	c.Eye[0] += forward*s + strafe*co
	c.Eye[2] += forward*co - strafe*s
}

// Lift moves the eye vertically.
func (c *Camera) Lift(d float64) {
	c.Eye[1] += d
}

// Turn adds to yaw and pitch.
func (c *Camera) Turn(yaw, pitch float64) {
	c.Yaw += yaw
	c.Pitch += pitch
}
