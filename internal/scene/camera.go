package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// maxElevation keeps the orbit away from the poles where the view is undefined
const maxElevation = math.Pi/2 - 0.01

// Camera is a perspective camera orbiting a target point. The world is Z-up.
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Vertical field of view in degrees
	Near     float64
	Far      float64
}

// NewCamera creates a Z-up camera looking from position at target
func NewCamera(position, target geometry.Vector3, fov, near, far float64) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       geometry.Up,
		FOV:      fov,
		Near:     near,
		Far:      far,
	}
}

// Forward returns the unit view direction
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Distance returns the distance from the eye to the target
func (c *Camera) Distance() float64 {
	return c.Position.Distance(c.Target)
}

// ViewMatrix returns the world-to-camera transform
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(toVec3(c.Position), toVec3(c.Target), toVec3(c.stableUp()))
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio
func (c *Camera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Unproject maps a normalized device coordinate back into world space
func (c *Camera) Unproject(ndcX, ndcY, ndcZ, aspect float64) geometry.Vector3 {
	inv := c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix()).Inv()
	p := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, ndcZ, 1})
	if p.W() != 0 {
		p = p.Mul(1 / p.W())
	}
	return geometry.NewVector3(p.X(), p.Y(), p.Z())
}

// Project maps a world point to screen pixels. ok is false for points behind
// the camera.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (x, y float64, ok bool) {
	clip := c.ProjectionMatrix(width / height).Mul4(c.ViewMatrix()).Mul4x1(toVec3(point).Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX + 1) / 2 * width, (1 - ndcY) / 2 * height, true
}

// Orbit rotates the eye around the target. Azimuth turns around the Z axis,
// elevation tilts towards the poles.
func (c *Camera) Orbit(deltaAzimuth, deltaElevation float64) {
	azimuth, elevation := c.angles()
	c.SetView(azimuth+deltaAzimuth, elevation+deltaElevation)
}

// SetView places the eye at the given angles keeping the current distance
func (c *Camera) SetView(azimuth, elevation float64) {
	elevation = math.Max(-maxElevation, math.Min(maxElevation, elevation))
	distance := c.Distance()
	offset := geometry.NewVector3(
		distance*math.Cos(elevation)*math.Cos(azimuth),
		distance*math.Cos(elevation)*math.Sin(azimuth),
		distance*math.Sin(elevation),
	)
	c.Position = c.Target.Add(offset)
}

// Zoom scales the distance to the target by (1 + delta)
func (c *Camera) Zoom(delta float64) {
	distance := c.Distance() * (1.0 + delta)
	if distance < 0.1 {
		distance = 0.1
	}
	c.Position = c.Target.Add(c.Position.Sub(c.Target).Normalize().Mul(distance))
}

// Pan shifts eye and target in the view plane. Deltas are in pixels.
func (c *Camera) Pan(deltaX, deltaY float64) {
	forward := c.Forward()
	right := forward.Cross(c.stableUp()).Normalize()
	up := right.Cross(forward).Normalize()

	speed := c.Distance() * 0.001
	move := right.Mul(-deltaX * speed).Add(up.Mul(deltaY * speed))
	c.Position = c.Position.Add(move)
	c.Target = c.Target.Add(move)
}

// Frame centers the target on bbox and backs off far enough to see all of it
func (c *Camera) Frame(bbox geometry.BoundingBox) {
	if bbox.IsEmpty() {
		return
	}
	direction := c.Position.Sub(c.Target).Normalize()
	c.Target = bbox.Center()
	distance := math.Max(bbox.Diagonal()*1.2, 1)
	c.Position = c.Target.Add(direction.Mul(distance))
}

func (c *Camera) angles() (azimuth, elevation float64) {
	offset := c.Position.Sub(c.Target)
	horizontal := math.Hypot(offset.X, offset.Y)
	return math.Atan2(offset.Y, offset.X), math.Atan2(offset.Z, horizontal)
}

// stableUp returns Up, or the Y axis when looking straight along Up
func (c *Camera) stableUp() geometry.Vector3 {
	if c.Forward().Cross(c.Up).LengthSquared() < 1e-12 {
		return geometry.NewVector3(0, 1, 0)
	}
	return c.Up
}

func toVec3(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
