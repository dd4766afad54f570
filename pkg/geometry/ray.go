package geometry

import "math"

// Ray is a half-line with a unit direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ClosestToSegment returns the ray parameter and the squared distance of the
// closest approach between the ray and the segment [a, b].
func (r Ray) ClosestToSegment(a, b Vector3) (t float64, distSq float64) {
	seg := b.Sub(a)
	diff := r.Origin.Sub(a)

	// Direction is unit length, so its squared length is 1
	e := seg.LengthSquared()
	bb := r.Direction.Dot(seg)
	c := r.Direction.Dot(diff)
	f := seg.Dot(diff)

	var s float64 // segment parameter in [0, 1]
	if e <= rayEpsilon {
		t = math.Max(0, -c)
		s = 0
	} else {
		denom := e - bb*bb
		if denom > rayEpsilon {
			t = math.Max(0, (bb*f-c*e)/denom)
		}
		s = (bb*t + f) / e
		if s < 0 {
			s = 0
			t = math.Max(0, -c)
		} else if s > 1 {
			s = 1
			t = math.Max(0, bb-c)
		}
	}

	onRay := r.At(t)
	onSeg := a.Add(seg.Mul(s))
	return t, onRay.Sub(onSeg).LengthSquared()
}

// IntersectPlane returns the ray parameter where the ray crosses the plane
// through point with the given normal.
func (r Ray) IntersectPlane(point, normal Vector3) (float64, bool) {
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) < rayEpsilon {
		return 0, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}
