// Package globe holds the geometry and per-frame state behind the experience
// globe: projecting places onto a sphere, grouping experience by place, and
// deciding which pin faces the viewer.
package globe

import "math"

const (
	// Radius is the globe radius in scene units.
	Radius = 1.5
	// PinAltitude lifts pins slightly off the surface.
	PinAltitude = 0.01
)

// Vec3 is a point or direction in the globe's local frame.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector along v. ok is false for the zero vector.
func (v Vec3) Normalize() (u Vec3, ok bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec3{}, false
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}, true
}

// RotateY rotates v about the Y axis by angle radians, matching a scene
// graph's rotation.y applied to a child at v.
func (v Vec3) RotateY(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Project maps latitude/longitude in degrees onto a sphere of radius+altitude.
func Project(lat, lng, radius, altitude float64) Vec3 {
	phi := (90 - lat) * math.Pi / 180
	theta := (lng + 180) * math.Pi / 180
	r := radius + altitude

	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return Vec3{
		X: -r * sinPhi * cosTheta,
		Y: r * cosPhi,
		Z: r * sinPhi * sinTheta,
	}
}

// Visible reports whether a pin at local position pos, with the globe rotated
// by rotation, is on the camera's side of the globe.
func Visible(pos Vec3, rotation float64, camera Vec3) bool {
	n, ok := pos.RotateY(rotation).Normalize()
	if !ok {
		return false
	}
	dir, ok := camera.Normalize()
	if !ok {
		return false
	}
	return n.Dot(dir) >= 0
}

// wrapToSignedPi maps an angle into [-π, π].
func wrapToSignedPi(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
