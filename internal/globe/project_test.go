package globe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestProject(t *testing.T) {
	const r = 2.0
	tests := []struct {
		name     string
		lat, lng float64
		want     Vec3
	}{
		{"north pole", 90, 0, Vec3{0, r, 0}},
		{"south pole", -90, 0, Vec3{0, -r, 0}},
		{"equator prime meridian", 0, 0, Vec3{r, 0, 0}},
		{"equator 90 west", 0, -90, Vec3{0, 0, r}},
		{"equator 90 east", 0, 90, Vec3{0, 0, -r}},
		{"antimeridian", 0, 180, Vec3{-r, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, Project(tt.lat, tt.lng, r, 0))
		})
	}
}

func TestProjectAltitude(t *testing.T) {
	p := Project(42.3601, -71.0589, Radius, PinAltitude)
	assert.InDelta(t, Radius+PinAltitude, p.Len(), eps)
}

func TestNormalizeZero(t *testing.T) {
	_, ok := Vec3{}.Normalize()
	assert.False(t, ok)

	u, ok := Vec3{3, 0, 4}.Normalize()
	assert.True(t, ok)
	assertVec(t, Vec3{0.6, 0, 0.8}, u)
}

func TestRotateYFacesCamera(t *testing.T) {
	pin := Project(22.3193, 114.1694, Radius, PinAltitude)
	angle := -math.Atan2(pin.X, pin.Z)
	w := pin.RotateY(angle)
	assert.InDelta(t, 0, w.X, eps)
	assert.Greater(t, w.Z, 0.0)
}

func TestVisible(t *testing.T) {
	camera := Vec3{0, 0, 5}
	assert.True(t, Visible(Vec3{0, 0, Radius}, 0, camera))
	assert.False(t, Visible(Vec3{0, 0, -Radius}, 0, camera))
	assert.True(t, Visible(Vec3{0, 0, -Radius}, math.Pi, camera))
	assert.False(t, Visible(Vec3{0, 0, Radius}, 0, Vec3{}))
}

func TestWrapToSignedPi(t *testing.T) {
	assert.InDelta(t, 0, wrapToSignedPi(2*math.Pi), eps)
	assert.InDelta(t, -math.Pi+0.5, wrapToSignedPi(math.Pi+0.5), eps)
	assert.InDelta(t, math.Pi-0.5, wrapToSignedPi(-math.Pi-0.5), eps)
	assert.InDelta(t, 1.0, wrapToSignedPi(1+4*math.Pi), eps)
}
