package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTestPickKm = 800

func testGroups() []LocationGroup {
	places := []PlaceRecord{
		{Name: "Boston", Lat: 42.3601, Lng: -71.0589},
		{Name: "Hong Kong", Lat: 22.3193, Lng: 114.1694},
		{Name: "London", Lat: 51.5074, Lng: -0.1278},
		{Name: "Ho Chi Minh City", Lat: 10.8231, Lng: 106.6297},
		{Name: "Singapore", Lat: 1.3521, Lng: 103.8198},
	}
	var experiences []ExperienceRecord
	for _, p := range places {
		experiences = append(experiences, ExperienceRecord{Company: p.Name + " Co", Location: p.Name})
	}
	return Group(experiences, places)
}

func TestIndexNearest(t *testing.T) {
	groups := testGroups()
	index := NewIndex(groups)
	assert.Equal(t, 5, index.Size())

	// Cambridge, MA
	idx, km, ok := index.Nearest(42.3736, -71.1097)
	require.True(t, ok)
	assert.Equal(t, "Boston", groups[idx].Name)
	assert.Less(t, km, 10.0)

	// Kuala Lumpur is closest to Singapore
	idx, _, ok = index.Nearest(3.1390, 101.6869)
	require.True(t, ok)
	assert.Equal(t, "Singapore", groups[idx].Name)
}

func TestIndexPick(t *testing.T) {
	groups := testGroups()
	index := NewIndex(groups)

	idx, ok := index.Pick(51.4545, -2.5879, 200) // Bristol
	require.True(t, ok)
	assert.Equal(t, "London", groups[idx].Name)

	_, ok = index.Pick(-33.8688, 151.2093, 500) // Sydney
	assert.False(t, ok)
}

func TestIndexAcrossAntimeridian(t *testing.T) {
	groups := []LocationGroup{
		{Name: "Fiji East", Lat: 0, Lng: -179.9},
		{Name: "B", Lat: 0, Lng: 170},
		{Name: "C", Lat: 1, Lng: 170},
		{Name: "D", Lat: -1, Lng: 170},
		{Name: "E", Lat: 0, Lng: 169},
	}
	index := NewIndex(groups)

	idx, km, ok := index.Nearest(0, 179.9)
	require.True(t, ok)
	assert.Equal(t, "Fiji East", groups[idx].Name)
	assert.InDelta(t, 22, km, 1)

	idx, ok = index.Pick(0, 179.9, defaultTestPickKm)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestIndexNearPole(t *testing.T) {
	// Far apart in longitude but close on the ground near the pole.
	groups := []LocationGroup{
		{Name: "Across", Lat: 89, Lng: 180},
		{Name: "Same meridian", Lat: 80, Lng: 0},
	}
	index := NewIndex(groups)

	idx, _, ok := index.Nearest(88, 0)
	require.True(t, ok)
	assert.Equal(t, "Across", groups[idx].Name)
}

func TestIndexEmpty(t *testing.T) {
	index := NewIndex(nil)
	_, _, ok := index.Nearest(0, 0)
	assert.False(t, ok)
	_, ok = index.Pick(0, 0, 1000)
	assert.False(t, ok)
}

func TestHaversineDistance(t *testing.T) {
	// London to Paris is roughly 344 km.
	d := haversineDistance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, d, 5)
}
