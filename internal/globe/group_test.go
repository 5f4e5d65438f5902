package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	experiences := []ExperienceRecord{
		{Company: "MLV", Location: "A"},
		{Company: "PwC", Location: "B"},
		{Company: "Boston College", Location: "A"},
		{Company: "UCL", Location: "C"},
	}
	places := []PlaceRecord{
		{Name: "A", Lat: 42.3601, Lng: -71.0589},
		{Name: "B", Lat: 22.3193, Lng: 114.1694},
	}

	groups := Group(experiences, places)
	require.Len(t, groups, 2)

	assert.Equal(t, "A", groups[0].Name)
	assert.Equal(t, "B", groups[1].Name)
	require.Len(t, groups[0].Experiences, 2)
	assert.Equal(t, "MLV", groups[0].Experiences[0].Company)
	assert.Equal(t, "Boston College", groups[0].Experiences[1].Company)
	assert.Len(t, groups[1].Experiences, 1)

	assert.Equal(t, Project(42.3601, -71.0589, Radius, PinAltitude), groups[0].Position)
}

func TestGroupOrderFollowsExperiences(t *testing.T) {
	places := []PlaceRecord{{Name: "A"}, {Name: "B"}}
	groups := Group([]ExperienceRecord{{Location: "B"}, {Location: "A"}}, places)
	require.Len(t, groups, 2)
	assert.Equal(t, "B", groups[0].Name)
	assert.Equal(t, "A", groups[1].Name)
}

func TestGroupStable(t *testing.T) {
	experiences := []ExperienceRecord{{Location: "A"}, {Location: "B"}}
	places := []PlaceRecord{{Name: "A", Lat: 1}, {Name: "B", Lat: 2}}
	assert.Equal(t, Group(experiences, places), Group(experiences, places))
}

func TestGroupEmpty(t *testing.T) {
	assert.Empty(t, Group(nil, []PlaceRecord{{Name: "A"}}))
	assert.Empty(t, Group([]ExperienceRecord{{Location: "A"}}, nil))
}

func TestOrphans(t *testing.T) {
	experiences := []ExperienceRecord{
		{Company: "MLV", Location: "A"},
		{Company: "UCL", Location: "C"},
		{Company: "OOCL", Location: ""},
	}
	orphans := Orphans(experiences, []PlaceRecord{{Name: "A"}})
	require.Len(t, orphans, 2)
	assert.Equal(t, "UCL", orphans[0].Company)
	assert.Equal(t, "OOCL", orphans[1].Company)
}
