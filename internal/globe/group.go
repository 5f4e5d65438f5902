package globe

// Status of an experience record.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// ExperienceRecord is one role at one place.
type ExperienceRecord struct {
	Company     string `json:"company" yaml:"company"`
	Role        string `json:"role" yaml:"role"`
	Period      string `json:"period" yaml:"period"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
	Location    string `json:"location" yaml:"location"`
}

// PlaceRecord names a place and where it is.
type PlaceRecord struct {
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
	Flag string  `json:"flag,omitempty" yaml:"flag"`
}

// LocationGroup is every experience record sharing one place, with the pin
// position precomputed.
type LocationGroup struct {
	Name        string             `json:"name"`
	Lat         float64            `json:"lat"`
	Lng         float64            `json:"lng"`
	Flag        string             `json:"flag,omitempty"`
	Experiences []ExperienceRecord `json:"experiences"`
	Position    Vec3               `json:"position"`
}

// Group buckets experiences by location name in first-seen order. Records
// whose location has no matching place are left out; see Orphans.
func Group(experiences []ExperienceRecord, places []PlaceRecord) []LocationGroup {
	byName := placeIndex(places)

	var groups []LocationGroup
	slot := make(map[string]int)
	for _, exp := range experiences {
		place, ok := byName[exp.Location]
		if !ok {
			continue
		}
		i, seen := slot[exp.Location]
		if !seen {
			i = len(groups)
			slot[exp.Location] = i
			groups = append(groups, LocationGroup{
				Name:     place.Name,
				Lat:      place.Lat,
				Lng:      place.Lng,
				Flag:     place.Flag,
				Position: Project(place.Lat, place.Lng, Radius, PinAltitude),
			})
		}
		groups[i].Experiences = append(groups[i].Experiences, exp)
	}
	return groups
}

// Orphans returns the experience records Group drops, in source order.
func Orphans(experiences []ExperienceRecord, places []PlaceRecord) []ExperienceRecord {
	byName := placeIndex(places)
	var out []ExperienceRecord
	for _, exp := range experiences {
		if _, ok := byName[exp.Location]; !ok {
			out = append(out, exp)
		}
	}
	return out
}

// placeIndex keys places by name; the first place wins on duplicates.
func placeIndex(places []PlaceRecord) map[string]PlaceRecord {
	m := make(map[string]PlaceRecord, len(places))
	for _, p := range places {
		if _, dup := m[p.Name]; !dup {
			m[p.Name] = p
		}
	}
	return m
}
