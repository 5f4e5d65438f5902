package globe

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

const (
	tolerance   = 1e-6
	minChildren = 2
	maxChildren = 8
	dimensions  = 3
	earthRadius = 6371.0 // km

	// candidates fetched from the tree before re-ranking by great-circle distance
	candidates = 4
)

type spatialGroup struct {
	idx  int
	rect *rtreego.Rect
}

func (s *spatialGroup) Bounds() *rtreego.Rect {
	return s.rect
}

// Index answers "which pin is nearest to this point on the globe", used when
// a click lands on the globe surface instead of on a pin. Groups are stored by
// their position on the unit sphere, where straight-line distance orders the
// same way as great-circle distance and the antimeridian has no seam.
type Index struct {
	tree   *rtreego.Rtree
	groups []LocationGroup
}

func NewIndex(groups []LocationGroup) *Index {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	for i, g := range groups {
		p := spherePoint(g.Lat, g.Lng)
		tree.Insert(&spatialGroup{idx: i, rect: p.ToRect(tolerance)})
	}
	return &Index{tree: tree, groups: groups}
}

func (x *Index) Size() int {
	return x.tree.Size()
}

// Nearest returns the index of the group closest to lat/lng and its distance
// in kilometres. ok is false when the index is empty.
func (x *Index) Nearest(lat, lng float64) (idx int, km float64, ok bool) {
	k := candidates
	if n := x.tree.Size(); n < k {
		k = n
	}
	if k == 0 {
		return -1, 0, false
	}

	idx, km = -1, math.Inf(1)
	for _, s := range x.tree.NearestNeighbors(k, spherePoint(lat, lng)) {
		sg, isGroup := s.(*spatialGroup)
		if !isGroup {
			continue
		}
		g := x.groups[sg.idx]
		if d := haversineDistance(lat, lng, g.Lat, g.Lng); d < km {
			idx, km = sg.idx, d
		}
	}
	return idx, km, idx >= 0
}

// Pick is Nearest limited to groups within maxKm.
func (x *Index) Pick(lat, lng, maxKm float64) (int, bool) {
	idx, km, ok := x.Nearest(lat, lng)
	if !ok || km > maxKm {
		return -1, false
	}
	return idx, true
}

func spherePoint(lat, lng float64) rtreego.Point {
	v := Project(lat, lng, 1, 0)
	return rtreego.Point{v.X, v.Y, v.Z}
}

// haversineDistance calculates the distance between two lat/lon points in kilometers
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}
