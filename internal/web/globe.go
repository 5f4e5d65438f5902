package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/timhliu/portfolio/internal/globe"
)

const defaultPickKm = 800

// trackerSettings is the tracker configuration as the browser consumes it.
type trackerSettings struct {
	IdleStep float64 `json:"idleStep"`
	Margin   float64 `json:"margin"`
	Damping  float64 `json:"damping"`
	DwellMs  int64   `json:"dwellMs"`
}

func (s *Server) trackerSettings() trackerSettings {
	cfg := globe.NewTracker(nil, s.cfg.Globe.Tracker()).Config()
	return trackerSettings{
		IdleStep: cfg.IdleStep,
		Margin:   cfg.Margin,
		Damping:  cfg.Damping,
		DwellMs:  cfg.Dwell.Milliseconds(),
	}
}

// globeData hands the browser everything it needs to draw the globe: the
// grouped locations with their cached pin positions and the tracker tuning.
func (s *Server) globeData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"radius":    globe.Radius,
		"locations": s.groups,
		"tracker":   s.trackerSettings(),
	})
}

// globeNearest resolves a click on the globe surface to the closest pin.
func (s *Server) globeNearest(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must be valid coordinates"})
		return
	}
	maxKm := float64(defaultPickKm)
	if raw := c.Query("maxKm"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxKm must be a positive number"})
			return
		}
		maxKm = v
	}

	idx, ok := s.index.Pick(lat, lng, maxKm)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location nearby"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"index": idx, "location": s.groups[idx]})
}

// globeSelect records that a visitor opened a location and returns it.
func (s *Server) globeSelect(c *gin.Context) {
	name := c.Param("name")
	idx := -1
	for i, g := range s.groups {
		if g.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown location"})
		return
	}

	if c.GetHeader("DNT") != "1" {
		if err := s.store.RecordSelection(c.Request.Context(), name, s.hashIP(c.ClientIP())); err != nil {
			s.log.Error().Err(err).Str("location", name).Msg("record selection")
		}
	}
	c.JSON(http.StatusOK, gin.H{"index": idx, "location": s.groups[idx]})
}
