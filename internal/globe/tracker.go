package globe

import (
	"math"
	"time"
)

// TrackerConfig tunes the per-frame behaviour of a Tracker. IdleStep and
// Margin are used as given, so zero turns off the spin or the hysteresis.
// Damping and Dwell have no useful zero and fall back to DefaultTrackerConfig.
type TrackerConfig struct {
	// IdleStep is the spin added to the rotation each idle frame, in radians.
	IdleStep float64 `json:"idleStep"`
	// Margin is how much closer to the camera (in dot product) a pin must be
	// before it replaces the active one.
	Margin float64 `json:"margin"`
	// Damping is the fraction of the remaining angle covered per targeted frame.
	Damping float64 `json:"damping"`
	// Dwell is how long a selection holds before idle spin resumes.
	Dwell time.Duration `json:"dwell"`
}

func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		IdleStep: 0.003,
		Margin:   0.05,
		Damping:  0.08,
		Dwell:    6 * time.Second,
	}
}

func (c TrackerConfig) withDefaults() TrackerConfig {
	d := DefaultTrackerConfig()
	if c.Margin < 0 {
		c.Margin = 0
	}
	if c.Damping <= 0 || c.Damping > 1 {
		c.Damping = d.Damping
	}
	if c.Dwell <= 0 {
		c.Dwell = d.Dwell
	}
	return c
}

// TrackerState is a snapshot of a Tracker. Active and Target are -1 when unset.
type TrackerState struct {
	Active    int           `json:"active"`
	Rotation  float64       `json:"rotation"`
	Target    int           `json:"target"`
	Remaining time.Duration `json:"remaining"`
}

// Frame is what a tick hands back to the renderer.
type Frame struct {
	Rotation float64
	Active   int
	Targeted bool
}

// Tracker decides which location faces the viewer and how far the globe is
// turned. It is driven once per rendered frame and is not safe for
// concurrent use.
type Tracker struct {
	cfg      TrackerConfig
	groups   []LocationGroup
	onActive func(LocationGroup)

	rotation  float64
	active    int
	target    int
	remaining time.Duration
}

func NewTracker(groups []LocationGroup, cfg TrackerConfig) *Tracker {
	return &Tracker{
		cfg:    cfg.withDefaults(),
		groups: groups,
		active: -1,
		target: -1,
	}
}

// OnActive registers fn to run once each time the active location changes.
func (t *Tracker) OnActive(fn func(LocationGroup)) {
	t.onActive = fn
}

func (t *Tracker) Config() TrackerConfig {
	return t.cfg
}

func (t *Tracker) State() TrackerState {
	return TrackerState{
		Active:    t.active,
		Rotation:  t.rotation,
		Target:    t.target,
		Remaining: t.remaining,
	}
}

func (t *Tracker) Rotation() float64 {
	return t.rotation
}

// Active returns the active location, if any.
func (t *Tracker) Active() (LocationGroup, bool) {
	if t.active < 0 {
		return LocationGroup{}, false
	}
	return t.groups[t.active], true
}

func (t *Tracker) Targeted() bool {
	return t.target >= 0
}

// Select turns the globe toward group i and holds it there for the dwell
// period. Selecting again restarts the dwell countdown.
func (t *Tracker) Select(i int) bool {
	if i < 0 || i >= len(t.groups) {
		return false
	}
	t.target = i
	t.remaining = t.cfg.Dwell
	t.setActive(i)
	return true
}

// Click selects group i unless its pin is on the far side of the globe from
// camera.
func (t *Tracker) Click(i int, camera Vec3) bool {
	if i < 0 || i >= len(t.groups) {
		return false
	}
	if !Visible(t.groups[i].Position, t.rotation, camera) {
		return false
	}
	return t.Select(i)
}

// Release drops the current selection and resumes idle spin on the next tick.
func (t *Tracker) Release() {
	t.target = -1
	t.remaining = 0
}

// Scroll turns the globe by a change in page scroll progress. It is ignored
// while a selection is held.
func (t *Tracker) Scroll(delta float64) {
	if t.target >= 0 {
		return
	}
	t.rotation = wrapToSignedPi(t.rotation + delta*math.Pi*0.8)
}

// Tick advances one frame. camera is the direction from the globe centre to
// the camera; dt is the wall-clock time since the previous tick.
func (t *Tracker) Tick(camera Vec3, dt time.Duration) Frame {
	if t.target >= 0 {
		t.remaining -= dt
		if t.remaining <= 0 {
			t.Release()
		}
	}

	if t.target >= 0 {
		pin := t.groups[t.target].Position
		goal := -math.Atan2(pin.X, pin.Z)
		t.rotation = wrapToSignedPi(t.rotation + wrapToSignedPi(goal-t.rotation)*t.cfg.Damping)
		return t.frame()
	}

	t.rotation = wrapToSignedPi(t.rotation + t.cfg.IdleStep)
	if dir, ok := camera.Normalize(); ok {
		t.scan(dir)
	}
	return t.frame()
}

// scan promotes the most camera-facing pin if it beats the active one by
// more than the margin.
func (t *Tracker) scan(dir Vec3) {
	best, bestDot := -1, math.Inf(-1)
	activeDot := math.Inf(-1)
	for i, g := range t.groups {
		n, ok := g.Position.RotateY(t.rotation).Normalize()
		if !ok {
			continue
		}
		d := n.Dot(dir)
		if i == t.active {
			activeDot = d
		}
		if d > bestDot {
			best, bestDot = i, d
		}
	}
	if best < 0 || best == t.active {
		return
	}
	if t.active < 0 || bestDot > activeDot+t.cfg.Margin {
		t.setActive(best)
	}
}

func (t *Tracker) setActive(i int) {
	if i == t.active {
		return
	}
	t.active = i
	if t.onActive != nil {
		t.onActive(t.groups[i])
	}
}

func (t *Tracker) frame() Frame {
	return Frame{
		Rotation: t.rotation,
		Active:   t.active,
		Targeted: t.target >= 0,
	}
}
