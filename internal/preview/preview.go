// Package preview runs the experience globe in the terminal: a globe.Tracker
// ticked by a bubbletea program, with the pins drawn on a strip that shows
// which side of the globe faces the viewer.
package preview

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/timhliu/portfolio/internal/globe"
)

const (
	frameInterval = 16 * time.Millisecond
	stripWidth    = 60
	maxLog        = 5
)

// camera looks at the globe from +Z.
var camera = globe.Vec3{Z: 5}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF9500"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00C9A7"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type frameMsg time.Time

type Model struct {
	tracker *globe.Tracker
	groups  []globe.LocationGroup
	last    time.Time
	log     []string
}

func New(groups []globe.LocationGroup, cfg globe.TrackerConfig) *Model {
	m := &Model{
		tracker: globe.NewTracker(groups, cfg),
		groups:  groups,
	}
	m.tracker.OnActive(func(g globe.LocationGroup) {
		m.log = append(m.log, "now facing "+g.Name)
		if len(m.log) > maxLog {
			m.log = m.log[len(m.log)-maxLog:]
		}
	})
	return m
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return nextFrame()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		dt := frameInterval
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		m.tracker.Tick(camera, dt)
		return m, nextFrame()

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.tracker.Release()
		case "left":
			m.tracker.Scroll(-0.05)
		case "right":
			m.tracker.Scroll(0.05)
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				m.tracker.Click(int(key[0]-'1'), camera)
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	st := m.tracker.State()

	b.WriteString(titleStyle.Render("Flight Log"))
	fmt.Fprintf(&b, "  rotation %6.1f°", st.Rotation*180/math.Pi)
	if st.Target >= 0 {
		fmt.Fprintf(&b, "  holding %s (%.1fs)", m.groups[st.Target].Name, st.Remaining.Seconds())
	} else {
		b.WriteString(dimStyle.Render("  idle"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.strip(st))
	b.WriteString("\n\n")

	for i, g := range m.groups {
		line := fmt.Sprintf("%d. %s %s (%d)", i+1, g.Flag, g.Name, len(g.Experiences))
		switch {
		case i == st.Active:
			b.WriteString(activeStyle.Render("▶ " + line))
		case !globe.Visible(g.Position, st.Rotation, camera):
			b.WriteString(dimStyle.Render("  " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if active, ok := m.tracker.Active(); ok {
		b.WriteString("\n")
		for _, e := range active.Experiences {
			fmt.Fprintf(&b, "  %s, %s %s\n", e.Company, e.Role, dimStyle.Render(e.Period))
		}
	}

	if len(m.log) > 0 {
		b.WriteString("\n")
		for _, l := range m.log {
			b.WriteString(dimStyle.Render("  "+l) + "\n")
		}
	}
	b.WriteString(dimStyle.Render("\n1-9 select facing pin  ←/→ turn  esc release  q quit\n"))
	return b.String()
}

// strip draws the visible hemisphere as a line: the centre column faces the
// camera and the edges are the limbs.
func (m *Model) strip(st globe.TrackerState) string {
	cells := []rune(strings.Repeat("·", stripWidth))
	for i, g := range m.groups {
		w := g.Position.RotateY(st.Rotation)
		if w.Z < 0 {
			continue
		}
		az := math.Atan2(w.X, w.Z) // -π/2..π/2 on the near side
		col := int((az/math.Pi + 0.5) * float64(stripWidth-1))
		if col < 0 || col >= stripWidth {
			continue
		}
		mark := rune('1' + i)
		if i > 8 {
			mark = '*'
		}
		cells[col] = mark
	}
	return "[" + string(cells) + "]"
}

// Run starts the preview and blocks until the user quits.
func Run(groups []globe.LocationGroup, cfg globe.TrackerConfig) error {
	_, err := tea.NewProgram(New(groups, cfg), tea.WithAltScreen()).Run()
	return err
}
