// Package content loads the static site content: bio, places, experience,
// ventures, skills and the rest of what the page renders.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/timhliu/portfolio/internal/globe"
	"github.com/timhliu/portfolio/internal/palette"
)

//go:embed site.yaml
var defaultSite []byte

// ErrInvalidPlace is returned when a place has coordinates off the globe.
var ErrInvalidPlace = errors.New("invalid place")

type Stat struct {
	Label    string  `yaml:"label"`
	Value    float64 `yaml:"value"`
	Prefix   string  `yaml:"prefix"`
	Suffix   string  `yaml:"suffix"`
	Decimals int     `yaml:"decimals"`
}

// Display formats the stat the way the counter settles.
func (s Stat) Display() string {
	return fmt.Sprintf("%s%.*f%s", s.Prefix, s.Decimals, s.Value, s.Suffix)
}

type Socials struct {
	LinkedIn  string `yaml:"linkedin"`
	Instagram string `yaml:"instagram"`
	TikTok    string `yaml:"tiktok"`
	BookCall  string `yaml:"bookCall"`
}

type Personal struct {
	Name      string              `yaml:"name"`
	ShortName string              `yaml:"shortName"`
	Initials  string              `yaml:"initials"`
	Email     string              `yaml:"email"`
	Location  string              `yaml:"location"`
	Tagline   string              `yaml:"tagline"`
	Roles     []string            `yaml:"roles"`
	Bio       string              `yaml:"bio"`
	PullQuote string              `yaml:"pullQuote"`
	Stats     []Stat              `yaml:"stats"`
	Socials   Socials             `yaml:"socials"`
	Places    []globe.PlaceRecord `yaml:"places"`
}

type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Program struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Venture struct {
	Name        string    `yaml:"name"`
	FullName    string    `yaml:"fullName"`
	Tagline     string    `yaml:"tagline"`
	Role        string    `yaml:"role"`
	Description string    `yaml:"description"`
	Metrics     []Metric  `yaml:"metrics"`
	Programs    []Program `yaml:"programs"`
	Markets     []string  `yaml:"markets"`
	Cofounders  []string  `yaml:"cofounders"`
	Link        string    `yaml:"link"`
	Press       string    `yaml:"press"`
	Status      string    `yaml:"status"`
	AccentColor string    `yaml:"accentColor"`
}

type Language struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type Skills struct {
	Programming []string   `yaml:"programming"`
	Tools       []string   `yaml:"tools"`
	Business    []string   `yaml:"business"`
	Languages   []Language `yaml:"languages"`
}

type Leadership struct {
	Title string `yaml:"title"`
	Org   string `yaml:"org"`
}

type Education struct {
	School     string `yaml:"school"`
	Degree     string `yaml:"degree"`
	GPA        string `yaml:"gpa"`
	Graduation string `yaml:"graduation"`
}

// Site is everything the page renders.
type Site struct {
	Personal    Personal                 `yaml:"personal"`
	Ventures    []Venture                `yaml:"ventures"`
	Experience  []globe.ExperienceRecord `yaml:"experience"`
	Skills      Skills                   `yaml:"skills"`
	Leadership  []Leadership             `yaml:"leadership"`
	Education   Education                `yaml:"education"`
	NavSections []palette.Section        `yaml:"navSections"`
}

// Load reads the site from path, or the embedded content when path is empty.
func Load(path string, log zerolog.Logger) (*Site, error) {
	data := defaultSite
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", err)
		}
	}
	return Parse(data, log)
}

// Parse decodes and validates site content. Experience records pointing at
// an unknown place are kept but logged, since the globe will not show them.
func Parse(data []byte, log zerolog.Logger) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := site.validate(); err != nil {
		return nil, err
	}
	for _, orphan := range globe.Orphans(site.Experience, site.Personal.Places) {
		log.Warn().
			Str("company", orphan.Company).
			Str("location", orphan.Location).
			Msg("experience has no matching place; it will not appear on the globe")
	}
	return &site, nil
}

func (s *Site) validate() error {
	for _, p := range s.Personal.Places {
		if p.Name == "" {
			return fmt.Errorf("%w: place without a name", ErrInvalidPlace)
		}
		if p.Lat < -90 || p.Lat > 90 {
			return fmt.Errorf("%w: %s latitude %v out of range", ErrInvalidPlace, p.Name, p.Lat)
		}
		if p.Lng < -180 || p.Lng > 180 {
			return fmt.Errorf("%w: %s longitude %v out of range", ErrInvalidPlace, p.Name, p.Lng)
		}
	}
	for _, e := range s.Experience {
		switch e.Status {
		case globe.StatusActive, globe.StatusCompleted:
		default:
			return fmt.Errorf("experience %q: unknown status %q", e.Company, e.Status)
		}
	}
	return nil
}

// Locations groups the experience onto the globe.
func (s *Site) Locations() []globe.LocationGroup {
	return globe.Group(s.Experience, s.Personal.Places)
}

// Commands builds the command palette for this site.
func (s *Site) Commands() []palette.Command {
	return palette.Commands(s.NavSections, palette.Links{
		Email:     s.Personal.Email,
		LinkedIn:  s.Personal.Socials.LinkedIn,
		Instagram: s.Personal.Socials.Instagram,
		TikTok:    s.Personal.Socials.TikTok,
		BookCall:  s.Personal.Socials.BookCall,
	})
}
