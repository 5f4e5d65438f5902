// Package config reads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/timhliu/portfolio/internal/globe"
)

type SMTP struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	To   string `env:"TO_EMAIL"`
}

// Configured reports whether mail can be sent at all.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != "" && s.To != ""
}

type Admin struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

// Globe tunes the experience globe. GLOBE_MARGIN=0 turns off hysteresis and
// GLOBE_IDLE_STEP=0 stops the idle spin.
type Globe struct {
	Dwell    time.Duration `env:"GLOBE_DWELL" envDefault:"6s"`
	Margin   float64       `env:"GLOBE_MARGIN" envDefault:"0.05"`
	Damping  float64       `env:"GLOBE_DAMPING" envDefault:"0.08"`
	IdleStep float64       `env:"GLOBE_IDLE_STEP" envDefault:"0.003"`
}

func (g Globe) Tracker() globe.TrackerConfig {
	return globe.TrackerConfig{
		IdleStep: g.IdleStep,
		Margin:   g.Margin,
		Damping:  g.Damping,
		Dwell:    g.Dwell,
	}
}

type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	ContentPath      string        `env:"CONTENT_PATH"`
	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	TrustedProxies   []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	SMTP             SMTP
	Admin            Admin
	Globe            Globe
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
