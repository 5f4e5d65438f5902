package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timhliu/portfolio/internal/globe"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 365*24*time.Hour, cfg.VisitorRetention)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.Equal(t, 6*time.Second, cfg.Globe.Dwell)
	assert.Equal(t, globe.DefaultTrackerConfig(), cfg.Globe.Tracker())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GLOBE_DWELL", "30s")
	t.Setenv("GLOBE_MARGIN", "0.1")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("TO_EMAIL", "inbox@example.com")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)

	tc := cfg.Globe.Tracker()
	assert.Equal(t, 30*time.Second, tc.Dwell)
	assert.Equal(t, 0.1, tc.Margin)
	assert.Equal(t, 0.08, tc.Damping)
}

func TestLoadZeroMarginKept(t *testing.T) {
	t.Setenv("GLOBE_MARGIN", "0")
	t.Setenv("GLOBE_IDLE_STEP", "0")

	cfg, err := Load()
	require.NoError(t, err)

	tc := globe.NewTracker(nil, cfg.Globe.Tracker()).Config()
	assert.Zero(t, tc.Margin)
	assert.Zero(t, tc.IdleStep)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("GLOBE_DWELL", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestSMTPConfigured(t *testing.T) {
	assert.False(t, SMTP{User: "u"}.Configured())
	assert.True(t, SMTP{User: "u", Pass: "p", To: "t"}.Configured())
}
