// Package web serves the portfolio: the server-rendered page, the HTMX
// fragments, the JSON endpoints behind the globe and command palette, and
// the admin area.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/timhliu/portfolio/internal/config"
	"github.com/timhliu/portfolio/internal/content"
	"github.com/timhliu/portfolio/internal/globe"
	"github.com/timhliu/portfolio/internal/logging"
	"github.com/timhliu/portfolio/internal/palette"
	"github.com/timhliu/portfolio/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Store is the persistence the server needs.
type Store interface {
	RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error
	CleanupVisitors(ctx context.Context, retention time.Duration) (int64, error)
	RecentVisitors(ctx context.Context, limit int) ([]store.Visitor, error)
	SaveMessage(ctx context.Context, m store.Message) (int64, error)
	MarkMailed(ctx context.Context, id int64) error
	Messages(ctx context.Context, limit int) ([]store.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
	RecordSelection(ctx context.Context, location, hashedIP string) error
	Stats(ctx context.Context) (*store.Stats, error)
}

type Server struct {
	cfg      config.Config
	site     *content.Site
	groups   []globe.LocationGroup
	index    *globe.Index
	commands []palette.Command
	store    Store
	mailer   Mailer
	log      zerolog.Logger

	adminToken  string
	hashingSalt string

	// in-flight visitor writes, drained before Run returns
	tracking sync.WaitGroup
}

func New(cfg config.Config, site *content.Site, st Store, mailer Mailer, log zerolog.Logger) *Server {
	groups := site.Locations()
	return &Server{
		cfg:         cfg,
		site:        site,
		groups:      groups,
		index:       globe.NewIndex(groups),
		commands:    site.Commands(),
		store:       st,
		mailer:      mailer,
		log:         log,
		adminToken:  generateToken(),
		hashingSalt: generateToken(),
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(s.log), s.visitorTracking())
	if err := r.SetTrustedProxies(s.cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.home)
	r.GET("/experience", s.experience)
	r.POST("/contact", s.contact)

	api := r.Group("/api")
	api.GET("/globe", s.globeData)
	api.GET("/globe/nearest", s.globeNearest)
	api.POST("/globe/select/:name", s.globeSelect)
	api.GET("/commands", s.commandList)

	s.setupAdminRoutes(r)
	return r, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	router, err := s.Router()
	if err != nil {
		return err
	}
	go s.cleanupOldVisitorData(ctx)

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	defer s.tracking.Wait()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":      s.site,
		"locations": s.groups,
		"commands":  s.commands,
	})
}

// experience renders the flat list used on small screens instead of the globe.
func (s *Server) experience(c *gin.Context) {
	c.HTML(http.StatusOK, "experience.html", gin.H{
		"experience": s.site.Experience,
	})
}

func (s *Server) commandList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"commands": palette.Filter(s.commands, c.Query("q")),
	})
}
