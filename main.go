package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/timhliu/portfolio/internal/config"
	"github.com/timhliu/portfolio/internal/content"
	"github.com/timhliu/portfolio/internal/globe"
	"github.com/timhliu/portfolio/internal/logging"
	"github.com/timhliu/portfolio/internal/palette"
	"github.com/timhliu/portfolio/internal/preview"
	"github.com/timhliu/portfolio/internal/store"
	"github.com/timhliu/portfolio/internal/web"
)

var (
	port        string
	contentPath string
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio site with an experience globe",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE:  runServe,
}

var globeCmd = &cobra.Command{
	Use:   "globe",
	Short: "Preview the experience globe in the terminal",
	RunE:  runGlobe,
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List experience grouped by location with pin positions",
	RunE:  runLocations,
}

var paletteCmd = &cobra.Command{
	Use:   "palette [query]",
	Short: "Filter the command palette",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPalette,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contentPath, "content", "c", "", "Content YAML file (default: embedded)")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT)")
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT)")

	rootCmd.AddCommand(serveCmd, globeCmd, locationsCmd, paletteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration, the logger and the site content shared by every
// command.
func setup() (config.Config, zerolog.Logger, *content.Site, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, zerolog.Nop(), nil, err
	}
	if port != "" {
		cfg.Port = port
	}
	if contentPath != "" {
		cfg.ContentPath = contentPath
	}

	log := logging.New(os.Stderr, cfg.LogLevel)
	site, err := content.Load(cfg.ContentPath, log)
	if err != nil {
		return cfg, log, nil, err
	}
	return cfg, log, site, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, site, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	if gin.Mode() == gin.DebugMode && cfg.Admin.Password == "admin123" {
		log.Warn().Msg("using default admin password; set ADMIN_PASSWORD")
	}
	if !cfg.SMTP.Configured() {
		log.Warn().Msg("SMTP not configured; contact messages will only be stored")
	}

	srv := web.New(cfg, site, st, web.NewSMTPMailer(cfg.SMTP), log)
	return srv.Run(ctx)
}

func runGlobe(cmd *cobra.Command, args []string) error {
	cfg, _, site, err := setup()
	if err != nil {
		return err
	}
	return preview.Run(site.Locations(), cfg.Globe.Tracker())
}

func runLocations(cmd *cobra.Command, args []string) error {
	_, _, site, err := setup()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, g := range site.Locations() {
		fmt.Fprintf(out, "%s %s (%.4f, %.4f) -> [%.3f %.3f %.3f]\n",
			g.Flag, g.Name, g.Lat, g.Lng, g.Position.X, g.Position.Y, g.Position.Z)
		for _, e := range g.Experiences {
			fmt.Fprintf(out, "    %-16s %s, %s\n", e.Period, e.Company, e.Role)
		}
	}
	for _, o := range globe.Orphans(site.Experience, site.Personal.Places) {
		fmt.Fprintf(out, "unplaced: %s (%q)\n", o.Company, o.Location)
	}
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	_, _, site, err := setup()
	if err != nil {
		return err
	}
	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	out := cmd.OutOrStdout()
	for _, c := range palette.Filter(site.Commands(), query) {
		target := c.Href
		if c.Copy != "" {
			target = "copy " + c.Copy
		}
		fmt.Fprintf(out, "%s %-22s %s\n", c.Icon, c.Label, target)
	}
	return nil
}
