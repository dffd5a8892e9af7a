package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dgallion1/orgdeck/internal/config"
	"github.com/dgallion1/orgdeck/internal/deck"
	"github.com/dgallion1/orgdeck/internal/loader"
	"github.com/dgallion1/orgdeck/internal/pipeline"
	"github.com/dgallion1/orgdeck/internal/server"
)

var version = "0.3.0"

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "orgdeck",
	Short: "Turn an outline into an HTML slide deck",
	Long: `orgdeck reads an outline document (org, markdown, html, docx, pdf or
plain text) and writes one HTML page per slide plus an index.

Level-1 headings become slides or sections, level-2 headings become
child slides, and TEMPLATE / IMAGES properties pick layouts and pictures.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var buildCmd = &cobra.Command{
	Use:   "build [source]",
	Short: "Build the deck into the output directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

var serveCmd = &cobra.Command{
	Use:   "serve [source]",
	Short: "Build the deck and serve it for preview",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServe,
}

var listCmd = &cobra.Command{
	Use:   "list [source]",
	Short: "Print the slides a source would produce without writing anything",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(buildCmd, serveCmd, listCmd)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ./orgdeck.yaml or ~/.config/orgdeck/orgdeck.yaml)")
	pf.StringP("output", "o", "", "Output directory (default build)")
	pf.String("templates", "", "Template directory (default built-in templates)")
	pf.String("styles", "", "Stylesheet copied to the output (default src/styles.css)")
	pf.String("deep-headings", "", "Headings below level 2: ignore or reject")
	pf.String("annotation", "", "Annotation prefix stripped from headings (default CLAUDE)")
	pf.String("title-marker", "", "Annotation phrase marking a title slide")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: text or json")

	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default 8090)")
	serveCmd.Flags().BoolP("watch", "w", false, "Rebuild when the source changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("✗ ")+err.Error())
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if len(args) > 0 {
		cfg.Source = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, cfg.Logger(os.Stderr), nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}
	snap, err := p.Build(cmd.Context(), "cli", true)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("✓ Built %d slides to %s/", snap.Slides, cfg.Output)))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	doc, err := loader.LoadFile(cfg.Source, loader.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext})
	if err != nil {
		return err
	}
	d, err := deck.Assemble(doc, cfg.DeckOptions(log))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if d.Title != "" {
		fmt.Fprintln(out, labelStyle.Render(d.Title))
	}
	for i, s := range d.Slides {
		fmt.Fprintf(out, "%3d  %-14s %s  %s\n",
			i+1, s.Template(), labelStyle.Render(deck.Label(s)), dimStyle.Render(s.Head().Filename))
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}
	// A broken source still serves; the build log and /api/deck report it.
	if _, err := p.Build(ctx, "startup", true); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errStyle.Render("✗ ")+err.Error())
	}
	if cfg.Watch {
		if err := p.Watch(ctx); err != nil {
			return err
		}
		defer p.Stop()
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(p, log),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓ Serving ")+cfg.Output+dimStyle.Render(" on http://localhost:"+cfg.Port))
	log.Info("starting orgdeck", "port", cfg.Port, "watch", cfg.Watch)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
