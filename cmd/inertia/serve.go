package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/engine"
	"github.com/vovakirdan/inertia/internal/levels"
	"github.com/vovakirdan/inertia/internal/platform/web"
)

var (
	flagAddr        string
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve <level>",
	Short: "Broadcast a level over websocket for spectators",
	Long: `Run a level headless and stream its state to websocket clients.
Each tick's snapshot is broadcast as JSON on /ws; clients connecting
mid-run immediately receive the latest snapshot. The level restarts
when it completes or fails, so the feed runs forever.

Examples:
  inertia serve 01_first_push
  inertia serve 03_gauntlet --addr :8080
  inertia serve 02_slippery_orbit --fps 30

Spectate with any websocket client:
  websocat ws://localhost:8080/ws`,
	Args: cobra.ExactArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "HTTP listen address (host:port)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom physics config YAML")
}

func runServe(cmd *cobra.Command, args []string) {
	entry, err := levels.Find(flagLevelsDir, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'inertia levels' to see available levels.")
		os.Exit(1)
	}

	physics, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "serve",
	})

	// Step warnings would flood the feed at 60 ticks/s; keep the engine quiet
	level, err := engine.NewLevel(entry.Def, physics, log.New(io.Discard))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv := web.NewServer(logger)
	httpSrv := &http.Server{
		Addr:    flagAddr,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feedDone := make(chan error, 1)
	go func() {
		feedDone <- web.RunFeed(ctx, level, srv, flagFPS)
	}()

	httpDone := make(chan error, 1)
	go func() {
		httpDone <- httpSrv.ListenAndServe()
	}()

	logger.Info("spectator feed started", "level", entry.ID, "addr", flagAddr, "fps", flagFPS)
	fmt.Printf("Broadcasting %s on ws://%s/ws\n", entry.ID, listenHost(flagAddr))
	fmt.Println("Press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-httpDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}

	stop() // Stops the feed even when the HTTP server exited first

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", "err", err)
	}
	srv.Close()
	<-feedDone
}

// listenHost makes ":8080" printable as "localhost:8080".
func listenHost(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
