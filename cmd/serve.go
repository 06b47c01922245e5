package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexiusacademia/gosteel/internal/api"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the checks as a JSON HTTP API",
	Long: `Start an HTTP server exposing the engines:

  POST /api/classify
  POST /api/compression
  POST /api/flexure
  POST /api/interaction
  POST /api/report/pdf
  GET  /api/profiles/{designation}?type=TAG
  GET  /api/health

Requests are rate limited per client address (STEELCHECK_RATE,
STEELCHECK_BURST). Without a readable profile table the server still
answers requests that carry the section inline.

Examples:
  gosteel serve
  gosteel serve --addr 127.0.0.1:9000`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default STEELCHECK_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	limiter := api.NewIPRateLimiter(cfg.Rate, cfg.Burst)
	go limiter.Run(ctx, time.Minute, 3*time.Minute)
	srv := &api.Server{Solver: cfg.Solver, Limiter: limiter}
	if t, err := cfg.Table(); err != nil {
		log.Printf("profile table not loaded: %v", err)
	} else {
		srv.Table = t
		log.Printf("loaded %d %s profiles from %s", len(t.Rows), cfg.System, cfg.DatabaseDir)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	wg.Wait()
	log.Println("Server stopped")
}
