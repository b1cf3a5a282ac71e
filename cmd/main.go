package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/okian/scorecard/internal/adapters/counter"
	"github.com/okian/scorecard/internal/adapters/http/api"
	"github.com/okian/scorecard/internal/adapters/imageproxy"
	"github.com/okian/scorecard/internal/adapters/render"
	"github.com/okian/scorecard/internal/adapters/upstream"
	app "github.com/okian/scorecard/internal/app"
	"github.com/okian/scorecard/internal/config"
	"github.com/okian/scorecard/internal/domain/card"
	"github.com/okian/scorecard/internal/domain/layout"
	"github.com/okian/scorecard/internal/domain/present"
	"github.com/okian/scorecard/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Collaborators
	client := upstream.New(cfg.UpstreamBaseURL,
		upstream.WithToken(cfg.UpstreamToken),
		upstream.WithTimeout(time.Duration(cfg.UpstreamTimeoutMS)*time.Millisecond),
	)
	proxy := imageproxy.New(cfg.ImageProxyBase)

	if err := os.MkdirAll(filepath.Dir(cfg.CounterPath), 0o755); err != nil {
		log.Warn(ctx, "counter directory unavailable", logger.Error(err))
	}
	store, err := counter.NewFileStore(cfg.CounterPath)
	if err != nil {
		os.Stderr.WriteString("failed to open render counter: " + err.Error() + "\n")
		return
	}

	// The gradient ramp loads once at startup; a nil ramp selects the
	// discrete color fallback.
	ramp := present.NewRamp(cfg.GradientRamp)
	if ramp == nil {
		log.Warn(ctx, "gradient ramp unavailable; using discrete color table")
	}
	assembler := card.New(layout.NewBasicMeasurer(), proxy, ramp)

	opts := []app.Option{
		app.WithLogger(log),
		app.WithCounter(store),
	}
	if cfg.RendererURL != "" {
		opts = append(opts, app.WithExporter(render.New(cfg.RendererURL,
			render.WithWait(time.Duration(cfg.RenderTimeoutMS)*time.Millisecond))))
	}
	svc := app.New(client, client, assembler, opts...)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
