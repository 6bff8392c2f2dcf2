package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/s2112257hs/split-it/internal/config"
	"github.com/s2112257hs/split-it/internal/metrics"
	"github.com/s2112257hs/split-it/internal/middleware"
	"github.com/s2112257hs/split-it/internal/ocr"
	"github.com/s2112257hs/split-it/internal/service"
	"github.com/s2112257hs/split-it/pkg/logging"
)

func main() {
	// .env is optional; deployments normally set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The server stays up without OCR; the endpoint answers 503 until a
	// Vision client can be built (usually missing credentials).
	var extractor ocr.TextExtractor
	vision, err := ocr.NewVisionExtractor(ctx, cfg.OCRTimeout)
	if err != nil {
		logger.Warn("OCR disabled: Vision client unavailable", "error", err)
	} else {
		defer vision.Close()
		extractor = vision
	}

	svc := service.New(logger, extractor, m, cfg.MaxUploadBytes)

	mux := http.NewServeMux()
	svc.Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigin)(handler)
	handler = middleware.Metrics(m)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)

	server := &http.Server{
		Addr: cfg.Addr(),
		// h2c allows HTTP/2 without TLS for local and reverse-proxied use.
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", "address", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
