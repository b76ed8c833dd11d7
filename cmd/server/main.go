package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mawenner/tally/internal/auth"
	"github.com/mawenner/tally/internal/common"
	"github.com/mawenner/tally/internal/config"
	"github.com/mawenner/tally/internal/middleware"
	"github.com/mawenner/tally/internal/obs"
	"github.com/mawenner/tally/internal/service"
	"github.com/mawenner/tally/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogFormat, cfg.LogLevel)

	// Auth is optional: without a secret the API is open, which suits a
	// single-household deployment behind a private network.
	var tokenManager *auth.TokenManager
	if cfg.JWTSecret != "" {
		tokenManager = auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
		slog.Info("API auth enabled", "token_ttl", cfg.TokenTTL)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger)

	allowedOrigins := cfg.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	var metrics *obs.Metrics
	if cfg.MetricsEnabled {
		metrics = obs.NewMetrics("tally", nil)
		router.Use(metrics.Middleware)
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		common.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	splitService := service.NewSplitService(metrics, cfg.DefaultCurrency)
	currencyService := service.NewCurrencyService()

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokenManager))
		r.Post("/split/compute", splitService.Compute)
		r.Post("/split/validate", splitService.Validate)
		r.Get("/currencies", currencyService.List)
		r.Get("/currencies/{code}", currencyService.Get)
		r.Get("/currencies/{code}/format", currencyService.FormatAmount)
	})

	// h2c lets clients speak HTTP/2 without TLS, matching deployments that
	// terminate TLS at a reverse proxy.
	handler := h2c.NewHandler(router, &http2.Server{})

	addr := cfg.HTTPAddr()
	slog.Info("server starting", "address", addr, "metrics", cfg.MetricsEnabled)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
