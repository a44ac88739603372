package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/gla-tools/docs" // registers the swagger spec

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/enhancement"
	"github.com/osse101/gla-tools/internal/handler"
	"github.com/osse101/gla-tools/internal/leveling"
	"github.com/osse101/gla-tools/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
	Detector       DetectorConfig
}

// Server serves the calculator API
type Server struct {
	httpServer *http.Server
}

// NewServer wires the routes. defaultPrices backs estimates that send no
// prices; readiness reports unavailable until every check passes.
func NewServer(opts Options, levelingService leveling.Service, enhancementService enhancement.Service, defaultPrices domain.PriceTable, checks ...handler.HealthChecker) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Detector.Window <= 0 {
		opts.Detector = DetectorConfig{
			Window:          DefaultRateWindow,
			MaxRequests:     DefaultRateLimit,
			FailedAuthAlert: DefaultFailedAuthAlert,
		}
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts, levelingService, enhancementService, defaultPrices, checks),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

func newRouter(opts Options, levelingService leveling.Service, enhancementService enhancement.Service, defaultPrices domain.PriceTable, checks []handler.HealthChecker) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetectorWithConfig(opts.Detector)

	// Outermost first
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(checks...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/xp", func(r chi.Router) {
			r.Get("/tiers", handler.HandleGetTiers(levelingService))
			r.Get("/between", handler.HandleExperienceBetween(levelingService))
			r.Post("/plan", handler.HandlePlanPotions(levelingService))
		})

		r.Route("/crystals", func(r chi.Router) {
			r.Get("/rules", handler.HandleGetRules(enhancementService))
			r.Get("/transfer-cost", handler.HandleTransferCost(enhancementService))
			r.Post("/estimate", handler.HandleEstimate(enhancementService, defaultPrices))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Stop is called; it returns http.ErrServerClosed after a clean stop
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
