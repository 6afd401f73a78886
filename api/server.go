// Package api provides the HTTP REST API server for filinglens.
//
// It exposes the pipeline's operations — company resolution, filing
// lists, document analysis, price history, and the latest-filings feed —
// as JSON endpoints for dashboard consumers.
package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/seenimoa/filinglens/internal/analysis/metrics"
	"github.com/seenimoa/filinglens/internal/config"
	"github.com/seenimoa/filinglens/internal/datasource"
	"github.com/seenimoa/filinglens/internal/edgar"
)

// Server is the HTTP API server.
type Server struct {
	router    chi.Router
	cfg       *config.Config
	log       *zap.Logger
	svc       *edgar.Service
	extractor *metrics.Extractor
	prices    *datasource.YahooSource
	now       func() time.Time
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	svc := edgar.NewService(cfg.Edgar)

	srv := &Server{
		cfg:       cfg,
		log:       logger,
		svc:       svc,
		extractor: metrics.NewExtractor(svc.Client()),
		prices:    datasource.NewYahooSource(cfg.Prices),
		now:       time.Now,
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("HTTP server error", zap.Error(err))
		}
	}()
	s.log.Info("API server listening", zap.String("addr", addr))

	<-done
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/company/{ticker}", func(r chi.Router) {
			r.Get("/", s.handleCompany)
			r.Get("/filings", s.handleFilings)
			r.Get("/feed", s.handleFeed)
			r.Get("/prices", s.handlePrices)
		})

		r.Get("/analysis", s.handleAnalysis)
	})

	return r
}
