// Package server exposes scenario generation, the reference catalog and
// coaching assessment over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tradecoach/internal/catalog"
	"tradecoach/internal/generator"
)

// Config describes the server's dependencies.
type Config struct {
	Addr      string
	Mode      string // gin mode: debug, release, test
	Catalog   *catalog.Catalog
	Generator generator.Options
	Logger    zerolog.Logger
	Clock     func() time.Time

	// RateLimit caps generation requests per second. Zero disables it.
	RateLimit float64
	Burst     int
}

// Server serves the HTTP API.
type Server struct {
	addr    string
	catalog *catalog.Catalog
	opts    generator.Options
	logger  zerolog.Logger
	clock   func() time.Time
	router  *gin.Engine
	limiter *rate.Limiter
}

// New builds a Server and registers its routes.
func New(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("server needs a catalog")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Mode == "" {
		cfg.Mode = gin.ReleaseMode
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	cfg.Generator.Catalog = cfg.Catalog
	cfg.Generator.Logger = cfg.Logger

	gin.SetMode(cfg.Mode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Logger))

	s := &Server{
		addr:    cfg.Addr,
		catalog: cfg.Catalog,
		opts:    cfg.Generator,
		logger:  cfg.Logger,
		clock:   cfg.Clock,
		router:  router,
	}
	if cfg.RateLimit > 0 {
		s.limiter = newLimiter(cfg.RateLimit, cfg.Burst)
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")

	cat := api.Group("/catalog")
	cat.GET("/traders", s.handleTraders)
	cat.GET("/traders/:id", s.handleTrader)
	cat.GET("/strategies", s.handleStrategies)
	cat.GET("/scenarios", s.handleScenarios)
	cat.GET("/scenarios/:id", s.handleScenario)

	limited := rateLimit(s.limiter, s.clock)

	scen := api.Group("/scenarios", limited)
	scen.POST("/random", s.handleRandom)
	scen.POST("/custom", s.handleCustom)

	api.POST("/coaching/assess", s.handleAssess)
	api.POST("/simulations", limited, s.handleSimulate)
}

// Handler returns the router for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info().Str("addr", s.addr).Msg("HTTP server listening")

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info().Msg("HTTP server shutting down")
		return srv.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}
