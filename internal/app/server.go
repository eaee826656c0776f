package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dailydiet-backend/internal/auth"
	"github.com/heartmarshall/dailydiet-backend/internal/config"
	authsvc "github.com/heartmarshall/dailydiet-backend/internal/service/auth"
	"github.com/heartmarshall/dailydiet-backend/internal/service/meal"
	"github.com/heartmarshall/dailydiet-backend/internal/transport/metrics"
	"github.com/heartmarshall/dailydiet-backend/internal/transport/middleware"
	"github.com/heartmarshall/dailydiet-backend/internal/transport/rest"
)

// Server is the assembled HTTP service.
type Server struct {
	cfg     config.Config
	log     *slog.Logger
	handler http.Handler
	closers []func()
}

// NewServer opens storage and wires services, handlers and middleware.
// Call Close when done.
func NewServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	st, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	s := &Server{cfg: cfg, log: logger, closers: []func(){st.close}}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	authService, err := authsvc.NewService(logger, st.users, st.meals, st.tx, tokens, cfg.Auth)
	if err != nil {
		s.Close()
		return nil, err
	}
	mealService := meal.NewService(logger, st.meals)

	m := metrics.New()

	limit := middleware.Middleware(middleware.Passthrough)
	if cfg.RateLimit.AuthPerMinute > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		s.closers = append(s.closers, rl.Stop)
		limit = rl.Limit(cfg.RateLimit.AuthPerMinute)
	}

	mux := rest.NewMux(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, m, logger),
		Meals:   rest.NewMealHandler(mealService, m, logger),
		Health:  rest.NewHealthHandler(st.ping, st.driver, BuildVersion()),
		Metrics: m.Handler(),
	},
		middleware.Chain(middleware.Auth(authService), middleware.RequireAuth),
		limit,
	)

	s.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(m.Instrument(mux))

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.handler,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
		IdleTimeout:       s.cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		s.log.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases storage and background workers in reverse order.
func (s *Server) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}
