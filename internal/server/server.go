// Package server exposes the Fibonacci calculator over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibiter/internal/config"
	apperrors "github.com/agbru/fibiter/internal/errors"
	"github.com/agbru/fibiter/internal/logging"
)

// Calculator is what the HTTP layer needs from a calculator: a name for the
// response and a context-aware calculation for trace propagation.
// *fibonacci.Instrumented satisfies it.
type Calculator interface {
	Name() string
	CalculateContext(ctx context.Context, index int) (uint64, error)
}

// Server represents the HTTP server for the Fibonacci calculator API.
// It wraps the standard http.Server and adds graceful shutdown.
type Server struct {
	calc           Calculator
	cfg            config.AppConfig
	httpServer     *http.Server
	logger         logging.Logger
	securityConfig SecurityConfig
	metrics        *Metrics
	timeouts       Timeouts
}

// NewServer creates a new Server serving calc on the port from cfg.
//
// Parameters:
//   - calc: The calculator used for /calculate.
//   - cfg: The application configuration (port).
//   - opts: Optional functional options (e.g., WithLogger).
//
// Returns:
//   - *Server: A pointer to the initialized Server.
func NewServer(calc Calculator, cfg config.AppConfig, opts ...Option) *Server {
	if calc == nil {
		panic("server: nil calculator")
	}
	s := &Server{
		calc:           calc,
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stdout, "server", zerolog.InfoLevel),
		securityConfig: DefaultSecurityConfig(),
		metrics:        NewMetrics(),
		timeouts:       DefaultServerTimeouts(),
	}

	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/calculate", s.wrapWithMiddleware("/calculate", s.handleCalculate))
	mux.HandleFunc("/health", s.wrapWithMiddleware("/health", s.handleHealth))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware("/metrics", s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: s.timeouts.ReadTimeout,
		ReadTimeout:       s.timeouts.ReadTimeout,
		WriteTimeout:      s.timeouts.WriteTimeout,
		IdleTimeout:       s.timeouts.IdleTimeout,
	}

	return s
}

// Handler returns the routed handler with the full middleware chain.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// wrapWithMiddleware applies Logging -> Metrics -> Security -> Handler.
// Security sits innermost so CORS preflights it answers are still logged,
// tagged with a request ID and counted.
func (s *Server) wrapWithMiddleware(route string, handler http.HandlerFunc) http.HandlerFunc {
	wrapped := SecurityMiddleware(s.securityConfig, handler)
	wrapped = s.metricsMiddleware(route, wrapped)
	wrapped = s.loggingMiddleware(wrapped)
	return wrapped
}

// Start listens on the configured port and serves until ctx is canceled.
//
// Returns:
//   - error: A ServerError if the server cannot listen or shut down cleanly.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return apperrors.NewServerError("server failed to start", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within the configured shutdown timeout. The listener is closed
// on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting server",
			logging.String("addr", ln.Addr().String()),
			logging.String("algorithm", s.calc.Name()),
		)
		s.logger.Printf("endpoints: GET /calculate?n=<index>[&hex=true], GET /health, GET /metrics")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.NewServerError("server stopped unexpectedly", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutdown requested, draining connections")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeouts.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return apperrors.NewServerError("failed to gracefully shutdown server", err)
		}
		s.logger.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
