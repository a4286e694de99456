package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/observability/tracing"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

const (
	// SenderHeader carries the authenticated caller address, set by the
	// gateway in front of the ledger.
	SenderHeader = "X-Sender"

	maxBodyBytes    = 64 * 1024
	shutdownTimeout = 10 * time.Second
)

// Ledger is the part of services.Service the API serves.
type Ledger interface {
	Stake(ctx context.Context, owner string, amount uint64) (*ledger.Receipt, error)
	Withdraw(ctx context.Context, owner string, amount uint64) (*ledger.Receipt, error)
	ClaimReward(ctx context.Context, owner string) (*ledger.Receipt, error)
	GetStaked(ctx context.Context, owner string) (*services.Balance, error)
	GetProjected(ctx context.Context, owner string) (*services.Balance, error)
	GetPool(ctx context.Context) (*ledger.Pool, error)
	GetOperations(ctx context.Context, owner string, limit int64) ([]*model.OperationDocument, error)
}

// Pinger reports whether the storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	router *chi.Mux
	ledger Ledger
	health Pinger
	srv    *http.Server
}

func NewServer(cfg *config.ServerConfig, svc Ledger, health Pinger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		ledger: svc,
		health: health,
	}
	s.setupRoutes(cfg.AllowedOrigins)

	s.srv = &http.Server{
		Addr:         cfg.Address(),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) setupRoutes(allowedOrigins []string) {
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(traceMiddleware)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", SenderHeader},
		MaxAge:         300,
	}))
	s.router.Use(middleware.RequestSize(maxBodyBytes))

	s.router.Get("/healthcheck", s.handleHealthcheck)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/execute", s.handleExecute)
		r.Post("/query", s.handleQuery)
		r.Get("/accounts/{account}/operations", s.handleGetOperations)
	})
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("Starting API server")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info().Msg("Shutting down API server")
	return s.srv.Shutdown(shutdownCtx)
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.InjectTraceID(r.Context())
		w.Header().Set("X-Trace-Id", tracing.TraceID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
