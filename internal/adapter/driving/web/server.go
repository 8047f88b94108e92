package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/diillson/pos-sales-dashboard-go/internal/application/usecase"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/report"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

const shutdownTimeout = 10 * time.Second

// Dashboard is the part of the dashboard use case the HTTP API drives.
type Dashboard interface {
	Now() time.Time
	Presets(now time.Time) []usecase.PresetRange
	ResolveRange(preset, from, to string) (entity.DateRange, error)
	Load(ctx context.Context, r entity.DateRange) usecase.DashboardView
	Refresh(ctx context.Context, r entity.DateRange) usecase.DashboardView
	Table(ctx context.Context, r entity.DateRange, state entity.FilterState) (report.TableView, error)
	Export(ctx context.Context, kind entity.ArtifactKind, format entity.ExportFormat, r entity.DateRange) (entity.Artifact, error)
}

// Server serve a API JSON consumida pelo dashboard no navegador.
type Server struct {
	dashboard Dashboard
	console   types.ConsoleInterface
	cfg       types.ServerConfig
}

// NewServer creates the HTTP API server.
func NewServer(dashboard Dashboard, console types.ConsoleInterface, cfg types.ServerConfig) *Server {
	return &Server{dashboard: dashboard, console: console, cfg: cfg}
}

// Router monta as rotas da API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// ---- Global Middleware ----
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.health)

	r.Route("/api", func(api chi.Router) {
		api.Get("/presets", s.presets)
		api.Get("/dashboard", s.loadDashboard)
		api.Post("/refresh", s.refresh)
		api.Get("/transactions", s.transactions)
		api.Get("/highlight", s.highlight)
		api.Get("/export/{kind}/{format}", s.export)
	})

	return r
}

// Run serve até ctx ser cancelado e então encerra as conexões com calma.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.console.LogInfo("Dashboard API listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.console.LogInfo("Shutting down the dashboard API...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) allowedOrigins() []string {
	if len(s.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return s.cfg.AllowedOrigins
}
