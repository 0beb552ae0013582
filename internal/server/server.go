// Package server assembles the router, middleware and routes into an owned HTTP server.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/travel-planner-api/internal/http/health"
	"github.com/janisto/travel-planner-api/internal/http/v1/routes"
	"github.com/janisto/travel-planner-api/internal/platform/apiconfig"
	"github.com/janisto/travel-planner-api/internal/platform/config"
	applog "github.com/janisto/travel-planner-api/internal/platform/logging"
	"github.com/janisto/travel-planner-api/internal/platform/metrics"
	appmiddleware "github.com/janisto/travel-planner-api/internal/platform/middleware"
	"github.com/janisto/travel-planner-api/internal/platform/respond"
	itinerarysvc "github.com/janisto/travel-planner-api/internal/service/itinerary"
	reqsvc "github.com/janisto/travel-planner-api/internal/service/requirements"
)

const (
	MetricsPath     = "/metrics"
	maxBodyBytes    = 1 << 20 // 1 MB
	upstreamTimeout = 60 * time.Second
)

// Deps overrides the services and collectors the server uses. Nil fields get defaults
// built from the config.
type Deps struct {
	Requirements reqsvc.Service
	Itinerary    itinerarysvc.Service
	Metrics      *metrics.Recorder
	Version      string
}

// Server owns the router and the underlying http.Server.
type Server struct {
	cfg     config.Config
	handler http.Handler
	http    *http.Server
}

// New builds a Server. Nothing listens until Serve or ListenAndServe is called.
func New(cfg config.Config, deps Deps) *Server {
	deps = withDefaults(cfg, deps)
	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.NotFoundHandler())

	router.Use(
		appmiddleware.Security(apiconfig.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// Trusts X-Forwarded-For; deploy behind a proxy that sets it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxBodyBytes),
		chimiddleware.StripSlashes,
		appmiddleware.CaseInsensitivePaths,
		// HEAD falls through to the GET route when no HEAD route exists.
		chimiddleware.GetHead,
		applog.RequestLogger(),
		applog.AccessLogger(),
		deps.Metrics.Middleware(),
		respond.Recoverer(),
	)

	health.Mount(router)
	router.Method(http.MethodGet, MetricsPath, deps.Metrics.Handler())

	api := humachi.New(router, apiconfig.New(deps.Version))
	routes.Register(api, routes.Services{
		Requirements: deps.Requirements,
		Itinerary:    deps.Itinerary,
	})

	return &Server{
		cfg:     cfg,
		handler: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 2 * time.Second,
			// Itinerary generation waits on the upstream model.
			WriteTimeout:   upstreamTimeout + 5*time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 64 << 10, // 64 KB
		},
	}
}

func withDefaults(cfg config.Config, deps Deps) Deps {
	if deps.Requirements == nil {
		deps.Requirements = reqsvc.NewStatic()
	}
	if deps.Itinerary == nil {
		deps.Itinerary = itinerarysvc.NewClient(
			&http.Client{Timeout: upstreamTimeout},
			itinerarysvc.WithBaseURL(cfg.OpenAI.BaseURL),
			itinerarysvc.WithAPIKey(cfg.OpenAI.APIKey),
			itinerarysvc.WithModel(cfg.OpenAI.Model),
		)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}
	return deps
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on l until Shutdown. It returns nil after a clean shutdown.
func (s *Server) Serve(l net.Listener) error {
	applog.LogInfo(context.Background(), "server listening", zap.String("addr", l.Addr().String()))
	if s.cfg.OpenAI.APIKey == "" {
		applog.LogWarn(context.Background(), "OPENAI_API_KEY not set; itinerary generation disabled")
	}
	if err := s.http.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on the configured port and serves until Shutdown.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
