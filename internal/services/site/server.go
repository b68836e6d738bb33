// Package site hosts the Lazy E Holdings marketing site.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/lazyeholdings/site/internal/platform/timeouts"
	siteapp "github.com/lazyeholdings/site/internal/services/site/app"
	"github.com/lazyeholdings/site/internal/services/site/metrics"
	module "github.com/lazyeholdings/site/internal/services/site/module"
	"github.com/lazyeholdings/site/internal/services/site/modules"
	"github.com/lazyeholdings/site/internal/services/site/platform/httpx"
	"github.com/lazyeholdings/site/internal/services/site/platform/observability"
	"github.com/lazyeholdings/site/internal/services/site/platform/requestmeta"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
	"github.com/lazyeholdings/site/internal/services/site/selection"
	sitestatic "github.com/lazyeholdings/site/internal/services/site/static"
	"github.com/lazyeholdings/site/internal/services/site/venture"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr      string
	HTMXScriptURL string
	// Catalog defaults to the embedded venture catalog.
	Catalog *venture.Catalog
	// DefaultVenture is expanded for new sessions; empty selects the first
	// catalog entry.
	DefaultVenture string
	SessionIdleTTL time.Duration
	MaxSessions    int
	ToggleRate     float64
	ToggleBurst    int
	SchemePolicy   requestmeta.SchemePolicy
	Now            func() time.Time
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *selection.Store
}

type runtime struct {
	handler http.Handler
	store   *selection.Store
	metrics *metrics.Metrics
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	rt, err := newRuntime(cfg)
	if err != nil {
		return nil, err
	}
	return rt.handler, nil
}

func newRuntime(cfg Config) (runtime, error) {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = venture.Default()
	}
	defaultID, err := resolveDefaultVenture(catalog, cfg.DefaultVenture)
	if err != nil {
		return runtime{}, err
	}
	idleTTL := cfg.SessionIdleTTL
	if idleTTL <= 0 {
		idleTTL = timeouts.SessionIdle
	}

	siteMetrics := metrics.New(catalog.IDs()...)
	store := selection.NewStore(defaultID,
		selection.WithIdleTTL(idleTTL),
		selection.WithMaxSessions(cfg.MaxSessions),
		selection.WithObserver(siteMetrics.ObserveChange),
		selection.WithSessionCountHook(siteMetrics.SetSessions),
	)
	sessions := siteapp.WithSessions(siteapp.SessionConfig{
		Store:        store,
		CookieMaxAge: idleTTL,
		SchemePolicy: cfg.SchemePolicy,
	})
	deps := module.Dependencies{
		Catalog:       catalog,
		Metrics:       siteMetrics,
		SchemePolicy:  cfg.SchemePolicy,
		HTMXScriptURL: strings.TrimSpace(cfg.HTMXScriptURL),
		ToggleLimiter: httpx.NewLimiter(cfg.ToggleRate, cfg.ToggleBurst),
		Sessions:      sessions,
		Now:           cfg.Now,
	}
	composed, err := siteapp.Composer{}.Compose(siteapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return runtime{}, fmt.Errorf("compose site modules: %w", err)
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sitestatic.FS))))
	rootMux.Handle(http.MethodGet+" "+routepath.Metrics, siteMetrics.Handler())
	rootMux.Handle(routepath.Root, siteMetrics.Middleware(composed))

	handler := httpx.Chain(otelhttp.NewHandler(rootMux, "site"),
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	)
	return runtime{handler: handler, store: store, metrics: siteMetrics}, nil
}

func resolveDefaultVenture(catalog *venture.Catalog, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		first, ok := catalog.First()
		if !ok {
			return "", errors.New("venture catalog is empty")
		}
		return first.ID, nil
	}
	if !catalog.Contains(requested) {
		return "", fmt.Errorf("default venture %q is not in the catalog", requested)
	}
	return requested, nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	rt, err := newRuntime(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		store:    rt.store,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           rt.handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
// Idle sessions are swept for as long as it runs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.store.Run(sweepCtx, timeouts.SessionSweep)

	log.Printf("site listening on %s", s.httpAddr)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
