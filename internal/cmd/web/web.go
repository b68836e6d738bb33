// Package web parses site command flags and launches the site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/lazyeholdings/site/internal/platform/cmd"
	"github.com/lazyeholdings/site/internal/services/site"
	"github.com/lazyeholdings/site/internal/services/site/platform/requestmeta"
	"github.com/lazyeholdings/site/internal/services/site/venture"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"LAZYE_SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	HTMXScriptURL string `env:"LAZYE_SITE_HTMX_SCRIPT_URL" envDefault:"https://unpkg.com/htmx.org@2.0.4"`
	// CatalogPath replaces the embedded venture catalog when set.
	CatalogPath         string        `env:"LAZYE_SITE_CATALOG_PATH"`
	DefaultVenture      string        `env:"LAZYE_SITE_DEFAULT_VENTURE"`
	SessionIdleTTL      time.Duration `env:"LAZYE_SITE_SESSION_IDLE_TTL" envDefault:"30m"`
	MaxSessions         int           `env:"LAZYE_SITE_MAX_SESSIONS" envDefault:"10000"`
	ToggleRate          float64       `env:"LAZYE_SITE_TOGGLE_RATE" envDefault:"5"`
	ToggleBurst         int           `env:"LAZYE_SITE_TOGGLE_BURST" envDefault:"10"`
	TrustForwardedProto bool          `env:"LAZYE_SITE_TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.HTMXScriptURL, "htmx-script-url", cfg.HTMXScriptURL, "URL of the htmx script; empty serves pages without it")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Path to a venture catalog YAML file")
	fs.StringVar(&cfg.DefaultVenture, "default-venture", cfg.DefaultVenture, "Venture expanded for new visitors")
	fs.DurationVar(&cfg.SessionIdleTTL, "session-idle-ttl", cfg.SessionIdleTTL, "How long an idle visitor keeps their selection")
	fs.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, "Upper bound on live visitor sessions")
	fs.Float64Var(&cfg.ToggleRate, "toggle-rate", cfg.ToggleRate, "Sustained card toggles per second per visitor; 0 disables limiting")
	fs.IntVar(&cfg.ToggleBurst, "toggle-burst", cfg.ToggleBurst, "Card toggle burst per visitor")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a fronting proxy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the site server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		serverCfg, err := serverConfig(cfg)
		if err != nil {
			return err
		}
		server, err := site.NewServer(ctx, serverCfg)
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config) (site.Config, error) {
	catalog := venture.Default()
	if path := strings.TrimSpace(cfg.CatalogPath); path != "" {
		loaded, err := venture.LoadFile(path)
		if err != nil {
			return site.Config{}, fmt.Errorf("load venture catalog: %w", err)
		}
		catalog = loaded
	}
	return site.Config{
		HTTPAddr:       cfg.HTTPAddr,
		HTMXScriptURL:  cfg.HTMXScriptURL,
		Catalog:        catalog,
		DefaultVenture: cfg.DefaultVenture,
		SessionIdleTTL: cfg.SessionIdleTTL,
		MaxSessions:    cfg.MaxSessions,
		ToggleRate:     cfg.ToggleRate,
		ToggleBurst:    cfg.ToggleBurst,
		SchemePolicy:   requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	}, nil
}
