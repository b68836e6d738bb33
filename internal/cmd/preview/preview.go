// Package preview parses preview command flags and launches the terminal
// venture preview.
package preview

import (
	"context"
	"flag"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	entrypoint "github.com/lazyeholdings/site/internal/platform/cmd"
	platformi18n "github.com/lazyeholdings/site/internal/platform/i18n"
	_ "github.com/lazyeholdings/site/internal/platform/i18n/catalog"
	previewsvc "github.com/lazyeholdings/site/internal/services/preview"
	"github.com/lazyeholdings/site/internal/services/site/venture"
	"golang.org/x/text/message"
)

// Config holds the preview command configuration.
type Config struct {
	CatalogPath    string `env:"LAZYE_PREVIEW_CATALOG_PATH"`
	DefaultVenture string `env:"LAZYE_PREVIEW_DEFAULT_VENTURE"`
	Lang           string `env:"LAZYE_PREVIEW_LANG" envDefault:"en-US"`
	// OpenBrowser launches the system browser on visit instead of showing
	// the URL in the status line.
	OpenBrowser bool `env:"LAZYE_PREVIEW_OPEN_BROWSER"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Path to a venture catalog YAML file")
	fs.StringVar(&cfg.DefaultVenture, "default-venture", cfg.DefaultVenture, "Venture expanded at start")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Locale for preview copy")
	fs.BoolVar(&cfg.OpenBrowser, "open", cfg.OpenBrowser, "Open visited sites in the system browser")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the preview and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePreview, func(ctx context.Context) error {
		model, err := newModel(cfg)
		if err != nil {
			return err
		}
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run preview: %w", err)
		}
		return nil
	})
}

func newModel(cfg Config) (previewsvc.Model, error) {
	catalog := venture.Default()
	if path := strings.TrimSpace(cfg.CatalogPath); path != "" {
		loaded, err := venture.LoadFile(path)
		if err != nil {
			return previewsvc.Model{}, fmt.Errorf("load venture catalog: %w", err)
		}
		catalog = loaded
	}

	defaultID := strings.TrimSpace(cfg.DefaultVenture)
	if defaultID == "" {
		if first, ok := catalog.First(); ok {
			defaultID = first.ID
		}
	} else if !catalog.Contains(defaultID) {
		return previewsvc.Model{}, fmt.Errorf("default venture %q is not in the catalog", defaultID)
	}

	tag, ok := platformi18n.ParseTag(cfg.Lang)
	if !ok {
		tag = platformi18n.DefaultTag()
	}

	var opener previewsvc.Opener
	if cfg.OpenBrowser {
		opener = previewsvc.BrowserOpener{}
	}
	return previewsvc.New(catalog, defaultID, opener, message.NewPrinter(tag)), nil
}
