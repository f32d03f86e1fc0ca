// Package build runs the site build: load and validate the site
// configuration, collect content, lint links, render pages, copy static
// assets and write the search index.
package build

import (
	"errors"
	"fmt"
	"os"

	"github.com/shide1989/zsh-docs/internal/config"
	"github.com/shide1989/zsh-docs/internal/content"
	"github.com/shide1989/zsh-docs/internal/log"
	"github.com/shide1989/zsh-docs/internal/model"
	"github.com/shide1989/zsh-docs/internal/render"
	"github.com/shide1989/zsh-docs/internal/search"
	"github.com/shide1989/zsh-docs/internal/site"
)

// ErrDanglingLinks is returned by strict builds when nav or sidebar links
// point at pages that do not exist.
var ErrDanglingLinks = errors.New("dangling links")

// Options tune a build.
type Options struct {
	// Strict fails the build on dangling links instead of warning.
	Strict bool
}

// Result summarises a finished build.
type Result struct {
	Pages    int
	Dangling []site.LinkRef
	Indexed  bool
}

// LoadSite returns the site configuration at path, or the built-in one
// when path is empty, after validating it.
func LoadSite(path string) (*site.Config, error) {
	cfg := site.Default()
	if path != "" {
		var err error
		if cfg, err = site.Load(path); err != nil {
			return nil, err
		}
	}
	if err := site.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Collect gathers the content tree and links it with the site config.
func Collect(cfg config.Config, sc *site.Config) (*model.SiteData, error) {
	items, err := content.NewCollector().Collect(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	return model.NewSiteData(sc, cfg.BaseURL, items), nil
}

// Run builds the site into cfg.OutputDir.
func Run(cfg config.Config, sc *site.Config, opts Options) (*Result, error) {
	logger := log.WithComponent("build")
	logger.Info().Str("output", cfg.OutputDir).Str("content", cfg.ContentDir).Str("title", sc.Title).Msg("starting build")

	sd, err := Collect(cfg, sc)
	if err != nil {
		return nil, err
	}

	res := &Result{Pages: len(sd.ContentItems), Dangling: sc.CheckLinks(sd)}
	for _, ref := range res.Dangling {
		logger.Warn().Str("location", ref.Location).Str("link", ref.Link).Msg("link has no matching page")
	}
	if opts.Strict && len(res.Dangling) > 0 {
		return res, fmt.Errorf("%w: %d link(s) without a page", ErrDanglingLinks, len(res.Dangling))
	}

	r, err := render.New(cfg.LayoutsDir)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("dir", cfg.OutputDir).Msg("cleaning output directory")
	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		if err := copyDirContents(cfg.StaticDir, cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("failed to copy static assets: %w", err)
		}
		logger.Debug().Str("dir", cfg.StaticDir).Msg("static assets copied")
	} else {
		logger.Debug().Str("dir", cfg.StaticDir).Msg("static assets directory not found, skipping copy")
	}

	if err := r.RenderSite(sd, cfg.OutputDir); err != nil {
		return nil, err
	}

	if sc.Theme.Search.Provider == site.SearchLocal {
		if err := search.Build(sd).WriteFile(cfg.OutputDir); err != nil {
			return nil, err
		}
		res.Indexed = true
	}

	logger.Info().Int("pages", res.Pages).Int("dangling", len(res.Dangling)).Msg("build completed")
	return res, nil
}
