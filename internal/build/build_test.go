package build

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shide1989/zsh-docs/internal/config"
	"github.com/shide1989/zsh-docs/internal/search"
	"github.com/shide1989/zsh-docs/internal/site"
)

func write(t *testing.T, p, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func project(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Config{
		OutputDir:  filepath.Join(root, "public"),
		ContentDir: filepath.Join(root, "docs"),
		LayoutsDir: filepath.Join(root, "layouts"),
		StaticDir:  filepath.Join(root, "static"),
	}
	write(t, filepath.Join(cfg.ContentDir, "index.md"), "# Zsh Docs\n")
	write(t, filepath.Join(cfg.ContentDir, "introduction.md"), "# Introduction\n\nZsh is a shell.\n")
	write(t, filepath.Join(cfg.StaticDir, "css", "site.css"), "body{}")
	write(t, filepath.Join(cfg.OutputDir, "stale.html"), "old")
	return cfg
}

func smallSite() *site.Config {
	return &site.Config{
		Title: "Zsh Docs",
		Theme: site.ThemeConfig{
			Nav: site.Nav{site.NavLink{Text: "Home", Link: "/"}},
			Sidebar: site.Sidebar{{Prefix: "/", Sections: []site.SidebarSection{{
				Text:  "Intro",
				Items: []site.SidebarLink{{Text: "Introduction", Link: "/introduction/"}},
			}}}},
			Search: site.Search{Provider: site.SearchLocal},
		},
	}
}

func TestRun(t *testing.T) {
	cfg := project(t)

	res, err := Run(cfg, smallSite(), Options{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Empty(t, res.Dangling)
	assert.True(t, res.Indexed)

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "index.html"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "introduction", "index.html"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "css", "site.css"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "stale.html"))

	f, err := os.Open(filepath.Join(cfg.OutputDir, search.FileName))
	require.NoError(t, err)
	defer f.Close()
	idx, err := search.Read(f)
	require.NoError(t, err)
	assert.Len(t, idx.Documents, 2)
}

func TestRunDanglingLinks(t *testing.T) {
	cfg := project(t)
	sc := smallSite()
	sc.Theme.Nav = append(sc.Theme.Nav, site.NavLink{Text: "Options", Link: "/options/"})

	res, err := Run(cfg, sc, Options{})
	require.NoError(t, err)
	require.Len(t, res.Dangling, 1)
	assert.Equal(t, "nav[1]", res.Dangling[0].Location)

	_, err = Run(cfg, sc, Options{Strict: true})
	assert.True(t, errors.Is(err, ErrDanglingLinks))
}

func TestRunWithoutLocalSearch(t *testing.T) {
	cfg := project(t)
	sc := smallSite()
	sc.Theme.Search = site.Search{Provider: site.SearchAlgolia, Options: map[string]string{"appId": "a", "apiKey": "k", "indexName": "zsh"}}

	res, err := Run(cfg, sc, Options{})
	require.NoError(t, err)
	assert.False(t, res.Indexed)
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, search.FileName))
}

func TestRunMissingContent(t *testing.T) {
	cfg := project(t)
	cfg.ContentDir = filepath.Join(t.TempDir(), "nope")
	_, err := Run(cfg, smallSite(), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSite(t *testing.T) {
	cfg, err := LoadSite("")
	require.NoError(t, err)
	assert.Equal(t, "Zsh Docs", cfg.Title)

	path := filepath.Join(t.TempDir(), "site.yaml")
	write(t, path, "title: Broken\nthemeConfig:\n  search:\n    provider: bing\n")
	_, err = LoadSite(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.provider")
}
