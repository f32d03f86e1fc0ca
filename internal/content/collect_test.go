package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Zsh Docs\n\nWelcome.\n")
	writeFile(t, root, "introduction.md", `---
title: An Introduction
date: "2024-05-01"
summary: What zsh is
---
# Introduction

Zsh is a shell designed for *interactive* use.

## Author

Paul Falstad.
`)
	writeFile(t, root, "zle/index.md", "# The Line Editor\n")
	writeFile(t, root, "zle/key-bindings.md", "Use `bindkey`:\n\n```zsh\nbindkey -v\n```\n")
	writeFile(t, root, ".drafts/secret.md", "# hidden\n")
	writeFile(t, root, "notes.txt", "not markdown")

	items, err := NewCollector().Collect(root)
	require.NoError(t, err)

	var permalinks []string
	for _, it := range items {
		permalinks = append(permalinks, it.Permalink)
	}
	assert.Equal(t, []string{"/", "/introduction/", "/zle/", "/zle/key-bindings/"}, permalinks)

	home := items[0]
	assert.Equal(t, "Home", home.Title)
	assert.Equal(t, "index.md", home.RelPath)

	intro := items[1]
	assert.Equal(t, "An Introduction", intro.Title)
	assert.Equal(t, "What zsh is", intro.Summary)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), intro.Date)
	assert.Equal(t, []string{"Introduction", "Author"}, intro.Headings)
	assert.Contains(t, string(intro.ContentHTML), `<h2 id="author">Author</h2>`)
	assert.Contains(t, intro.Text, "Zsh is a shell designed for interactive use.")
	assert.False(t, intro.Updated.IsZero())

	zle := items[2]
	assert.Equal(t, "Zle", zle.Title)

	bindings := items[3]
	assert.Equal(t, "Key Bindings", bindings.Title)
	assert.Equal(t, "zle/key-bindings.md", bindings.RelPath)
	assert.Contains(t, bindings.Text, "bindkey -v")
	assert.Contains(t, bindings.Text, "Use bindkey:")
}

func TestCollectMissingDir(t *testing.T) {
	_, err := NewCollector().Collect(filepath.Join(t.TempDir(), "docs"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPermalink(t *testing.T) {
	tests := map[string]string{
		"index.md":              "/",
		"introduction.md":       "/introduction/",
		"zle/index.md":          "/zle/",
		"zle/widgets.md":        "/zle/widgets/",
		"completion/sys/run.md": "/completion/sys/run/",
	}
	for in, want := range tests {
		assert.Equal(t, want, Permalink(in), in)
	}
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "Jobs And Signals", TitleFromPath("jobs-and-signals.md"))
	assert.Equal(t, "Tcp Function System", TitleFromPath("tcp_function_system.md"))
	assert.Equal(t, "Zle", TitleFromPath("zle/index.md"))
	assert.Equal(t, "Home", TitleFromPath("index.md"))
}
