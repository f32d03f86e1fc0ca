package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shide1989/zsh-docs/internal/model"
	"github.com/shide1989/zsh-docs/internal/site"
)

func testSite() *model.SiteData {
	items := []*model.ContentItem{
		{Title: "Introduction", Permalink: "/introduction/", Text: "Zsh is a UNIX command interpreter."},
		{Title: "Options", Permalink: "/options/", Headings: []string{"Specifying Options", "Option Aliases"}, Text: "setopt and unsetopt."},
		{Title: "Orphan", Permalink: "/orphan/", Text: strings.Repeat("ä", maxTextRunes+10)},
	}
	return model.NewSiteData(site.Default(), "", items)
}

func TestBuild(t *testing.T) {
	idx := Build(testSite())

	assert.Equal(t, site.SearchLocal, idx.Provider)
	require.Len(t, idx.Documents, 3)
	assert.Equal(t, Document{
		ID:      0,
		Link:    "/introduction/",
		Title:   "Introduction",
		Section: "Intro",
		Text:    "Zsh is a UNIX command interpreter.",
	}, idx.Documents[0])
	assert.Equal(t, "Parameters & Options", idx.Documents[1].Section)
	assert.Empty(t, idx.Documents[2].Section)
	assert.Equal(t, maxTextRunes, len([]rune(idx.Documents[2].Text)))
}

func TestSearch(t *testing.T) {
	idx := Build(testSite())

	hits := idx.Search("option ALIASES")
	require.Len(t, hits, 1)
	assert.Equal(t, "/options/", hits[0].Link)

	assert.Len(t, idx.Search("zsh unix"), 1)
	assert.Empty(t, idx.Search("bash"))
	assert.Empty(t, idx.Search("   "))
}

func TestWriteFileAndRead(t *testing.T) {
	dir := t.TempDir()
	idx := Build(testSite())
	require.NoError(t, idx.WriteFile(dir))

	f, err := os.Open(filepath.Join(dir, FileName))
	require.NoError(t, err)
	defer f.Close()

	back, err := Read(f)
	require.NoError(t, err)
	assert.Equal(t, idx, back)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadFile(dir)
	assert.ErrorIs(t, err, os.ErrNotExist)

	idx := Build(testSite())
	require.NoError(t, idx.WriteFile(dir))
	back, err := ReadFile(dir)
	require.NoError(t, err)
	assert.Equal(t, idx, back)
}
