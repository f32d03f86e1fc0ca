// Package model holds the content and page data shared by collection and rendering.
package model

import (
	"html/template"
	"time"

	"github.com/shide1989/zsh-docs/internal/site"
)

// ContentItem represents a single Markdown page of the manual.
type ContentItem struct {
	Title       string
	Date        time.Time
	Updated     time.Time // source file modification time
	SourcePath  string
	RelPath     string // path relative to the content directory, slash separated
	Permalink   string
	ContentHTML template.HTML
	Text        string // plain text of the body, for search
	Headings    []string
	Frontmatter map[string]interface{}
	Summary     string
	Layout      string
}

// SiteData holds all site-wide data: the site configuration and the
// collected content, indexed by permalink.
type SiteData struct {
	Config       *site.Config
	BaseURL      string
	ContentItems []*ContentItem
	ByPermalink  map[string]*ContentItem
}

// NewSiteData indexes items by permalink.
func NewSiteData(cfg *site.Config, baseURL string, items []*ContentItem) *SiteData {
	sd := &SiteData{
		Config:       cfg,
		BaseURL:      baseURL,
		ContentItems: items,
		ByPermalink:  make(map[string]*ContentItem, len(items)),
	}
	for _, item := range items {
		sd.ByPermalink[item.Permalink] = item
	}
	return sd
}

// HasPage reports whether a page is published at permalink.
func (sd *SiteData) HasPage(permalink string) bool {
	_, ok := sd.ByPermalink[permalink]
	return ok
}
