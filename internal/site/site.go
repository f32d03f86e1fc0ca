// Package site holds the declarative configuration of the documentation
// site: title, navigation, sidebars, footer and search provider.
//
// A Config is built once, either from the Go literal returned by Default or
// from a YAML/JSON file via Load, and is treated as immutable afterwards.
// Its serialized shape mirrors what a VitePress style renderer imports:
// top-level title/description plus a themeConfig object.
package site

import "errors"

var (
	// ErrMalformedNavItem is returned when a navigation entry has both a
	// link and items, neither of them, or nests a group inside a group.
	ErrMalformedNavItem = errors.New("malformed nav item")

	// ErrDuplicateSidebarPrefix is returned when a sidebar declares the same
	// route prefix twice.
	ErrDuplicateSidebarPrefix = errors.New("duplicate sidebar prefix")

	// ErrUnsupportedFormat is returned for config files that are neither
	// YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Search providers understood by the build tool.
const (
	SearchLocal   = "local"
	SearchAlgolia = "algolia"
)

// Config is the aggregate root of the site configuration.
type Config struct {
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Lang        string      `yaml:"lang,omitempty" json:"lang,omitempty"`
	Base        string      `yaml:"base,omitempty" json:"base,omitempty"`
	Theme       ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
}

// ThemeConfig groups everything the renderer draws around page content.
type ThemeConfig struct {
	Nav         Nav          `yaml:"nav" json:"nav"`
	Sidebar     Sidebar      `yaml:"sidebar" json:"sidebar"`
	SocialLinks []SocialLink `yaml:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Search      Search       `yaml:"search" json:"search"`
	Footer      *Footer      `yaml:"footer,omitempty" json:"footer,omitempty"`
	DocFooter   *DocFooter   `yaml:"docFooter,omitempty" json:"docFooter,omitempty"`
	LastUpdated *LastUpdated `yaml:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	Outline     *Outline     `yaml:"outline,omitempty" json:"outline,omitempty"`
	EditLink    *EditLink    `yaml:"editLink,omitempty" json:"editLink,omitempty"`
}

// SocialLink is an icon linking to an external profile or repository.
type SocialLink struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// Search selects the provider powering the search box. Options are passed
// through untouched to hosted providers.
type Search struct {
	Provider string            `yaml:"provider" json:"provider"`
	Options  map[string]string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Footer is the text shown at the bottom of every page.
type Footer struct {
	Message   string `yaml:"message,omitempty" json:"message,omitempty"`
	Copyright string `yaml:"copyright,omitempty" json:"copyright,omitempty"`
}

// DocFooter overrides the labels of the previous/next page links.
type DocFooter struct {
	Prev string `yaml:"prev,omitempty" json:"prev,omitempty"`
	Next string `yaml:"next,omitempty" json:"next,omitempty"`
}

// LastUpdated enables the "last updated" stamp under each page.
type LastUpdated struct {
	Text          string        `yaml:"text,omitempty" json:"text,omitempty"`
	FormatOptions FormatOptions `yaml:"formatOptions,omitempty" json:"formatOptions,omitempty"`
}

// FormatOptions follows the Intl.DateTimeFormat style names:
// "full", "long", "medium" or "short". Empty leaves that part out.
type FormatOptions struct {
	DateStyle string `yaml:"dateStyle,omitempty" json:"dateStyle,omitempty"`
	TimeStyle string `yaml:"timeStyle,omitempty" json:"timeStyle,omitempty"`
}

// Outline labels the in-page table of contents.
type Outline struct {
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// EditLink points each page at its source. Pattern must contain ":path",
// which is replaced by the page's path relative to the content directory.
type EditLink struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Text    string `yaml:"text,omitempty" json:"text,omitempty"`
}

// URL returns the edit URL for a content file.
func (e *EditLink) URL(relPath string) string {
	if e == nil {
		return ""
	}
	return replacePath(e.Pattern, relPath)
}
