// Package render turns collected content and the site configuration into
// HTML pages: top navigation, the sidebar resolved for each route,
// previous/next links, edit link, last-updated stamp and footer.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/shide1989/zsh-docs/internal/log"
	"github.com/shide1989/zsh-docs/internal/model"
	"github.com/shide1989/zsh-docs/internal/site"
)

// BaseLayout is the layout executed for pages without a layout of their own.
const BaseLayout = "base.html"

//go:embed layouts
var defaultLayouts embed.FS

// Renderer executes page layouts.
type Renderer struct {
	templates *template.Template
	logger    zerolog.Logger
}

// New parses the built-in layouts, then any .html files found in
// layoutsDir. Files there replace built-in layouts of the same name
// (base.html, partials/nav.html, ...) and may add layouts that pages select
// through their "layout" frontmatter. A missing layoutsDir is not an error.
func New(layoutsDir string) (*Renderer, error) {
	templates, err := template.ParseFS(defaultLayouts, "layouts/*.html", "layouts/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in layouts: %w", err)
	}

	r := &Renderer{logger: log.WithComponent("render")}

	if layoutsDir != "" {
		files, err := layoutFiles(layoutsDir)
		if err != nil {
			return nil, err
		}
		if len(files) > 0 {
			templates, err = templates.ParseFiles(files...)
			if err != nil {
				return nil, fmt.Errorf("failed to parse layout files in '%s': %w", layoutsDir, err)
			}
			r.logger.Debug().Int("files", len(files)).Str("dir", layoutsDir).Msg("custom layouts parsed")
		}
	}

	r.templates = templates
	return r, nil
}

// layoutFiles lists the .html files of dir, partials first so page layouts
// parsed afterwards see the overridden partials.
func layoutFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	var partials, pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		if strings.HasPrefix(filepath.Dir(path), filepath.Join(dir, "partials")) {
			partials = append(partials, path)
		} else {
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files in '%s': %w", dir, err)
	}
	return append(partials, pages...), nil
}

// Layout returns the layout to execute for item: its frontmatter layout
// when that exists, BaseLayout otherwise.
func (r *Renderer) Layout(item *model.ContentItem) string {
	if item.Layout != "" {
		if r.templates.Lookup(item.Layout) != nil {
			return item.Layout
		}
		r.logger.Warn().Str("layout", item.Layout).Str("page", item.Permalink).
			Msgf("layout not found, using %s", BaseLayout)
	}
	return BaseLayout
}

// Render executes layout with data.
func (r *Renderer) Render(w io.Writer, layout string, data model.PageData) error {
	if err := r.templates.ExecuteTemplate(w, layout, data); err != nil {
		return fmt.Errorf("failed to execute template '%s' for '%s': %w", layout, data.Permalink, err)
	}
	return nil
}

// RenderSite writes one index.html per content item below outputDir.
func (r *Renderer) RenderSite(sd *model.SiteData, outputDir string) error {
	for _, item := range sd.ContentItems {
		var buf bytes.Buffer
		if err := r.Render(&buf, r.Layout(item), Page(sd, item)); err != nil {
			return err
		}

		outputPath := filepath.Join(outputDir, filepath.FromSlash(item.Permalink), "index.html")
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for '%s': %w", item.Permalink, err)
		}
		if err := renameio.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write '%s': %w", outputPath, err)
		}
		r.logger.Debug().Str("page", item.Permalink).Str("file", outputPath).Msg("page generated")
	}
	return nil
}

// Page builds the template context of item.
func Page(sd *model.SiteData, item *model.ContentItem) model.PageData {
	cfg := sd.Config
	theme := cfg.Theme
	prefix := hrefPrefix(sd.BaseURL, cfg.Base)

	data := model.PageData{
		SiteTitle:       cfg.Title,
		SiteDescription: cfg.Description,
		Lang:            cfg.Lang,
		PageTitle:       item.Title,
		Permalink:       item.Permalink,
		Content:         item.ContentHTML,
		BaseURL:         prefix,
		Nav:             navViews(theme.Nav, item.Permalink, prefix),
		Headings:        item.Headings,
		SearchProvider:  theme.Search.Provider,
		Params:          item.Frontmatter,
	}
	for _, s := range theme.SocialLinks {
		data.SocialLinks = append(data.SocialLinks, model.NavLinkView{Text: s.Icon, Href: s.Link})
	}

	if entry, ok := theme.Sidebar.Resolve(item.Permalink); ok {
		data.Sidebar = sidebarViews(entry, item.Permalink, prefix)
		data.Prev, data.Next = prevNext(entry, item.Permalink, prefix)
	}

	if df := theme.DocFooter; df != nil {
		data.PrevLabel, data.NextLabel = df.Prev, df.Next
	}
	if lu := theme.LastUpdated; lu != nil && !item.Updated.IsZero() {
		data.LastUpdated = FormatTime(item.Updated, lu.FormatOptions)
		data.LastUpdatedText = lu.Text
	}
	if ol := theme.Outline; ol != nil {
		data.OutlineLabel = ol.Label
	}
	if el := theme.EditLink; el != nil && item.RelPath != "" {
		data.EditURL = el.URL(item.RelPath)
		data.EditText = el.Text
	}
	if f := theme.Footer; f != nil {
		data.FooterMessage, data.FooterCopyright = f.Message, f.Copyright
	}
	return data
}

func hrefPrefix(baseURL, base string) string {
	return strings.TrimSuffix(strings.TrimSuffix(baseURL, "/")+base, "/")
}

func isActive(link, activeMatch, permalink string) bool {
	if activeMatch != "" {
		re, err := regexp.Compile(activeMatch)
		return err == nil && re.MatchString(permalink)
	}
	target := site.NormalizeLink(link)
	if target == permalink {
		return true
	}
	return target != "/" && strings.HasPrefix(permalink, target)
}

func navViews(nav site.Nav, permalink, prefix string) []model.NavItemView {
	views := make([]model.NavItemView, 0, len(nav))
	for _, item := range nav {
		switch it := item.(type) {
		case site.NavLink:
			views = append(views, model.NavItemView{
				Text:   it.Text,
				Href:   prefix + it.Link,
				Active: isActive(it.Link, it.ActiveMatch, permalink),
			})
		case site.NavGroup:
			group := model.NavItemView{Text: it.Text}
			for _, child := range it.Items {
				active := isActive(child.Link, child.ActiveMatch, permalink)
				group.Active = group.Active || active
				group.Items = append(group.Items, model.NavLinkView{
					Text:   child.Text,
					Href:   prefix + child.Link,
					Active: active,
				})
			}
			views = append(views, group)
		}
	}
	return views
}

func sidebarViews(entry site.SidebarEntry, permalink, prefix string) []model.SidebarGroupView {
	groups := make([]model.SidebarGroupView, 0, len(entry.Sections))
	for _, sec := range entry.Sections {
		group := model.SidebarGroupView{Text: sec.Text, Collapsed: sec.Collapsed}
		for _, it := range sec.Items {
			active := site.NormalizeLink(it.Link) == permalink
			if active {
				group.Collapsed = false
			}
			group.Items = append(group.Items, model.NavLinkView{
				Text:   it.Text,
				Href:   prefix + it.Link,
				Active: active,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// prevNext finds the neighbours of permalink in the reading order of the
// sidebar entry.
func prevNext(entry site.SidebarEntry, permalink, prefix string) (prev, next *model.NavLinkView) {
	links := entry.Links()
	for i, l := range links {
		if site.NormalizeLink(l.Link) != permalink {
			continue
		}
		if i > 0 {
			prev = &model.NavLinkView{Text: links[i-1].Text, Href: prefix + links[i-1].Link}
		}
		if i+1 < len(links) {
			next = &model.NavLinkView{Text: links[i+1].Text, Href: prefix + links[i+1].Link}
		}
		return prev, next
	}
	return nil, nil
}

var (
	dateLayouts = map[string]string{
		"full":   "Monday, January 2, 2006",
		"long":   "January 2, 2006",
		"medium": "Jan 2, 2006",
		"short":  "1/2/06",
	}
	timeLayouts = map[string]string{
		"full":   "3:04:05 PM MST",
		"long":   "3:04:05 PM MST",
		"medium": "3:04:05 PM",
		"short":  "3:04 PM",
	}
)

// FormatTime formats t with Intl style names. With no style set it falls
// back to a numeric date and time.
func FormatTime(t time.Time, opts site.FormatOptions) string {
	dl, tl := dateLayouts[opts.DateStyle], timeLayouts[opts.TimeStyle]
	switch {
	case dl != "" && tl != "":
		return t.Format(dl + ", " + tl)
	case dl != "":
		return t.Format(dl)
	case tl != "":
		return t.Format(tl)
	}
	return t.Format("1/2/2006, 3:04:05 PM")
}
