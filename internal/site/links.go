package site

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// LinkRef is a link found in the navigation or the sidebar together with
// where it was declared, e.g. "nav[1].items[0]" or "sidebar[/][0].items[2]".
type LinkRef struct {
	Location string
	Text     string
	Link     string
}

// Links returns every link of the nav and the sidebar in declared order.
func (c *Config) Links() []LinkRef {
	var refs []LinkRef
	for i, item := range c.Theme.Nav {
		switch it := item.(type) {
		case NavLink:
			refs = append(refs, LinkRef{Location: fmt.Sprintf("nav[%d]", i), Text: it.Text, Link: it.Link})
		case NavGroup:
			for j, child := range it.Items {
				refs = append(refs, LinkRef{
					Location: fmt.Sprintf("nav[%d].items[%d]", i, j),
					Text:     child.Text,
					Link:     child.Link,
				})
			}
		}
	}
	for _, e := range c.Theme.Sidebar {
		for i, sec := range e.Sections {
			for j, it := range sec.Items {
				refs = append(refs, LinkRef{
					Location: fmt.Sprintf("sidebar[%s][%d].items[%d]", e.Prefix, i, j),
					Text:     it.Text,
					Link:     it.Link,
				})
			}
		}
	}
	return refs
}

// PageIndex reports whether a content page is published at a permalink.
type PageIndex interface {
	HasPage(permalink string) bool
}

// CheckLinks returns the links that do not resolve to a page of the
// content tree. It is a build-time lint: the configuration stays usable,
// but readers following such a link hit a 404.
func (c *Config) CheckLinks(pages PageIndex) []LinkRef {
	var dangling []LinkRef
	for _, ref := range c.Links() {
		if !pages.HasPage(NormalizeLink(ref.Link)) {
			dangling = append(dangling, ref)
		}
	}
	return dangling
}

// NormalizeLink strips query and fragment and gives page links the
// trailing slash permalinks carry. Links to files with an extension
// other than .html are left alone.
func NormalizeLink(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	if link == "" {
		return "/"
	}
	switch ext := path.Ext(link); ext {
	case "":
	case ".html":
		link = strings.TrimSuffix(link, ext)
		link = strings.TrimSuffix(link, "/index")
	default:
		return link
	}
	if !strings.HasSuffix(link, "/") {
		link += "/"
	}
	return link
}

func replacePath(pattern, relPath string) string {
	return strings.ReplaceAll(pattern, ":path", filepath.ToSlash(relPath))
}
