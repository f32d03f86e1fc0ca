package site

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shide1989/zsh-docs/internal/validate"
)

var (
	searchProviders = []string{SearchLocal, SearchAlgolia}
	dateStyles      = []string{"", "full", "long", "medium", "short"}
	algoliaOptions  = []string{"appId", "apiKey", "indexName"}
)

// Validate checks the structural rules of the configuration and reports
// every violation at once.
func Validate(c *Config) error {
	v := validate.New("site config")

	v.NotEmpty("title", c.Title)
	if c.Base != "" {
		v.RootPath("base", c.Base)
		if !strings.HasSuffix(c.Base, "/") {
			v.AddError("base", "must end with /", c.Base)
		}
	}

	validateNav(v, c.Theme.Nav)
	validateSidebar(v, c.Theme.Sidebar)

	for i, s := range c.Theme.SocialLinks {
		field := fmt.Sprintf("socialLinks[%d]", i)
		v.NotEmpty(field+".icon", s.Icon)
		v.URL(field+".link", s.Link, []string{"http", "https"})
	}

	v.OneOf("search.provider", c.Theme.Search.Provider, searchProviders)
	if c.Theme.Search.Provider == SearchAlgolia {
		for _, key := range algoliaOptions {
			v.NotEmpty("search.options."+key, c.Theme.Search.Options[key])
		}
	}

	if lu := c.Theme.LastUpdated; lu != nil {
		v.OneOf("lastUpdated.formatOptions.dateStyle", lu.FormatOptions.DateStyle, dateStyles)
		v.OneOf("lastUpdated.formatOptions.timeStyle", lu.FormatOptions.TimeStyle, dateStyles)
	}

	if el := c.Theme.EditLink; el != nil {
		if !strings.Contains(el.Pattern, ":path") {
			v.AddError("editLink.pattern", "must contain :path", el.Pattern)
		} else {
			v.URL("editLink.pattern", el.Pattern, []string{"http", "https"})
		}
	}

	return v.Err()
}

func validateNav(v *validate.Validator, nav Nav) {
	for i, item := range nav {
		field := fmt.Sprintf("nav[%d]", i)
		switch it := item.(type) {
		case NavLink:
			validateNavLink(v, field, it)
		case NavGroup:
			v.NotEmpty(field+".text", it.Text)
			if len(it.Items) == 0 {
				v.AddError(field+".items", "group must contain at least one link", it.Text)
			}
			for j, child := range it.Items {
				validateNavLink(v, fmt.Sprintf("%s.items[%d]", field, j), child)
			}
		case nil:
			v.AddError(field, "entry has neither link nor items", nil)
		default:
			v.AddError(field, fmt.Sprintf("unsupported nav item %T", item), item)
		}
	}
}

func validateNavLink(v *validate.Validator, field string, l NavLink) {
	v.NotEmpty(field+".text", l.Text)
	v.RootPath(field+".link", l.Link)
	if l.ActiveMatch != "" {
		if _, err := regexp.Compile(l.ActiveMatch); err != nil {
			v.AddError(field+".activeMatch", fmt.Sprintf("invalid pattern: %v", err), l.ActiveMatch)
		}
	}
}

func validateSidebar(v *validate.Validator, sb Sidebar) {
	seen := make(map[string]struct{}, len(sb))
	for _, e := range sb {
		field := fmt.Sprintf("sidebar[%s]", e.Prefix)
		v.RootPath(field, e.Prefix)
		if _, dup := seen[e.Prefix]; dup {
			v.AddError(field, ErrDuplicateSidebarPrefix.Error(), e.Prefix)
		}
		seen[e.Prefix] = struct{}{}

		for i, sec := range e.Sections {
			secField := fmt.Sprintf("%s[%d]", field, i)
			v.NotEmpty(secField+".text", sec.Text)
			for j, it := range sec.Items {
				itemField := fmt.Sprintf("%s.items[%d]", secField, j)
				v.NotEmpty(itemField+".text", it.Text)
				v.RootPath(itemField+".link", it.Link)
			}
		}
	}
}
