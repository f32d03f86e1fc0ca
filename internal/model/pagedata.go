package model

import "html/template"

// NavLinkView is a rendered link; Active marks the current page.
type NavLinkView struct {
	Text   string
	Href   string
	Active bool
}

// NavItemView is one top navigation entry. Items is set for groups only.
type NavItemView struct {
	Text   string
	Href   string
	Active bool
	Items  []NavLinkView
}

// SidebarGroupView is one sidebar section as rendered for a page.
type SidebarGroupView struct {
	Text      string
	Collapsed bool
	Items     []NavLinkView
}

// PageData is the template context of a single rendered page.
type PageData struct {
	SiteTitle       string
	SiteDescription string
	Lang            string
	PageTitle       string
	Permalink       string
	Content         template.HTML
	BaseURL         string
	Nav             []NavItemView
	Sidebar         []SidebarGroupView
	SocialLinks     []NavLinkView
	Prev            *NavLinkView
	Next            *NavLinkView
	PrevLabel       string
	NextLabel       string
	LastUpdated     string
	LastUpdatedText string
	OutlineLabel    string
	Headings        []string
	EditURL         string
	EditText        string
	FooterMessage   string
	FooterCopyright string
	SearchProvider  string
	Params          map[string]interface{}
}
