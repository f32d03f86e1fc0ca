package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageSet map[string]bool

func (p pageSet) HasPage(permalink string) bool { return p[permalink] }

func TestLinksInDeclaredOrder(t *testing.T) {
	cfg := &Config{Theme: ThemeConfig{
		Nav: Nav{
			NavLink{Text: "Home", Link: "/"},
			NavGroup{Text: "Guide", Items: []NavLink{{Text: "Intro", Link: "/introduction/"}}},
		},
		Sidebar: Sidebar{{Prefix: "/", Sections: []SidebarSection{
			{Text: "Intro", Items: []SidebarLink{{Text: "Introduction", Link: "/introduction/"}}},
		}}},
	}}

	assert.Equal(t, []LinkRef{
		{Location: "nav[0]", Text: "Home", Link: "/"},
		{Location: "nav[1].items[0]", Text: "Intro", Link: "/introduction/"},
		{Location: "sidebar[/][0].items[0]", Text: "Introduction", Link: "/introduction/"},
	}, cfg.Links())
}

func TestCheckLinks(t *testing.T) {
	cfg := &Config{Theme: ThemeConfig{
		Nav: Nav{
			NavLink{Text: "Home", Link: "/"},
			NavLink{Text: "Options", Link: "/options/#setopt"},
		},
		Sidebar: Sidebar{{Prefix: "/", Sections: []SidebarSection{
			{Text: "Intro", Items: []SidebarLink{
				{Text: "Introduction", Link: "/introduction"},
				{Text: "Roadmap", Link: "/roadmap/"},
			}},
		}}},
	}}
	pages := pageSet{"/": true, "/options/": true, "/introduction/": true}

	dangling := cfg.CheckLinks(pages)
	require.Len(t, dangling, 1)
	assert.Equal(t, "/roadmap/", dangling[0].Link)
	assert.Equal(t, "sidebar[/][0].items[1]", dangling[0].Location)
}

func TestNormalizeLink(t *testing.T) {
	tests := map[string]string{
		"":                    "/",
		"/":                   "/",
		"/#top":               "/",
		"/introduction":       "/introduction/",
		"/introduction/":      "/introduction/",
		"/options/?q=1#x":     "/options/",
		"/zle/widgets.html":   "/zle/widgets/",
		"/zle/index.html":     "/zle/",
		"/index.html":         "/",
		"/files/zshrc.sample": "/files/zshrc.sample",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeLink(in), in)
	}
}

func TestSidebarResolveLongestPrefix(t *testing.T) {
	sb := Sidebar{
		{Prefix: "/", Sections: []SidebarSection{{Text: "Root"}}},
		{Prefix: "/zle/", Sections: []SidebarSection{{Text: "ZLE"}}},
		{Prefix: "/completion", Sections: []SidebarSection{{Text: "Completion"}}},
	}

	tests := []struct {
		route string
		want  string
	}{
		{"/", "/"},
		{"/introduction/", "/"},
		{"/zle/", "/zle/"},
		{"/zle/widgets/", "/zle/"},
		{"/completion", "/completion"},
		{"/completion/compsys/", "/completion"},
		{"/completion-widgets/", "/"},
	}
	for _, tt := range tests {
		e, ok := sb.Resolve(tt.route)
		require.True(t, ok, tt.route)
		assert.Equal(t, tt.want, e.Prefix, tt.route)
	}

	_, ok := Sidebar{{Prefix: "/zle/"}}.Resolve("/options/")
	assert.False(t, ok)
}

func TestSidebarEntryLinks(t *testing.T) {
	sb := Default().Theme.Sidebar
	links := sb[0].Links()
	require.NotEmpty(t, links)
	assert.Equal(t, "/introduction/", links[0].Link)
	assert.Equal(t, "/user-contributions/", links[len(links)-1].Link)
}
