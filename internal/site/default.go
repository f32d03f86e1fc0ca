package site

// Default returns the canonical configuration of the Zsh manual site.
// Every call builds a fresh value, so callers may modify what they get.
func Default() *Config {
	return &Config{
		Title:       "Zsh Docs",
		Description: "The Z shell manual, reorganised for the web",
		Lang:        "en-US",
		Theme: ThemeConfig{
			Nav: Nav{
				NavLink{Text: "Home", Link: "/"},
				NavGroup{
					Text: "Guide",
					Items: []NavLink{
						{Text: "Introduction", Link: "/introduction/"},
						{Text: "Invocation", Link: "/invocation/"},
						{Text: "Shell Grammar", Link: "/shell-grammar/"},
						{Text: "Expansion", Link: "/expansion/"},
					},
				},
				NavGroup{
					Text: "Reference",
					Items: []NavLink{
						{Text: "Parameters", Link: "/parameters/"},
						{Text: "Options", Link: "/options/"},
						{Text: "Builtins", Link: "/shell-builtin-commands/"},
						{Text: "Modules", Link: "/zsh-modules/"},
					},
				},
				NavGroup{
					Text: "Line Editor",
					Items: []NavLink{
						{Text: "ZLE", Link: "/zsh-line-editor/"},
						{Text: "Completion System", Link: "/completion-system/"},
					},
				},
			},
			Sidebar: Sidebar{
				{
					Prefix: "/",
					Sections: []SidebarSection{
						{
							Text: "Intro",
							Items: []SidebarLink{
								{Text: "Introduction", Link: "/introduction/"},
								{Text: "Roadmap", Link: "/roadmap/"},
								{Text: "Invocation", Link: "/invocation/"},
								{Text: "Files", Link: "/files/"},
							},
						},
						{
							Text: "Shell Grammar",
							Items: []SidebarLink{
								{Text: "Shell Grammar", Link: "/shell-grammar/"},
								{Text: "Redirection", Link: "/redirection/"},
								{Text: "Command Execution", Link: "/command-execution/"},
								{Text: "Functions", Link: "/functions/"},
								{Text: "Jobs & Signals", Link: "/jobs-and-signals/"},
								{Text: "Arithmetic Evaluation", Link: "/arithmetic-evaluation/"},
								{Text: "Conditional Expressions", Link: "/conditional-expressions/"},
								{Text: "Prompt Expansion", Link: "/prompt-expansion/"},
								{Text: "Expansion", Link: "/expansion/"},
							},
						},
						{
							Text: "Parameters & Options",
							Items: []SidebarLink{
								{Text: "Parameters", Link: "/parameters/"},
								{Text: "Options", Link: "/options/"},
								{Text: "Shell Builtin Commands", Link: "/shell-builtin-commands/"},
							},
						},
						{
							Text: "Line Editor",
							Items: []SidebarLink{
								{Text: "Zsh Line Editor", Link: "/zsh-line-editor/"},
								{Text: "Completion Widgets", Link: "/completion-widgets/"},
								{Text: "Completion System", Link: "/completion-system/"},
								{Text: "Completion Using compctl", Link: "/completion-using-compctl/"},
							},
						},
						{
							Text:      "Modules & Functions",
							Collapsed: true,
							Items: []SidebarLink{
								{Text: "Zsh Modules", Link: "/zsh-modules/"},
								{Text: "Calendar Function System", Link: "/calendar-function-system/"},
								{Text: "TCP Function System", Link: "/tcp-function-system/"},
								{Text: "Zftp Function System", Link: "/zftp-function-system/"},
								{Text: "User Contributions", Link: "/user-contributions/"},
							},
						},
					},
				},
			},
			SocialLinks: []SocialLink{
				{Icon: "github", Link: "https://github.com/zsh-users/zsh"},
			},
			Search: Search{Provider: SearchLocal},
			Footer: &Footer{
				Message:   "Distributed under the Zsh license.",
				Copyright: "Copyright © 1992-present The Zsh Development Group",
			},
			DocFooter: &DocFooter{
				Prev: "Previous page",
				Next: "Next page",
			},
			LastUpdated: &LastUpdated{
				Text: "Updated at",
				FormatOptions: FormatOptions{
					DateStyle: "full",
					TimeStyle: "medium",
				},
			},
			Outline: &Outline{Label: "On this page"},
			EditLink: &EditLink{
				Pattern: "https://github.com/shide1989/zsh-docs/edit/main/docs/:path",
				Text:    "Edit this page on GitHub",
			},
		},
	}
}
