// Package content walks the Markdown tree of the manual and turns every
// page into a model.ContentItem.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shide1989/zsh-docs/internal/log"
	"github.com/shide1989/zsh-docs/internal/model"
)

var dateFormats = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// Collector converts Markdown files into content items.
type Collector struct {
	md     goldmark.Markdown
	logger zerolog.Logger
}

// NewCollector returns a Collector using GitHub flavoured Markdown with
// generated heading IDs.
func NewCollector() *Collector {
	return &Collector{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(),
			),
		),
		logger: log.WithComponent("content"),
	}
}

// Collect walks dir for *.md files and returns one item per file, sorted
// by permalink.
func (c *Collector) Collect(dir string) ([]*model.ContentItem, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content directory '%s': %w", dir, err)
	}

	var items []*model.ContentItem
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", p, walkErr)
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		item, err := c.File(p, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during content collection walk: %w", err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Permalink < items[j].Permalink })
	c.logger.Debug().Int("pages", len(items)).Str("dir", dir).Msg("content collected")
	return items, nil
}

// File converts a single Markdown file. rel is its slash separated path
// relative to the content directory.
func (c *Collector) File(p, rel string) (*model.ContentItem, error) {
	fileBytes, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", p, err)
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file '%s': %w", p, err)
	}

	var fm map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(fileBytes), &fm)
	if err != nil {
		c.logger.Warn().Err(err).Str("file", p).Msg("could not parse frontmatter, treating as pure markdown")
		body = fileBytes
		fm = nil
	}
	if fm == nil {
		fm = make(map[string]interface{})
	}

	doc := c.md.Parser().Parse(text.NewReader(body))
	var html bytes.Buffer
	if err := c.md.Renderer().Render(&html, body, doc); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", p, err)
	}
	plain, headings := extractText(doc, body)

	item := &model.ContentItem{
		Title:       stringParam(fm, "title"),
		Updated:     info.ModTime(),
		SourcePath:  p,
		RelPath:     rel,
		Permalink:   Permalink(rel),
		ContentHTML: template.HTML(html.String()),
		Text:        plain,
		Headings:    headings,
		Frontmatter: fm,
		Summary:     stringParam(fm, "summary"),
		Layout:      stringParam(fm, "layout"),
	}
	if item.Title == "" {
		item.Title = TitleFromPath(rel)
	}
	item.Date = c.date(fm["date"], p)
	if updated := c.date(fm["lastUpdated"], p); !updated.IsZero() {
		item.Updated = updated
	}
	return item, nil
}

func (c *Collector) date(v interface{}, p string) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		for _, format := range dateFormats {
			if parsed, err := time.Parse(format, d); err == nil {
				return parsed
			}
		}
		c.logger.Warn().Str("file", p).Str("date", d).Msg("could not parse date, use YYYY-MM-DD or RFC3339")
	}
	return time.Time{}
}

func stringParam(fm map[string]interface{}, key string) string {
	s, _ := fm[key].(string)
	return s
}

// Permalink maps a content path to its URL: "shell-grammar.md" is served
// at "/shell-grammar/", "zle/index.md" at "/zle/" and "index.md" at "/".
func Permalink(rel string) string {
	rel = strings.TrimSuffix(path.Clean("/"+filepath.ToSlash(rel)), path.Ext(rel))
	rel = strings.TrimSuffix(rel, "/index")
	if rel == "" {
		return "/"
	}
	return rel + "/"
}

// TitleFromPath derives a page title from its file name, e.g.
// "jobs-and-signals.md" becomes "Jobs And Signals". Index pages take the
// name of their directory.
func TitleFromPath(rel string) string {
	rel = filepath.ToSlash(rel)
	base := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	if base == "index" {
		base = path.Base(path.Dir(rel))
		if base == "." || base == "/" {
			return "Home"
		}
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(base)
}

// extractText returns the plain text of a document and its heading titles.
func extractText(doc ast.Node, source []byte) (string, []string) {
	var (
		body     strings.Builder
		headings []string
	)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			headings = append(headings, nodeText(node, source))
		case *ast.Text:
			body.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				body.WriteByte(' ')
			}
		case *ast.String:
			body.Write(node.Value)
		case *ast.CodeSpan:
			body.WriteString(nodeText(node, source))
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				body.Write(seg.Value(source))
			}
		}
		if n.Type() == ast.TypeBlock && body.Len() > 0 {
			body.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(body.String()), " "), headings
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, source))
		}
	}
	return b.String()
}
