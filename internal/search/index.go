// Package search builds the index used by the in-browser "local" search
// provider.
package search

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/renameio/v2"
	jsoniter "github.com/json-iterator/go"

	"github.com/shide1989/zsh-docs/internal/model"
	"github.com/shide1989/zsh-docs/internal/site"
)

// FileName is the index file written at the root of the output directory.
const FileName = "search-index.json"

// maxTextRunes bounds the body text stored per page.
const maxTextRunes = 4000

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is one searchable page.
type Document struct {
	ID       int      `json:"id"`
	Link     string   `json:"link"`
	Title    string   `json:"title"`
	Section  string   `json:"section,omitempty"`
	Headings []string `json:"headings,omitempty"`
	Text     string   `json:"text"`
}

// Index is the serialized search index.
type Index struct {
	Provider  string     `json:"provider"`
	Documents []Document `json:"documents"`
}

// Build creates the index of every collected page. Section is the sidebar
// section listing the page, if any.
func Build(sd *model.SiteData) *Index {
	sections := sectionsByLink(sd.Config.Theme.Sidebar)
	idx := &Index{Provider: site.SearchLocal, Documents: make([]Document, 0, len(sd.ContentItems))}
	for i, item := range sd.ContentItems {
		idx.Documents = append(idx.Documents, Document{
			ID:       i,
			Link:     item.Permalink,
			Title:    item.Title,
			Section:  sections[item.Permalink],
			Headings: item.Headings,
			Text:     truncate(item.Text, maxTextRunes),
		})
	}
	return idx
}

// Search returns the documents whose title, headings or text contain every
// term of query, case-insensitively, in index order.
func (idx *Index) Search(query string) []Document {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}
	var hits []Document
	for _, doc := range idx.Documents {
		hay := strings.ToLower(doc.Title + " " + strings.Join(doc.Headings, " ") + " " + doc.Text)
		match := true
		for _, term := range terms {
			if !strings.Contains(hay, term) {
				match = false
				break
			}
		}
		if match {
			hits = append(hits, doc)
		}
	}
	return hits
}

// Encode writes the index as JSON.
func (idx *Index) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(idx)
}

// WriteFile writes the index to FileName in outputDir atomically.
func (idx *Index) WriteFile(outputDir string) error {
	path := filepath.Join(outputDir, FileName)
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending search index: %w", err)
	}
	defer pending.Cleanup() //nolint:errcheck // no-op once committed

	if err := idx.Encode(pending); err != nil {
		return fmt.Errorf("encode search index: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace search index: %w", err)
	}
	return nil
}

// Read decodes an index written by Encode.
func Read(r io.Reader) (*Index, error) {
	var idx Index
	if err := json.NewDecoder(r).Decode(&idx); err != nil {
		return nil, fmt.Errorf("decode search index: %w", err)
	}
	return &idx, nil
}

// ReadFile loads the index written by WriteFile into outputDir.
func ReadFile(outputDir string) (*Index, error) {
	f, err := os.Open(filepath.Join(outputDir, FileName))
	if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func sectionsByLink(sb site.Sidebar) map[string]string {
	out := make(map[string]string)
	for _, e := range sb {
		for _, sec := range e.Sections {
			for _, it := range sec.Items {
				link := site.NormalizeLink(it.Link)
				if _, ok := out[link]; !ok {
					out[link] = sec.Text
				}
			}
		}
	}
	return out
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
