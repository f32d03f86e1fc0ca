package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SidebarLink is a single page link inside a sidebar section.
type SidebarLink struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// SidebarSection is a labeled cluster of links in the side panel.
type SidebarSection struct {
	Text      string        `yaml:"text" json:"text"`
	Collapsed bool          `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []SidebarLink `yaml:"items" json:"items"`
}

// SidebarEntry binds a route prefix to the sections shown under it.
type SidebarEntry struct {
	Prefix   string
	Sections []SidebarSection
}

// Sidebar maps route prefixes to sections. It is serialized as a mapping
// but keeps the declared order of prefixes, sections and items.
type Sidebar []SidebarEntry

// Resolve returns the entry whose prefix is the longest match for route.
// A prefix matches the route itself and anything below it; "/" matches
// every route.
func (s Sidebar) Resolve(route string) (SidebarEntry, bool) {
	best := -1
	for i, e := range s {
		if !prefixMatches(e.Prefix, route) {
			continue
		}
		if best < 0 || len(e.Prefix) > len(s[best].Prefix) {
			best = i
		}
	}
	if best < 0 {
		return SidebarEntry{}, false
	}
	return s[best], true
}

func prefixMatches(prefix, route string) bool {
	if route == prefix {
		return true
	}
	if strings.HasSuffix(prefix, "/") {
		return strings.HasPrefix(route, prefix)
	}
	return strings.HasPrefix(route, prefix+"/")
}

// Links flattens the entry's sections into reading order.
func (e SidebarEntry) Links() []SidebarLink {
	var links []SidebarLink
	for _, sec := range e.Sections {
		links = append(links, sec.Items...)
	}
	return links
}

// MarshalYAML emits the sidebar as an ordered mapping.
func (s Sidebar) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range s {
		var val yaml.Node
		if err := val.Encode(e.Sections); err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", e.Prefix, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Prefix},
			&val,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping of prefix to sections, keeping key order
// and rejecting duplicate prefixes.
func (s *Sidebar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("sidebar: line %d: expected a mapping of route prefix to sections", value.Line)
	}
	var out Sidebar
	seen := make(map[string]struct{}, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if _, dup := seen[key.Value]; dup {
			return fmt.Errorf("sidebar: line %d: %w %q", key.Line, ErrDuplicateSidebarPrefix, key.Value)
		}
		seen[key.Value] = struct{}{}

		if err := checkSequenceFields(val, sectionFields, sidebarLinkFields); err != nil {
			return fmt.Errorf("sidebar %q: %w", key.Value, err)
		}
		var sections []SidebarSection
		if err := val.Decode(&sections); err != nil {
			return fmt.Errorf("sidebar %q: %w", key.Value, err)
		}
		out = append(out, SidebarEntry{Prefix: key.Value, Sections: sections})
	}
	*s = out
	return nil
}

// MarshalJSON emits the sidebar as a JSON object in declared order.
func (s Sidebar) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Prefix)
		if err != nil {
			return nil, err
		}
		sections := e.Sections
		if sections == nil {
			sections = []SidebarSection{}
		}
		val, err := json.Marshal(sections)
		if err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", e.Prefix, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of prefix to sections, keeping key
// order and rejecting duplicate prefixes.
func (s *Sidebar) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("sidebar: %w", err)
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("sidebar: expected an object of route prefix to sections")
	}

	dec.DisallowUnknownFields()

	var out Sidebar
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("sidebar: %w", err)
		}
		prefix, _ := tok.(string)
		if _, dup := seen[prefix]; dup {
			return fmt.Errorf("sidebar: %w %q", ErrDuplicateSidebarPrefix, prefix)
		}
		seen[prefix] = struct{}{}

		var sections []SidebarSection
		if err := dec.Decode(&sections); err != nil {
			return fmt.Errorf("sidebar %q: %w", prefix, err)
		}
		out = append(out, SidebarEntry{Prefix: prefix, Sections: sections})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("sidebar: %w", err)
	}
	*s = out
	return nil
}
