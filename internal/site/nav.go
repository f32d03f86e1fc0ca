package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NavItem is one entry of the top navigation bar: either a NavLink or a
// NavGroup. The interface is sealed; groups can only hold links, so a
// group is never nested inside another group.
type NavItem interface {
	Label() string
	isNavItem()
}

// NavLink is a leaf entry pointing at a page.
type NavLink struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
	// ActiveMatch is an optional regular expression matched against the
	// current route to highlight the entry.
	ActiveMatch string `yaml:"activeMatch,omitempty" json:"activeMatch,omitempty"`
}

// NavGroup is a labeled dropdown of links.
type NavGroup struct {
	Text  string    `yaml:"text" json:"text"`
	Items []NavLink `yaml:"items" json:"items"`
}

func (l NavLink) Label() string  { return l.Text }
func (g NavGroup) Label() string { return g.Text }

func (NavLink) isNavItem()  {}
func (NavGroup) isNavItem() {}

// Nav is the ordered top navigation. Entries render left to right.
type Nav []NavItem

// rawNavItem is the decoded literal shape; presence of link/items is
// tracked through the pointers.
type rawNavItem struct {
	Text        string        `yaml:"text" json:"text"`
	Link        *string       `yaml:"link" json:"link"`
	ActiveMatch string        `yaml:"activeMatch" json:"activeMatch"`
	Items       *[]rawNavItem `yaml:"items" json:"items"`
}

func (r rawNavItem) leaf() (NavLink, error) {
	switch {
	case r.Link != nil && r.Items != nil:
		return NavLink{}, fmt.Errorf("%w: %q has both link and items", ErrMalformedNavItem, r.Text)
	case r.Items != nil:
		return NavLink{}, fmt.Errorf("%w: %q nests a group inside a group", ErrMalformedNavItem, r.Text)
	case r.Link == nil:
		return NavLink{}, fmt.Errorf("%w: %q has neither link nor items", ErrMalformedNavItem, r.Text)
	}
	return NavLink{Text: r.Text, Link: *r.Link, ActiveMatch: r.ActiveMatch}, nil
}

func (r rawNavItem) item() (NavItem, error) {
	if r.Items == nil || r.Link != nil {
		return r.leaf()
	}
	group := NavGroup{Text: r.Text, Items: make([]NavLink, 0, len(*r.Items))}
	for i, child := range *r.Items {
		link, err := child.leaf()
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		group.Items = append(group.Items, link)
	}
	return group, nil
}

func navFromRaw(raws []rawNavItem) (Nav, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	nav := make(Nav, 0, len(raws))
	for i, raw := range raws {
		item, err := raw.item()
		if err != nil {
			return nil, fmt.Errorf("nav[%d]: %w", i, err)
		}
		nav = append(nav, item)
	}
	return nav, nil
}

// UnmarshalYAML decodes a navigation list, choosing NavLink or NavGroup per entry.
func (n *Nav) UnmarshalYAML(value *yaml.Node) error {
	if err := checkSequenceFields(value, navItemFields, navItemFields); err != nil {
		return fmt.Errorf("nav: %w", err)
	}
	var raws []rawNavItem
	if err := value.Decode(&raws); err != nil {
		return err
	}
	nav, err := navFromRaw(raws)
	if err != nil {
		return err
	}
	*n = nav
	return nil
}

// UnmarshalJSON decodes a navigation list, choosing NavLink or NavGroup per entry.
func (n *Nav) UnmarshalJSON(data []byte) error {
	var raws []rawNavItem
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raws); err != nil {
		return fmt.Errorf("nav: %w", err)
	}
	nav, err := navFromRaw(raws)
	if err != nil {
		return err
	}
	*n = nav
	return nil
}
