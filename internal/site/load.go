package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Format is a serialization of the site configuration.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var strictJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

var (
	navItemFields     = []string{"text", "link", "activeMatch", "items"}
	sectionFields     = []string{"text", "collapsed", "items"}
	sidebarLinkFields = []string{"text", "link"}
)

// checkFields rejects keys of a YAML mapping that are not in allowed. The
// decoder's KnownFields setting does not reach values decoded through a
// custom unmarshaler, so nested literals are checked here.
func checkFields(node *yaml.Node, allowed []string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: field %s not found", key.Line, key.Value)
		}
	}
	return nil
}

// checkSequenceFields applies checkFields to every mapping of a sequence,
// descending into the "items" list of each element with childAllowed.
func checkSequenceFields(seq *yaml.Node, allowed, childAllowed []string) error {
	if seq.Kind != yaml.SequenceNode {
		return nil
	}
	for _, el := range seq.Content {
		if err := checkFields(el, allowed); err != nil {
			return err
		}
		if el.Kind != yaml.MappingNode || childAllowed == nil {
			continue
		}
		for i := 0; i+1 < len(el.Content); i += 2 {
			if el.Content[i].Value == "items" {
				if err := checkSequenceFields(el.Content[i+1], childAllowed, nil); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ParseFormat maps a user supplied name ("yaml", "yml", "json") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath derives the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Parse builds a Config from a YAML or JSON literal. Only the shape is
// checked here; call Validate for the structural rules.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := &Config{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := strictJSON.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return cfg, nil
}

// Load reads a site configuration file. The format follows the extension.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("site config %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading site config %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("error parsing site config %s: %w", path, err)
	}
	return cfg, nil
}
