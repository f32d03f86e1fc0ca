package site

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var exportJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Export writes the configuration in the given format, ready for an
// external renderer to import.
func (c *Config) Export(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		data, err := exportJSON.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("encode site config: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode site config: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// WriteFile exports the configuration to path, replacing it atomically.
func (c *Config) WriteFile(path string, format Format) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer pending.Cleanup() //nolint:errcheck // no-op once committed

	if err := c.Export(pending, format); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
