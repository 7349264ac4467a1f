package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrUnreadable marks a config file that exists on the command line but
// could not be read. Callers treat it as fatal, unlike parse errors.
var ErrUnreadable = errors.New("config file unreadable")

// Format is the serialization of a config file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads and parses a config file. Read failures wrap ErrUnreadable.
func LoadFile(path string) ([]Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	return Parse(data, FormatFromPath(path))
}

// Parse decodes a config document. The document must be an array of
// entries; an unknown column type, a mistyped key or a default that cannot
// be written as JSON fails the whole document.
func Parse(data []byte, format Format) ([]Options, error) {
	var opts []Options

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	for i, o := range opts {
		if o.Default == nil {
			continue
		}

		if _, err := json.Marshal(o.Default); err != nil {
			return nil, fmt.Errorf("entry %d: default is not representable as JSON: %w", i, err)
		}
	}

	return opts, nil
}
