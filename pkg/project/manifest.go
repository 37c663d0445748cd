package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml"
)

// Manifest is the on-disk description of a project: a name and the ordered item list. Item
// order within the manifest is meaningful and is preserved verbatim.
type Manifest struct {
	Name  string         `toml:"name" yaml:"name"`
	Items []ManifestItem `toml:"items" yaml:"items"`
}

type ManifestItem struct {
	Include string `toml:"include" yaml:"include"`
	Type    string `toml:"type" yaml:"type"`
}

func decodeManifest(path string, contents []byte) (*Manifest, error) {
	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(contents, &m); err != nil {
			return nil, fmt.Errorf("unable to parse TOML manifest %q: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(contents, &m); err != nil {
			return nil, fmt.Errorf("unable to parse YAML manifest %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", filepath.Ext(path))
	}
	return &m, nil
}
