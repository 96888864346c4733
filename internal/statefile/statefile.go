// Package statefile is a file-backed resource.Provider: a snapshot of the
// value names actually present under each key, for planning purge runs
// without touching a live registry.
package statefile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
	"github.com/Clebam/puppetlabs-registry/pkg/resource"
)

type document struct {
	Keys []keyState `toml:"key" yaml:"key"`
}

type keyState struct {
	Path   string   `toml:"path"   yaml:"path"`
	Values []string `toml:"values" yaml:"values"`
}

// Provider serves value-name listings from a loaded snapshot, keyed by
// folded canonical path. Keys absent from the snapshot list no values,
// matching a store that auto-created an empty key.
type Provider struct {
	values map[string][]string
}

var _ resource.Provider = (*Provider)(nil)

// New builds a Provider from raw key path → value names. Paths are
// parsed, so a bad key path fails construction.
func New(state map[string][]string) (*Provider, error) {
	p := &Provider{values: make(map[string][]string, len(state))}
	for raw, names := range state {
		k, err := regpath.Parse(raw)
		if err != nil {
			return nil, err
		}
		p.values[k.Alias()] = slices.Clone(names)
	}
	return p, nil
}

// Load reads a .toml, .yaml or .yml state snapshot.
func Load(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("state file %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode state file %s: %w", path, err)
	}

	state := make(map[string][]string, len(doc.Keys))
	for _, k := range doc.Keys {
		state[k.Path] = k.Values
	}
	return New(state)
}

// ListValueNames implements resource.Provider.
func (p *Provider) ListValueNames(k regpath.KeyPath) ([]string, error) {
	return slices.Clone(p.values[k.Alias()]), nil
}
