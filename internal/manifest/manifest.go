// Package manifest loads registry resource declarations from TOML or
// YAML files into a catalog: paths are parsed and canonicalized at load
// time, folded aliases registered, and ordering edges resolved, so a bad
// declaration fails the load instead of surfacing at generation time.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/Clebam/puppetlabs-registry/internal/memcatalog"
	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
	"github.com/Clebam/puppetlabs-registry/pkg/resource"
)

// document is the on-disk shape shared by the TOML and YAML forms.
type document struct {
	Keys   []keyDecl   `toml:"key"   yaml:"key"`
	Values []valueDecl `toml:"value" yaml:"value"`
}

type keyDecl struct {
	Path   string `toml:"path"   yaml:"path"`
	Ensure string `toml:"ensure" yaml:"ensure"`

	// PurgeValues is decoded loosely: manifests may spell the flag as a
	// bare boolean or as the strings "true"/"false".
	PurgeValues any `toml:"purge_values" yaml:"purge_values"`
}

type valueDecl struct {
	Path   string `toml:"path"   yaml:"path"`
	Ensure string `toml:"ensure" yaml:"ensure"`
	Data   string `toml:"data"   yaml:"data"`
}

// Loader binds declaration files to a catalog.
type Loader struct {
	Log zerolog.Logger
}

// NewLoader returns a Loader that logs nothing. Set Log to enable
// diagnostics.
func NewLoader() Loader {
	return Loader{Log: zerolog.Nop()}
}

// LoadFile loads a .toml, .yaml or .yml declaration file into cat.
func (l Loader) LoadFile(path string, cat *memcatalog.Catalog) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return l.LoadTOML(data, cat)
	case ".yaml", ".yml":
		return l.LoadYAML(data, cat)
	default:
		return fmt.Errorf("manifest %s: unsupported extension %q", path, ext)
	}
}

// LoadTOML loads TOML declaration data into cat.
func (l Loader) LoadTOML(data []byte, cat *memcatalog.Catalog) error {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}
	return l.bind(doc, cat)
}

// LoadYAML loads YAML declaration data into cat.
func (l Loader) LoadYAML(data []byte, cat *memcatalog.Catalog) error {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}
	return l.bind(doc, cat)
}

// bind validates the decoded declarations, inserts them into the catalog,
// and resolves ordering edges once every resource is registered.
func (l Loader) bind(doc document, cat *memcatalog.Catalog) error {
	for _, decl := range doc.Keys {
		k, err := bindKey(decl)
		if err != nil {
			return err
		}
		if err := cat.AddKey(k); err != nil {
			return err
		}
		l.Log.Debug().
			Str("path", k.Path.Canonical()).
			Bool("purge_values", k.PurgeValues).
			Msg("declared registry key")
	}

	for _, decl := range doc.Values {
		v, err := bindValue(decl)
		if err != nil {
			return err
		}
		if err := cat.AddResource(v); err != nil {
			return err
		}
		l.Log.Debug().Str("path", v.Path.String()).Msg("declared registry value")
	}

	l.resolveEdges(cat)
	return nil
}

// resolveEdges wires "parent before child" requirements. Keys require
// their nearest managed ancestor key; values require their owning key
// when it is managed.
func (l Loader) resolveEdges(cat *memcatalog.Catalog) {
	lookupKey := func(folded string) (resource.Ref, bool) {
		return cat.Lookup(resource.TypeKey, folded)
	}

	for _, k := range cat.Keys() {
		if ancestor, ok := resource.NearestManagedAncestor(k.Path, lookupKey); ok {
			cat.Require(ancestor, k.Ref())
			l.Log.Debug().
				Stringer("before", ancestor).
				Stringer("after", k.Ref()).
				Msg("autorequire edge")
		}
	}

	for _, v := range cat.Values() {
		if owner, ok := lookupKey(v.Path.Key().Alias()); ok {
			cat.Require(owner, v.Ref())
		}
	}
}

func bindKey(decl keyDecl) (*resource.Key, error) {
	k, err := regpath.Parse(decl.Path)
	if err != nil {
		return nil, err
	}
	ensure, err := parseEnsure(decl.Ensure)
	if err != nil {
		return nil, fmt.Errorf("key %s: %w", decl.Path, err)
	}
	purge := false
	if decl.PurgeValues != nil {
		if purge, err = resource.ParsePurgeFlag(decl.PurgeValues); err != nil {
			return nil, fmt.Errorf("key %s: %w", decl.Path, err)
		}
	}
	return &resource.Key{Path: k, Ensure: ensure, PurgeValues: purge}, nil
}

func bindValue(decl valueDecl) (*resource.Value, error) {
	p, err := regpath.ParseValuePath(decl.Path)
	if err != nil {
		return nil, err
	}
	ensure, err := parseEnsure(decl.Ensure)
	if err != nil {
		return nil, fmt.Errorf("value %s: %w", decl.Path, err)
	}
	return &resource.Value{Path: p, Ensure: ensure, Data: decl.Data}, nil
}

func parseEnsure(s string) (resource.Ensure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "present":
		return resource.Present, nil
	case "absent":
		return resource.Absent, nil
	default:
		return resource.Present, fmt.Errorf("invalid ensure %q: expected present or absent", s)
	}
}
