package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clebam/puppetlabs-registry/internal/manifest"
	"github.com/Clebam/puppetlabs-registry/internal/memcatalog"
	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
	"github.com/Clebam/puppetlabs-registry/pkg/resource"
)

const tomlManifest = `
[[key]]
path         = 'HKLM\Software'

[[key]]
path         = 'HKLM\Software\Vendor\App'
purge_values = true

[[key]]
path         = 'HKCR\.txt'
ensure       = "absent"

[[value]]
path = 'HKLM\Software\Vendor\App\Version'
data = "1.0"

[[value]]
path = 'HKLM\Software\Vendor\App\'
`

func TestLoadTOML(t *testing.T) {
	cat := memcatalog.New()
	require.NoError(t, manifest.NewLoader().LoadTOML([]byte(tomlManifest), cat))

	assert.Len(t, cat.Keys(), 3)
	assert.Len(t, cat.Values(), 2)

	ref, ok := cat.Lookup(resource.TypeKey, regpath.Fold(`HKLM\Software\Vendor\App`))
	require.True(t, ok)

	deps := cat.DirectDependentsOf(ref)
	assert.Len(t, deps, 2)
}

func TestLoadTOMLResolvesAutorequireEdges(t *testing.T) {
	cat := memcatalog.New()
	require.NoError(t, manifest.NewLoader().LoadTOML([]byte(tomlManifest), cat))

	software, ok := cat.Lookup(resource.TypeKey, regpath.Fold(`HKLM\Software`))
	require.True(t, ok)
	app, ok := cat.Lookup(resource.TypeKey, regpath.Fold(`HKLM\Software\Vendor\App`))
	require.True(t, ok)

	// HKLM\Software\Vendor is not declared; the App key must require its
	// nearest managed ancestor, HKLM\Software.
	var keyEdges []memcatalog.Edge
	for _, e := range cat.Edges() {
		if e.After.Type == resource.TypeKey {
			keyEdges = append(keyEdges, e)
		}
	}
	require.Len(t, keyEdges, 1)
	assert.Equal(t, memcatalog.Edge{Before: software, After: app}, keyEdges[0])

	// Both declared values belong to the App key and must follow it.
	var valueEdges []memcatalog.Edge
	for _, e := range cat.Edges() {
		if e.After.Type == resource.TypeValue {
			valueEdges = append(valueEdges, e)
		}
	}
	require.Len(t, valueEdges, 2)
	for _, e := range valueEdges {
		assert.Equal(t, app, e.Before)
	}
}

func TestLoadTOMLPurgeFlagForms(t *testing.T) {
	doc := `
[[key]]
path         = 'HKLM\Software\A'
purge_values = true

[[key]]
path         = 'HKLM\Software\B'
purge_values = "True"

[[key]]
path         = 'HKLM\Software\C'
purge_values = "false"

[[key]]
path         = 'HKLM\Software\D'
`
	cat := memcatalog.New()
	require.NoError(t, manifest.NewLoader().LoadTOML([]byte(doc), cat))

	byAlias := make(map[string]bool)
	for _, k := range cat.Keys() {
		byAlias[k.Path.Alias()] = k.PurgeValues
	}
	assert.True(t, byAlias[regpath.Fold(`HKLM\Software\A`)])
	assert.True(t, byAlias[regpath.Fold(`HKLM\Software\B`)])
	assert.False(t, byAlias[regpath.Fold(`HKLM\Software\C`)])
	assert.False(t, byAlias[regpath.Fold(`HKLM\Software\D`)])
}

func TestLoadTOMLBadPurgeFlag(t *testing.T) {
	doc := `
[[key]]
path         = 'HKLM\Software\Vendor'
purge_values = "yes"
`
	err := manifest.NewLoader().LoadTOML([]byte(doc), memcatalog.New())
	require.Error(t, err)

	var flagErr *resource.FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Equal(t, "yes", flagErr.Literal)
	assert.Contains(t, err.Error(), `HKLM\Software\Vendor`)
}

func TestLoadTOMLBadPath(t *testing.T) {
	doc := `
[[key]]
path = 'HKEY_USERS\Foo'
`
	err := manifest.NewLoader().LoadTOML([]byte(doc), memcatalog.New())
	require.Error(t, err)

	var synErr *regpath.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "HKEY_USERS", synErr.Fragment)
}

func TestLoadTOMLBadEnsure(t *testing.T) {
	doc := `
[[key]]
path   = 'HKLM\Software\Vendor'
ensure = "latest"
`
	err := manifest.NewLoader().LoadTOML([]byte(doc), memcatalog.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latest")
}

func TestLoadYAML(t *testing.T) {
	doc := `
key:
  - path: 'HKLM\Software'
  - path: 'HKLM\Software\Vendor'
    purge_values: "true"
value:
  - path: 'HKLM\Software\Vendor\Version'
    data: "2.0"
`
	cat := memcatalog.New()
	require.NoError(t, manifest.NewLoader().LoadYAML([]byte(doc), cat))

	assert.Len(t, cat.Keys(), 2)
	require.Len(t, cat.Values(), 1)
	assert.Equal(t, "2.0", cat.Values()[0].Data)

	vendor, ok := cat.Lookup(resource.TypeKey, regpath.Fold(`HKLM\Software\Vendor`))
	require.True(t, ok)
	for _, k := range cat.Keys() {
		if k.Ref() == vendor {
			assert.True(t, k.PurgeValues)
		}
	}
}

func TestLoadFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "registry.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlManifest), 0o644))

	cat := memcatalog.New()
	require.NoError(t, manifest.NewLoader().LoadFile(tomlPath, cat))
	assert.Len(t, cat.Keys(), 3)

	badPath := filepath.Join(dir, "registry.conf")
	require.NoError(t, os.WriteFile(badPath, []byte(""), 0o644))
	err := manifest.NewLoader().LoadFile(badPath, memcatalog.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestLoadFileMissing(t *testing.T) {
	err := manifest.NewLoader().LoadFile(filepath.Join(t.TempDir(), "absent.toml"), memcatalog.New())
	require.Error(t, err)
}
