//go:build windows

// Package winprovider reads the live Windows registry through
// golang.org/x/sys. It is the only package that touches the real store;
// everything above it consumes the resource.Provider interface.
package winprovider

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
	"github.com/Clebam/puppetlabs-registry/pkg/resource"
)

// Provider lists value names from the live registry.
type Provider struct{}

var _ resource.Provider = (*Provider)(nil)

// New returns a live-registry provider.
func New() *Provider { return &Provider{} }

// ListValueNames implements resource.Provider against the real store,
// honoring the key's hive and 32-bit redirection.
func (p *Provider) ListValueNames(k regpath.KeyPath) ([]string, error) {
	key, err := registry.OpenKey(rootOf(k.Hive()), subPath(k), accessFor(k.BitWidth()))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", k, err)
	}
	defer key.Close()

	names, err := key.ReadValueNames(-1)
	if err != nil {
		return nil, fmt.Errorf("list values under %s: %w", k, err)
	}
	return names, nil
}

func rootOf(h regpath.Hive) registry.Key {
	if h == regpath.ClassesRoot {
		return registry.CLASSES_ROOT
	}
	return registry.LOCAL_MACHINE
}

func subPath(k regpath.KeyPath) string {
	return strings.Join(k.Segments(), regpath.Separator)
}

func accessFor(w regpath.BitWidth) uint32 {
	if w == regpath.ThirtyTwo {
		return registry.QUERY_VALUE | registry.WOW64_32KEY
	}
	return registry.QUERY_VALUE | registry.WOW64_64KEY
}
