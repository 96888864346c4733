// Package memcatalog is an in-memory resource catalog and dependency
// graph. It backs the manifest loader, the CLI and tests; evaluation is
// single-threaded, so callers needing concurrency own the locking.
package memcatalog

import (
	"fmt"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
	"github.com/Clebam/puppetlabs-registry/pkg/resource"
)

// Edge is a "Before must be realized before After" ordering requirement.
type Edge struct {
	Before resource.Ref
	After  resource.Ref
}

// Catalog stores declared resources, their case-folded identities, and
// ordering edges. It implements resource.Catalog and resource.Graph.
type Catalog struct {
	keys   map[resource.Ref]*resource.Key
	values map[resource.Ref]*resource.Value

	// aliases maps resource type → folded identity → ref.
	aliases map[string]map[string]resource.Ref

	// dependents indexes value resources by the folded canonical path of
	// their owning key.
	dependents map[string][]*resource.Value

	edges []Edge
}

var (
	_ resource.Catalog = (*Catalog)(nil)
	_ resource.Graph   = (*Catalog)(nil)
)

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		keys:       make(map[resource.Ref]*resource.Key),
		values:     make(map[resource.Ref]*resource.Value),
		aliases:    make(map[string]map[string]resource.Ref),
		dependents: make(map[string][]*resource.Value),
	}
}

// AddKey declares a key resource and registers its folded identity.
// Declaring the same location twice, in any case variant, is an error.
func (c *Catalog) AddKey(k *resource.Key) error {
	ref := k.Ref()
	alias := k.Path.Alias()
	if existing, ok := c.lookup(resource.TypeKey, alias); ok {
		return fmt.Errorf("%s: already declared as %s", ref, existing)
	}
	c.keys[ref] = k
	c.RegisterAlias(ref, alias)
	return nil
}

// AddResource declares a value resource, registers its folded identity,
// and indexes it as a dependent of its owning key. It implements
// resource.Catalog for purge-synthesized descriptors.
func (c *Catalog) AddResource(v *resource.Value) error {
	ref := v.Ref()
	alias := v.Path.Alias()
	if existing, ok := c.lookup(resource.TypeValue, alias); ok {
		return fmt.Errorf("%s: already declared as %s", ref, existing)
	}
	c.values[ref] = v
	c.RegisterAlias(ref, alias)

	keyAlias := v.Path.Key().Alias()
	c.dependents[keyAlias] = append(c.dependents[keyAlias], v)
	return nil
}

// RegisterAlias records an additional folded identity for ref.
func (c *Catalog) RegisterAlias(ref resource.Ref, alias string) {
	byAlias, ok := c.aliases[ref.Type]
	if !ok {
		byAlias = make(map[string]resource.Ref)
		c.aliases[ref.Type] = byAlias
	}
	byAlias[alias] = ref
}

// Lookup resolves a resource by type and folded identity.
func (c *Catalog) Lookup(resourceType, foldedPath string) (resource.Ref, bool) {
	return c.lookup(resourceType, foldedPath)
}

func (c *Catalog) lookup(resourceType, foldedPath string) (resource.Ref, bool) {
	ref, ok := c.aliases[resourceType][foldedPath]
	return ref, ok
}

// DirectDependentsOf returns the value resources declared under the given
// key resource.
func (c *Catalog) DirectDependentsOf(ref resource.Ref) []*resource.Value {
	if ref.Type != resource.TypeKey {
		return nil
	}
	return c.dependents[regpath.Fold(ref.Title)]
}

// Require records an ordering edge: before is realized before after.
func (c *Catalog) Require(before, after resource.Ref) {
	c.edges = append(c.edges, Edge{Before: before, After: after})
}

// Edges returns the recorded ordering requirements.
func (c *Catalog) Edges() []Edge { return c.edges }

// Keys returns the declared key resources in unspecified order.
func (c *Catalog) Keys() []*resource.Key {
	out := make([]*resource.Key, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, k)
	}
	return out
}

// Values returns the declared value resources in unspecified order.
func (c *Catalog) Values() []*resource.Value {
	out := make([]*resource.Value, 0, len(c.values))
	for _, v := range c.values {
		out = append(out, v)
	}
	return out
}
