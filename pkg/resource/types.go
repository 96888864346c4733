package resource

import (
	"fmt"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
)

// Resource type names as they appear in catalogs and manifests.
const (
	TypeKey   = "registry_key"
	TypeValue = "registry_value"
)

// Ensure declares the desired presence of a resource.
type Ensure int

const (
	Present Ensure = iota
	Absent
)

func (e Ensure) String() string {
	if e == Absent {
		return "absent"
	}
	return "present"
}

// Ref is a small, copyable handle identifying a resource in the catalog.
type Ref struct {
	Type  string
	Title string
}

func (r Ref) String() string { return fmt.Sprintf("%s[%s]", r.Type, r.Title) }

// Key is a declared registry key resource.
type Key struct {
	Path   regpath.KeyPath
	Ensure Ensure

	// PurgeValues requests removal of values present under the key but
	// not declared as Value resources depending on it.
	PurgeValues bool
}

// Ref returns the key's catalog handle, titled by its canonical path.
func (k *Key) Ref() Ref { return Ref{Type: TypeKey, Title: k.Path.Canonical()} }

// Value is a declared registry value resource.
type Value struct {
	Path   regpath.ValuePath
	Ensure Ensure

	// Data is the declared payload. Empty is a valid payload; the
	// reconciliation core never inspects it.
	Data string
}

// Ref returns the value's catalog handle, titled by its combined path.
func (v *Value) Ref() Ref { return Ref{Type: TypeValue, Title: v.Path.String()} }

// Catalog is the externally owned resource store.
type Catalog interface {
	// RegisterAlias records an additional case-folded identity for ref.
	RegisterAlias(ref Ref, alias string)
	// Lookup resolves a managed resource by type and folded identity.
	Lookup(resourceType, foldedPath string) (Ref, bool)
	// AddResource inserts a synthesized value descriptor.
	AddResource(v *Value) error
}

// Graph is the externally owned dependency graph.
type Graph interface {
	// DirectDependentsOf returns the value resources declared as
	// depending on the given key resource.
	DirectDependentsOf(ref Ref) []*Value
}

// Provider performs live reads of the actual registry store.
type Provider interface {
	// ListValueNames lists the value names currently present under the
	// key. It may fail with a provider-specific I/O error.
	ListValueNames(k regpath.KeyPath) ([]string, error)
}
