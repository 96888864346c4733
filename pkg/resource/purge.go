package resource

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
)

// Reconcile computes the ensure-absent value descriptors needed to purge
// values present under key in the live store but not declared in the
// graph. It returns nil without touching the provider when the key does
// not request purging.
//
// The should-set is the folded value names of the key's direct dependents;
// the is-set comes from a single provider read. A provider failure aborts
// reconciliation for this key with no descriptors emitted: purging against
// unreliable data would delete values the user may well have declared.
//
// Reconcile is idempotent over unchanged inputs, never emits a descriptor
// for a declared name in any case variant, and never mutates the catalog
// or the store; inserting the returned descriptors is the caller's job.
func Reconcile(key *Key, graph Graph, provider Provider) ([]*Value, error) {
	if !key.PurgeValues {
		return nil, nil
	}

	should := make(map[string]struct{})
	for _, dep := range graph.DirectDependentsOf(key.Ref()) {
		should[regpath.Fold(dep.Path.ValueName())] = struct{}{}
	}

	names, err := provider.ListValueNames(key.Path)
	if err != nil {
		return nil, fmt.Errorf("list values under %s: %w", key.Path, err)
	}

	var purge []*Value
	for _, name := range unmanagedNames(should, names) {
		purge = append(purge, &Value{
			Path:   regpath.NewValuePath(key.Path, name),
			Ensure: Absent,
		})
	}
	return purge, nil
}

// unmanagedNames returns the case-insensitive complement is − should with
// original casing preserved, deduplicated and sorted by folded name so
// output order is deterministic.
func unmanagedNames(should map[string]struct{}, is []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(is))
	for _, name := range is {
		folded := regpath.Fold(name)
		if _, declared := should[folded]; declared {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, name)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(regpath.Fold(a), regpath.Fold(b))
	})
	return out
}
