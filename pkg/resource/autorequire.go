package resource

import "github.com/Clebam/puppetlabs-registry/pkg/regpath"

// LookupFunc resolves a managed key resource by its case-folded canonical
// identity.
type LookupFunc func(foldedPath string) (Ref, bool)

// NearestManagedAncestor walks the ancestor chain of k from the immediate
// parent toward the hive root and returns the first ancestor the lookup
// knows about. The caller turns a hit into an ordering edge so the parent
// is realized before k's owning resource: the store auto-creates missing
// intermediate keys, but a managed parent must be processed first for its
// own purge and audit semantics to hold.
//
// ok is false when no ancestor up to and including the root is managed,
// which is the normal outcome for root-level keys, not an error.
func NearestManagedAncestor(k regpath.KeyPath, lookup LookupFunc) (ref Ref, ok bool) {
	for _, ancestor := range k.Ascend() {
		if ref, ok = lookup(ancestor.Alias()); ok {
			return ref, true
		}
	}
	return Ref{}, false
}
