/*
Package resource models declared registry resources and the two pieces of
behavior that tie them to a resource catalog: autorequire resolution
(finding the nearest managed ancestor key so parents are realized before
children) and purge reconciliation (computing ensure-absent value
descriptors for values present in the live store but not declared).

The catalog, dependency graph and live-store provider are external
collaborators consumed through the narrow Catalog, Graph and Provider
interfaces; this package never mutates them. Reconcile returns the
descriptors it synthesizes and leaves catalog insertion to the caller.
*/
package resource
