// Package types defines the entity types and standard error values for the
// Axiom intent store: the Intent record itself, the reserved Assumption and
// Decision records, and the sentinel errors shared across layers.
package types
