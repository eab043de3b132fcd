// Package records provides typed access to the Children, Pets, and
// Owners tables over the RowStore adapter. It holds the identity
// allocator, the child and pet repositories, and the link registry.
//
// Nothing in this package caches table contents: every operation reads
// its table fresh, because the backing store may be mutated externally
// between calls and in-memory state is never authoritative.
package records
