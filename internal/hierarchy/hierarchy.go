// Package hierarchy answers "what are the children of this path" over a
// tree of segmented identifiers. Two backends share the contract: one built
// from a set of delimited strings, one backed by a directory tree.
package hierarchy

// Node is one child of a hierarchy path. Internal nodes have children of
// their own and can be descended into; leaves are terminal values.
type Node struct {
	Label    string
	Internal bool
}

// Hierarchy is read-only for the duration of an input session. Lookups on
// paths that do not exist return empty results rather than failing.
type Hierarchy interface {
	// Separator returns the string that joins path segments.
	Separator() string

	// Subtree returns the immediate children of the given path, or nil if
	// the path does not exist.
	Subtree(path []string) []Node

	// PartialPath splits path into the longest prefix of existing internal
	// segments and the remainder. It stops before the first missing or
	// non-internal segment, so Subtree(matched) is always a valid lookup.
	PartialPath(path []string) (matched, rest []string)
}
