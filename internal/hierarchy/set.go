package hierarchy

import (
	"sort"
	"strings"
)

type setNode struct {
	children map[string]*setNode
}

// Set is a hierarchy built from a collection of delimited strings. Each
// string is split on the separator and indexed segment by segment; a segment
// is internal exactly when it has children, regardless of whether it was also
// inserted as a complete entry.
type Set struct {
	sep  string
	root *setNode
}

// NewSet indexes the given strings on separator. An empty separator makes
// every string a leaf directly under the root.
func NewSet(strings []string, separator string) *Set {
	s := &Set{
		sep:  separator,
		root: &setNode{children: make(map[string]*setNode)},
	}
	for _, str := range strings {
		s.insert(str)
	}
	return s
}

func (s *Set) insert(str string) {
	if str == "" {
		return
	}
	cur := s.root
	for _, segment := range splitPath(str, s.sep) {
		child, ok := cur.children[segment]
		if !ok {
			child = &setNode{children: make(map[string]*setNode)}
			cur.children[segment] = child
		}
		cur = child
	}
}

// Add inserts one more string into the index. Used between input sessions
// when a newly accepted value should become completable.
func (s *Set) Add(str string) {
	s.insert(str)
}

func (s *Set) Separator() string {
	return s.sep
}

func (s *Set) Subtree(path []string) []Node {
	cur := s.root
	for _, segment := range path {
		child, ok := cur.children[segment]
		if !ok {
			return nil
		}
		cur = child
	}
	if len(cur.children) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(cur.children))
	for label, child := range cur.children {
		nodes = append(nodes, Node{Label: label, Internal: len(child.children) > 0})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Label < nodes[j].Label })
	return nodes
}

func (s *Set) PartialPath(path []string) (matched, rest []string) {
	cur := s.root
	for i, segment := range path {
		child, ok := cur.children[segment]
		if !ok || len(child.children) == 0 {
			return path[:i], path[i:]
		}
		cur = child
	}
	return path, nil
}

// splitPath splits on sep without the stdlib quirk of producing [""] for an
// empty input, and treats an empty separator as "no splitting".
func splitPath(str, sep string) []string {
	if str == "" {
		return nil
	}
	if sep == "" {
		return []string{str}
	}
	return strings.Split(str, sep)
}

// SplitPath exposes separator splitting for callers that need to parse a
// recalled string against the hierarchy.
func SplitPath(str, sep string) []string {
	return splitPath(str, sep)
}
