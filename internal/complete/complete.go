// Package complete classifies and ranks hierarchy nodes against typed text.
package complete

import (
	"sort"
	"strings"

	"github.com/georgek/pathdo/internal/hierarchy"
)

// MatchType orders match quality: an exact match beats a prefix match beats a
// substring ("fuzzy") match.
type MatchType int

const (
	MatchNone MatchType = iota
	MatchFuzzy
	MatchPrefix
	MatchExact
)

// Completion pairs a candidate node with how it matched the typed text.
// Completions are ephemeral and recomputed after every edit.
type Completion struct {
	Node hierarchy.Node
	Type MatchType
}

// Classify reports how candidate relates to typed, case-insensitively.
func Classify(typed, candidate string) MatchType {
	typed = strings.ToLower(typed)
	candidate = strings.ToLower(candidate)
	switch {
	case typed == candidate:
		return MatchExact
	case strings.HasPrefix(candidate, typed):
		return MatchPrefix
	case strings.Contains(candidate, typed):
		return MatchFuzzy
	default:
		return MatchNone
	}
}

// Narrow classifies every node against typed, drops non-matches, and sorts
// the rest by descending match type, ties broken by label.
func Narrow(typed string, nodes []hierarchy.Node) []Completion {
	completions := make([]Completion, 0, len(nodes))
	for _, node := range nodes {
		if t := Classify(typed, node.Label); t > MatchNone {
			completions = append(completions, Completion{Node: node, Type: t})
		}
	}
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Type != completions[j].Type {
			return completions[i].Type > completions[j].Type
		}
		return completions[i].Node.Label < completions[j].Node.Label
	})
	return completions
}

// CommonPrefix returns the longest common leading substring of the labels
// usable for tab completion. A sole completion completes to its full label;
// otherwise only prefix and exact matches participate, since fuzzy matches
// may share no literal prefix.
func CommonPrefix(completions []Completion) string {
	if len(completions) == 1 {
		return completions[0].Node.Label
	}
	var labels []string
	for _, c := range completions {
		if c.Type > MatchFuzzy {
			labels = append(labels, c.Node.Label)
		}
	}
	if len(labels) == 0 {
		return ""
	}
	prefix := labels[0]
	for _, label := range labels[1:] {
		for !strings.HasPrefix(label, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
