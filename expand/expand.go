// Package expand implements hole-filling and one-step expansion of partial
// regexes: counting holes, substituting the k-th hole with a
// replacement subtree, and enumerating every one-hole substitution a
// search step may try next.
package expand

import (
	"fmt"

	"github.com/synthregex/synthregex/partial"
)

// Holes returns the number of Hole leaves in n.
func Holes(n *partial.Node) int {
	return partial.Holes(n)
}

// Fill returns a new tree in which the k-th Hole (found by a pre-order,
// left-first traversal, zero-indexed) is replaced by replacement. The
// substitution is built by pure reconstruction — no shared child is
// mutated — per the ownership-disciplined approach recorded in DESIGN.md.
//
// Filling the last remaining hole returns partial.Opt of the result, so a
// completed tree is canonicalised immediately. Asking to fill a hole index
// beyond the hole count is a fatal programming error and panics.
func Fill(n *partial.Node, replacement *partial.Node, k int) *partial.Node {
	idx := 0
	found := false

	var rec func(n *partial.Node) *partial.Node
	rec = func(n *partial.Node) *partial.Node {
		switch n.Kind() {
		case partial.KindHole:
			if idx == k {
				idx++
				found = true
				return replacement
			}
			idx++
			return partial.Hole()
		case partial.KindLiteral:
			return partial.Literal(n.Rune())
		case partial.KindEmptyString:
			return partial.EmptyString()
		case partial.KindEmptyLanguage:
			return partial.EmptyLanguage()
		case partial.KindStar:
			return partial.Star(rec(n.Left()))
		case partial.KindOptional:
			return partial.Optional(rec(n.Left()))
		case partial.KindConcat:
			l := rec(n.Left())
			r := rec(n.Right())
			return partial.Concat(l, r)
		case partial.KindUnion:
			l := rec(n.Left())
			r := rec(n.Right())
			return partial.Union(l, r)
		default:
			panic("expand: Fill: unhandled kind " + n.Kind().String())
		}
	}

	result := rec(n)
	if !found {
		panic(fmt.Sprintf("expand: Fill: no hole at index %d (tree has %d holes)", k, partial.Holes(n)))
	}
	if partial.Holes(result) == 0 {
		return partial.Opt(result)
	}
	return result
}

// NextStates enumerates, for each hole index and each candidate
// replacement, the tree obtained by filling that hole. The candidate set
// is: a Literal for every symbol in alphabet plus '.', EmptyString,
// EmptyLanguage, Concat(Hole,Hole), Union(Hole,Hole), and Star(Hole).
// Optional(Hole) is deliberately excluded — optionals arise only through
// Opt rewriting Union(ε, x). Expansion order is deterministic: holes are
// visited in index order, and within a hole, candidates are tried in the
// order listed above with alphabet symbols in the order given.
func NextStates(n *partial.Node, alphabet string) []*partial.Node {
	holes := partial.Holes(n)
	var states []*partial.Node
	for h := 0; h < holes; h++ {
		for _, c := range alphabet + "." {
			states = append(states, Fill(n, partial.Literal(c), h))
		}
		states = append(states, Fill(n, partial.EmptyString(), h))
		states = append(states, Fill(n, partial.EmptyLanguage(), h))
		states = append(states, Fill(n, partial.Concat(nil, nil), h))
		states = append(states, Fill(n, partial.Union(nil, nil), h))
		states = append(states, Fill(n, partial.Star(nil), h))
	}
	return states
}
