// Package approx implements the pruning engine's approximators:
// overapproximation and underapproximation replace every Hole with a
// ground bound on its unknown language, unroll exposes one copy of a
// Star's body, and split decomposes a tree into the prefix/suffix pieces
// that must themselves be matchable for any completion to succeed.
package approx

import "github.com/synthregex/synthregex/partial"

// Over returns a ground regex obtained by replacing every Hole in n with
// .* (Star(Literal('.'))). It denotes a superset of the language of n for
// any completion of n's holes.
func Over(n *partial.Node) *partial.Node {
	switch n.Kind() {
	case partial.KindLiteral:
		return partial.Literal(n.Rune())
	case partial.KindEmptyString:
		return partial.EmptyString()
	case partial.KindEmptyLanguage:
		return partial.EmptyLanguage()
	case partial.KindUnion:
		return partial.Union(Over(n.Left()), Over(n.Right()))
	case partial.KindConcat:
		return partial.Concat(Over(n.Left()), Over(n.Right()))
	case partial.KindStar:
		return partial.Star(Over(n.Left()))
	case partial.KindOptional:
		return partial.Optional(Over(n.Left()))
	case partial.KindHole:
		return partial.Star(partial.Literal('.'))
	default:
		panic("approx: Over: unhandled kind " + n.Kind().String())
	}
}

// Under returns a ground regex obtained by replacing every Hole in n with
// ∅. It denotes a subset of the language of n for any completion.
func Under(n *partial.Node) *partial.Node {
	switch n.Kind() {
	case partial.KindLiteral:
		return partial.Literal(n.Rune())
	case partial.KindEmptyString:
		return partial.EmptyString()
	case partial.KindEmptyLanguage:
		return partial.EmptyLanguage()
	case partial.KindUnion:
		return partial.Union(Under(n.Left()), Under(n.Right()))
	case partial.KindConcat:
		return partial.Concat(Under(n.Left()), Under(n.Right()))
	case partial.KindStar:
		return partial.Star(Under(n.Left()))
	case partial.KindOptional:
		return partial.Optional(Under(n.Left()))
	case partial.KindHole:
		return partial.EmptyLanguage()
	default:
		panic("approx: Under: unhandled kind " + n.Kind().String())
	}
}

// Unroll rewrites every Star(e) to e·e·Star(e) and is a congruence over the
// remaining kinds.
//
// Because Opt can rewrite Union(ε, x) into Optional(x), optionals do
// appear in search states that reach the pruning engine even though they
// are never introduced directly by expansion. This treats Optional as the
// natural congruence case, recorded as a design decision in DESIGN.md:
// Optional(e).Unroll() = Optional(e.Unroll()).
func Unroll(n *partial.Node) *partial.Node {
	switch n.Kind() {
	case partial.KindLiteral:
		return partial.Literal(n.Rune())
	case partial.KindEmptyString:
		return partial.EmptyString()
	case partial.KindEmptyLanguage:
		return partial.EmptyLanguage()
	case partial.KindUnion:
		return partial.Union(Unroll(n.Left()), Unroll(n.Right()))
	case partial.KindConcat:
		return partial.Concat(Unroll(n.Left()), Unroll(n.Right()))
	case partial.KindStar:
		e := n.Left()
		return partial.Concat(e, partial.Concat(e, partial.Star(e)))
	case partial.KindOptional:
		return partial.Optional(Unroll(n.Left()))
	case partial.KindHole:
		return partial.Hole()
	default:
		panic("approx: Unroll: unhandled kind " + n.Kind().String())
	}
}

// Split returns the set of expressions that every member must be matched
// by some positive example if any descendant of n can ever succeed. The
// result is deduplicated by canonical render, since equality and hashing
// on partial-regex trees are both defined by their rendered string.
func Split(n *partial.Node) []*partial.Node {
	seen := make(map[string]*partial.Node)
	for _, e := range split(n) {
		seen[partial.Render(e)] = e
	}
	out := make([]*partial.Node, 0, len(seen))
	for _, e := range seen {
		out = append(out, e)
	}
	return out
}

func split(n *partial.Node) []*partial.Node {
	switch n.Kind() {
	case partial.KindLiteral:
		return []*partial.Node{partial.Literal(n.Rune())}
	case partial.KindEmptyString:
		return []*partial.Node{partial.EmptyString()}
	case partial.KindEmptyLanguage:
		return []*partial.Node{partial.EmptyLanguage()}
	case partial.KindUnion:
		return append(split(n.Left()), split(n.Right())...)
	case partial.KindConcat:
		var out []*partial.Node
		for _, x := range split(n.Left()) {
			out = append(out, partial.Concat(x, n.Right()))
		}
		for _, y := range split(n.Right()) {
			out = append(out, partial.Concat(n.Left(), y))
		}
		return out
	case partial.KindStar:
		return []*partial.Node{n}
	case partial.KindOptional:
		// Natural extension (design decision, see DESIGN.md): an optional
		// piece may be absent, so it contributes itself (the whole
		// optional may vanish) plus every required piece of its body.
		return append([]*partial.Node{n}, split(n.Left())...)
	case partial.KindHole:
		return []*partial.Node{partial.Hole()}
	default:
		panic("approx: Split: unhandled kind " + n.Kind().String())
	}
}
