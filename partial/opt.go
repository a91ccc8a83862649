package partial

// Opt rewrites n into a semantically-equivalent tree that is cheaper or
// equal cost. It is bottom-up: both children are
// optimised before the parent is inspected. Opt is idempotent
// (Opt(Opt(t)) == Opt(t) by canonical equality) and preserves the language
// of the input.
func Opt(n *Node) *Node {
	switch n.kind {
	case KindConcat:
		return optConcat(n)
	case KindUnion:
		return optUnion(n)
	case KindStar:
		return optStar(n)
	case KindOptional:
		return optOptional(n)
	default:
		return n
	}
}

func optConcat(n *Node) *Node {
	e1 := Opt(n.left)
	e2 := Opt(n.right)

	if e1.kind == KindEmptyLanguage || e2.kind == KindEmptyLanguage {
		// ∅e2 = e1∅ -> ∅
		return EmptyLanguage()
	}
	if e1.kind == KindEmptyString {
		// εe2 -> e2
		return e2
	}
	if e2.kind == KindEmptyString {
		// e1ε -> e1
		return e1
	}
	if e1.kind == KindStar && e2.kind == KindStar && Equal(e1.left, e2.left) {
		// e*e* -> e*
		return Star(e1.left)
	}
	if e1.kind == KindStar && e2.kind == KindOptional && Equal(e1.left, e2.left) {
		// e*e? -> e*
		return Star(e1.left)
	}
	if e1.kind == KindOptional && e2.kind == KindStar && Equal(e1.left, e2.left) {
		// e?e* -> e*
		return Star(e1.left)
	}
	if e1.kind == KindConcat {
		f1, f2 := e1.left, e1.right
		// (f1f2)e2
		if f2.kind == KindStar && e2.kind == KindStar && Equal(f2.left, e2.left) {
			// (f1e*)e* -> f1e*
			return Concat(f1, Star(e2.left))
		}
		if f2.kind == KindOptional && e2.kind == KindStar && Equal(f2.left, e2.left) {
			// (f1e?)e* -> f1e*
			return Concat(f1, Star(e2.left))
		}
		if f2.kind == KindStar && e2.kind == KindOptional && Equal(f2.left, e2.left) {
			// (f1e*)e? -> f1e*
			return Concat(f1, Star(e2.left))
		}
	}
	if e2.kind == KindConcat {
		f1, f2 := e2.left, e2.right
		// e1(f1f2)
		if e1.kind == KindStar && f1.kind == KindStar && Equal(e1.left, f1.left) {
			// e*(e*f2) -> e*f2
			return Concat(Star(e1.left), f2)
		}
		if e1.kind == KindOptional && f1.kind == KindStar && Equal(e1.left, f1.left) {
			// e?(e*f2) -> e*f2
			return Concat(Star(e1.left), f2)
		}
		if e1.kind == KindStar && f1.kind == KindOptional && Equal(e1.left, f1.left) {
			// e*(e?f2) -> e*f2
			return Concat(Star(e1.left), f2)
		}
	}
	return Concat(e1, e2)
}

func optUnion(n *Node) *Node {
	e1 := Opt(n.left)
	e2 := Opt(n.right)

	if e1.kind == KindEmptyLanguage {
		// ∅|e2
		return e2
	}
	if e2.kind == KindEmptyLanguage {
		// e1|∅
		return e1
	}
	if e1.kind == KindEmptyString {
		// ε|e2 -> e2?
		return Optional(e2)
	}
	if e2.kind == KindEmptyString {
		// e1|ε -> e1?
		return Optional(e1)
	}
	if Equal(e1, e2) {
		// e|e -> e
		return e1
	}
	if e2.kind == KindStar {
		// e1|e2*
		if Equal(e1, e2.left) {
			// e|e* -> e*
			return Star(e1)
		}
		if e1.kind == KindUnion {
			// (f1|f2)|e2*
			f1, f2 := e1.left, e1.right
			if Equal(f1, e2.left) {
				// (e2|f2)|e2* -> f2|e2*
				return Union(f2, Star(e2.left))
			}
			if Equal(f2, e2.left) {
				// (f1|e2)|e2* -> f1|e2*
				return Union(f1, Star(e2.left))
			}
		}
	}
	if e2.kind == KindOptional {
		// e1|e2?
		if Equal(e1, e2.left) {
			// e|e? -> e?
			return Optional(e1)
		}
		if e1.kind == KindUnion {
			// (f1|f2)|e2?
			f1, f2 := e1.left, e1.right
			if Equal(f1, e2.left) {
				// (e2|f2)|e2? -> f2|e2?
				return Union(f2, Optional(e2.left))
			}
			if Equal(f2, e2.left) {
				// (f1|e2)|e2? -> f1|e2?
				return Union(f1, Optional(e2.left))
			}
		}
	}
	if e1.kind == KindStar {
		// e1*|e2
		if Equal(e1.left, e2) {
			// e*|e -> e*
			return Star(e2)
		}
		if e2.kind == KindUnion {
			// e1*|(f1|f2)
			f1, f2 := e2.left, e2.right
			if Equal(e1.left, f1) {
				// e1*|(e1|f2) -> e1*|f2
				return Union(Star(e1.left), f2)
			}
			if Equal(e1.left, f2) {
				// e1*|(f1|e1) -> e1*|f1
				return Union(Star(e1.left), f1)
			}
		}
	}
	if e1.kind == KindOptional {
		// e1?|e2
		if Equal(e1.left, e2) {
			// e?|e -> e?
			return Optional(e2)
		}
		if e2.kind == KindUnion {
			// e1?|(f1|f2)
			f1, f2 := e2.left, e2.right
			if Equal(e1.left, f1) {
				// e1?|(e1|f2) -> e1?|f2
				return Union(Optional(e1.left), f2)
			}
			if Equal(e1.left, f2) {
				// e1?|(f1|e1) -> e1?|f1
				return Union(Optional(e1.left), f1)
			}
		}
	}
	if e1.kind == KindUnion {
		// (f1|f2)|e2
		f1, f2 := e1.left, e1.right
		if f2.kind == KindStar && Equal(f2.left, e2) {
			// (f1|e2*)|e2 -> f1|e2*
			return Union(f1, Star(e2))
		}
		if f1.kind == KindStar && Equal(f1.left, e2) {
			// (e2*|f2)|e2 -> e2*|f2
			return Union(Star(e2), f2)
		}
		if f2.kind == KindOptional && Equal(f2.left, e2) {
			// (f1|e2?)|e2 -> f1|e2?
			return Union(f1, Optional(e2))
		}
		if f1.kind == KindOptional && Equal(f1.left, e2) {
			// (e2?|f2)|e2 -> e2?|f2
			return Union(Optional(e2), f2)
		}
		if Equal(e2, f1) {
			// (e2|f2)|e2 -> e2|f2
			return Union(e2, f2)
		}
		if Equal(e2, f2) {
			// (f1|e2)|e2 -> f1|e2
			return Union(f1, e2)
		}
	}
	if e2.kind == KindUnion {
		// e1|(f1|f2)
		f1, f2 := e2.left, e2.right
		if f2.kind == KindStar && Equal(f2.left, e1) {
			// e1|(f1|e1*) -> f1|e1*
			return Union(f1, Star(e1))
		}
		if f1.kind == KindStar && Equal(f1.left, e1) {
			// e1|(e1*|f2) -> e1*|f2
			return Union(Star(e1), f2)
		}
		if f2.kind == KindOptional && Equal(f2.left, e1) {
			// e1|(f1|e1?) -> f1|e1?
			return Union(f1, Optional(e1))
		}
		if f1.kind == KindOptional && Equal(f1.left, e1) {
			// e1|(e1?|f2) -> e1?|f2
			return Union(Optional(e1), f2)
		}
		if Equal(e1, f1) {
			// e1|(e1|f2) -> e1|f2
			return Union(e1, f2)
		}
		if Equal(e1, f2) {
			// e1|(f1|e1) -> e1|f1
			return Union(e1, f1)
		}
	}
	return Union(e1, e2)
}

func optStar(n *Node) *Node {
	e := Opt(n.left)

	if e.kind == KindEmptyLanguage {
		// ∅* -> ∅
		return EmptyLanguage()
	}
	if e.kind == KindEmptyString {
		// ε* -> ε
		return EmptyString()
	}
	if e.kind == KindStar {
		// e** -> e*
		return Star(e.left)
	}
	if e.kind == KindOptional {
		// e?* -> e*
		return Star(e.left)
	}
	if e.kind == KindConcat {
		// (e1e2)*
		e1, e2 := e.left, e.right
		if e2.kind == KindStar && Equal(e1, e2.left) {
			// (ee*)* -> e*
			return Star(e1)
		}
		if e1.kind == KindStar && Equal(e1.left, e2) {
			// (e*e)* -> e*
			return Star(e2)
		}
		if e1.kind == KindStar && e2.kind == KindStar {
			// (e*f*)* -> (e|f)*
			return Star(Union(e1.left, e2.left))
		}
		if e1.kind == KindOptional && e2.kind == KindOptional {
			// (e?f?)* -> (e|f)*
			return Star(Union(e1.left, e2.left))
		}
		if e1.kind == KindOptional && Equal(e1.left, e2) {
			// (e?e)* -> e*
			return Star(e2)
		}
		if e2.kind == KindOptional && Equal(e2.left, e1) {
			// (ee?)* -> e*
			return Star(e1)
		}
	}
	return Star(e)
}

func optOptional(n *Node) *Node {
	e := Opt(n.left)

	if e.kind == KindEmptyLanguage {
		// ∅? -> ε
		return EmptyString()
	}
	if e.kind == KindEmptyString {
		// ε? -> ε
		return EmptyString()
	}
	if e.kind == KindStar {
		// f*? -> f*
		return Star(e.left)
	}
	if e.kind == KindOptional {
		// f?? -> f?
		return Optional(e.left)
	}
	if e.kind == KindConcat {
		// (e1e2)?
		e1, e2 := e.left, e.right
		if e1.kind == KindStar && Equal(e1.left, e2) {
			// (e*e)? -> e*
			return Star(e2)
		}
		if e2.kind == KindStar && Equal(e2.left, e1) {
			// (ee*)? -> e*
			return Star(e1)
		}
		if e1.kind == KindStar && e2.kind == KindStar {
			// (e*f*)? -> e*f*
			return Concat(e1, e2)
		}
		if e1.kind == KindOptional && e2.kind == KindOptional {
			// (e?f?)? -> e?f?
			return Concat(e1, e2)
		}
	}
	return Optional(e)
}
