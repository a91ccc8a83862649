// Package prune composes the approximators (package approx) and the
// oracle adapter (package oracle) into the search loop's two governing
// predicates: IsSolution and IsDead.
package prune

import (
	"github.com/synthregex/synthregex/approx"
	"github.com/synthregex/synthregex/oracle"
	"github.com/synthregex/synthregex/partial"
)

// Reason names which of IsDead's three checks pruned a state, for tracing
// and metrics. ReasonAlive means the state was not pruned.
type Reason int

const (
	ReasonAlive Reason = iota
	ReasonOverapproxFailure
	ReasonUnderapproxFailure
	ReasonUnrollSplitRedundancy
)

func (r Reason) String() string {
	switch r {
	case ReasonAlive:
		return "alive"
	case ReasonOverapproxFailure:
		return "overapprox-failure"
	case ReasonUnderapproxFailure:
		return "underapprox-failure"
	case ReasonUnrollSplitRedundancy:
		return "unroll-split-redundancy"
	default:
		return "unknown"
	}
}

// IsSolution reports whether t has no remaining holes and its rendered,
// simplified form matches every positive example and no negative example.
func IsSolution(o *oracle.Oracle, t *partial.Node, p, n []string) bool {
	if partial.Holes(t) > 0 {
		return false
	}
	pattern := partial.Render(partial.Opt(t))
	return o.MatchesAll(pattern, p) && !o.MatchesAny(pattern, n)
}

// IsDead reports whether no completion of t can be a solution, via the
// three checks here. The double Opt application defends against
// rewriting fixed points a single pass does not reach on certain ε/∅
// arrangements.
func IsDead(o *oracle.Oracle, t *partial.Node, p, n []string) bool {
	return IsDeadReason(o, t, p, n) != ReasonAlive
}

// IsDeadReason is IsDead with the pruning reason attached, for tracing.
func IsDeadReason(o *oracle.Oracle, t *partial.Node, p, n []string) Reason {
	over := partial.Render(partial.Opt(partial.Opt(approx.Over(t))))
	if !o.MatchesAll(over, p) {
		return ReasonOverapproxFailure
	}

	under := partial.Render(partial.Opt(partial.Opt(approx.Under(t))))
	if o.MatchesAny(under, n) {
		return ReasonUnderapproxFailure
	}

	for _, e := range approx.Split(approx.Unroll(t)) {
		ov := partial.Render(partial.Opt(partial.Opt(approx.Over(e))))
		if !o.MatchesAny(ov, p) {
			return ReasonUnrollSplitRedundancy
		}
	}

	return ReasonAlive
}
