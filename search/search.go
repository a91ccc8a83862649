// Package search implements the best-first enumerative driver: a
// priority queue keyed on syntactic cost, deduplicated against two visited
// sets (V_pre gates queue inserts, V_post gates processing on pop), that
// expands the cheapest unvisited partial regex until is_solution holds.
package search

import (
	"container/heap"

	"github.com/synthregex/synthregex/alphabet"
	"github.com/synthregex/synthregex/expand"
	"github.com/synthregex/synthregex/oracle"
	"github.com/synthregex/synthregex/partial"
	"github.com/synthregex/synthregex/prune"
	"github.com/synthregex/synthregex/telemetry"
)

// Options configures a single search run. The zero value is the baseline
// contract: alphabet "01", seed a bare Hole, inflation applied to N only,
// no tracing.
type Options struct {
	// Alphabet is the concrete symbol set used both to inflate N
	// and to enumerate Literal candidates during expansion.
	// Defaults to alphabet.DefaultAlphabet when empty.
	Alphabet string

	// Initial is the search's seed state. Defaults to a bare Hole. A
	// caller-supplied seed can cut search steps by orders of magnitude
	// for instances whose shape is known in advance.
	Initial *partial.Node

	// InflateP, when true, also inflates P's 'X' placeholders before
	// search. The baseline inflates N only;
	// inflating P changes completeness, not soundness.
	InflateP bool

	// Trace, if non-nil, is invoked once per popped, newly-processed
	// state with its pruning verdict; a solution is reported as
	// prune.ReasonAlive. Used by --profile and by the tests.
	Trace func(step int, state *partial.Node, reason prune.Reason)
}

// Stats summarizes a completed search run for the caller of Search,
// independent of the prometheus instrumentation in package telemetry.
type Stats struct {
	Popped          int
	PrunedByReason  map[prune.Reason]int
	MaxQueueLen     int
	VisitedPreSize  int
	VisitedPostSize int
	SolutionCost    int
}

// queue is a min-heap of partial regexes ordered by syntactic cost. Ties
// are broken arbitrarily by container order: the search relies only
// on monotone non-decreasing extraction, not on strict uniqueness.
type queue []*partial.Node

func (q queue) Len() int            { return len(q) }
func (q queue) Less(i, j int) bool  { return partial.Cost(q[i]) < partial.Cost(q[j]) }
func (q queue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x interface{}) { *q = append(*q, x.(*partial.Node)) }
func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Search runs the best-first loop here to completion and returns the
// rendered, simplified solution. It does not terminate if no expressible
// solution exists over the chosen alphabet;
// callers that need a budget must run it in a goroutine and select on a
// context or timer, since the core itself models no cancellation.
func Search(o *oracle.Oracle, p, n []string, opts Options) (string, Stats) {
	alpha := opts.Alphabet
	if alpha == "" {
		alpha = alphabet.DefaultAlphabet
	}

	positives := p
	if opts.InflateP {
		positives = alphabet.InflateAll(p, alpha)
	}
	negatives := alphabet.InflateAll(n, alpha)

	initial := opts.Initial
	if initial == nil {
		initial = partial.Hole()
	}

	stats := Stats{PrunedByReason: make(map[prune.Reason]int)}

	q := &queue{}
	heap.Init(q)
	heap.Push(q, initial)

	vPre := map[string]struct{}{partial.Render(initial): {}}
	vPost := map[string]struct{}{}

	step := 0
	for q.Len() > 0 {
		state := heap.Pop(q).(*partial.Node)
		key := partial.Render(state)
		if _, done := vPost[key]; done {
			continue
		}
		vPost[key] = struct{}{}
		stats.Popped++
		step++
		telemetry.ObservePopped()

		if prune.IsSolution(o, state, positives, negatives) {
			if opts.Trace != nil {
				opts.Trace(step, state, prune.ReasonAlive)
			}
			stats.VisitedPreSize = len(vPre)
			stats.VisitedPostSize = len(vPost)
			stats.SolutionCost = partial.Cost(state)
			telemetry.ObserveQueueState(q.Len(), len(vPre))
			return partial.Render(partial.Opt(state)), stats
		}

		reason := prune.IsDeadReason(o, state, positives, negatives)
		telemetry.ObservePruned(reason)
		if opts.Trace != nil {
			opts.Trace(step, state, reason)
		}
		if reason != prune.ReasonAlive {
			stats.PrunedByReason[reason]++
			telemetry.ObserveQueueState(q.Len(), len(vPre))
			continue
		}

		for _, next := range expand.NextStates(state, alpha) {
			nk := partial.Render(next)
			if _, seen := vPre[nk]; !seen {
				vPre[nk] = struct{}{}
				heap.Push(q, next)
				if q.Len() > stats.MaxQueueLen {
					stats.MaxQueueLen = q.Len()
				}
			}
		}
		telemetry.ObserveQueueState(q.Len(), len(vPre))
	}

	// Unreachable in practice: an empty queue with no solution found means
	// the instance is unsatisfiable over this alphabet, which this loop is
	// defined to run forever on rather than report as a failure.
	panic("search: queue exhausted without a solution (unsatisfiable instance)")
}
