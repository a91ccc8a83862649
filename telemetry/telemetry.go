// Package telemetry instruments the search loop with prometheus metrics,
// independent of the per-run search.Stats returned to callers: these are
// process-wide counters meant to be scraped across many runs. The
// --profile CLI flag does not read them: it counts popped states through
// the search trace callback.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/synthregex/synthregex/prune"
)

var (
	StatesPopped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "synthregex_search_states_popped_total",
		Help: "Number of partial regex states popped from the search queue and processed.",
	})

	StatesPrunedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synthregex_search_states_pruned_total",
		Help: "Number of states discarded by the pruning engine, labeled by reason.",
	}, []string{"reason"})

	SolutionsFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "synthregex_search_solutions_found_total",
		Help: "Number of search runs that terminated with a solution.",
	})

	SolutionCost = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "synthregex_search_solution_cost",
		Help:    "Syntactic cost of returned solutions.",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	})

	QueueLength = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "synthregex_search_queue_length",
		Help: "Current number of states waiting in the search priority queue.",
	})

	VisitedPreSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "synthregex_search_visited_pre_size",
		Help: "Size of the pre-expansion visited set (V_pre) gating queue inserts.",
	})
)

// ObservePruned records one pruning decision. Reason prune.ReasonAlive is
// not a prune outcome and is ignored.
func ObservePruned(reason prune.Reason) {
	if reason == prune.ReasonAlive {
		return
	}
	StatesPrunedTotal.WithLabelValues(reason.String()).Inc()
}

// ObservePopped records one state popped from the search queue and
// processed.
func ObservePopped() {
	StatesPopped.Inc()
}

// ObserveQueueState records the search loop's current queue length and
// pre-expansion visited-set size, for the gauges scraped between runs.
func ObserveQueueState(queueLen, visitedPreSize int) {
	QueueLength.Set(float64(queueLen))
	VisitedPreSize.Set(float64(visitedPreSize))
}

// ObserveSolution records a completed, successful search run.
func ObserveSolution(cost int) {
	SolutionsFound.Inc()
	SolutionCost.Observe(float64(cost))
}
