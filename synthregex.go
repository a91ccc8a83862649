// Package synthregex synthesizes a regular expression from labelled string
// examples: given a positive set P and a negative set N, it searches for
// the cheapest pattern that matches every string in P and no string in N.
//
// Basic usage:
//
//	pattern, err := synthregex.Synthesize(
//	    []string{"0", "00", "000"},
//	    []string{"", "1", "01"},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pattern) // "0+"-equivalent pattern over the default alphabet
//
// Custom configuration:
//
//	cfg := synthregex.DefaultConfig()
//	cfg.Alphabet = "ab"
//	cfg.InflateP = true
//	pattern, err := synthregex.SynthesizeWithConfig(p, n, cfg)
//
// Synthesize does not terminate if no pattern over the configured alphabet
// satisfies both example sets; pass a Config.Trace callback and watch stats
// via package telemetry, or run it in a goroutine bounded by a context, if a
// caller-imposed budget is needed.
package synthregex

import (
	"github.com/pkg/errors"

	"github.com/synthregex/synthregex/alphabet"
	"github.com/synthregex/synthregex/oracle"
	"github.com/synthregex/synthregex/partial"
	"github.com/synthregex/synthregex/prune"
	"github.com/synthregex/synthregex/search"
	"github.com/synthregex/synthregex/telemetry"
)

// Config controls a single synthesis run.
type Config struct {
	// Alphabet is the concrete symbol set used to inflate negative examples
	// and to enumerate literal candidates during search. Defaults to "01".
	Alphabet string

	// InflateP additionally inflates placeholder symbols in the positive
	// set. The default, false, inflates the negative set only.
	InflateP bool

	// Seed overrides the search's starting pattern, expressed in the same
	// canonical surface syntax Render produces — literals, "ε", "∅", "□",
	// "(a|b)", "a*", "a?" — so a partially-known target shape (e.g. "0□*")
	// can skip the search steps needed to discover it from a bare hole.
	// Empty means start from a bare hole.
	Seed string

	// Trace, if non-nil, is invoked once per state the search loop finishes
	// processing, reporting the rendered pattern and whether it survived
	// pruning.
	Trace func(step int, pattern string, alive bool)
}

// DefaultConfig returns the baseline configuration: alphabet "01", no seed,
// N-only inflation, no tracing.
func DefaultConfig() Config {
	return Config{Alphabet: alphabet.DefaultAlphabet}
}

// Synthesize runs a synthesis search under DefaultConfig.
func Synthesize(positive, negative []string) (string, error) {
	return SynthesizeWithConfig(positive, negative, DefaultConfig())
}

// SynthesizeWithConfig runs a synthesis search under cfg, returning the
// canonically rendered winning pattern.
func SynthesizeWithConfig(positive, negative []string, cfg Config) (string, error) {
	if len(positive) == 0 {
		return "", errors.New("synthregex: at least one positive example is required")
	}

	initial, err := parseSeed(cfg.Seed)
	if err != nil {
		return "", errors.Wrap(err, "synthregex: invalid seed")
	}

	opts := search.Options{
		Alphabet: cfg.Alphabet,
		InflateP: cfg.InflateP,
		Initial:  initial,
	}
	if cfg.Trace != nil {
		opts.Trace = func(step int, state *partial.Node, reason prune.Reason) {
			cfg.Trace(step, partial.Render(state), reason == prune.ReasonAlive)
		}
	}

	// StatesPopped, QueueLength, VisitedPreSize, and StatesPrunedTotal are
	// updated live inside search.Search itself, independent of whether a
	// trace callback is supplied; only the terminal solution metric is
	// recorded here, once the run has a result.
	pattern, stats := search.Search(oracle.Default, positive, negative, opts)
	telemetry.ObserveSolution(stats.SolutionCost)
	return pattern, nil
}

// parseSeed parses a seed expression in canonical surface syntax. An empty
// seed yields nil, meaning "start from a bare hole".
func parseSeed(seed string) (*partial.Node, error) {
	if seed == "" {
		return nil, nil
	}
	return partial.Parse(seed)
}
