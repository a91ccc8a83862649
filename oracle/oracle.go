// Package oracle adapts the search loop's matching predicates to a
// concrete regex-matching engine: the Thompson-NFA compiler and PikeVM
// executor in package nfa, used here as the external regex engine the
// search loop treats as a collaborator.
//
// Patterns are always compiled anchored at both ends — "^(?:pattern)$" —
// so a single Search call implements full-string (fullmatch) semantics
// rather than substring search.
package oracle

import (
	"fmt"
	"sync"

	"github.com/synthregex/synthregex/nfa"
)

// Oracle caches compiled programs for patterns seen before, since the
// search loop re-tests the same canonical forms (shared subtrees'
// overapproximations, in particular) many times per second.
type Oracle struct {
	mu       sync.Mutex
	compiler *nfa.Compiler
	cache    map[string]*nfa.PikeVM
}

// New constructs an Oracle with a fresh compiler and an empty program
// cache.
func New() *Oracle {
	return &Oracle{
		compiler: nfa.NewDefaultCompiler(),
		cache:    make(map[string]*nfa.PikeVM),
	}
}

// PatternError reports that the oracle's embedded engine rejected a
// pattern the renderer produced. This is treated as a programmer error
// (the renderer is contracted to always emit well-formed surface syntax),
// but the offending pattern is preserved so callers can surface it in
// diagnostics.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("oracle: engine rejected pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

func (o *Oracle) program(pattern string) *nfa.PikeVM {
	o.mu.Lock()
	defer o.mu.Unlock()

	if vm, ok := o.cache[pattern]; ok {
		return vm
	}
	anchored := "^(?:" + pattern + ")$"
	prog, err := o.compiler.Compile(anchored)
	if err != nil {
		panic(&PatternError{Pattern: pattern, Err: err})
	}
	vm := nfa.NewPikeVM(prog)
	o.cache[pattern] = vm
	return vm
}

// fullMatch reports whether pattern, anchored at both ends, matches s in
// its entirety.
func (o *Oracle) fullMatch(pattern, s string) bool {
	return o.program(pattern).Search(s)
}

// MatchesAll reports whether every string in examples is fully matched by
// pattern.
func (o *Oracle) MatchesAll(pattern string, examples []string) bool {
	for _, s := range examples {
		if !o.fullMatch(pattern, s) {
			return false
		}
	}
	return true
}

// MatchesAny reports whether some string in examples is fully matched by
// pattern.
func (o *Oracle) MatchesAny(pattern string, examples []string) bool {
	for _, s := range examples {
		if o.fullMatch(pattern, s) {
			return true
		}
	}
	return false
}

// Default is a package-level Oracle shared by callers that don't need an
// isolated cache: the root package's SynthesizeWithConfig passes it to
// every search it runs, so the CLI and the root package's tests use it.
// The search loop itself takes an explicit *Oracle, so a caller of
// search.Search can give a run its own cache.
var Default = New()
