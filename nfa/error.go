package nfa

import "fmt"

// CompileError reports a failure to parse a pattern into a Program. Pos is
// a rune offset into Pattern, for diagnostics.
type CompileError struct {
	Pattern string
	Pos     int
	Reason  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("nfa: compile %q at offset %d: %s", e.Pattern, e.Pos, e.Reason)
}
