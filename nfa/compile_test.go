package nfa

import "testing"

func mustCompile(t *testing.T, pattern string) *Program {
	t.Helper()
	prog, err := NewDefaultCompiler().Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return prog
}

func TestCompileRejectsUnbalancedGroup(t *testing.T) {
	_, err := NewDefaultCompiler().Compile("(0|1")
	if err == nil {
		t.Fatal("expected a CompileError for an unbalanced group")
	}
	if _, ok := err.(*CompileError); !ok {
		t.Fatalf("expected *CompileError, got %T", err)
	}
}

func TestCompileRejectsTrailingInput(t *testing.T) {
	_, err := NewDefaultCompiler().Compile("0)")
	if err == nil {
		t.Fatal("expected a CompileError for an unopened ')'")
	}
}

func TestCompileAcceptsTrailingAlternationAsEmptyBranch(t *testing.T) {
	// "0|" is "0 or the empty string": the grammar treats a missing
	// alternative the same as an explicitly empty group "(?:)".
	mustCompile(t, "0|")
}

func TestCompileAcceptsNonCapturingGroup(t *testing.T) {
	mustCompile(t, "^(?:0|1)$")
}
