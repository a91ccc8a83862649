package oracle

import "testing"

func TestMatchesAllRequiresFullString(t *testing.T) {
	o := New()
	if !o.MatchesAll("0.*", []string{"0", "01", "011"}) {
		t.Fatal("0.* should fully match 0, 01, 011")
	}
	if o.MatchesAll("0.*", []string{"0", "10"}) {
		t.Fatal("0.* should not fully match 10 (anchored at start)")
	}
}

func TestMatchesAnyFindsOneMatch(t *testing.T) {
	o := New()
	if !o.MatchesAny("1.*0", []string{"00", "10", "11"}) {
		t.Fatal("expected 10 to fully match 1.*0")
	}
	if o.MatchesAny("1.*0", []string{"00", "11"}) {
		t.Fatal("no example should match 1.*0")
	}
}

func TestEmptyStringPattern(t *testing.T) {
	o := New()
	if !o.MatchesAll("", []string{""}) {
		t.Fatal("empty pattern should fullmatch the empty string")
	}
	if o.MatchesAny("", []string{"a"}) {
		t.Fatal("empty pattern should not match a non-empty string")
	}
}

func TestDotMatchesAnySingleSymbol(t *testing.T) {
	o := New()
	if !o.MatchesAll("..0.*", []string{"000", "010", "110"}) {
		t.Fatal("..0.* should fullmatch all three-or-more symbol strings starting with two wildcards then 0")
	}
}

func TestInvalidPatternPanicsWithPatternErrorDiagnostic(t *testing.T) {
	o := New()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for malformed pattern")
		}
		pe, ok := r.(*PatternError)
		if !ok {
			t.Fatalf("expected *PatternError, got %T", r)
		}
		if pe.Pattern != "(" {
			t.Errorf("PatternError.Pattern = %q, want %q", pe.Pattern, "(")
		}
	}()
	o.MatchesAll("(", []string{"x"})
}

func TestCacheReusesCompiledProgram(t *testing.T) {
	o := New()
	o.MatchesAll("0*1", []string{"01", "001"})
	if len(o.cache) != 1 {
		t.Fatalf("expected one cached program, got %d", len(o.cache))
	}
	o.MatchesAny("0*1", []string{"1"})
	if len(o.cache) != 1 {
		t.Fatalf("repeated pattern should reuse cache entry, cache size = %d", len(o.cache))
	}
}
