package partial

import "testing"

func TestParseRenderRoundTrip(t *testing.T) {
	cases := []*Node{
		Literal('0'),
		Concat(Literal('0'), Literal('1')),
		Union(Literal('0'), Literal('1')),
		Star(Literal('0')),
		Optional(Literal('0')),
		Concat(Literal('0'), Star(Literal('1'))),
		Union(Concat(Literal('0'), Literal('1')), Literal('2')),
	}
	for _, n := range cases {
		rendered := Render(n)
		parsed, err := Parse(rendered)
		if err != nil {
			t.Fatalf("Parse(%q): %v", rendered, err)
		}
		if Render(parsed) != rendered {
			t.Errorf("Parse(%q) re-rendered as %q", rendered, Render(parsed))
		}
	}
}

func TestParseHoleAndEmptyLiterals(t *testing.T) {
	n, err := Parse("□")
	if err != nil {
		t.Fatalf("Parse(□): %v", err)
	}
	if n.Kind() != KindHole {
		t.Errorf("Parse(□) kind = %v, want KindHole", n.Kind())
	}

	n, err = Parse("ε")
	if err != nil {
		t.Fatalf("Parse(ε): %v", err)
	}
	if n.Kind() != KindEmptyString {
		t.Errorf("Parse(ε) kind = %v, want KindEmptyString", n.Kind())
	}
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	if _, err := Parse("(0|1"); err == nil {
		t.Fatal("Parse of an unbalanced group should error")
	}
}

func TestParseConcatWithHoles(t *testing.T) {
	n, err := Parse("0□")
	if err != nil {
		t.Fatalf("Parse(0□): %v", err)
	}
	if Holes(n) != 1 {
		t.Errorf("Holes(Parse(0□)) = %d, want 1", Holes(n))
	}
}
