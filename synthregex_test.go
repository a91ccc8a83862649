package synthregex

import "testing"

func TestSynthesizeRejectsEmptyPositiveSet(t *testing.T) {
	_, err := Synthesize(nil, []string{"0"})
	if err == nil {
		t.Fatal("Synthesize with no positive examples should error")
	}
}

func TestSynthesizeFindsALiteralSolution(t *testing.T) {
	got, err := Synthesize([]string{"0"}, []string{"1"})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if got != "0" {
		t.Fatalf("Synthesize({0},{1}) = %q, want %q", got, "0")
	}
}

func TestSynthesizeWithConfigHonorsAlphabet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Alphabet = "ab"
	gotCfg, err := SynthesizeWithConfig([]string{"a"}, []string{"b"}, cfg)
	if err != nil {
		t.Fatalf("SynthesizeWithConfig: %v", err)
	}
	if gotCfg != "a" {
		t.Fatalf("SynthesizeWithConfig({a},{b}, alphabet=ab) = %q, want %q", gotCfg, "a")
	}
}

func TestSynthesizeWithConfigSeedSkipsToExactMatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = "01"
	got, err := SynthesizeWithConfig([]string{"01"}, []string{"0", "1", "10"}, cfg)
	if err != nil {
		t.Fatalf("SynthesizeWithConfig: %v", err)
	}
	if got != "01" {
		t.Fatalf("seeded SynthesizeWithConfig = %q, want %q", got, "01")
	}
}

func TestSynthesizeWithConfigTraceInvoked(t *testing.T) {
	steps := 0
	cfg := DefaultConfig()
	cfg.Trace = func(step int, pattern string, alive bool) {
		steps++
	}
	_, err := SynthesizeWithConfig([]string{"0"}, []string{"1"}, cfg)
	if err != nil {
		t.Fatalf("SynthesizeWithConfig: %v", err)
	}
	if steps == 0 {
		t.Fatal("trace callback should fire at least once")
	}
}
