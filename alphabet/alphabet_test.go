package alphabet

import (
	"sort"
	"testing"
)

func TestInflateNoPlaceholder(t *testing.T) {
	got := Inflate("01", "01")
	if len(got) != 1 || got[0] != "01" {
		t.Errorf("Inflate with no X should return the example unchanged, got %v", got)
	}
}

func TestInflateSinglePlaceholder(t *testing.T) {
	got := Inflate("X", "01")
	sort.Strings(got)
	want := []string{"0", "1"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Inflate(X, 01) = %v, want %v", got, want)
	}
}

func TestInflateMultiplePlaceholdersCountsPower(t *testing.T) {
	got := Inflate("XX", "01")
	if len(got) != 4 {
		t.Errorf("Inflate(XX, 01) produced %d strings, want 2^2=4", len(got))
	}
}

func TestInflateAllDedupes(t *testing.T) {
	got := InflateAll([]string{"X", "0"}, "01")
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Fatalf("InflateAll produced a duplicate: %q", s)
		}
		seen[s] = true
	}
	if !seen["0"] || !seen["1"] {
		t.Fatalf("InflateAll(%v) missing expected members: %v", []string{"X", "0"}, got)
	}
}
