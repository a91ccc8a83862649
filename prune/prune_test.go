package prune

import (
	"testing"

	"github.com/synthregex/synthregex/oracle"
	"github.com/synthregex/synthregex/partial"
)

func TestIsSolutionRequiresNoHoles(t *testing.T) {
	o := oracle.New()
	if IsSolution(o, partial.Concat(partial.Hole(), partial.Literal('a')), []string{"a"}, nil) {
		t.Fatal("a tree with a remaining hole can never be a solution")
	}
}

func TestIsSolutionAcceptsExactMatch(t *testing.T) {
	o := oracle.New()
	n := partial.Concat(partial.Literal('0'), partial.Star(partial.Literal('.')))
	if !IsSolution(o, n, []string{"0", "01", "011"}, []string{"1", "10"}) {
		t.Fatal("0.* should solve P={0,01,011} N={1,10}")
	}
}

func TestIsSolutionRejectsWhenNegativeMatches(t *testing.T) {
	o := oracle.New()
	n := partial.Star(partial.Literal('.'))
	if IsSolution(o, n, []string{"0"}, []string{"1"}) {
		t.Fatal(".* matches every negative example too, must not be a solution")
	}
}

func TestIsDeadOverapproxFailure(t *testing.T) {
	o := oracle.New()
	// A bare Literal('1') can never match "0": overapproximation is just
	// "1", which fails matches_all against P={"0"}.
	if IsDeadReason(o, partial.Literal('1'), []string{"0"}, nil) != ReasonOverapproxFailure {
		t.Fatal("expected overapprox failure to prune Literal('1') against P={0}")
	}
}

func TestIsDeadUnderapproxFailure(t *testing.T) {
	o := oracle.New()
	// A ground node that already matches a negative example outright (no
	// holes to blame): Literal('0') against N containing "0".
	if IsDeadReason(o, partial.Literal('0'), []string{"0"}, []string{"0"}) != ReasonUnderapproxFailure {
		t.Fatal("expected underapprox failure: ground node already matches a negative example")
	}
}

func TestIsDeadAliveState(t *testing.T) {
	o := oracle.New()
	if IsDeadReason(o, partial.Hole(), []string{"0", "1"}, []string{""}) != ReasonAlive {
		t.Fatal("a bare Hole should not be pruned against a non-contradictory instance")
	}
}

func TestIsDeadSoundnessNoDescendantOfDeadCanSolve(t *testing.T) {
	o := oracle.New()
	// Literal('1') is dead against P={"0"}; every completion of a tree
	// that forces a leading '1' must also be dead.
	dead := partial.Concat(partial.Literal('1'), partial.Hole())
	if !IsDead(o, dead, []string{"0"}, nil) {
		t.Fatal("a subtree beginning with a literal absent from all positive examples must be dead")
	}
}
