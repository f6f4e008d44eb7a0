package dfa

import (
	"testing"

	"github.com/erastus-murungi/reg/ast"
	"github.com/erastus-murungi/reg/nfa"
)

func mustCompile(t *testing.T, pattern string) *nfa.Program {
	t.Helper()
	root, groups, err := ast.Parse(pattern, 0)
	if err != nil {
		t.Fatalf("ast.Parse(%q) error: %v", pattern, err)
	}
	prog, err := nfa.Compile(root, groups, 0)
	if err != nil {
		t.Fatalf("nfa.Compile(%q) error: %v", pattern, err)
	}
	return prog
}

func run(d *DFA, s string) bool {
	state := d.Start
	for _, r := range s {
		state = d.Step(state, r)
		if state == NullState {
			return false
		}
	}
	return d.Accepts(state)
}

func TestCanBuildRejectsAnchorsAndGroups(t *testing.T) {
	if CanBuild(mustCompile(t, "^ab$")) {
		t.Fatal("anchored pattern should not be eligible for the DFA path")
	}
	if CanBuild(mustCompile(t, "(ab)+")) {
		t.Fatal("capturing pattern should not be eligible for the DFA path")
	}
	if !CanBuild(mustCompile(t, "(?:ab)+")) {
		t.Fatal("non-capturing, unanchored pattern should be eligible")
	}
}

func TestBuildMatchesLiteralConcatenation(t *testing.T) {
	prog := mustCompile(t, "abc")
	d := Build(prog)
	if !run(d, "abc") {
		t.Error("expected abc to match")
	}
	if run(d, "abd") {
		t.Error("did not expect abd to match")
	}
	if run(d, "ab") {
		t.Error("did not expect partial prefix ab to match")
	}
}

func TestBuildMatchesAlternation(t *testing.T) {
	prog := mustCompile(t, "cat|dog")
	d := Build(prog)
	if !run(d, "cat") || !run(d, "dog") {
		t.Error("expected both alternatives to match")
	}
	if run(d, "cow") {
		t.Error("did not expect cow to match")
	}
}

func TestBuildMatchesStarQuantifier(t *testing.T) {
	prog := mustCompile(t, "(?:ab)*")
	d := Build(prog)
	for _, s := range []string{"", "ab", "abab", "ababab"} {
		if !run(d, s) {
			t.Errorf("expected %q to match", s)
		}
	}
	if run(d, "aba") {
		t.Error("did not expect aba to match")
	}
}

func TestBuildMatchesBoundedQuantifier(t *testing.T) {
	prog := mustCompile(t, "(?:ab){2,3}")
	d := Build(prog)
	if run(d, "ab") {
		t.Error("did not expect a single repetition to match {2,3}")
	}
	if !run(d, "abab") || !run(d, "ababab") {
		t.Error("expected 2 and 3 repetitions to match")
	}
	if run(d, "abababab") {
		t.Error("did not expect 4 repetitions to match")
	}
}
