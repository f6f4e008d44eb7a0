package dfa

import "testing"

func TestCanBuildRejectsLazyQuantifiers(t *testing.T) {
	if CanBuild(mustCompile(t, "a+?")) {
		t.Fatal("lazy quantifier should not be eligible for the DFA path")
	}
	if CanBuild(mustCompile(t, "a*?b")) {
		t.Fatal("lazy quantifier should not be eligible for the DFA path, even with a mandatory suffix")
	}
	if CanBuild(mustCompile(t, "a{2,4}?")) {
		t.Fatal("lazy bounded quantifier should not be eligible for the DFA path")
	}
	if !CanBuild(mustCompile(t, "a+")) {
		t.Fatal("greedy quantifier with no groups or anchors should be eligible for the DFA path")
	}
}
