package dfa

import "testing"

func TestMinimizePreservesLanguage(t *testing.T) {
	prog := mustCompile(t, "(?:ab|ac)*")
	d := Build(prog)
	m := Minimize(d)

	cases := []struct {
		s     string
		match bool
	}{
		{"", true},
		{"ab", true},
		{"ac", true},
		{"abac", true},
		{"acab", true},
		{"a", false},
		{"abc", false},
	}
	for _, c := range cases {
		if got := run(m, c.s); got != c.match {
			t.Errorf("run(minimized, %q) = %v, want %v", c.s, got, c.match)
		}
	}
}

func TestMinimizeReducesStateCount(t *testing.T) {
	// (?:a|b)*c has redundant states before minimization: every a/b loop
	// position is behaviorally identical once minimized.
	prog := mustCompile(t, "(?:a|b)*c")
	d := Build(prog)
	m := Minimize(d)
	if len(m.Transitions) >= len(d.Transitions) {
		t.Fatalf("minimize did not reduce the state count: %d -> %d", len(d.Transitions), len(m.Transitions))
	}
}
