package nfa_test

import (
	"testing"

	"github.com/erastus-murungi/reg/ast"
	"github.com/erastus-murungi/reg/nfa"
)

func mustCompile(t *testing.T, pattern string) *nfa.Program {
	t.Helper()
	root, groups, err := ast.Parse(pattern, ast.NoFlag)
	if err != nil {
		t.Fatalf("ast.Parse(%q) error: %v", pattern, err)
	}
	prog, err := nfa.Compile(root, groups, ast.NoFlag)
	if err != nil {
		t.Fatalf("nfa.Compile(%q) error: %v", pattern, err)
	}
	return prog
}

// runAnchored walks prog depth-first, trying transitions in priority
// order, and reports whether s is accepted when matched starting at
// position 0 through the end of input.
func runAnchored(prog *nfa.Program, s string) (bool, []int) {
	ctx := &nfa.Context{Text: []rune(s), Flags: ast.NoFlag}
	var walk func(state nfa.StateID, cur nfa.Cursor) ([]int, bool)
	visited := map[[2]int]bool{}
	walk = func(state nfa.StateID, cur nfa.Cursor) ([]int, bool) {
		key := [2]int{int(state), cur.Position}
		if visited[key] {
			return nil, false
		}
		visited[key] = true
		if prog.Accepts(state) && cur.Position == len(ctx.Text) {
			return cur.Groups, true
		}
		for _, tr := range prog.Out(state) {
			if !tr.Matcher.Matches(cur, ctx) {
				continue
			}
			next := tr.Matcher.Advance(cur)
			if groups, ok := walk(tr.To, next); ok {
				return groups, true
			}
		}
		return nil, false
	}
	groups, ok := walk(prog.Start, nfa.NewCursor(0, prog.NumGroups))
	return ok, groups
}

func TestCompileLiteralConcatenation(t *testing.T) {
	prog := mustCompile(t, "abc")
	if ok, _ := runAnchored(prog, "abc"); !ok {
		t.Error("expected abc to match abc")
	}
	if ok, _ := runAnchored(prog, "abd"); ok {
		t.Error("did not expect abd to match abc")
	}
}

func TestCompileAlternation(t *testing.T) {
	prog := mustCompile(t, "cat|dog")
	if ok, _ := runAnchored(prog, "cat"); !ok {
		t.Error("expected cat to match")
	}
	if ok, _ := runAnchored(prog, "dog"); !ok {
		t.Error("expected dog to match")
	}
	if ok, _ := runAnchored(prog, "bird"); ok {
		t.Error("did not expect bird to match")
	}
}

func TestCompileStarQuantifier(t *testing.T) {
	prog := mustCompile(t, "a*b")
	for _, s := range []string{"b", "ab", "aaab"} {
		if ok, _ := runAnchored(prog, s); !ok {
			t.Errorf("expected %q to match a*b", s)
		}
	}
	if ok, _ := runAnchored(prog, "aaa"); ok {
		t.Error("did not expect aaa to match a*b")
	}
}

func TestCompileCaptureGroups(t *testing.T) {
	prog := mustCompile(t, "(a+)(b+)")
	ok, groups := runAnchored(prog, "aaabb")
	if !ok {
		t.Fatal("expected aaabb to match (a+)(b+)")
	}
	if groups[0] != 0 || groups[1] != 3 {
		t.Errorf("group 1 = [%d,%d), want [0,3)", groups[0], groups[1])
	}
	if groups[2] != 3 || groups[3] != 5 {
		t.Errorf("group 2 = [%d,%d), want [3,5)", groups[2], groups[3])
	}
}

func TestCompileBoundedQuantifier(t *testing.T) {
	prog := mustCompile(t, "a{2,3}")
	if ok, _ := runAnchored(prog, "a"); ok {
		t.Error("did not expect a single a to match a{2,3}")
	}
	if ok, _ := runAnchored(prog, "aa"); !ok {
		t.Error("expected aa to match a{2,3}")
	}
	if ok, _ := runAnchored(prog, "aaa"); !ok {
		t.Error("expected aaa to match a{2,3}")
	}
	if ok, _ := runAnchored(prog, "aaaa"); ok {
		t.Error("did not expect aaaa to match a{2,3}")
	}
}

func TestCompileOptionalGroupLeavesSlotUnset(t *testing.T) {
	prog := mustCompile(t, "(a)?b")
	ok, groups := runAnchored(prog, "b")
	if !ok {
		t.Fatal("expected b to match (a)?b")
	}
	if groups[0] != nfa.Unset || groups[1] != nfa.Unset {
		t.Errorf("expected unset group slots, got [%d,%d)", groups[0], groups[1])
	}
}
