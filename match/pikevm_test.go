package match

import "testing"

func TestPikeVMFindsLeftmostLongest(t *testing.T) {
	prog := mustCompile(t, "a+")
	vm := New(prog)
	ctx := newContext("xxaaaxx")
	rec := vm.Find(ctx, 0)
	if rec == nil {
		t.Fatal("expected a match")
	}
	if rec.Start != 2 || rec.End != 5 {
		t.Errorf("got [%d,%d), want [2,5)", rec.Start, rec.End)
	}
}

func TestPikeVMNoMatch(t *testing.T) {
	prog := mustCompile(t, "z+")
	vm := New(prog)
	if rec := vm.Find(newContext("abc"), 0); rec != nil {
		t.Errorf("expected no match, got %+v", rec)
	}
}

func TestPikeVMCapturesGroups(t *testing.T) {
	prog := mustCompile(t, "(a+)(b+)")
	vm := New(prog)
	rec := vm.Find(newContext("xaaabbx"), 0)
	if rec == nil {
		t.Fatal("expected a match")
	}
	if rec.Start != 1 || rec.End != 6 {
		t.Fatalf("got [%d,%d), want [1,6)", rec.Start, rec.End)
	}
	if len(rec.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(rec.Groups))
	}
	if g := rec.Groups[1]; !g.Matched || g.Start != 1 || g.End != 4 {
		t.Errorf("group 1 = %+v, want [1,4)", g)
	}
	if g := rec.Groups[2]; !g.Matched || g.Start != 4 || g.End != 6 {
		t.Errorf("group 2 = %+v, want [4,6)", g)
	}
}

func TestPikeVMOptionalGroupUnmatched(t *testing.T) {
	prog := mustCompile(t, "s(a)?e")
	vm := New(prog)
	rec := vm.Find(newContext("se"), 0)
	if rec == nil {
		t.Fatal("expected a match")
	}
	if rec.Groups[1].Matched {
		t.Errorf("group 1 should be unmatched, got %+v", rec.Groups[1])
	}
}

func TestPikeVMEmptyPattern(t *testing.T) {
	prog := mustCompile(t, "")
	vm := New(prog)
	rec := vm.Find(newContext("abc"), 0)
	if rec == nil || rec.Start != 0 || rec.End != 0 {
		t.Fatalf("expected empty match at 0, got %+v", rec)
	}
}

// TestPikeVMLazyVsGreedySameShape is spec §8's Greedy law applied
// directly: a+ and a+? differ only in laziness, so on the same input
// the greedy form must report the longest run and the lazy form the
// shortest (min(indices) vs max(indices) in the Python ground truth,
// _examples/original_source/match.py:56).
func TestPikeVMLazyVsGreedySameShape(t *testing.T) {
	text := "aaa"

	greedy := New(mustCompile(t, "a+"))
	rec := greedy.Find(newContext(text), 0)
	if rec == nil || rec.Start != 0 || rec.End != 3 {
		t.Fatalf("a+ got %+v, want [0,3)", rec)
	}

	lazy := New(mustCompile(t, "a+?"))
	rec = lazy.Find(newContext(text), 0)
	if rec == nil || rec.Start != 0 || rec.End != 1 {
		t.Fatalf("a+? got %+v, want [0,1)", rec)
	}
}

func TestPikeVMLazyStarWithMandatorySuffix(t *testing.T) {
	prog := mustCompile(t, "a*?b")
	vm := New(prog)
	rec := vm.Find(newContext("aaab"), 0)
	if rec == nil || rec.Start != 0 || rec.End != 4 {
		t.Fatalf("got %+v, want [0,4) (b only reachable after all 3 a's)", rec)
	}
}

func TestPikeVMLazyCapturingGroup(t *testing.T) {
	prog := mustCompile(t, "(a+?)")
	vm := New(prog)
	rec := vm.Find(newContext("aaa"), 0)
	if rec == nil {
		t.Fatal("expected a match")
	}
	if rec.End != 1 {
		t.Fatalf("got end=%d, want 1", rec.End)
	}
	if g := rec.Groups[1]; !g.Matched || g.Start != 0 || g.End != 1 {
		t.Errorf("group 1 = %+v, want [0,1)", g)
	}
}
