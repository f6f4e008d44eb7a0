package match

import "testing"

func TestBacktrackerFindsMatch(t *testing.T) {
	prog := mustCompile(t, "a+")
	bt := NewBacktracker(prog)
	rec := bt.FindUnanchored(newContext("xxaaaxx"), 0)
	if rec == nil {
		t.Fatal("expected a match")
	}
	if rec.Start != 2 {
		t.Errorf("got start %d, want 2", rec.Start)
	}
}

func TestBacktrackerGreedyPrecedence(t *testing.T) {
	// Greedy a* should consume every 'a' before backtracking, giving the
	// longest possible match at this start position, same as the PikeVM.
	prog := mustCompile(t, "a*")
	bt := NewBacktracker(prog)
	rec := bt.Find(newContext("aaab"), 0)
	if rec == nil || rec.End != 3 {
		t.Fatalf("got %+v, want end 3", rec)
	}
}

func TestBacktrackerNoMatch(t *testing.T) {
	prog := mustCompile(t, "z+")
	bt := NewBacktracker(prog)
	if rec := bt.FindUnanchored(newContext("abc"), 0); rec != nil {
		t.Errorf("expected no match, got %+v", rec)
	}
}

func TestBacktrackerCanHandleBoundsLargeInputs(t *testing.T) {
	prog := mustCompile(t, "a+")
	bt := NewBacktracker(prog)
	if bt.CanHandle(1 << 30) {
		t.Error("expected an enormous input to exceed the visited-set bound")
	}
	if !bt.CanHandle(100) {
		t.Error("expected a small input to fit the visited-set bound")
	}
}
