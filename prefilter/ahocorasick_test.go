package prefilter

import (
	"testing"

	"github.com/erastus-murungi/reg/ast"
)

func TestExtractLiteralsFromAlternation(t *testing.T) {
	root, _, err := ast.Parse("cat|dog|bird", ast.NoFlag)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	literals, ok := ExtractLiterals(root)
	if !ok {
		t.Fatal("expected a pure literal alternation to be extractable")
	}
	want := []string{"cat", "dog", "bird"}
	if len(literals) != len(want) {
		t.Fatalf("got %v, want %v", literals, want)
	}
	for i, w := range want {
		if literals[i] != w {
			t.Errorf("literals[%d] = %q, want %q", i, literals[i], w)
		}
	}
}

func TestExtractLiteralsRejectsClasses(t *testing.T) {
	root, _, err := ast.Parse("cat|d[o0]g", ast.NoFlag)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, ok := ExtractLiterals(root); ok {
		t.Fatal("expected a branch with a character class to be rejected")
	}
}

func TestExtractLiteralsRejectsNonASCII(t *testing.T) {
	root, _, err := ast.Parse("café|tea", ast.NoFlag)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, ok := ExtractLiterals(root); ok {
		t.Fatal("expected a non-ASCII literal to be rejected")
	}
}

func TestBuildAndFind(t *testing.T) {
	root, _, err := ast.Parse("cat|dog|bird", ast.NoFlag)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	pf, ok := Build(root)
	if !ok {
		t.Fatal("expected Build to succeed for a literal alternation")
	}
	start, end, ok := pf.Find([]byte("I have a dog"), 0)
	if !ok {
		t.Fatal("expected a match")
	}
	if start != 9 || end != 12 {
		t.Errorf("got [%d,%d), want [9,12)", start, end)
	}
	if !pf.IsMatch([]byte("a cat sat")) {
		t.Error("expected IsMatch to find cat")
	}
	if pf.IsMatch([]byte("a fish sat")) {
		t.Error("did not expect a match for fish")
	}
}
