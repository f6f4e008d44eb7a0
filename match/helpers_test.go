package match

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

func newContext(s string) *nfa.Context {
	return &nfa.Context{Text: []rune(s)}
}
