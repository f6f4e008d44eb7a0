// Package prefilter implements the literal-alternation bypass spec's
// domain stack calls for: patterns of the shape "cat|dog|bird|..." with
// no anchors or capturing groups beyond the whole match (group 0) never
// need the general NFA/DFA machinery at all — an Aho-Corasick automaton
// over the literal set answers Find directly in one linear pass.
//
// Grounded on the teacher's meta/compile.go (ahocorasick.NewBuilder/
// AddPattern/Build) and meta/find.go's findAhoCorasick, which uses
// exactly this automaton as a "literal engine bypass" for large literal
// alternations.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/erastus-murungi/reg/ast"
)

// Prefilter answers Find directly over a fixed set of literal
// alternatives, bypassing NFA/DFA/backtracking entirely.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// Build inspects root and, when it is purely a set of literal
// alternatives (optionally a single literal run with no alternation at
// all), compiles an Aho-Corasick automaton over them. ok is false for
// every other pattern shape, in which case callers fall back to the
// general engine.
func Build(root *ast.Node) (p *Prefilter, ok bool) {
	literals, ok := ExtractLiterals(root)
	if !ok || len(literals) == 0 {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Prefilter{automaton: automaton}, true
}

// Find returns the first (leftmost) occurrence of any literal at or
// after byte offset at. Byte and rune offsets coincide here since
// ExtractLiterals only accepts ASCII literals.
func (p *Prefilter) Find(haystack []byte, at int) (start, end int, ok bool) {
	m := p.automaton.Find(haystack, at)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// IsMatch reports whether any literal occurs anywhere in haystack.
func (p *Prefilter) IsMatch(haystack []byte) bool {
	return p.automaton.IsMatch(haystack)
}

// ExtractLiterals walks root and collects every branch of a top-level
// alternation (or the single pattern itself, if it isn't an
// alternation) as a literal string, succeeding only if every branch is
// a plain concatenation of ASCII literal runes with no anchors, classes,
// or capturing groups: the shape the automaton bypass can answer alone.
func ExtractLiterals(root *ast.Node) ([]string, bool) {
	branches := []*ast.Node{root}
	if root.Kind == ast.KindAlternation {
		branches = root.Sub
	}

	literals := make([]string, 0, len(branches))
	for _, b := range branches {
		lit, ok := literalString(b)
		if !ok {
			return nil, false
		}
		literals = append(literals, lit)
	}
	return literals, true
}

func literalString(n *ast.Node) (string, bool) {
	switch n.Kind {
	case ast.KindEpsilon:
		return "", true
	case ast.KindLiteral:
		if n.Lit > 0x7F {
			return "", false
		}
		return string(n.Lit), true
	case ast.KindConcatenation:
		var runes []rune
		for _, sub := range n.Sub {
			s, ok := literalString(sub)
			if !ok {
				return "", false
			}
			runes = append(runes, []rune(s)...)
		}
		return string(runes), true
	default:
		return "", false
	}
}
