package dfa

import (
	"sort"

	"github.com/erastus-murungi/reg/nfa"
)

// alphabet partitions the rune space into the minimal set of intervals
// such that every Matcher in a Program agrees on every rune within an
// interval (spec §4.4's alphabet reduction). Grounded on the teacher's
// nfa.ByteClassSet, which tracks the same boundary-bit idea over the
// fixed 256-byte alphabet; runes need a sparse, sorted-boundary
// representation instead of a bitset since the space is far larger.
type alphabet struct {
	bounds []rune // sorted interval-end boundaries
}

// maxRune is the upper bound of the rune space the alphabet ever needs
// to cover; anything past it behaves like the topmost interval.
const maxRune = 0x10FFFF

// buildAlphabet scans every consuming Matcher reachable in prog and
// records the interval boundaries it introduces.
func buildAlphabet(prog *nfa.Program) *alphabet {
	boundarySet := map[rune]bool{}
	mark := func(lo, hi rune) {
		if lo > 0 {
			boundarySet[lo-1] = true
		}
		boundarySet[hi] = true
	}

	for _, out := range prog.Transitions {
		for _, t := range out {
			switch t.Matcher.Kind {
			case nfa.MLiteral:
				mark(t.Matcher.Lit, t.Matcher.Lit)
				if t.Matcher.FoldCase {
					if f := asciiFold(t.Matcher.Lit); f != t.Matcher.Lit {
						mark(f, f)
					}
				}
			case nfa.MClass:
				for _, r := range t.Matcher.Ranges {
					mark(r.Lo, r.Hi)
				}
			case nfa.MAnyChar, nfa.MAnyCharNoNL:
				mark(0, maxRune)
			}
		}
	}
	mark(0, maxRune) // ensure the alphabet always covers the full space

	bounds := make([]rune, 0, len(boundarySet))
	for b := range boundarySet {
		bounds = append(bounds, b)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	return &alphabet{bounds: bounds}
}

func asciiFold(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - ('a' - 'A')
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	default:
		return r
	}
}

// classOf returns the index of the interval containing r.
func (a *alphabet) classOf(r rune) int {
	if r > maxRune {
		r = maxRune
	}
	return sort.Search(len(a.bounds), func(i int) bool { return a.bounds[i] >= r })
}

// representative returns a rune inside class c suitable for computing
// move() once on behalf of every rune in that class.
func (a *alphabet) representative(c int) rune {
	if c == 0 {
		return 0
	}
	return a.bounds[c-1] + 1
}

// numClasses returns the number of distinct intervals.
func (a *alphabet) numClasses() int {
	return len(a.bounds)
}
