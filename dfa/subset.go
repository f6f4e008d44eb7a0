package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/erastus-murungi/reg/ast"
	"github.com/erastus-murungi/reg/nfa"
)

// Build runs subset construction over prog, producing a deterministic
// automaton equivalent to prog. Callers must check CanBuild(prog) first:
// Build does not itself reject anchors or capture markers, it simply
// treats every non-epsilon zero-width matcher as never consuming, which
// silently drops their semantics.
//
// Grounded on original_source/nfa.py's epsilon_closure/move/
// compute_transitions_for_dfa_state: each DFA state is a set of NFA
// states reached via epsilon-closure, transitions are computed once per
// alphabet class using a representative rune, and a worklist discovers
// new DFA states until none remain.
func Build(prog *nfa.Program) *DFA {
	alpha := buildAlphabet(prog)

	closures := map[string][]nfa.StateID{}
	ids := map[string]StateID{}
	var transitions [][]StateID
	var accepting []bool

	startSet := epsilonClosure(prog, []nfa.StateID{prog.Start})
	startKey := signature(startSet)
	closures[startKey] = startSet
	ids[startKey] = 0
	transitions = append(transitions, nil)
	accepting = append(accepting, containsAccept(prog, startSet))

	worklist := []string{startKey}
	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]
		set := closures[key]
		id := ids[key]

		row := make([]StateID, alpha.numClasses())
		for c := 0; c < alpha.numClasses(); c++ {
			r := alpha.representative(c)
			next := move(prog, set, r)
			if len(next) == 0 {
				row[c] = NullState
				continue
			}
			closure := epsilonClosure(prog, next)
			nkey := signature(closure)
			nid, ok := ids[nkey]
			if !ok {
				nid = StateID(len(transitions))
				ids[nkey] = nid
				closures[nkey] = closure
				transitions = append(transitions, nil)
				accepting = append(accepting, containsAccept(prog, closure))
				worklist = append(worklist, nkey)
			}
			row[c] = nid
		}
		transitions[id] = row
	}

	return &DFA{Transitions: transitions, Accepting: accepting, Start: 0, Alphabet: alpha}
}

// epsilonClosure returns every NFA state reachable from frontier via
// MEpsilon transitions.
func epsilonClosure(prog *nfa.Program, frontier []nfa.StateID) []nfa.StateID {
	seen := map[nfa.StateID]bool{}
	stack := append([]nfa.StateID(nil), frontier...)
	for _, s := range frontier {
		seen[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range prog.Out(s) {
			if t.Matcher.Kind != nfa.MEpsilon {
				continue
			}
			if !seen[t.To] {
				seen[t.To] = true
				stack = append(stack, t.To)
			}
		}
	}
	out := make([]nfa.StateID, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// move returns every NFA state directly reachable from set by consuming
// rune r, without taking the epsilon-closure of the result.
func move(prog *nfa.Program, set []nfa.StateID, r rune) []nfa.StateID {
	var out []nfa.StateID
	for _, s := range set {
		for _, t := range prog.Out(s) {
			if matcherConsumes(t.Matcher, r) {
				out = append(out, t.To)
			}
		}
	}
	return out
}

func matcherConsumes(m nfa.Matcher, r rune) bool {
	switch m.Kind {
	case nfa.MLiteral:
		return r == m.Lit || (m.FoldCase && asciiFold(r) == asciiFold(m.Lit))
	case nfa.MAnyChar:
		return true
	case nfa.MAnyCharNoNL:
		return r != '\n'
	case nfa.MClass:
		in := rangesContain(m.Ranges, r, m.FoldCase)
		return in != m.Negated
	default:
		return false
	}
}

func rangesContain(ranges []ast.RuneRange, r rune, fold bool) bool {
	for _, rr := range ranges {
		if rr.Contains(r) {
			return true
		}
		if fold && rr.Contains(asciiFold(r)) {
			return true
		}
	}
	return false
}

func containsAccept(prog *nfa.Program, set []nfa.StateID) bool {
	for _, s := range set {
		if prog.Accepts(s) {
			return true
		}
	}
	return false
}

// signature builds a stable map key from a sorted state-ID set.
func signature(set []nfa.StateID) string {
	var b strings.Builder
	for i, s := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}
