package match

import "github.com/erastus-murungi/reg/dfa"

// DFAExec runs the deterministic fast path (spec §5.1) built by package
// dfa. It reports only overall match boundaries: callers must already
// know, via dfa.CanBuild, that the pattern has no capturing groups or
// zero-width assertions before reaching for this path.
type DFAExec struct {
	d *dfa.DFA
}

// NewDFAExec wraps a built automaton for searching.
func NewDFAExec(d *dfa.DFA) *DFAExec { return &DFAExec{d: d} }

// Find runs a leftmost-longest unanchored search starting at from,
// rerunning the automaton from each candidate start position since a
// subset-construction DFA has no notion of restarting mid-scan.
func (e *DFAExec) Find(text []rune, from int) *Record {
	for start := from; start <= len(text); start++ {
		if end, ok := e.matchAt(text, start); ok {
			return &Record{Start: start, End: end, Groups: []GroupSpan{{Start: start, End: end, Matched: true}}}
		}
	}
	return nil
}

// matchAt finds the longest match starting exactly at start, running
// the DFA to the end of input (or to the dead state) and remembering
// every accept state crossed along the way.
func (e *DFAExec) matchAt(text []rune, start int) (int, bool) {
	state := e.d.Start
	bestEnd := -1
	if e.d.Accepts(state) {
		bestEnd = start
	}
	pos := start
	for pos < len(text) {
		state = e.d.Step(state, text[pos])
		if state == dfa.NullState {
			break
		}
		pos++
		if e.d.Accepts(state) {
			bestEnd = pos
		}
	}
	if bestEnd == -1 {
		return 0, false
	}
	return bestEnd, true
}
