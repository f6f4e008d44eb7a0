package match

import (
	"github.com/erastus-murungi/reg/dfa"
	"github.com/erastus-murungi/reg/nfa"
)

// Engine dispatches a search to whichever of the three strategies spec
// §5 prescribes: the DFA fast path when the pattern allows it, the
// PikeVM for leftmost-longest matches with capture groups, or the
// Backtracker when the caller needs leftmost-first (Perl-style)
// alternation precedence instead.
type Engine struct {
	prog *nfa.Program
	dfa  *dfa.DFA // nil when dfa.CanBuild(prog) is false
	pike *PikeVM
	back *Backtracker
}

// NewEngine builds every strategy this pattern is eligible for up
// front, so repeated searches share one Engine instead of rebuilding
// the automaton or thread pools per call.
func NewEngine(prog *nfa.Program) *Engine {
	e := &Engine{prog: prog, pike: New(prog), back: NewBacktracker(prog)}
	if dfa.CanBuild(prog) {
		e.dfa = dfa.Minimize(dfa.Build(prog))
	}
	return e
}

// HasDFA reports whether the fast path is available for this pattern.
func (e *Engine) HasDFA() bool { return e.dfa != nil }

// SetStepBudget caps the number of NFA configurations (PikeVM) or
// (state, position) visits (Backtracker) a single search may explore,
// per spec §5's resource-model note. 0 means unbounded.
func (e *Engine) SetStepBudget(n int) {
	e.pike.StepBudget = n
	e.back.StepBudget = n
}

// BudgetExceeded reports whether the last search run through this
// Engine aborted due to StepBudget rather than genuinely finding no
// match.
func (e *Engine) BudgetExceeded() bool {
	return e.pike.BudgetExceeded() || e.back.BudgetExceeded()
}

// Find runs the leftmost-longest search the public facade's Find/
// FindAll use, preferring the DFA fast path when it is available.
func (e *Engine) Find(ctx *nfa.Context, from int) *Record {
	if e.dfa != nil {
		return NewDFAExec(e.dfa).Find(ctx.Text, from)
	}
	return e.pike.Find(ctx, from)
}

// FindSubmatch always reports capture spans, so it never uses the DFA
// fast path even when one was built for the plain Find case.
func (e *Engine) FindSubmatch(ctx *nfa.Context, from int) *Record {
	return e.pike.Find(ctx, from)
}

// FindLeftmostFirst runs the DFS backtracking strategy, matching
// Perl/PCRE precedence (the first alternative that leads to an overall
// match wins) rather than the PikeVM/DFA's leftmost-longest rule. It
// falls back to the PikeVM when the input is too large for the
// backtracker's bounded visited set.
func (e *Engine) FindLeftmostFirst(ctx *nfa.Context, from int) *Record {
	if e.back.CanHandle(len(ctx.Text)) {
		return e.back.FindUnanchored(ctx, from)
	}
	return e.pike.Find(ctx, from)
}
