package match

import "github.com/erastus-murungi/reg/nfa"

// Backtracker implements bounded DFS backtracking (spec §5.3): recursive
// traversal of the NFA with a (state, position) visited bit-vector to
// cut off repeated epsilon exploration without changing which match is
// found. Grounded on the teacher's nfa/backtrack.go
// (BoundedBacktracker/shouldVisit/backtrackFind), generalized from byte
// dispatch over StateKind to the rune-level Matcher.Matches/Advance
// pair, and extended to thread capture slots through the recursion
// since this package always reports group spans, not just a boolean or
// an end position.
type Backtracker struct {
	prog    *nfa.Program
	visited []uint64
	textLen int

	// StepBudget caps the number of (state, position) visits per search
	// (0 = unbounded), the same resource-model knob PikeVM exposes.
	StepBudget int
	steps      int
	exceeded   bool
}

// maxVisitedBits bounds the (states x positions) bit-vector's memory use,
// matching the teacher's 256KB default; CanHandle rejects inputs that
// would exceed it so callers fall back to the PikeVM instead.
const maxVisitedBits = 256 * 1024 * 8

// NewBacktracker creates a Backtracker for prog.
func NewBacktracker(prog *nfa.Program) *Backtracker {
	return &Backtracker{prog: prog}
}

// CanHandle reports whether a visited bit-vector sized for a text of
// length textLen would stay within maxVisitedBits.
func (b *Backtracker) CanHandle(textLen int) bool {
	return b.prog.NumStates()*(textLen+1) <= maxVisitedBits
}

// BudgetExceeded reports whether the most recent search aborted because
// StepBudget was exhausted.
func (b *Backtracker) BudgetExceeded() bool { return b.exceeded }

func (b *Backtracker) reset(textLen int) {
	b.textLen = textLen
	b.steps = 0
	b.exceeded = false
	words := (b.prog.NumStates()*(textLen+1) + 63) / 64
	if cap(b.visited) >= words {
		b.visited = b.visited[:words]
		for i := range b.visited {
			b.visited[i] = 0
		}
	} else {
		b.visited = make([]uint64, words)
	}
}

func (b *Backtracker) shouldVisit(state nfa.StateID, pos int) bool {
	idx := int(state)*(b.textLen+1) + pos
	word, bit := idx/64, uint64(1)<<(idx%64)
	if b.visited[word]&bit != 0 {
		return false
	}
	b.visited[word] |= bit
	return true
}

// Find searches for a match starting exactly at from (anchored); the
// unanchored case is the caller's responsibility, trying successive
// start positions and resetting the visited set between attempts, since
// each start position needs its own fresh visited state.
func (b *Backtracker) Find(ctx *nfa.Context, from int) *Record {
	b.reset(len(ctx.Text))
	end, groups, ok := b.search(ctx, from, b.prog.Start, nfa.NewCursor(from, b.prog.NumGroups))
	if !ok {
		return nil
	}
	return &Record{Start: from, End: end, Groups: spansFromSlots(from, end, groups)}
}

// FindUnanchored tries every start position in turn, returning the
// first (leftmost) match found.
func (b *Backtracker) FindUnanchored(ctx *nfa.Context, from int) *Record {
	for pos := from; pos <= len(ctx.Text); pos++ {
		if r := b.Find(ctx, pos); r != nil {
			return r
		}
	}
	return nil
}

// search walks the NFA depth-first from (pos, state), trying outgoing
// transitions in priority order (the order Compile wired them in, which
// already encodes greedy-vs-lazy preference) and returning the first
// path that reaches an accept state.
func (b *Backtracker) search(ctx *nfa.Context, pos int, state nfa.StateID, cur nfa.Cursor) (int, []int, bool) {
	if !b.shouldVisit(state, pos) {
		return 0, nil, false
	}
	if b.StepBudget > 0 {
		b.steps++
		if b.steps > b.StepBudget {
			b.exceeded = true
			return 0, nil, false
		}
	}
	if b.prog.Accepts(state) {
		return pos, cur.Groups, true
	}
	for _, t := range b.prog.Out(state) {
		if !t.Matcher.Matches(cur, ctx) {
			continue
		}
		next := t.Matcher.Advance(cur)
		if end, groups, ok := b.search(ctx, next.Position, t.To, next); ok {
			return end, groups, true
		}
	}
	return 0, nil, false
}
