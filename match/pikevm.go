package match

import (
	"github.com/erastus-murungi/reg/internal/sparse"
	"github.com/erastus-murungi/reg/nfa"
)

// PikeVM runs Thompson's parallel NFA simulation (spec §5.2) over a
// compiled nfa.Program, tracking one capture set per active thread.
// Grounded on the teacher's nfa/pikevm.go (PikeVM/thread/addThread/
// step/addThreadToNext), generalized from byte-range state-kind
// dispatch to the rune-level Matcher.Matches/Advance pair so a single
// walk handles literals, classes, anchors, and group markers alike.
type PikeVM struct {
	prog *nfa.Program

	queue     []thread
	nextQueue []thread
	visited   *sparse.Set

	// StepBudget caps the number of NFA configurations explored per
	// search (0 = unbounded), per spec §5's resource-model note.
	// Exceeding it aborts the search and reports no match rather than
	// an error.
	StepBudget int
	steps      int
	exceeded   bool
}

// thread is a single execution path: the NFA state it is waiting in,
// where its match attempt started, the capture slots it carries, and
// whether it passed through a lazy quantifier's split state on the way
// here. lazy governs how a later accepting occurrence of this same
// start position is weighed against an earlier one (spec §8's Greedy
// law): a greedy thread prefers the longest match, so a later, longer
// occurrence overrides an earlier one; a lazy thread prefers the
// shortest, so its first accepting occurrence wins outright.
type thread struct {
	state    nfa.StateID
	startPos int
	cur      nfa.Cursor
	lazy     bool
}

// New creates a PikeVM ready to search prog.
func New(prog *nfa.Program) *PikeVM {
	capacity := prog.NumStates()
	if capacity < 16 {
		capacity = 16
	}
	return &PikeVM{
		prog:      prog,
		queue:     make([]thread, 0, capacity),
		nextQueue: make([]thread, 0, capacity),
		visited:   sparse.New(capacity),
	}
}

// Find runs an unanchored search over ctx.Text starting no earlier than
// from. Among matches starting at the earliest position, a greedy
// pattern prefers the longest and a lazy one the shortest (spec §8's
// Greedy law). It returns nil if no match exists.
func (p *PikeVM) Find(ctx *nfa.Context, from int) *Record {
	p.reset()
	text := ctx.Text

	bestStart, bestEnd := -1, -1
	bestLazy := false
	var bestSlots []int

	for pos := from; pos <= len(text); pos++ {
		if bestStart == -1 {
			p.visited.Clear()
			p.addThread(p.prog.Start, pos, nfa.NewCursor(pos, p.prog.NumGroups), false, ctx, &p.queue)
		}

		for _, t := range p.queue {
			if !p.prog.Accepts(t.state) {
				continue
			}
			switch {
			case bestStart == -1 || t.startPos < bestStart:
				bestStart, bestEnd, bestLazy, bestSlots = t.startPos, pos, t.lazy, t.cur.Groups
			case t.startPos == bestStart && !bestLazy && pos > bestEnd:
				// A lazy thread's first accepting occurrence is already
				// the shortest match by construction (it was recorded
				// the first time bestStart was set); only a greedy
				// thread's longer, later occurrence should override it.
				bestEnd, bestLazy, bestSlots = pos, t.lazy, t.cur.Groups
			}
		}

		if pos >= len(text) {
			break
		}
		if bestStart != -1 && !hasLeftmostCandidate(p.queue, bestStart) {
			break
		}
		if len(p.queue) == 0 {
			break
		}

		p.visited.Clear()
		for _, t := range p.queue {
			p.step(t, ctx)
		}
		p.queue, p.nextQueue = p.nextQueue, p.queue[:0]
		if p.exceeded {
			break
		}
	}

	if bestStart == -1 {
		return nil
	}
	return &Record{Start: bestStart, End: bestEnd, Groups: spansFromSlots(bestStart, bestEnd, bestSlots)}
}

// FindAnchored searches only for a match starting exactly at from, with
// the same greedy-longest/lazy-shortest preference Find applies.
func (p *PikeVM) FindAnchored(ctx *nfa.Context, from int) *Record {
	p.reset()
	text := ctx.Text

	p.addThread(p.prog.Start, from, nfa.NewCursor(from, p.prog.NumGroups), false, ctx, &p.queue)

	bestEnd := -1
	bestLazy := false
	var bestSlots []int

	for pos := from; pos <= len(text); pos++ {
		for _, t := range p.queue {
			if !p.prog.Accepts(t.state) {
				continue
			}
			if bestEnd == -1 || !bestLazy {
				bestEnd, bestLazy, bestSlots = pos, t.lazy, t.cur.Groups
			}
			break
		}
		if len(p.queue) == 0 || pos >= len(text) {
			break
		}

		p.visited.Clear()
		for _, t := range p.queue {
			p.step(t, ctx)
		}
		p.queue, p.nextQueue = p.nextQueue, p.queue[:0]
		if p.exceeded {
			break
		}
	}

	if bestEnd == -1 {
		return nil
	}
	return &Record{Start: from, End: bestEnd, Groups: spansFromSlots(from, bestEnd, bestSlots)}
}

func (p *PikeVM) reset() {
	p.queue = p.queue[:0]
	p.nextQueue = p.nextQueue[:0]
	p.visited.Clear()
	p.steps = 0
	p.exceeded = false
}

// BudgetExceeded reports whether the most recent search aborted because
// StepBudget was exhausted.
func (p *PikeVM) BudgetExceeded() bool { return p.exceeded }

// overBudget increments the step counter and reports whether the search
// should stop expanding further configurations.
func (p *PikeVM) overBudget() bool {
	if p.StepBudget <= 0 {
		return false
	}
	p.steps++
	if p.steps > p.StepBudget {
		p.exceeded = true
		return true
	}
	return false
}

func hasLeftmostCandidate(queue []thread, bestStart int) bool {
	for _, t := range queue {
		if t.startPos <= bestStart {
			return true
		}
	}
	return false
}

// addThread follows every zero-width transition out of id (epsilon,
// anchors, group markers) that matches at cur, queuing id itself once
// it reaches a state with a rune-consuming outgoing edge or an accept
// state. visited dedupes within the current generation, the same
// fix the teacher cites for avoiding exponential thread blowup on
// chained character classes. lazy is true once the walk has crossed a
// Lazy split state, and is inherited by every state reached afterward.
func (p *PikeVM) addThread(id nfa.StateID, startPos int, cur nfa.Cursor, lazy bool, ctx *nfa.Context, queue *[]thread) {
	if p.visited.Contains(int(id)) {
		return
	}
	if p.overBudget() {
		return
	}
	p.visited.Insert(int(id))
	lazy = lazy || p.prog.IsLazy(id)

	queued := false
	queueOnce := func() {
		if !queued {
			*queue = append(*queue, thread{state: id, startPos: startPos, cur: cur, lazy: lazy})
			queued = true
		}
	}

	if p.prog.Accepts(id) {
		queueOnce()
	}
	for _, t := range p.prog.Out(id) {
		if t.Matcher.Kind.IsAnchor() || t.Matcher.Kind == nfa.MEpsilon {
			if t.Matcher.Matches(cur, ctx) {
				p.addThread(t.To, startPos, t.Matcher.Advance(cur), lazy, ctx, queue)
			}
			continue
		}
		queueOnce()
	}
}

// step evaluates every rune-consuming transition out of t.state against
// t.cur (whose Position is the rune just read) and queues whichever
// successors match into the next generation.
func (p *PikeVM) step(t thread, ctx *nfa.Context) {
	for _, tr := range p.prog.Out(t.state) {
		if tr.Matcher.Kind.IsAnchor() || tr.Matcher.Kind == nfa.MEpsilon {
			continue
		}
		if tr.Matcher.Matches(t.cur, ctx) {
			p.addThreadToNext(tr.To, t.startPos, tr.Matcher.Advance(t.cur), t.lazy, ctx)
		}
	}
}

func (p *PikeVM) addThreadToNext(id nfa.StateID, startPos int, cur nfa.Cursor, lazy bool, ctx *nfa.Context) {
	if p.visited.Contains(int(id)) {
		return
	}
	if p.overBudget() {
		return
	}
	p.visited.Insert(int(id))
	lazy = lazy || p.prog.IsLazy(id)

	if p.prog.Accepts(id) {
		p.nextQueue = append(p.nextQueue, thread{state: id, startPos: startPos, cur: cur, lazy: lazy})
		return
	}
	queued := false
	for _, t := range p.prog.Out(id) {
		if t.Matcher.Kind.IsAnchor() || t.Matcher.Kind == nfa.MEpsilon {
			if t.Matcher.Matches(cur, ctx) {
				p.addThreadToNext(t.To, startPos, t.Matcher.Advance(cur), lazy, ctx)
			}
			continue
		}
		if !queued {
			p.nextQueue = append(p.nextQueue, thread{state: id, startPos: startPos, cur: cur, lazy: lazy})
			queued = true
		}
	}
}
