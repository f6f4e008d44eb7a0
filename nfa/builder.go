package nfa

// Builder constructs a Program incrementally using a low-level API, the
// way the teacher's nfa.Builder backs its Compiler. Unlike the teacher's
// version, which has to Patch forward references because each state
// carries a single fixed "next" field, states here own an appendable
// transition list: a state can be allocated before its outgoing edges
// are known, and edges can be added to any previously allocated state
// in any order, so no patch-list bookkeeping is needed.
type Builder struct {
	states      []State
	transitions [][]Transition
}

// NewBuilder creates a new, empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewState allocates a fresh, non-accepting state with no outgoing
// transitions and returns its ID.
func (b *Builder) NewState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{ID: id})
	b.transitions = append(b.transitions, nil)
	return id
}

// AddTransition appends an outgoing edge from "from", after whatever
// edges were already added to it. Call order is the priority order
// described on the Transition type: for a state produced by an
// alternation or quantifier split, the first-added edge is preferred
// during matching.
func (b *Builder) AddTransition(from StateID, m Matcher, to StateID) {
	b.transitions[from] = append(b.transitions[from], Transition{Matcher: m, To: to})
}

// SetAccepts marks id as an accepting state.
func (b *Builder) SetAccepts(id StateID) {
	b.states[id].Accepts = true
}

// SetLazy marks id as originating from a lazy quantifier split, per
// spec §3's State.lazy attribute.
func (b *Builder) SetLazy(id StateID) {
	b.states[id].Lazy = true
}

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int {
	return len(b.states)
}

// Build freezes the builder into an immutable Program rooted at start.
func (b *Builder) Build(start StateID, numGroups int) *Program {
	return &Program{
		States:      b.states,
		Transitions: b.transitions,
		Start:       start,
		NumGroups:   numGroups,
	}
}
