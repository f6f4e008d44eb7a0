package nfa

// StateID identifies a State within a Program. Program.States and
// Program.Transitions are both indexed by StateID, mirroring the flat
// state-array layout of the teacher's nfa.NFA rather than a pointer graph.
type StateID int

// NullState is the sentinel "no such state" value (spec §3: "a sentinel
// value denotes the absence of a transition").
const NullState StateID = -1

// State is a node of the automaton (spec §3). Accepts and Lazy are the
// only per-state attributes the matchers need; everything about how a
// state connects to others lives in the parallel Transitions slice so
// that a state can have any number of ordered outgoing edges instead of
// the single fixed "next" pointer the teacher's nfa.NFA uses.
type State struct {
	ID      StateID
	Accepts bool
	Lazy    bool
}

// Transition is an ordered (matcher, destination) pair. Order within a
// single state's transition list is significant: it is the priority
// used to resolve greedy-vs-lazy and alternation-branch preference when
// more than one transition matches the same cursor.
type Transition struct {
	Matcher Matcher
	To      StateID
}

// Program is the compiled automaton (spec §3's Automaton): a flat table
// of states, each with an ordered outgoing transition list, a start
// state, and the capture-group count needed to size a Cursor.
type Program struct {
	States      []State
	Transitions [][]Transition
	Start       StateID
	NumGroups   int
}

// Accepts reports whether id is an accepting state.
func (p *Program) Accepts(id StateID) bool { return p.States[id].Accepts }

// IsLazy reports whether id was produced by a lazy quantifier split.
func (p *Program) IsLazy(id StateID) bool { return p.States[id].Lazy }

// Out returns id's ordered outgoing transitions.
func (p *Program) Out(id StateID) []Transition { return p.Transitions[id] }

// NumStates returns the number of states in the program, for sizing
// visited-sets and work queues in the matching engines.
func (p *Program) NumStates() int { return len(p.States) }
