package dfa

import (
	"strconv"
	"strings"

	"github.com/erastus-murungi/reg/internal/unionfind"
)

// Minimize collapses equivalent states of d into a single state each,
// via iterative partition refinement (a Moore-style variant of the
// Hopcroft algorithm, spec §4.5): states start partitioned by their
// Accepting flag, then any two states whose transitions land in
// different partitions on some class are split apart, repeating until
// no split occurs. unionfind merges states that end up in the same
// final partition, grounded on original_source/utils.py's UnionFind.
func Minimize(d *DFA) *DFA {
	n := len(d.Transitions)
	if n == 0 {
		return d
	}

	class := make([]int, n)
	for s := range class {
		if d.Accepting[s] {
			class[s] = 1
		}
	}

	for {
		next := make([]int, n)
		sigToClass := map[string]int{}
		changed := false
		for s := 0; s < n; s++ {
			var b strings.Builder
			b.WriteString(strconv.Itoa(class[s]))
			for _, to := range d.Transitions[s] {
				b.WriteByte('|')
				if to == NullState {
					b.WriteString("x")
				} else {
					b.WriteString(strconv.Itoa(class[to]))
				}
			}
			sig := b.String()
			id, ok := sigToClass[sig]
			if !ok {
				id = len(sigToClass)
				sigToClass[sig] = id
			}
			next[s] = id
		}
		for s := 0; s < n; s++ {
			if next[s] != class[s] {
				changed = true
				break
			}
		}
		class = next
		if !changed {
			break
		}
	}

	uf := unionfind.New(n)
	byClass := map[int]int{}
	for s := 0; s < n; s++ {
		if rep, ok := byClass[class[s]]; ok {
			uf.Union(rep, s)
		} else {
			byClass[class[s]] = s
		}
	}

	oldToNew := make([]StateID, n)
	var transitions [][]StateID
	var accepting []bool
	rootToNew := map[int]StateID{}
	for s := 0; s < n; s++ {
		root := uf.Find(s)
		if _, ok := rootToNew[root]; !ok {
			rootToNew[root] = StateID(len(transitions))
			transitions = append(transitions, nil)
			accepting = append(accepting, d.Accepting[s])
		}
		oldToNew[s] = rootToNew[root]
	}

	for s := 0; s < n; s++ {
		newID := oldToNew[s]
		if transitions[newID] != nil {
			continue
		}
		row := make([]StateID, len(d.Transitions[s]))
		for c, to := range d.Transitions[s] {
			if to == NullState {
				row[c] = NullState
			} else {
				row[c] = oldToNew[to]
			}
		}
		transitions[newID] = row
	}

	return &DFA{
		Transitions: transitions,
		Accepting:   accepting,
		Start:       oldToNew[d.Start],
		Alphabet:    d.Alphabet,
	}
}
