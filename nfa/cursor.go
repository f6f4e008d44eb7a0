package nfa

import "github.com/erastus-murungi/reg/ast"

// Unset marks a capture-group slot that has not yet been written, per
// spec §3 ("a sentinel value ... in a slot means 'unset'"). Using -1
// rather than a max-int sentinel keeps slot arithmetic simple since real
// positions are always >= 0.
const Unset = -1

// Context is the static, per-match data shared by every Cursor produced
// while matching a single call: the input text (already decoded to
// runes, since the engine works in code points rather than bytes) and the
// compile-time flags. Separating Context from Cursor keeps cursor copies
// cheap, per spec §3.
type Context struct {
	Text  []rune
	Flags ast.Flag
}

// Cursor is the value-typed position + captured-groups record threaded
// through matching (spec §3/glossary). Two cursors are never aliased in a
// way that lets a write through one observe through the other: Groups is
// copied on every write (see withGroup below), never mutated in place.
type Cursor struct {
	Position int
	Groups   []int
}

// NewCursor creates a cursor at the given position with all of
// numGroups*2 capture slots unset. numGroups excludes group 0 (the whole
// match), which callers track separately via the cursor's final Position.
func NewCursor(position, numGroups int) Cursor {
	groups := make([]int, numGroups*2)
	for i := range groups {
		groups[i] = Unset
	}
	return Cursor{Position: position, Groups: groups}
}

// withGroup returns a copy of the cursor with slot index set to value.
// This is the only place Cursor.Groups is ever written, keeping the
// copy-on-write contract in exactly one function.
func (c Cursor) withGroup(index int, value int) Cursor {
	groups := make([]int, len(c.Groups))
	copy(groups, c.Groups)
	groups[index] = value
	return Cursor{Position: c.Position, Groups: groups}
}

// withPosition returns a copy of the cursor advanced to position,
// sharing the same Groups backing slice (safe: Groups is never mutated
// in place once created).
func (c Cursor) withPosition(position int) Cursor {
	return Cursor{Position: position, Groups: c.Groups}
}

func isWordRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}
