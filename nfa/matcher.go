package nfa

import "github.com/erastus-murungi/reg/ast"

// MatcherKind is the tag of the Symbol/Matcher sum type from spec §3.
type MatcherKind uint8

const (
	MLiteral MatcherKind = iota
	MAnyChar
	MAnyCharNoNL
	MClass
	MStartOfString
	MEndOfString
	MStartOfLine
	MEndOfLine
	MWordBoundary
	MNotWordBoundary
	MEpsilon
	MGroupEntry
	MGroupExit
)

// IsAnchor reports whether the matcher is zero-width: it never advances
// Cursor.Position, only (for group markers) Cursor.Groups.
func (k MatcherKind) IsAnchor() bool {
	switch k {
	case MStartOfString, MEndOfString, MStartOfLine, MEndOfLine,
		MWordBoundary, MNotWordBoundary, MEpsilon, MGroupEntry, MGroupExit:
		return true
	default:
		return false
	}
}

// Matcher is a single atomic transition label (spec §3). Exactly one of
// Lit/Ranges/GroupIndex is meaningful, chosen by Kind — a tagged variant
// rather than an interface with one type per case, so that dispatch in
// the hot matching loop is a plain switch instead of a dynamic call.
type Matcher struct {
	Kind       MatcherKind
	Lit        rune
	Ranges     []ast.RuneRange
	Negated    bool
	FoldCase   bool
	GroupIndex int
}

// Matches is the pure predicate over the current cursor and static
// context described in spec §3. It never mutates cur or ctx.
func (m Matcher) Matches(cur Cursor, ctx *Context) bool {
	switch m.Kind {
	case MLiteral:
		return cur.Position < len(ctx.Text) && runeEqual(ctx.Text[cur.Position], m.Lit, m.FoldCase)
	case MAnyChar:
		return cur.Position < len(ctx.Text)
	case MAnyCharNoNL:
		return cur.Position < len(ctx.Text) && ctx.Text[cur.Position] != '\n'
	case MClass:
		if cur.Position >= len(ctx.Text) {
			return false
		}
		r := ctx.Text[cur.Position]
		in := classContains(m.Ranges, r, m.FoldCase)
		return in != m.Negated
	case MStartOfString:
		return cur.Position == 0
	case MEndOfString:
		return cur.Position == len(ctx.Text)
	case MStartOfLine:
		return cur.Position == 0 || ctx.Text[cur.Position-1] == '\n'
	case MEndOfLine:
		return cur.Position == len(ctx.Text) || ctx.Text[cur.Position] == '\n'
	case MWordBoundary:
		return wordBoundary(cur, ctx)
	case MNotWordBoundary:
		return !wordBoundary(cur, ctx)
	case MEpsilon, MGroupEntry, MGroupExit:
		return true
	default:
		return false
	}
}

// Advance returns the cursor reached after this matcher fires. Per spec
// §3, non-anchor matchers move Position by one; anchors and group
// markers leave Position untouched and only group markers touch Groups.
func (m Matcher) Advance(cur Cursor) Cursor {
	switch m.Kind {
	case MLiteral, MAnyChar, MAnyCharNoNL, MClass:
		return cur.withPosition(cur.Position + 1)
	case MGroupEntry:
		return cur.withGroup(2*m.GroupIndex, cur.Position)
	case MGroupExit:
		return cur.withGroup(2*m.GroupIndex+1, cur.Position)
	default: // anchors, epsilon
		return cur
	}
}

func runeEqual(a, b rune, fold bool) bool {
	if a == b {
		return true
	}
	if !fold {
		return false
	}
	return foldASCII(a) == foldASCII(b)
}

func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func classContains(ranges []ast.RuneRange, r rune, fold bool) bool {
	for _, rr := range ranges {
		if rr.Contains(r) {
			return true
		}
		if fold {
			folded := foldASCII(r)
			if folded != r && rr.Contains(folded) {
				return true
			}
			upper := r
			if r >= 'a' && r <= 'z' {
				upper = r - ('a' - 'A')
			}
			if upper != r && rr.Contains(upper) {
				return true
			}
		}
	}
	return false
}

func wordBoundary(cur Cursor, ctx *Context) bool {
	before := cur.Position > 0 && isWordRune(ctx.Text[cur.Position-1])
	after := cur.Position < len(ctx.Text) && isWordRune(ctx.Text[cur.Position])
	return before != after
}
