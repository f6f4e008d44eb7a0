// Package ast parses a regular expression pattern string into an abstract
// syntax tree.
//
// The grammar, lowest to highest precedence, is:
//
//	alternation   := concatenation ('|' concatenation)*
//	concatenation := quantified*
//	quantified    := atom (('?' | '*' | '+' | '{n,m}') '?'?)?
//	atom          := literal | '.' | class | group | anchor
//
// Parsing happens in two stages, matching the spec's component split: the
// Lexer turns the pattern into a token stream (lexer.go), and Parse consumes
// that stream to build the Node tree (parser.go).
package ast

// Kind is the tag of the AST sum type.
type Kind uint8

const (
	// KindLiteral matches a single specific rune.
	KindLiteral Kind = iota
	// KindAnyChar matches any rune ('.' — subject to DotAll).
	KindAnyChar
	// KindCharClass matches a rune against a set of ranges, optionally negated.
	KindCharClass
	// KindAnchor is a zero-width assertion.
	KindAnchor
	// KindGroup wraps a single child in a capturing or non-capturing group.
	KindGroup
	// KindAlternation picks among two or more children, first wins ties.
	KindAlternation
	// KindConcatenation matches each child in sequence.
	KindConcatenation
	// KindQuantified repeats a single child Min..Max times.
	KindQuantified
	// KindEpsilon matches the empty string. Produced for empty groups and
	// optional branches that parse to nothing (e.g. the body of `()` in `s()?e`).
	KindEpsilon
)

// AnchorKind distinguishes the zero-width assertions.
type AnchorKind uint8

// Caret/Dollar resolve to the spec's StartOfString/StartOfLine (resp.
// EndOfString/EndOfLine) Matcher variants at NFA-compile time, depending
// on whether Multiline is in effect — the AST doesn't need to know which,
// since that's a single compile-time decision made once per pattern.
const (
	AnchorCaret AnchorKind = iota
	AnchorDollar
	AnchorWordBoundary
	AnchorNotWordBoundary
	AnchorStartText // \A: always start of string, never line-relative.
	AnchorEndText   // \Z: always end of string, never line-relative.
)

// RuneRange is an inclusive code-point range [Lo, Hi].
type RuneRange struct {
	Lo, Hi rune
}

// Contains reports whether r falls within the range.
func (rr RuneRange) Contains(r rune) bool {
	return rr.Lo <= r && r <= rr.Hi
}

// Unbounded marks Quantified.Max as having no upper limit.
const Unbounded = -1

// Node is a single element of the regex AST sum type described in spec
// §3 (Symbol/Matcher) and §4.2 (Parser). Which fields are meaningful
// depends on Kind; this mirrors the teacher's tagged-variant State struct
// in nfa.State rather than using a Go interface with one concrete type
// per variant, keeping the tree allocation-light and switch-dispatched.
type Node struct {
	Kind Kind

	// KindLiteral
	Lit rune

	// KindCharClass
	Ranges   []RuneRange
	Negated  bool

	// KindAnchor
	Anchor AnchorKind

	// KindGroup: Sub[0] is the body. GroupIndex is the zero-based capture
	// index in source order, or -1 for a non-capturing group (?:...).
	GroupIndex int

	// KindAlternation / KindConcatenation: two or more children.
	// KindGroup / KindQuantified: exactly one child, in Sub[0].
	Sub []*Node

	// KindQuantified
	Min, Max int
	Lazy     bool
}

// NewLiteral returns a literal-match node.
func NewLiteral(r rune) *Node { return &Node{Kind: KindLiteral, Lit: r} }

// NewAnyChar returns a dot-match node.
func NewAnyChar() *Node { return &Node{Kind: KindAnyChar} }

// NewCharClass returns a character-class node.
func NewCharClass(ranges []RuneRange, negated bool) *Node {
	return &Node{Kind: KindCharClass, Ranges: ranges, Negated: negated}
}

// NewAnchor returns a zero-width assertion node.
func NewAnchor(kind AnchorKind) *Node { return &Node{Kind: KindAnchor, Anchor: kind} }

// NewEpsilon returns an empty-match node.
func NewEpsilon() *Node { return &Node{Kind: KindEpsilon} }

// NewGroup wraps body in a group. groupIndex is -1 for non-capturing groups.
func NewGroup(groupIndex int, body *Node) *Node {
	return &Node{Kind: KindGroup, GroupIndex: groupIndex, Sub: []*Node{body}}
}

// NewConcatenation concatenates parts in order. A single part is returned
// unwrapped; zero parts returns an Epsilon node.
func NewConcatenation(parts []*Node) *Node {
	switch len(parts) {
	case 0:
		return NewEpsilon()
	case 1:
		return parts[0]
	default:
		return &Node{Kind: KindConcatenation, Sub: parts}
	}
}

// NewAlternation alternates among branches in order (earlier branches have
// priority under greedy semantics). A single branch is returned unwrapped.
func NewAlternation(branches []*Node) *Node {
	if len(branches) == 1 {
		return branches[0]
	}
	return &Node{Kind: KindAlternation, Sub: branches}
}

// NewQuantified repeats body min..max times (max == Unbounded for no
// upper limit). lazy reverses the greedy preference.
func NewQuantified(body *Node, min, max int, lazy bool) *Node {
	return &Node{Kind: KindQuantified, Sub: []*Node{body}, Min: min, Max: max, Lazy: lazy}
}
