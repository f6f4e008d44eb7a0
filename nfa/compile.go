package nfa

import (
	"fmt"

	"github.com/erastus-murungi/reg/ast"
)

// fragment is a partially-wired piece of automaton: a start state and an
// accept state with no outgoing transitions yet. Compile wires fragments
// together the way the teacher's Compiler threads (start, end) pairs
// through compileRegexp, except accept states here never need Patch: a
// later AddTransition call against an already-known accept state ID does
// the same job without forward-reference bookkeeping.
type fragment struct {
	start, accept StateID
}

// compiler walks an ast.Node tree and emits a Program via a Builder, one
// fragment per node, composed the way the teacher's Compiler composes
// (start, end) pairs over regexp/syntax.Regexp nodes.
type compiler struct {
	b     *Builder
	flags ast.Flag
}

// Compile performs Thompson construction over root (spec §4.3), producing
// a rune-level Program ready for the match package's three execution
// strategies. groupCount is the number of capturing groups ast.Parse
// returned (not counting group 0, the whole match).
func Compile(root *ast.Node, groupCount int, flags ast.Flag) (*Program, error) {
	c := &compiler{b: NewBuilder(), flags: flags}
	frag, err := c.compileNode(root)
	if err != nil {
		return nil, err
	}
	c.b.SetAccepts(frag.accept)
	return c.b.Build(frag.start, groupCount), nil
}

var epsilon = Matcher{Kind: MEpsilon}

func (c *compiler) compileNode(n *ast.Node) (fragment, error) {
	switch n.Kind {
	case ast.KindEpsilon:
		return c.compileLeaf(epsilon), nil
	case ast.KindLiteral:
		return c.compileLeaf(Matcher{Kind: MLiteral, Lit: n.Lit, FoldCase: c.flags.Has(ast.IgnoreCase)}), nil
	case ast.KindAnyChar:
		kind := MAnyCharNoNL
		if c.flags.Has(ast.DotAll) {
			kind = MAnyChar
		}
		return c.compileLeaf(Matcher{Kind: kind}), nil
	case ast.KindCharClass:
		return c.compileLeaf(Matcher{
			Kind: MClass, Ranges: n.Ranges, Negated: n.Negated,
			FoldCase: c.flags.Has(ast.IgnoreCase),
		}), nil
	case ast.KindAnchor:
		return c.compileLeaf(c.anchorMatcher(n.Anchor)), nil
	case ast.KindGroup:
		return c.compileGroup(n)
	case ast.KindConcatenation:
		return c.compileConcatenation(n.Sub)
	case ast.KindAlternation:
		return c.compileAlternation(n.Sub)
	case ast.KindQuantified:
		return c.compileQuantified(n)
	default:
		return fragment{}, fmt.Errorf("nfa: compile: unhandled ast.Kind %d", n.Kind)
	}
}

// anchorMatcher resolves the Multiline-dependent choice between
// StartOfString/StartOfLine (and the End variants) that the AST
// deliberately leaves open (see ast.AnchorCaret/ast.AnchorDollar).
func (c *compiler) anchorMatcher(a ast.AnchorKind) Matcher {
	multiline := c.flags.Has(ast.Multiline)
	switch a {
	case ast.AnchorCaret:
		if multiline {
			return Matcher{Kind: MStartOfLine}
		}
		return Matcher{Kind: MStartOfString}
	case ast.AnchorDollar:
		if multiline {
			return Matcher{Kind: MEndOfLine}
		}
		return Matcher{Kind: MEndOfString}
	case ast.AnchorWordBoundary:
		return Matcher{Kind: MWordBoundary}
	case ast.AnchorNotWordBoundary:
		return Matcher{Kind: MNotWordBoundary}
	case ast.AnchorStartText:
		return Matcher{Kind: MStartOfString}
	case ast.AnchorEndText:
		return Matcher{Kind: MEndOfString}
	default:
		return Matcher{Kind: MEpsilon}
	}
}

// compileLeaf builds the minimal one-transition fragment shared by every
// atomic matcher: literal, any-char, class, anchor, or epsilon.
func (c *compiler) compileLeaf(m Matcher) fragment {
	start := c.b.NewState()
	accept := c.b.NewState()
	c.b.AddTransition(start, m, accept)
	return fragment{start, accept}
}

// compileGroup wires MGroupEntry/MGroupExit markers around the body for
// a capturing group; a non-capturing group (GroupIndex == -1) contributes
// no states of its own.
func (c *compiler) compileGroup(n *ast.Node) (fragment, error) {
	body, err := c.compileNode(n.Sub[0])
	if err != nil {
		return fragment{}, err
	}
	if n.GroupIndex < 0 {
		return body, nil
	}
	start := c.b.NewState()
	accept := c.b.NewState()
	c.b.AddTransition(start, Matcher{Kind: MGroupEntry, GroupIndex: n.GroupIndex}, body.start)
	c.b.AddTransition(body.accept, Matcher{Kind: MGroupExit, GroupIndex: n.GroupIndex}, accept)
	return fragment{start, accept}, nil
}

// compileConcatenation chains fragments accept-to-start via epsilon.
func (c *compiler) compileConcatenation(parts []*ast.Node) (fragment, error) {
	first, err := c.compileNode(parts[0])
	if err != nil {
		return fragment{}, err
	}
	prev := first
	for _, p := range parts[1:] {
		next, err := c.compileNode(p)
		if err != nil {
			return fragment{}, err
		}
		c.b.AddTransition(prev.accept, epsilon, next.start)
		prev = next
	}
	return fragment{first.start, prev.accept}, nil
}

// compileAlternation fans a new start state out to every branch in
// source order (earlier branches keep transition-list priority) and
// joins every branch's accept into a shared accept state.
func (c *compiler) compileAlternation(branches []*ast.Node) (fragment, error) {
	start := c.b.NewState()
	accept := c.b.NewState()
	for _, br := range branches {
		frag, err := c.compileNode(br)
		if err != nil {
			return fragment{}, err
		}
		c.b.AddTransition(start, epsilon, frag.start)
		c.b.AddTransition(frag.accept, epsilon, accept)
	}
	return fragment{start, accept}, nil
}

// compileQuantified unrolls min mandatory copies of the body, followed
// either by a single looping copy (max == Unbounded) or by max-min
// optional copies chained through a shared exit (spec §4.3). A lazy
// quantifier reverses the order the two branches of each split are
// added in, so a BFS/backtracking engine explores "skip" before "take",
// and marks the split state Lazy for engines that inspect it directly.
func (c *compiler) compileQuantified(n *ast.Node) (fragment, error) {
	body := n.Sub[0]

	mandatory := make([]fragment, 0, n.Min)
	for i := 0; i < n.Min; i++ {
		f, err := c.compileNode(body)
		if err != nil {
			return fragment{}, err
		}
		mandatory = append(mandatory, f)
	}

	tailStart, tailAccept, err := c.compileQuantifierTail(body, n.Min, n.Max, n.Lazy)
	if err != nil {
		return fragment{}, err
	}

	if len(mandatory) == 0 {
		return fragment{tailStart, tailAccept}, nil
	}
	for i := 0; i < len(mandatory)-1; i++ {
		c.b.AddTransition(mandatory[i].accept, epsilon, mandatory[i+1].start)
	}
	c.b.AddTransition(mandatory[len(mandatory)-1].accept, epsilon, tailStart)
	return fragment{mandatory[0].start, tailAccept}, nil
}

func (c *compiler) compileQuantifierTail(body *ast.Node, min, max int, lazy bool) (StateID, StateID, error) {
	if max == ast.Unbounded {
		loopFrag, err := c.compileNode(body)
		if err != nil {
			return NullState, NullState, err
		}
		split := c.b.NewState()
		exit := c.b.NewState()
		c.addSplitEdges(split, loopFrag.start, exit, lazy)
		c.b.AddTransition(loopFrag.accept, epsilon, split)
		return split, exit, nil
	}

	exit := c.b.NewState()
	next := exit
	for i := 0; i < max-min; i++ {
		copyFrag, err := c.compileNode(body)
		if err != nil {
			return NullState, NullState, err
		}
		split := c.b.NewState()
		c.addSplitEdges(split, copyFrag.start, next, lazy)
		c.b.AddTransition(copyFrag.accept, epsilon, next)
		next = split
	}
	return next, exit, nil
}

// addSplitEdges adds the "take the repetition" and "skip it" epsilon
// edges from split in greedy (take first) or lazy (skip first) order.
func (c *compiler) addSplitEdges(split, take, skip StateID, lazy bool) {
	if lazy {
		c.b.SetLazy(split)
		c.b.AddTransition(split, epsilon, skip)
		c.b.AddTransition(split, epsilon, take)
		return
	}
	c.b.AddTransition(split, epsilon, take)
	c.b.AddTransition(split, epsilon, skip)
}
