package ast

// Parser consumes a Lexer's token stream and builds a Node tree following
// the precedence grammar documented on the package comment. It is a
// straightforward recursive-descent parser with one token of lookahead
// held in cur.
type Parser struct {
	lex     *Lexer
	pattern string
	flags   Flag
	cur     Token

	groupCount int
}

// Parse parses pattern under the given flags and returns the root Node
// plus the number of capturing groups found (not counting group 0, the
// whole match).
func Parse(pattern string, flags Flag) (*Node, int, error) {
	p := &Parser{lex: NewLexer(pattern), pattern: pattern, flags: flags}
	if err := p.next(); err != nil {
		return nil, 0, err
	}

	root, err := p.parseAlternation()
	if err != nil {
		return nil, 0, err
	}

	switch p.cur.Kind {
	case TokEOF:
		return root, p.groupCount, nil
	case TokRParen:
		return nil, 0, p.err(UnbalancedParen, p.cur.Pos)
	default:
		if isQuantifierTok(p.cur.Kind) {
			return nil, 0, p.err(InvalidQuantifier, p.cur.Pos)
		}
		return nil, 0, p.err(UnbalancedParen, p.cur.Pos)
	}
}

func (p *Parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) err(kind ErrorKind, pos int) error {
	return &ParseError{Kind: kind, Pos: pos, Pattern: p.pattern}
}

func isAtomStartTok(k TokenKind) bool {
	switch k {
	case TokLiteral, TokAny, TokClass, TokAnchorCaret, TokAnchorDollar,
		TokWordBoundary, TokNotWordBoundary, TokStartText, TokEndText,
		TokLParen, TokNonCapLParen:
		return true
	default:
		return false
	}
}

func isQuantifierTok(k TokenKind) bool {
	switch k {
	case TokStar, TokPlus, TokQuestion, TokCounted:
		return true
	default:
		return false
	}
}

// parseAlternation handles the lowest-precedence '|' operator.
func (p *Parser) parseAlternation() (*Node, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	branches := []*Node{first}
	for p.cur.Kind == TokPipe {
		if err := p.next(); err != nil {
			return nil, err
		}
		branch, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	return NewAlternation(branches), nil
}

// parseConcatenation handles implicit sequencing of quantified atoms.
func (p *Parser) parseConcatenation() (*Node, error) {
	var parts []*Node
	for {
		if isQuantifierTok(p.cur.Kind) {
			// A quantifier with nothing before it in this concatenation:
			// either truly leading (e.g. "*abc") or stacked directly on
			// a previous quantifier (e.g. "a*+").
			return nil, p.err(InvalidQuantifier, p.cur.Pos)
		}
		if !isAtomStartTok(p.cur.Kind) {
			break
		}
		n, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	return NewConcatenation(parts), nil
}

// parseQuantified parses a single atom and at most one trailing quantifier.
func (p *Parser) parseQuantified() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	switch p.cur.Kind {
	case TokStar:
		n := NewQuantified(atom, 0, Unbounded, p.cur.Lazy)
		return n, p.next()
	case TokPlus:
		n := NewQuantified(atom, 1, Unbounded, p.cur.Lazy)
		return n, p.next()
	case TokQuestion:
		n := NewQuantified(atom, 0, 1, p.cur.Lazy)
		return n, p.next()
	case TokCounted:
		n := NewQuantified(atom, p.cur.Min, p.cur.Max, p.cur.Lazy)
		return n, p.next()
	default:
		return atom, nil
	}
}

func (p *Parser) parseAtom() (*Node, error) {
	tok := p.cur

	switch tok.Kind {
	case TokLiteral:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewLiteral(tok.Lit), nil

	case TokAny:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewAnyChar(), nil

	case TokClass:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewCharClass(tok.Ranges, tok.Negated), nil

	case TokAnchorCaret:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewAnchor(AnchorCaret), nil

	case TokAnchorDollar:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewAnchor(AnchorDollar), nil

	case TokWordBoundary:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewAnchor(AnchorWordBoundary), nil

	case TokNotWordBoundary:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewAnchor(AnchorNotWordBoundary), nil

	case TokStartText:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewAnchor(AnchorStartText), nil

	case TokEndText:
		if err := p.next(); err != nil {
			return nil, err
		}
		return NewAnchor(AnchorEndText), nil

	case TokLParen:
		return p.parseGroup(tok.Pos, true)

	case TokNonCapLParen:
		return p.parseGroup(tok.Pos, false)

	default:
		return nil, p.err(UnbalancedParen, tok.Pos)
	}
}

func (p *Parser) parseGroup(openPos int, capturing bool) (*Node, error) {
	groupIndex := -1
	if capturing {
		groupIndex = p.groupCount
		p.groupCount++
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	body, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}

	if p.cur.Kind != TokRParen {
		return nil, p.err(UnbalancedParen, openPos)
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	return NewGroup(groupIndex, body), nil
}
