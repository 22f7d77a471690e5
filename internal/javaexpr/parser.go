package javaexpr

import "fmt"

// Parse lexes and parses a single Java expression.
func Parse(src string) (*Tree, error) {
	lexer := NewLexer(src)
	return ParseTokens(src, lexer.Tokenize())
}

// ParseTokens parses one expression from toks. The token positions must
// point into src. The whole token list must be consumed.
func ParseTokens(src string, toks []Token) (*Tree, error) {
	p := &parser{src: src, toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.cur(); tok.Kind != TokenEOF {
		return nil, fmt.Errorf("unexpected %q at %s", tok.Text, tok.Pos)
	}
	return NewTree(src, root), nil
}

type parser struct {
	src  string
	toks []Token
	pos  int
}

func (p *parser) cur() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: TokenEOF, Pos: p.prevEnd()}
	}
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	tok := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *parser) prevEnd() Position {
	if p.pos == 0 || len(p.toks) == 0 {
		return Position{Line: 1, Column: 1}
	}
	i := p.pos - 1
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i].End()
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	tok := p.cur()
	if tok.Kind != kind {
		return tok, fmt.Errorf("expected %s, found %q at %s", what, tok.Text, tok.Pos)
	}
	return p.next(), nil
}

func (p *parser) spanFrom(start Position) Span {
	return Span{Start: start, End: p.prevEnd()}
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseConditional()
}

func (p *parser) parseConditional() (Expr, error) {
	start := p.cur().Pos
	cond, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != TokenQuestion {
		return cond, nil
	}
	p.next()
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenColon, "':'"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Conditional{node: node{p.spanFrom(start)}, Cond: cond, Then: then, Else: els}, nil
}

// binaryOps maps token kinds to operators with their precedence level.
// Higher binds tighter.
var binaryOps = map[TokenKind]struct {
	op   BinaryOp
	prec int
}{
	TokenOrOr:    {OpOr, 1},
	TokenAndAnd:  {OpAnd, 2},
	TokenEq:      {OpEq, 3},
	TokenNotEq:   {OpNeq, 3},
	TokenLt:      {OpLt, 4},
	TokenLtEq:    {OpLte, 4},
	TokenGt:      {OpGt, 4},
	TokenGtEq:    {OpGte, 4},
	TokenPlus:    {OpAdd, 5},
	TokenMinus:   {OpSub, 5},
	TokenStar:    {OpMul, 6},
	TokenSlash:   {OpDiv, 6},
	TokenPercent: {OpMod, 6},
}

func (p *parser) parseBinary(minPrec int) (Expr, error) {
	start := p.cur().Pos
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur()
		if tok.Kind == TokenIdent && tok.Text == "instanceof" {
			return nil, fmt.Errorf("instanceof is not supported at %s", tok.Pos)
		}
		entry, ok := binaryOps[tok.Kind]
		if !ok || entry.prec < minPrec {
			return left, nil
		}
		p.next()
		right, err := p.parseBinary(entry.prec + 1)
		if err != nil {
			return nil, err
		}
		left = &Binary{node: node{p.spanFrom(start)}, Op: entry.op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	start := p.cur().Pos
	switch p.cur().Kind {
	case TokenNot:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{node: node{p.spanFrom(start)}, Op: OpNot, Operand: operand}, nil
	case TokenMinus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{node: node{p.spanFrom(start)}, Op: OpNeg, Operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Expr, error) {
	start := p.cur().Pos
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokenDot {
		p.next()
		name, err := p.expect(TokenIdent, "member name")
		if err != nil {
			return nil, err
		}
		switch name.Text {
		case "this", "super":
			qualifier, ok := identChain(expr)
			if !ok {
				return nil, fmt.Errorf("invalid qualifier for %s at %s", name.Text, name.Pos)
			}
			if name.Text == "this" {
				expr = &This{node: node{p.spanFrom(start)}, Qualifier: qualifier}
			} else {
				expr = &Super{node: node{p.spanFrom(start)}, Qualifier: qualifier}
			}
		default:
			if p.cur().Kind == TokenLParen {
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				expr = &Call{node: node{p.spanFrom(start)}, Qualifier: expr, Name: name.Text, Args: args}
			} else {
				expr = &Ident{node: node{p.spanFrom(start)}, Qualifier: expr, Name: name.Text}
			}
		}
	}
	return expr, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.cur()
	start := tok.Pos
	switch tok.Kind {
	case TokenLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return &Paren{node: node{p.spanFrom(start)}, Inner: inner}, nil

	case TokenIdent:
		switch tok.Text {
		case "null":
			p.next()
			return &Literal{node: node{p.spanFrom(start)}, Kind: LitNull, Text: tok.Text}, nil
		case "true", "false":
			p.next()
			return &Literal{node: node{p.spanFrom(start)}, Kind: LitBool, Text: tok.Text}, nil
		case "this":
			p.next()
			return &This{node: node{p.spanFrom(start)}}, nil
		case "super":
			p.next()
			return &Super{node: node{p.spanFrom(start)}}, nil
		case "new", "instanceof":
			return nil, fmt.Errorf("%s is not supported at %s", tok.Text, tok.Pos)
		}
		p.next()
		if p.cur().Kind == TokenLParen {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &Call{node: node{p.spanFrom(start)}, Name: tok.Text, Args: args}, nil
		}
		return &Ident{node: node{p.spanFrom(start)}, Name: tok.Text}, nil

	case TokenNumber:
		p.next()
		return &Literal{node: node{p.spanFrom(start)}, Kind: LitNumber, Text: tok.Text}, nil
	case TokenString:
		p.next()
		return &Literal{node: node{p.spanFrom(start)}, Kind: LitString, Text: tok.Text}, nil
	case TokenChar:
		p.next()
		return &Literal{node: node{p.spanFrom(start)}, Kind: LitChar, Text: tok.Text}, nil
	}
	return nil, fmt.Errorf("unexpected %q at %s", tok.Text, tok.Pos)
}

func (p *parser) parseArgs() ([]Expr, error) {
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	args := []Expr{}
	if p.cur().Kind == TokenRParen {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Kind == TokenComma {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}

// identChain flattens a pure identifier chain into its dotted text, for
// qualified this/super expressions. Calls and other shapes do not qualify.
func identChain(e Expr) (string, bool) {
	id, ok := e.(*Ident)
	if !ok {
		return "", false
	}
	if id.Qualifier == nil {
		return id.Name, true
	}
	prefix, ok := identChain(id.Qualifier)
	if !ok {
		return "", false
	}
	return prefix + "." + id.Name, true
}
