package javaexpr

// ExtractFile scans Java source and parses every candidate expression
// region: if/while conditions, return values and assignment right-hand
// sides. Regions that do not parse as expressions are skipped; the
// analysis treats an unparseable region the same as one with no finding.
func ExtractFile(filename string, src []byte) *File {
	source := string(src)
	lexer := NewLexer(source)
	toks := lexer.Tokenize()

	file := &File{
		Filename: filename,
		Source:   source,
		Comments: lexer.Comments(),
	}

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch {
		case tok.Kind == TokenIdent && (tok.Text == "if" || tok.Text == "while"):
			if i+1 < len(toks) && toks[i+1].Kind == TokenLParen {
				region, end := parenRegion(toks, i+1)
				file.parseRegion(region)
				i = end
			}

		case tok.Kind == TokenIdent && tok.Text == "return":
			region, end := statementRegion(toks, i+1)
			file.parseRegion(region)
			i = end

		case tok.Kind == TokenAssign:
			region, end := statementRegion(toks, i+1)
			file.parseRegion(region)
			i = end
		}
	}
	return file
}

func (f *File) parseRegion(region []Token) {
	if len(region) == 0 {
		return
	}
	tree, err := ParseTokens(f.Source, region)
	if err != nil {
		return
	}
	f.Trees = append(f.Trees, tree)
}

// parenRegion returns the tokens strictly inside the balanced paren pair
// opening at toks[open], and the index of the closing paren.
func parenRegion(toks []Token, open int) ([]Token, int) {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
			if depth == 0 {
				return toks[open+1 : i], i
			}
		case TokenEOF:
			return nil, i
		}
	}
	return nil, len(toks) - 1
}

// statementRegion returns the tokens from start up to the terminating
// semicolon at paren depth zero, and the index of that semicolon. A brace
// or EOF also ends the region; such regions rarely parse and are dropped.
func statementRegion(toks []Token, start int) ([]Token, int) {
	depth := 0
	for i := start; i < len(toks); i++ {
		switch toks[i].Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		case TokenSemi:
			if depth == 0 {
				return toks[start:i], i
			}
		case TokenLBrace, TokenRBrace, TokenEOF:
			return toks[start:i], i
		}
	}
	return toks[start:], len(toks) - 1
}
