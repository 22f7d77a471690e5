package javaexpr

import "unicode"

// Lexer scans Java source text and produces tokens. It recognizes the
// subset the expression parser needs and classifies everything else as
// TokenOther so whole files can be scanned without failing.
type Lexer struct {
	input    string
	position int
	line     int
	column   int
	tokens   []Token
	comments []Comment
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Tokenize processes the entire input and returns the token list,
// terminated by a TokenEOF token. Comments are collected separately.
func (l *Lexer) Tokenize() []Token {
	for l.position < len(l.input) {
		c := l.input[l.position]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()

		case c == '/' && l.peek(1) == '/':
			l.lexLineComment()

		case c == '/' && l.peek(1) == '*':
			l.lexBlockComment()

		case c == '"':
			l.lexQuoted('"', TokenString)

		case c == '\'':
			l.lexQuoted('\'', TokenChar)

		case isDigit(c):
			l.lexNumber()

		case isIdentStart(c):
			l.lexIdent()

		default:
			l.lexOperator()
		}
	}
	l.add(TokenEOF, "")
	return l.tokens
}

// Comments returns the comments collected during Tokenize.
func (l *Lexer) Comments() []Comment {
	return l.comments
}

func (l *Lexer) pos() Position {
	return Position{Offset: l.position, Line: l.line, Column: l.column}
}

func (l *Lexer) peek(n int) byte {
	if l.position+n >= len(l.input) {
		return 0
	}
	return l.input[l.position+n]
}

func (l *Lexer) advance() {
	if l.input[l.position] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
}

func (l *Lexer) add(kind TokenKind, text string) {
	pos := l.pos()
	pos.Offset -= len(text)
	pos.Column -= len(text)
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text, Pos: pos})
}

func (l *Lexer) lexLineComment() {
	start := l.position
	line := l.line
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		l.advance()
	}
	l.comments = append(l.comments, Comment{Text: l.input[start:l.position], Line: line})
}

func (l *Lexer) lexBlockComment() {
	start := l.position
	line := l.line
	l.advance()
	l.advance()
	for l.position < len(l.input) {
		if l.input[l.position] == '*' && l.peek(1) == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
	l.comments = append(l.comments, Comment{Text: l.input[start:l.position], Line: line})
}

func (l *Lexer) lexQuoted(quote byte, kind TokenKind) {
	pos := l.pos()
	start := l.position
	l.advance()
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == '\\' && l.position+1 < len(l.input) {
			l.advance()
			l.advance()
			continue
		}
		l.advance()
		if c == quote {
			break
		}
	}
	l.tokens = append(l.tokens, Token{Kind: kind, Text: l.input[start:l.position], Pos: pos})
}

func (l *Lexer) lexNumber() {
	pos := l.pos()
	start := l.position
	for l.position < len(l.input) {
		c := l.input[l.position]
		if isDigit(c) || isIdentPart(c) {
			l.advance()
			continue
		}
		// fractional part; a dot followed by a digit belongs to the number,
		// otherwise it is a member access
		if c == '.' && isDigit(l.peek(1)) {
			l.advance()
			continue
		}
		break
	}
	l.tokens = append(l.tokens, Token{Kind: TokenNumber, Text: l.input[start:l.position], Pos: pos})
}

func (l *Lexer) lexIdent() {
	pos := l.pos()
	start := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.advance()
	}
	l.tokens = append(l.tokens, Token{Kind: TokenIdent, Text: l.input[start:l.position], Pos: pos})
}

func (l *Lexer) lexOperator() {
	c := l.input[l.position]
	two := ""
	if l.position+1 < len(l.input) {
		two = l.input[l.position : l.position+2]
	}

	emit := func(kind TokenKind, text string) {
		pos := l.pos()
		for range text {
			l.advance()
		}
		l.tokens = append(l.tokens, Token{Kind: kind, Text: text, Pos: pos})
	}

	switch two {
	case "&&":
		emit(TokenAndAnd, two)
		return
	case "||":
		emit(TokenOrOr, two)
		return
	case "==":
		emit(TokenEq, two)
		return
	case "!=":
		emit(TokenNotEq, two)
		return
	case "<=":
		emit(TokenLtEq, two)
		return
	case ">=":
		emit(TokenGtEq, two)
		return
	}

	switch c {
	case '(':
		emit(TokenLParen, "(")
	case ')':
		emit(TokenRParen, ")")
	case '{':
		emit(TokenLBrace, "{")
	case '}':
		emit(TokenRBrace, "}")
	case '[':
		emit(TokenLBracket, "[")
	case ']':
		emit(TokenRBracket, "]")
	case '.':
		emit(TokenDot, ".")
	case ',':
		emit(TokenComma, ",")
	case ';':
		emit(TokenSemi, ";")
	case '?':
		emit(TokenQuestion, "?")
	case ':':
		emit(TokenColon, ":")
	case '!':
		emit(TokenNot, "!")
	case '<':
		emit(TokenLt, "<")
	case '>':
		emit(TokenGt, ">")
	case '+':
		emit(TokenPlus, "+")
	case '-':
		emit(TokenMinus, "-")
	case '*':
		emit(TokenStar, "*")
	case '/':
		emit(TokenSlash, "/")
	case '%':
		emit(TokenPercent, "%")
	case '=':
		emit(TokenAssign, "=")
	case '&':
		emit(TokenBitAnd, "&")
	case '|':
		emit(TokenBitOr, "|")
	default:
		emit(TokenOther, string(c))
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
