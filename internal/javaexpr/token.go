package javaexpr

import "fmt"

// Position points into the original source, zero-based offset with
// one-based line and column.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers a source region. End is exclusive.
type Span struct {
	Start Position
	End   Position
}

// TokenKind classifies lexer tokens.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenNumber
	TokenString
	TokenChar

	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenDot
	TokenComma
	TokenSemi
	TokenQuestion
	TokenColon

	TokenNot      // !
	TokenAndAnd   // &&
	TokenOrOr     // ||
	TokenEq       // ==
	TokenNotEq    // !=
	TokenLt       // <
	TokenLtEq     // <=
	TokenGt       // >
	TokenGtEq     // >=
	TokenPlus     // +
	TokenMinus    // -
	TokenStar     // *
	TokenSlash    // /
	TokenPercent  // %
	TokenAssign   // =
	TokenBitAnd   // &
	TokenBitOr    // |

	// TokenOther covers characters the expression grammar never uses
	// (annotations, generics glue, etc). The extractor steps over them.
	TokenOther
)

// Token is a single lexeme with its source position.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}

// End returns the position one past the token text. Tokens never span lines.
func (t Token) End() Position {
	return Position{
		Offset: t.Pos.Offset + len(t.Text),
		Line:   t.Pos.Line,
		Column: t.Pos.Column + len(t.Text),
	}
}

// Comment is a line or block comment found while lexing a file.
type Comment struct {
	Text string
	Line int
}
