package javaexpr

import "strings"

// Expr represents a node in a Java expression tree. Nodes are immutable
// once a Tree has been built; analysis code only reads them.
type Expr interface {
	isExpr()
	Span() Span
	String() string
}

type node struct {
	span Span
}

func (n node) Span() Span { return n.span }

// Ident is a possibly qualified name reference: x, a.b, Outer.field.
// A nil Qualifier means a simple name.
type Ident struct {
	node
	Qualifier Expr
	Name      string
}

func (*Ident) isExpr() {}
func (e *Ident) String() string {
	if e.Qualifier == nil {
		return e.Name
	}
	return e.Qualifier.String() + "." + e.Name
}

// This is a this-expression, optionally qualified: this, Outer.this.
type This struct {
	node
	Qualifier string
}

func (*This) isExpr() {}
func (e *This) String() string {
	if e.Qualifier == "" {
		return "this"
	}
	return e.Qualifier + ".this"
}

// Super is a super-expression, optionally qualified.
type Super struct {
	node
	Qualifier string
}

func (*Super) isExpr() {}
func (e *Super) String() string {
	if e.Qualifier == "" {
		return "super"
	}
	return e.Qualifier + ".super"
}

// Call is a method invocation. A nil Qualifier is an implicit-this call.
type Call struct {
	node
	Qualifier Expr
	Name      string
	Args      []Expr
}

func (*Call) isExpr() {}
func (e *Call) String() string {
	var sb strings.Builder
	if e.Qualifier != nil {
		sb.WriteString(e.Qualifier.String())
		sb.WriteByte('.')
	}
	sb.WriteString(e.Name)
	sb.WriteByte('(')
	for i, arg := range e.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// BinaryOp enumerates binary operators.
type BinaryOp int

const (
	_ BinaryOp = iota
	OpAnd
	OpOr
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}

// Binary is a binary operation.
type Binary struct {
	node
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*Binary) isExpr() {}
func (e *Binary) String() string {
	return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
}

// UnaryOp enumerates prefix operators.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
)

func (op UnaryOp) String() string {
	if op == OpNot {
		return "!"
	}
	return "-"
}

// Unary is a prefix operation.
type Unary struct {
	node
	Op      UnaryOp
	Operand Expr
}

func (*Unary) isExpr() {}
func (e *Unary) String() string {
	return e.Op.String() + e.Operand.String()
}

// Conditional is a ternary expression: Cond ? Then : Else.
type Conditional struct {
	node
	Cond Expr
	Then Expr
	Else Expr
}

func (*Conditional) isExpr() {}
func (e *Conditional) String() string {
	return e.Cond.String() + " ? " + e.Then.String() + " : " + e.Else.String()
}

// Paren is an explicitly parenthesized expression. Matchers treat it as
// transparent; Unparen looks through it.
type Paren struct {
	node
	Inner Expr
}

func (*Paren) isExpr() {}
func (e *Paren) String() string {
	return "(" + e.Inner.String() + ")"
}

// LiteralKind classifies literal expressions.
type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitBool
	LitNumber
	LitString
	LitChar
)

// Literal is a constant: null, true, 42, "s", 'c'.
type Literal struct {
	node
	Kind LiteralKind
	Text string
}

func (*Literal) isExpr() {}
func (e *Literal) String() string {
	return e.Text
}

// IsNull reports whether the literal is the null literal.
func (e *Literal) IsNull() bool {
	return e.Kind == LitNull
}

// Unparen strips any number of enclosing parentheses. Safe on nil.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*Paren)
		if !ok {
			return e
		}
		e = p.Inner
	}
}

// Walk traverses e in preorder. If fn returns false the children of the
// current node are skipped.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch v := e.(type) {
	case *Ident:
		Walk(v.Qualifier, fn)
	case *Call:
		Walk(v.Qualifier, fn)
		for _, arg := range v.Args {
			Walk(arg, fn)
		}
	case *Binary:
		Walk(v.Left, fn)
		Walk(v.Right, fn)
	case *Unary:
		Walk(v.Operand, fn)
	case *Conditional:
		Walk(v.Cond, fn)
		Walk(v.Then, fn)
		Walk(v.Else, fn)
	case *Paren:
		Walk(v.Inner, fn)
	}
}

// Tree is one parsed expression together with the source it was cut from
// and parent links for upward navigation.
type Tree struct {
	Root    Expr
	source  string
	parents map[Expr]Expr
}

// NewTree builds a Tree over root. source must be the text the node
// spans point into (usually the whole file).
func NewTree(source string, root Expr) *Tree {
	t := &Tree{Root: root, source: source, parents: make(map[Expr]Expr)}
	Walk(root, func(e Expr) bool {
		switch v := e.(type) {
		case *Ident:
			t.link(v.Qualifier, e)
		case *Call:
			t.link(v.Qualifier, e)
			for _, arg := range v.Args {
				t.link(arg, e)
			}
		case *Binary:
			t.link(v.Left, e)
			t.link(v.Right, e)
		case *Unary:
			t.link(v.Operand, e)
		case *Conditional:
			t.link(v.Cond, e)
			t.link(v.Then, e)
			t.link(v.Else, e)
		case *Paren:
			t.link(v.Inner, e)
		}
		return true
	})
	return t
}

func (t *Tree) link(child, parent Expr) {
	if child != nil {
		t.parents[child] = parent
	}
}

// Parent returns the parent of e, or nil for the root.
func (t *Tree) Parent(e Expr) Expr {
	return t.parents[e]
}

// Text returns the verbatim source text of e.
func (t *Tree) Text(e Expr) string {
	sp := e.Span()
	if sp.Start.Offset < 0 || sp.End.Offset > len(t.source) || sp.Start.Offset > sp.End.Offset {
		return e.String()
	}
	return t.source[sp.Start.Offset:sp.End.Offset]
}

// File is the analysis view of one Java source file: every expression
// the extractor could parse, plus comments for suppression handling.
type File struct {
	Filename string
	Source   string
	Trees    []*Tree
	Comments []Comment
}
