package lints

import "github.com/objlint/objlint/internal/javaexpr"

// negated is an expression with at most one leading logical-not stripped.
// equal is true when no negation was crossed.
type negated struct {
	expr  javaexpr.Expr
	equal bool
}

// unwrapNegation strips parentheses, then a single '!' if present, then
// the parentheses of its operand. Every expression has an unwrap result.
func unwrapNegation(e javaexpr.Expr) negated {
	expr := javaexpr.Unparen(e)
	if not, ok := expr.(*javaexpr.Unary); ok && not.Op == javaexpr.OpNot {
		return negated{expr: javaexpr.Unparen(not.Operand), equal: false}
	}
	return negated{expr: expr, equal: true}
}

// referenceFromNullComparison recognizes a comparison of a name chain
// against the null literal, with the == operator when expectEquals is
// true and != otherwise, in either operand order. It returns the
// non-null operand, or nil when the shape does not match.
func referenceFromNullComparison(e javaexpr.Expr, expectEquals bool) javaexpr.Expr {
	bin, ok := javaexpr.Unparen(e).(*javaexpr.Binary)
	if !ok {
		return nil
	}
	op := javaexpr.OpEq
	if !expectEquals {
		op = javaexpr.OpNeq
	}
	if bin.Op != op {
		return nil
	}
	left := javaexpr.Unparen(bin.Left)
	right := javaexpr.Unparen(bin.Right)
	switch {
	case isNullLiteral(right):
		return asReference(left)
	case isNullLiteral(left):
		return asReference(right)
	}
	return nil
}

func isNullLiteral(e javaexpr.Expr) bool {
	lit, ok := e.(*javaexpr.Literal)
	return ok && lit.IsNull()
}

// asReference keeps only expressions that can carry a reference path.
func asReference(e javaexpr.Expr) javaexpr.Expr {
	switch e.(type) {
	case *javaexpr.Ident, *javaexpr.This, *javaexpr.Super:
		return e
	}
	return nil
}

// nullCheckMatch is a recognized null comparison. equal is true for the
// "is null" sense, counting any leading negation: x == null and
// !(x != null) are both equal=true.
type nullCheckMatch struct {
	compared javaexpr.Expr
	equal    bool
}

func matchNullCheck(e javaexpr.Expr) *nullCheckMatch {
	if e == nil {
		return nil
	}
	n := unwrapNegation(e)
	if ref := referenceFromNullComparison(n.expr, true); ref != nil {
		return &nullCheckMatch{compared: ref, equal: n.equal}
	}
	if ref := referenceFromNullComparison(n.expr, false); ref != nil {
		return &nullCheckMatch{compared: ref, equal: !n.equal}
	}
	return nil
}

// equalsCheckMatch is a recognized, possibly negated, qualified
// equals-call with exactly one argument. equal is false when the call
// was negated.
type equalsCheckMatch struct {
	qualifier javaexpr.Expr
	argument  javaexpr.Expr
	equal     bool
}

func matchEqualsCall(e javaexpr.Expr) *equalsCheckMatch {
	if e == nil {
		return nil
	}
	n := unwrapNegation(e)
	call, ok := n.expr.(*javaexpr.Call)
	if !ok || call.Name != equalsMethod {
		return nil
	}
	argument := argumentExpression(call)
	qualifier := javaexpr.Unparen(call.Qualifier)
	if argument == nil || qualifier == nil {
		return nil
	}
	return &equalsCheckMatch{qualifier: qualifier, argument: argument, equal: n.equal}
}

// argumentExpression returns the call's sole argument with parentheses
// stripped, or nil when the argument count is not exactly one. The
// one-argument requirement is also what keeps the rule from matching the
// two-argument java.util.Objects.equals it suggests.
func argumentExpression(call *javaexpr.Call) javaexpr.Expr {
	if len(call.Args) != 1 {
		return nil
	}
	return javaexpr.Unparen(call.Args[0])
}
