package lints

import (
	"fmt"

	"github.com/objlint/objlint/internal/javaexpr"
	"github.com/objlint/objlint/internal/symbols"
	tt "github.com/objlint/objlint/internal/types"
)

const (
	equalsMethod  = "equals"
	objectsEquals = "java.util.Objects.equals"
)

// EqualsConfig configures DetectEqualsReplaceable.
type EqualsConfig struct {
	// Resolver answers what a simple name refers to. Nil falls back to
	// Java naming conventions.
	Resolver symbols.Resolver
	// RequireNullGuard suppresses findings for a bare x.equals(y) call
	// with no surrounding null guard.
	RequireNullGuard bool
	// Applicable gates the whole rule, e.g. "does the target release
	// have java.util.Objects". Nil means applicable.
	Applicable func() bool
	Severity   tt.Severity
}

// DetectEqualsReplaceable reports null-safe equality idioms that can be
// replaced by a single java.util.Objects.equals call:
//
//	a != null && a.equals(b)                 ~  Objects.equals(a, b)
//	a == null || !a.equals(b)                ~  !Objects.equals(a, b)
//	a == null ? b == null : a.equals(b)      ~  Objects.equals(a, b)
//	a != null ? a.equals(b) : b == null      ~  Objects.equals(a, b)
//
// plus the negated ternary variants, and optionally the bare call
// itself. Failure to match is the normal case and never an error.
func DetectEqualsReplaceable(filename string, file *javaexpr.File, cfg EqualsConfig) ([]tt.Issue, error) {
	if cfg.Applicable != nil && !cfg.Applicable() {
		return nil, nil
	}
	if cfg.Resolver == nil {
		cfg.Resolver = symbols.ConventionResolver{}
	}
	if cfg.Severity == "" {
		cfg.Severity = tt.SeverityWarning
	}

	d := &equalsDetector{filename: filename, cfg: cfg}
	for _, tree := range file.Trees {
		javaexpr.Walk(tree.Root, func(e javaexpr.Expr) bool {
			if call, ok := e.(*javaexpr.Call); ok && call.Name == equalsMethod {
				d.visitCall(tree, call)
			}
			return true
		})
	}
	return d.issues, nil
}

type equalsDetector struct {
	filename string
	cfg      EqualsConfig
	issues   []tt.Issue
}

// visitCall inspects one equals-call site. The enclosing binary or
// conditional idiom wins over the bare call; when a surrounding matcher
// declares the site handled, the bare fallback stays silent even if no
// issue was produced.
func (d *equalsDetector) visitCall(tree *javaexpr.Tree, call *javaexpr.Call) {
	qualifier := javaexpr.Unparen(call.Qualifier)
	if isSelfReference(qualifier) {
		// rewriting this.equals(x) would change the dispatch, never report
		return
	}

	switch parent := skipParensAndNots(tree, call).(type) {
	case *javaexpr.Binary:
		if d.processNullGuardedBinary(tree, parent) {
			return
		}
	case *javaexpr.Conditional:
		if d.processConditional(tree, parent) {
			return
		}
	}

	if d.cfg.RequireNullGuard {
		return
	}
	if qualifier == nil {
		return
	}
	argument := argumentExpression(call)
	if argument == nil {
		return
	}
	d.report(tree, call, qualifier, argument, true)
}

// processNullGuardedBinary matches the short-circuit idioms rooted at
// the call's parent binary expression:
//
//	x != null && x.equals(y)
//	x == null || !x.equals(y)
//
// The return value means "handled": the bare-call fallback must not run.
func (d *equalsDetector) processNullGuardedBinary(tree *javaexpr.Tree, bin *javaexpr.Binary) bool {
	right := javaexpr.Unparen(bin.Right)
	switch bin.Op {
	case javaexpr.OpAnd:
		return d.registerGuardedCall(tree, bin, right, true)
	case javaexpr.OpOr:
		if not, ok := right.(*javaexpr.Unary); ok && not.Op == javaexpr.OpNot {
			return d.registerGuardedCall(tree, bin, javaexpr.Unparen(not.Operand), false)
		}
	}
	return true
}

// registerGuardedCall finishes a short-circuit match: the left operand
// must null-check the same reference the equals-call is invoked on, with
// the polarity opposite to the equality sense. On success the replaced
// span may further widen to an enclosing x != y && (...) comparison.
func (d *equalsDetector) registerGuardedCall(tree *javaexpr.Tree, bin *javaexpr.Binary, right javaexpr.Expr, equal bool) bool {
	call, ok := right.(*javaexpr.Call)
	if !ok || call.Name != equalsMethod {
		return false
	}
	check := matchNullCheck(bin.Left)
	if check == nil || check.equal == equal {
		return false
	}
	checkedName := d.path(check.compared)
	if checkedName == "" {
		return false
	}
	qualifier := javaexpr.Unparen(call.Qualifier)
	qualifierName := d.path(qualifier)
	if qualifierName == "" || qualifierName != checkedName {
		return false
	}
	argument := argumentExpression(call)
	if argument == nil {
		return false
	}

	span := javaexpr.Expr(bin)
	if argumentName := d.path(argument); argumentName != "" {
		span = d.widenEqualityBefore(tree, bin, equal, qualifierName, argumentName)
	}
	d.report(tree, span, check.compared, argument, equal)
	return true
}

// widenEqualityBefore extends the replacement over a preceding reference
// comparison of the same two values:
//
//	x != y && (x == null || !x.equals(y))  →  !Objects.equals(x, y)
//	x == y || (x != null && x.equals(y))   →  Objects.equals(x, y)
//
// The outer operator must be || exactly when the established sense is
// "equal", the matched expression must sit under the outer right
// operand, and the outer left operand must compare the same two paths.
// Otherwise the span stays at the matched expression.
func (d *equalsDetector) widenEqualityBefore(tree *javaexpr.Tree, bin *javaexpr.Binary, equal bool, name1, name2 string) javaexpr.Expr {
	outer, ok := skipParens(tree, bin).(*javaexpr.Binary)
	if !ok {
		return bin
	}
	if equal && outer.Op != javaexpr.OpOr || !equal && outer.Op != javaexpr.OpAnd {
		return bin
	}
	if javaexpr.Unparen(outer.Right) != javaexpr.Expr(bin) {
		return bin
	}
	if !d.isEqualityBetween(outer.Left, equal, name1, name2) {
		return bin
	}
	return outer
}

// isEqualityBetween recognizes name1 == name2 (or !=, when equal is
// false) over the two given reference paths, in either order.
func (d *equalsDetector) isEqualityBetween(e javaexpr.Expr, equal bool, name1, name2 string) bool {
	bin, ok := javaexpr.Unparen(e).(*javaexpr.Binary)
	if !ok {
		return false
	}
	op := javaexpr.OpEq
	if !equal {
		op = javaexpr.OpNeq
	}
	if bin.Op != op {
		return false
	}
	left := d.path(javaexpr.Unparen(bin.Left))
	right := d.path(javaexpr.Unparen(bin.Right))
	if left == "" || right == "" {
		return false
	}
	return left == name1 && right == name2 || left == name2 && right == name1
}

// processConditional matches the ternary idioms:
//
//	A == null ? B == null : A.equals(B)    ~  Objects.equals(A, B)
//	A == null ? B != null : !A.equals(B)   ~  !Objects.equals(A, B)
//	A != null ? A.equals(B) : B == null    ~  Objects.equals(A, B)
//	A != null ? !A.equals(B) : B != null   ~  !Objects.equals(A, B)
func (d *equalsDetector) processConditional(tree *javaexpr.Tree, cond *javaexpr.Conditional) bool {
	conditionCheck := matchNullCheck(cond.Cond)
	if conditionCheck == nil {
		return false
	}

	nullBranch, nonNullBranch := cond.Else, cond.Then
	if conditionCheck.equal {
		nullBranch, nonNullBranch = cond.Then, cond.Else
	}

	otherCheck := matchNullCheck(javaexpr.Unparen(nullBranch))
	if otherCheck == nil {
		return false
	}
	equalsCheck := matchEqualsCall(javaexpr.Unparen(nonNullBranch))
	if equalsCheck == nil {
		return false
	}
	// both branches must frame the result the same way
	if otherCheck.equal != equalsCheck.equal {
		return false
	}

	conditionName := d.path(conditionCheck.compared)
	otherName := d.path(otherCheck.compared)
	qualifierName := d.path(equalsCheck.qualifier)
	argumentName := d.path(equalsCheck.argument)
	if conditionName == "" || otherName == "" || qualifierName == "" || argumentName == "" {
		return false
	}

	if conditionName == qualifierName && otherName == argumentName {
		d.report(tree, cond, equalsCheck.qualifier, equalsCheck.argument, equalsCheck.equal)
		return true
	}
	return false
}

func (d *equalsDetector) report(tree *javaexpr.Tree, span, left, right javaexpr.Expr, equal bool) {
	replacement := fmt.Sprintf("%s(%s, %s)", objectsEquals, tree.Text(left), tree.Text(right))
	if !equal {
		replacement = "!" + replacement
	}
	sp := span.Span()
	d.issues = append(d.issues, tt.Issue{
		Rule:       "equals-replaceable",
		Category:   "migration",
		Filename:   d.filename,
		Message:    "'equals()' expression can be replaced by 'java.util.Objects.equals()'",
		Suggestion: replacement,
		Severity:   d.cfg.Severity,
		Start:      sp.Start,
		End:        sp.End,
	})
}

func (d *equalsDetector) path(e javaexpr.Expr) string {
	return refPath(d.cfg.Resolver, e)
}

func isSelfReference(e javaexpr.Expr) bool {
	switch e.(type) {
	case *javaexpr.This, *javaexpr.Super:
		return true
	}
	return false
}

// skipParensAndNots walks up from e past parenthesized and prefix
// parents, mirroring how the site's surrounding idiom is located.
func skipParensAndNots(tree *javaexpr.Tree, e javaexpr.Expr) javaexpr.Expr {
	parent := tree.Parent(e)
	for {
		switch parent.(type) {
		case *javaexpr.Paren, *javaexpr.Unary:
			parent = tree.Parent(parent)
		default:
			return parent
		}
	}
}

func skipParens(tree *javaexpr.Tree, e javaexpr.Expr) javaexpr.Expr {
	parent := tree.Parent(e)
	for {
		if _, ok := parent.(*javaexpr.Paren); !ok {
			return parent
		}
		parent = tree.Parent(parent)
	}
}
