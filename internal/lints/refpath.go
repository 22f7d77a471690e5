package lints

import (
	"github.com/objlint/objlint/internal/javaexpr"
	"github.com/objlint/objlint/internal/symbols"
)

// refPath converts an expression into its canonical dotted identity:
// a variable name chain like "a.b.c", with "this" and "super" allowed as
// segments. Two expressions denote the same logical value exactly when
// their paths are equal. The empty string means the expression has no
// stable identity (calls, literals, arithmetic, unresolvable names).
//
// The check is purely syntactic plus name resolution; it deliberately
// does no alias analysis.
func refPath(resolver symbols.Resolver, e javaexpr.Expr) string {
	switch v := javaexpr.Unparen(e).(type) {
	case *javaexpr.Ident:
		if v.Name == "" {
			return ""
		}
		switch resolver.Resolve(v.Name) {
		case symbols.Variable, symbols.Class:
		default:
			return ""
		}
		if v.Qualifier == nil {
			return v.Name
		}
		qualifier := refPath(resolver, v.Qualifier)
		if qualifier == "" {
			return ""
		}
		return qualifier + "." + v.Name

	case *javaexpr.This:
		if v.Qualifier == "" {
			return "this"
		}
		return v.Qualifier + ".this"

	case *javaexpr.Super:
		if v.Qualifier == "" {
			return "super"
		}
		return v.Qualifier + ".super"
	}
	return ""
}
