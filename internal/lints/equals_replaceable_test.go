package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objlint/objlint/internal/javaexpr"
	"github.com/objlint/objlint/internal/symbols"
	tt "github.com/objlint/objlint/internal/types"
)

func analyzeExpr(t *testing.T, src string, cfg EqualsConfig) []tt.Issue {
	t.Helper()
	tree, err := javaexpr.Parse(src)
	require.NoError(t, err)
	file := &javaexpr.File{Filename: "test.java", Source: src, Trees: []*javaexpr.Tree{tree}}
	issues, err := DetectEqualsReplaceable(file.Filename, file, cfg)
	require.NoError(t, err)
	return issues
}

func spanText(src string, issue tt.Issue) string {
	return src[issue.Start.Offset:issue.End.Offset]
}

func TestDetectEqualsReplaceable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		expr       string
		suggestion string
		span       string // expected replaced text; empty means the whole expression
	}{
		{
			name:       "conjunction with not-null guard",
			expr:       "a != null && a.equals(b)",
			suggestion: "java.util.Objects.equals(a, b)",
		},
		{
			name:       "disjunction with null check and negated call",
			expr:       "a == null || !a.equals(b)",
			suggestion: "!java.util.Objects.equals(a, b)",
		},
		{
			name:       "ternary null-null-equals",
			expr:       "a == null ? b == null : a.equals(b)",
			suggestion: "java.util.Objects.equals(a, b)",
		},
		{
			name:       "ternary negated",
			expr:       "a == null ? b != null : !a.equals(b)",
			suggestion: "!java.util.Objects.equals(a, b)",
		},
		{
			name:       "ternary not-null first",
			expr:       "a != null ? a.equals(b) : b == null",
			suggestion: "java.util.Objects.equals(a, b)",
		},
		{
			name:       "ternary not-null first negated",
			expr:       "a != null ? !a.equals(b) : b != null",
			suggestion: "!java.util.Objects.equals(a, b)",
		},
		{
			name:       "parenthesized operands",
			expr:       "(a) != null && ((a).equals(b))",
			suggestion: "java.util.Objects.equals(a, b)",
		},
		{
			name:       "negated null comparison as guard",
			expr:       "!(a == null) && a.equals(b)",
			suggestion: "java.util.Objects.equals(a, b)",
		},
		{
			name:       "doubly negated guard in disjunction",
			expr:       "!(a != null) || !a.equals(b)",
			suggestion: "!java.util.Objects.equals(a, b)",
		},
		{
			name:       "field reference through this",
			expr:       "this.x != null && this.x.equals(y)",
			suggestion: "java.util.Objects.equals(this.x, y)",
		},
		{
			name:       "dotted chain",
			expr:       "a.b != null && a.b.equals(c)",
			suggestion: "java.util.Objects.equals(a.b, c)",
		},
		{
			name:       "span widens over preceding inequality",
			expr:       "x != y && (x == null || !x.equals(y))",
			suggestion: "!java.util.Objects.equals(x, y)",
		},
		{
			name:       "span widens over preceding equality",
			expr:       "x == y || (x != null && x.equals(y))",
			suggestion: "java.util.Objects.equals(x, y)",
		},
		{
			name:       "no widening when comparison names differ",
			expr:       "x != z && (x == null || !x.equals(y))",
			suggestion: "!java.util.Objects.equals(x, y)",
			span:       "x == null || !x.equals(y)",
		},
		{
			name:       "argument without stable identity",
			expr:       "a != null && a.equals(b.toString())",
			suggestion: "java.util.Objects.equals(a, b.toString())",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			issues := analyzeExpr(t, tc.expr, EqualsConfig{})
			require.Len(t, issues, 1)
			issue := issues[0]
			assert.Equal(t, "equals-replaceable", issue.Rule)
			assert.Equal(t, tc.suggestion, issue.Suggestion)
			want := tc.span
			if want == "" {
				want = tc.expr
			}
			assert.Equal(t, want, spanText(tc.expr, issue))
		})
	}
}

func TestDetectEqualsReplaceableNoMatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		expr string
	}{
		{"self comparison on this", "this.equals(x)"},
		{"self comparison on super", "super.equals(x)"},
		{"guarded self comparison", "x != null && this.equals(x)"},
		{"bare call requires guard", "a.equals(b)"},
		{"mismatched guard reference", "a != null && c.equals(b)"},
		{"mismatched ternary references", "a == null ? b == null : c.equals(b)"},
		{"ternary argument mismatch", "a == null ? b == null : a.equals(c)"},
		{"disagreeing ternary branches", "a == null ? b != null : a.equals(b)"},
		{"wrong guard polarity", "a == null && a.equals(b)"},
		{"disjunction without negation", "a == null || a.equals(b)"},
		{"two argument call", "java.util.Objects.equals(a, b)"},
		{"negated two argument call", "!java.util.Objects.equals(a, b)"},
		{"no arguments", "a != null && a.equals()"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			issues := analyzeExpr(t, tc.expr, EqualsConfig{RequireNullGuard: true})
			assert.Empty(t, issues)
		})
	}
}

func TestDetectEqualsReplaceableBareCall(t *testing.T) {
	t.Parallel()

	src := "a.equals(b)"
	issues := analyzeExpr(t, src, EqualsConfig{})
	require.Len(t, issues, 1)
	assert.Equal(t, "java.util.Objects.equals(a, b)", issues[0].Suggestion)
	assert.Equal(t, src, spanText(src, issues[0]))

	// an implicit-this call has no qualifier to name
	assert.Empty(t, analyzeExpr(t, "equals(b)", EqualsConfig{}))

	// a failed guarded match falls back to the call itself
	src = "a != null && c.equals(b)"
	issues = analyzeExpr(t, src, EqualsConfig{})
	require.Len(t, issues, 1)
	assert.Equal(t, "c.equals(b)", spanText(src, issues[0]))
	assert.Equal(t, "java.util.Objects.equals(c, b)", issues[0].Suggestion)
}

func TestDetectEqualsReplaceableResolver(t *testing.T) {
	t.Parallel()

	// nothing resolves: the guarded idiom cannot establish identity
	resolver := symbols.MapResolver{}
	issues := analyzeExpr(t, "a != null && a.equals(b)", EqualsConfig{
		Resolver:         resolver,
		RequireNullGuard: true,
	})
	assert.Empty(t, issues)

	// resolving both names restores the match
	resolver = symbols.MapResolver{"a": symbols.Variable, "b": symbols.Variable}
	issues = analyzeExpr(t, "a != null && a.equals(b)", EqualsConfig{
		Resolver:         resolver,
		RequireNullGuard: true,
	})
	require.Len(t, issues, 1)

	// a name resolving to a method is not a stable value
	resolver = symbols.MapResolver{"a": symbols.Other, "b": symbols.Variable}
	issues = analyzeExpr(t, "a != null && a.equals(b)", EqualsConfig{
		Resolver:         resolver,
		RequireNullGuard: true,
	})
	assert.Empty(t, issues)
}

func TestDetectEqualsReplaceableGate(t *testing.T) {
	t.Parallel()
	issues := analyzeExpr(t, "a != null && a.equals(b)", EqualsConfig{
		Applicable: func() bool { return false },
	})
	assert.Empty(t, issues)
}

// Applying a suggestion and re-analyzing must never produce a second
// finding; the helper call itself is not a recognized idiom.
func TestDetectEqualsReplaceableIdempotent(t *testing.T) {
	t.Parallel()
	sources := []string{
		"a != null && a.equals(b)",
		"a == null || !a.equals(b)",
		"a == null ? b == null : a.equals(b)",
		"x != y && (x == null || !x.equals(y))",
		"a.equals(b)",
	}
	for _, src := range sources {
		issues := analyzeExpr(t, src, EqualsConfig{})
		require.Len(t, issues, 1, "source %q", src)
		assert.Empty(t, analyzeExpr(t, issues[0].Suggestion, EqualsConfig{}), "replacement of %q", src)
	}
}

func TestMatchNullCheck(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expr  string
		equal bool
		ok    bool
	}{
		{"x == null", true, true},
		{"x != null", false, true},
		{"null == x", true, true},
		{"!(x == null)", false, true},
		{"!(x != null)", true, true},
		{"((x) == (null))", true, true},
		{"x == y", false, false},
		{"x.equals(null)", false, false},
		{"x", false, false},
	}
	for _, tc := range tests {
		tree, err := javaexpr.Parse(tc.expr)
		require.NoError(t, err)
		match := matchNullCheck(tree.Root)
		if !tc.ok {
			assert.Nil(t, match, tc.expr)
			continue
		}
		require.NotNil(t, match, tc.expr)
		assert.Equal(t, tc.equal, match.equal, tc.expr)
	}
}

func TestMatchEqualsCall(t *testing.T) {
	t.Parallel()

	tree, err := javaexpr.Parse("!(a.equals((b)))")
	require.NoError(t, err)
	match := matchEqualsCall(tree.Root)
	require.NotNil(t, match)
	assert.False(t, match.equal)
	assert.Equal(t, "a", match.qualifier.String())
	assert.Equal(t, "b", match.argument.String())

	tree, err = javaexpr.Parse("a.compareTo(b)")
	require.NoError(t, err)
	assert.Nil(t, matchEqualsCall(tree.Root))

	tree, err = javaexpr.Parse("equals(b)")
	require.NoError(t, err)
	assert.Nil(t, matchEqualsCall(tree.Root))
}

func TestRefPath(t *testing.T) {
	t.Parallel()
	resolver := symbols.ConventionResolver{}
	tests := []struct {
		expr string
		want string
	}{
		{"a", "a"},
		{"a.b.c", "a.b.c"},
		{"this", "this"},
		{"super", "super"},
		{"Outer.this", "Outer.this"},
		{"this.field", "this.field"},
		{"Constants.EMPTY", "Constants.EMPTY"},
		{"(a.b)", "a.b"},
		{"a.b()", ""},
		{"a + b", ""},
		{"\"text\"", ""},
		{"a.b().c", ""},
	}
	for _, tc := range tests {
		tree, err := javaexpr.Parse(tc.expr)
		require.NoError(t, err)
		assert.Equal(t, tc.want, refPath(resolver, tree.Root), tc.expr)
	}
}
