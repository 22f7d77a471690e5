package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objlint/objlint/internal/version"
)

func TestAnalyzeExpression(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expr string
		want string
	}{
		{"a != null && a.equals(b)", "java.util.Objects.equals(a, b)"},
		{"a == null || !a.equals(b)", "!java.util.Objects.equals(a, b)"},
		{"a == null ? b == null : a.equals(b)", "java.util.Objects.equals(a, b)"},
		{"a.equals(b)", "java.util.Objects.equals(a, b)"},
		{"a == b", ""},
	}
	for _, tc := range tests {
		got, err := AnalyzeExpression(tc.expr, version.DefaultTarget, false)
		require.NoError(t, err, tc.expr)
		assert.Equal(t, tc.want, got, tc.expr)
	}
}

func TestAnalyzeExpressionNullGuard(t *testing.T) {
	t.Parallel()
	got, err := AnalyzeExpression("a.equals(b)", version.DefaultTarget, true)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnalyzeExpressionOldTarget(t *testing.T) {
	t.Parallel()
	got, err := AnalyzeExpression("a != null && a.equals(b)", "6", false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnalyzeExpressionErrors(t *testing.T) {
	t.Parallel()
	_, err := AnalyzeExpression("a +", version.DefaultTarget, false)
	assert.Error(t, err)

	_, err = AnalyzeExpression("a", "bogus", false)
	assert.Error(t, err)
}
