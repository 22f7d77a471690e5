package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objlint/objlint/internal"
	"github.com/objlint/objlint/internal/javaexpr"
	tt "github.com/objlint/objlint/internal/types"
)

func init() {
	color.NoColor = true
}

func TestFormatIssuesWithArrows(t *testing.T) {
	source := &internal.SourceCode{Lines: []string{
		"class Sample {",
		"    boolean same(Object a, Object b) {",
		"        return a != null && a.equals(b);",
		"    }",
		"}",
	}}
	issues := []tt.Issue{{
		Rule:       "equals-replaceable",
		Filename:   "Sample.java",
		Message:    "'equals()' expression can be replaced by 'java.util.Objects.equals()'",
		Suggestion: "java.util.Objects.equals(a, b)",
		Severity:   tt.SeverityWarning,
		Start:      javaexpr.Position{Line: 3, Column: 16},
		End:        javaexpr.Position{Line: 3, Column: 40},
	}}

	output := FormatIssuesWithArrows(issues, source)

	assert.Contains(t, output, "warning: equals-replaceable")
	assert.Contains(t, output, "--> Sample.java:3:16")
	assert.Contains(t, output, "3 |         return a != null && a.equals(b);")
	assert.Contains(t, output, strings.Repeat("^", 24))
	assert.Contains(t, output, "suggestion: java.util.Objects.equals(a, b)")
}

func TestFormatIssueSeverities(t *testing.T) {
	source := &internal.SourceCode{Lines: []string{"x"}}
	for _, severity := range []tt.Severity{tt.SeverityError, tt.SeverityWarning, tt.SeverityInfo} {
		issue := tt.Issue{
			Rule:     "equals-replaceable",
			Filename: "A.java",
			Message:  "m",
			Severity: severity,
			Start:    javaexpr.Position{Line: 1, Column: 1},
			End:      javaexpr.Position{Line: 1, Column: 2},
		}
		output := FormatIssuesWithArrows([]tt.Issue{issue}, source)
		assert.Contains(t, output, string(severity)+": ", severity)
	}
}

func TestFormatIssueNote(t *testing.T) {
	source := &internal.SourceCode{Lines: []string{"return a.equals(b);"}}
	issue := tt.Issue{
		Rule:     "equals-replaceable",
		Filename: "A.java",
		Message:  "m",
		Note:     "wrap the call to tolerate null",
		Start:    javaexpr.Position{Line: 1, Column: 8},
		End:      javaexpr.Position{Line: 1, Column: 19},
	}
	output := FormatIssuesWithArrows([]tt.Issue{issue}, source)
	assert.Contains(t, output, "note: wrap the call to tolerate null")
}

func TestFormatIssueOutOfRangeLine(t *testing.T) {
	source := &internal.SourceCode{Lines: []string{"x"}}
	issue := tt.Issue{
		Rule:     "equals-replaceable",
		Filename: "A.java",
		Message:  "dangling",
		Start:    javaexpr.Position{Line: 99, Column: 1},
	}
	output := FormatIssuesWithArrows([]tt.Issue{issue}, source)
	require.NotEmpty(t, output)
	assert.Contains(t, output, "dangling")
}

func TestCalculateVisualColumn(t *testing.T) {
	// a leading tab expands to the full tab width
	assert.Equal(t, 0, calculateVisualColumn("\tx", 1))
	assert.Equal(t, tabWidth, calculateVisualColumn("\tx", 2))
	assert.Equal(t, 4, calculateVisualColumn("abcdef", 5))
}
