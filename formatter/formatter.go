package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/objlint/objlint/internal"
	tt "github.com/objlint/objlint/internal/types"
)

const tabWidth = 8

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	warningStyle    = color.New(color.FgHiYellow, color.Bold)
	infoStyle       = color.New(color.FgHiBlue, color.Bold)
	ruleStyle       = color.New(color.FgYellow, color.Bold)
	fileStyle       = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgBlue, color.Bold)
	messageStyle    = color.New(color.FgRed, color.Bold)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
)

// FormatIssuesWithArrows formats issues into a human-readable report,
// quoting the offending line with an underline and the proposed
// replacement.
func FormatIssuesWithArrows(issues []tt.Issue, sourceCode *internal.SourceCode) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatIssueHeader(issue))
		builder.WriteString(formatSnippet(issue, sourceCode))
	}
	return builder.String()
}

func formatIssueHeader(issue tt.Issue) string {
	return severityStyle(issue.Severity).Sprintf("%s: ", severityLabel(issue.Severity)) +
		ruleStyle.Sprint(issue.Rule) + "\n" +
		lineStyle.Sprint(" --> ") +
		fileStyle.Sprintf("%s:%d:%d", issue.Filename, issue.Start.Line, issue.Start.Column) + "\n"
}

func formatSnippet(issue tt.Issue, sourceCode *internal.SourceCode) string {
	var result strings.Builder

	lineIdx := issue.Start.Line - 1
	if lineIdx < 0 || lineIdx >= len(sourceCode.Lines) {
		result.WriteString(messageStyle.Sprintf("  %s\n\n", issue.Message))
		return result.String()
	}

	lineNumberStr := fmt.Sprintf("%d", issue.Start.Line)
	padding := strings.Repeat(" ", len(lineNumberStr))
	result.WriteString(lineStyle.Sprintf(" %s|\n", padding))

	line := expandTabs(sourceCode.Lines[lineIdx])
	result.WriteString(lineStyle.Sprintf("%s | ", lineNumberStr))
	result.WriteString(line + "\n")

	start := calculateVisualColumn(sourceCode.Lines[lineIdx], issue.Start.Column)
	width := 1
	if issue.End.Line == issue.Start.Line && issue.End.Column > issue.Start.Column {
		width = calculateVisualColumn(sourceCode.Lines[lineIdx], issue.End.Column) - start
	}
	result.WriteString(lineStyle.Sprintf(" %s| ", padding))
	result.WriteString(strings.Repeat(" ", start))
	result.WriteString(messageStyle.Sprintf("%s %s\n", strings.Repeat("^", width), issue.Message))

	if issue.Suggestion != "" {
		result.WriteString(lineStyle.Sprintf(" %s| ", padding))
		result.WriteString(suggestionStyle.Sprintf("suggestion: %s\n", issue.Suggestion))
	}
	if issue.Note != "" {
		result.WriteString(lineStyle.Sprintf(" %s| ", padding))
		result.WriteString(fmt.Sprintf("note: %s\n", issue.Note))
	}
	result.WriteString("\n")
	return result.String()
}

func severityStyle(s tt.Severity) *color.Color {
	switch s {
	case tt.SeverityError:
		return errorStyle
	case tt.SeverityInfo:
		return infoStyle
	default:
		return warningStyle
	}
}

func severityLabel(s tt.Severity) string {
	if s == "" {
		return string(tt.SeverityWarning)
	}
	return string(s)
}

func expandTabs(line string) string {
	var expanded strings.Builder
	for i, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (i % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
		} else {
			expanded.WriteRune(ch)
		}
	}
	return expanded.String()
}

func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
