package internal

import (
	"strings"

	"github.com/objlint/objlint/internal/javaexpr"
	tt "github.com/objlint/objlint/internal/types"
)

// ignoreDirective suppresses issues on the comment's line. A rule name
// may follow to suppress only that rule:
//
//	if (a != null && a.equals(b)) { ... } // objlint:ignore
//	return a == null ? b == null : a.equals(b); // objlint:ignore equals-replaceable
const ignoreDirective = "objlint:ignore"

// filterNolint drops issues suppressed by an ignore directive on the
// issue's starting line.
func filterNolint(file *javaexpr.File, issues []tt.Issue) []tt.Issue {
	if len(issues) == 0 || len(file.Comments) == 0 {
		return issues
	}

	// line -> rule name, or "" for all rules
	suppressed := make(map[int]string)
	for _, comment := range file.Comments {
		idx := strings.Index(comment.Text, ignoreDirective)
		if idx < 0 {
			continue
		}
		rest := strings.Fields(comment.Text[idx+len(ignoreDirective):])
		rule := ""
		if len(rest) > 0 {
			rule = rest[0]
		}
		suppressed[comment.Line] = rule
	}
	if len(suppressed) == 0 {
		return issues
	}

	kept := issues[:0]
	for _, issue := range issues {
		if rule, ok := suppressed[issue.Start.Line]; ok && (rule == "" || rule == issue.Rule) {
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}
