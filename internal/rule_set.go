package internal

import (
	"github.com/objlint/objlint/internal/javaexpr"
	"github.com/objlint/objlint/internal/lints"
	tt "github.com/objlint/objlint/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the given file and returns a slice of Issues.
	Check(filename string, file *javaexpr.File) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// EqualsReplaceableRule reports null-safe equality idioms replaceable by
// java.util.Objects.equals.
type EqualsReplaceableRule struct {
	engine           *Engine
	severity         tt.Severity
	requireNullGuard bool
}

func NewEqualsReplaceableRule(e *Engine) LintRule {
	return &EqualsReplaceableRule{engine: e, severity: tt.SeverityWarning}
}

func (r *EqualsReplaceableRule) Check(filename string, file *javaexpr.File) ([]tt.Issue, error) {
	return lints.DetectEqualsReplaceable(filename, file, lints.EqualsConfig{
		Resolver:         r.engine.resolver,
		RequireNullGuard: r.requireNullGuard,
		Applicable:       r.engine.level.SupportsObjectsEquals,
		Severity:         r.severity,
	})
}

func (r *EqualsReplaceableRule) Name() string {
	return "equals-replaceable"
}

func (r *EqualsReplaceableRule) Severity() tt.Severity {
	return r.severity
}

func (r *EqualsReplaceableRule) SetSeverity(s tt.Severity) {
	r.severity = s
}
