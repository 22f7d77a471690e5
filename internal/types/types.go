package types

import "github.com/objlint/objlint/internal/javaexpr"

// Severity controls how an issue is reported.
type Severity string

const (
	SeverityOff     Severity = "off"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue represents a lint issue found in the code base.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Severity   Severity
	Start      javaexpr.Position
	End        javaexpr.Position
}

// ConfigRule is the per-rule section of the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
	// RequireNullGuard suppresses findings for a plain x.equals(y) call
	// that has no surrounding null guard.
	RequireNullGuard bool `yaml:"require-null-guard"`
}
