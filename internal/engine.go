package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/objlint/objlint/internal/javaexpr"
	"github.com/objlint/objlint/internal/symbols"
	tt "github.com/objlint/objlint/internal/types"
	"github.com/objlint/objlint/internal/version"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule
	level        *version.Level
	resolver     symbols.Resolver
}

// NewEngine creates a new lint engine for the given target Java release.
func NewEngine(target string, rules map[string]tt.ConfigRule) (*Engine, error) {
	level, err := version.Parse(target)
	if err != nil {
		return nil, err
	}
	engine := &Engine{
		ignoredRules: make(map[string]bool),
		level:        level,
		resolver:     symbols.ConventionResolver{},
	}
	engine.applyRules(rules)
	return engine, nil
}

// ruleConstructor builds a rule bound to its engine.
type ruleConstructor func(e *Engine) LintRule

type ruleMap map[string]ruleConstructor

// Map of rule names to their constructors
var allRuleConstructors = ruleMap{
	"equals-replaceable": NewEqualsReplaceableRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]LintRule)
	e.registerDefaultRules()

	for key, cfg := range rules {
		rule := e.rules[key]
		if rule == nil {
			continue
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		if cfg.Severity != "" {
			rule.SetSeverity(cfg.Severity)
		}
		if r, ok := rule.(*EqualsReplaceableRule); ok {
			r.requireNullGuard = cfg.RequireNullGuard
		}
	}
}

func (e *Engine) registerDefaultRules() {
	for key, construct := range allRuleConstructors {
		rule := construct(e)
		if rule.Severity() != tt.SeverityOff {
			e.rules[key] = rule
		}
	}
}

// SetResolver replaces the default convention-based symbol resolver.
// Embedding hosts call this with a resolver backed by real symbol
// tables before running the engine.
func (e *Engine) SetResolver(r symbols.Resolver) {
	if r != nil {
		e.resolver = r
	}
}

// IgnoreRule disables a rule by name.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// IgnorePath skips files whose path is under the given prefix.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) ignored(filename string) bool {
	clean := filepath.Clean(filename)
	for _, prefix := range e.ignoredPaths {
		if clean == prefix || strings.HasPrefix(clean, prefix+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run applies all lint rules to the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if filepath.Ext(filename) != ".java" {
		return nil, fmt.Errorf("not a Java source file: %s", filename)
	}
	if e.ignored(filename) {
		return nil, nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return e.runSource(filename, src)
}

// RunSource applies all lint rules to an in-memory source.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.runSource("source.java", source)
}

func (e *Engine) runSource(filename string, src []byte) ([]tt.Issue, error) {
	file := javaexpr.ExtractFile(filename, src)

	var allIssues []tt.Issue
	for _, name := range e.sortedRuleNames() {
		if e.ignoredRules[name] {
			continue
		}
		issues, err := e.rules[name].Check(filename, file)
		if err != nil {
			return nil, fmt.Errorf("error running rule %s: %w", name, err)
		}
		allIssues = append(allIssues, issues...)
	}

	allIssues = filterNolint(file, allIssues)
	sort.Slice(allIssues, func(i, j int) bool {
		return allIssues[i].Start.Offset < allIssues[j].Start.Offset
	})
	return allIssues, nil
}

func (e *Engine) sortedRuleNames() []string {
	names := make([]string, 0, len(e.rules))
	for name := range e.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
