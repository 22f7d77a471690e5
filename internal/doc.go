// Package internal provides the core functionality of the objlint tool.
//
// It implements a small linting engine over Java source files that
// coordinates the registered rules and reports migration opportunities.
//
// Key components:
//
// Engine: the main linting engine. It extracts expression trees from a
// Java file and applies every registered rule to them.
//
// LintRule: the contract all rules implement. Each rule analyzes the
// extracted expressions and returns issues; finding nothing is the
// normal outcome.
//
// Watcher: re-runs the engine on files as they change on disk.
//
// SourceCode: a source file as a collection of lines, used for quoting
// snippets in reports.
//
// Usage:
//
//	engine, err := internal.NewEngine("8", nil)
//	if err != nil {
//	    // handle error
//	}
//
//	issues, err := engine.Run("path/to/File.java")
//	if err != nil {
//	    // handle error
//	}
package internal
