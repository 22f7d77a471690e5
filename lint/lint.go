// Package lint is the public entry point for embedding objlint: engine
// construction from a configuration file and concurrent processing of
// files and directories.
package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/objlint/objlint/internal"
	tt "github.com/objlint/objlint/internal/types"
	"github.com/objlint/objlint/internal/version"
	"github.com/objlint/objlint/scanner"
)

// LintEngine is the surface the processing helpers need from an engine.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
}

// Config represents the overall configuration with a name, the target
// Java release and a set of rules.
type Config struct {
	Name   string                   `yaml:"name"`
	Target string                   `yaml:"target"`
	Rules  map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Name:   "objlint",
		Target: version.DefaultTarget,
		Rules:  map[string]tt.ConfigRule{},
	}
}

// New creates an engine from the configuration file at the given path.
// An empty path means defaults.
func New(configurationPath string) (*internal.Engine, error) {
	config := DefaultConfig()
	if configurationPath != "" {
		parsed, err := parseConfigurationFile(configurationPath)
		if err != nil {
			return nil, err
		}
		config = parsed
	}
	return internal.NewEngine(config.Target, config.Rules)
}

// ProcessSources lints in-memory sources.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
	processor func(LintEngine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessFiles lints every given path, recursing into directories.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessPath lints one file or directory. Directory entries are fanned
// out across a bounded worker pool; every file is an independent
// analysis, so no coordination beyond collecting results is needed.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		return processor(engine, path)
	}

	entries, err := scanner.New(path, ".java").Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Path)
	}
	if len(files) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	var mu sync.Mutex
	var wg sync.WaitGroup
	var issues []tt.Issue
	var firstErr error

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			fileIssues, err := processor(engine, fp)
			_ = bar.Add(1)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			issues = append(issues, fileIssues...)
		}(filePath)
	}

	wg.Wait()
	fmt.Println()
	if firstErr != nil {
		return nil, firstErr
	}
	return issues, nil
}

// ProcessFile lints a single file with the engine.
func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

// ProcessSource lints an in-memory source with the engine.
func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(source)
}

func hasDesiredExtension(path string) bool {
	return filepath.Ext(path) == ".java"
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing configuration file: %w", err)
	}
	if config.Target == "" {
		config.Target = version.DefaultTarget
	}
	return config, nil
}
