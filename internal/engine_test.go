package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objlint/objlint/internal/symbols"
	tt "github.com/objlint/objlint/internal/types"
)

const sampleSource = `class Sample {
    boolean same(Object a, Object b) {
        return a != null && a.equals(b);
    }

    boolean different(Object a, Object b) {
        return a == null || !a.equals(b);
    }
}
`

func newTestEngine(t *testing.T, rules map[string]tt.ConfigRule) *Engine {
	t.Helper()
	engine, err := NewEngine("8", rules)
	require.NoError(t, err)
	return engine
}

func TestEngineRunSource(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	issues, err := engine.RunSource([]byte(sampleSource))
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, "equals-replaceable", issues[0].Rule)
	assert.Equal(t, tt.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "java.util.Objects.equals(a, b)", issues[0].Suggestion)
	assert.Equal(t, "!java.util.Objects.equals(a, b)", issues[1].Suggestion)
	assert.Less(t, issues[0].Start.Offset, issues[1].Start.Offset)
}

func TestEngineRun(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "Sample.java")
	require.NoError(t, os.WriteFile(path, []byte(sampleSource), 0o644))

	issues, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, path, issues[0].Filename)
}

func TestEngineRunRejectsNonJava(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)
	_, err := engine.Run("main.go")
	assert.Error(t, err)
}

func TestEngineIgnorePath(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "Sample.java")
	require.NoError(t, os.WriteFile(path, []byte(sampleSource), 0o644))

	engine.IgnorePath(dir)
	issues, err := engine.Run(path)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineIgnoreRule(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)
	engine.IgnoreRule("equals-replaceable")

	issues, err := engine.RunSource([]byte(sampleSource))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineRuleConfig(t *testing.T) {
	t.Parallel()

	t.Run("severity off disables the rule", func(t *testing.T) {
		engine := newTestEngine(t, map[string]tt.ConfigRule{
			"equals-replaceable": {Severity: tt.SeverityOff},
		})
		issues, err := engine.RunSource([]byte(sampleSource))
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("severity override", func(t *testing.T) {
		engine := newTestEngine(t, map[string]tt.ConfigRule{
			"equals-replaceable": {Severity: tt.SeverityError},
		})
		issues, err := engine.RunSource([]byte(sampleSource))
		require.NoError(t, err)
		require.NotEmpty(t, issues)
		assert.Equal(t, tt.SeverityError, issues[0].Severity)
	})

	t.Run("unknown rule names are ignored", func(t *testing.T) {
		engine := newTestEngine(t, map[string]tt.ConfigRule{
			"no-such-rule": {Severity: tt.SeverityError},
		})
		issues, err := engine.RunSource([]byte(sampleSource))
		require.NoError(t, err)
		assert.Len(t, issues, 2)
	})
}

func TestEngineTargetGate(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine("6", nil)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(sampleSource))
	require.NoError(t, err)
	assert.Empty(t, issues)

	_, err = NewEngine("bogus", nil)
	assert.Error(t, err)
}

func TestEngineSetResolver(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)
	engine.SetResolver(symbols.MapResolver{})

	// with every name unresolved the guarded idioms cannot match, and the
	// bare fallback reports the calls themselves instead
	issues, err := engine.RunSource([]byte(sampleSource))
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "java.util.Objects.equals(a, b)", issues[0].Suggestion)
}

func TestEngineNolint(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	src := `class Sample {
    boolean same(Object a, Object b) {
        return a != null && a.equals(b); // objlint:ignore
    }

    boolean other(Object a, Object b) {
        return a == null || !a.equals(b); // objlint:ignore some-other-rule
    }
}
`
	issues, err := engine.RunSource([]byte(src))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 7, issues[0].Start.Line)

	src = `class Sample {
    boolean same(Object a, Object b) {
        // objlint:ignore equals-replaceable
        return a != null && a.equals(b);
    }
}
`
	// the directive only covers its own line
	issues, err = engine.RunSource([]byte(src))
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}
