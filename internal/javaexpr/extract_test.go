package javaexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extractFixture = `// sample
class Sample {
    boolean check(Object a, Object b) {
        if (a != null && a.equals(b)) {
            return true;
        }
        boolean r = a == null || !a.equals(b);
        while (count < limit) {
            count = count + 1;
        }
        return a == null ? b == null : a.equals(b);
    }
}
`

func TestExtractFile(t *testing.T) {
	t.Parallel()
	file := ExtractFile("Sample.java", []byte(extractFixture))

	roots := make([]string, 0, len(file.Trees))
	for _, tree := range file.Trees {
		roots = append(roots, tree.Root.String())
	}
	assert.Equal(t, []string{
		"a != null && a.equals(b)",
		"true",
		"a == null || !a.equals(b)",
		"count < limit",
		"count + 1",
		"a == null ? b == null : a.equals(b)",
	}, roots)

	require.NotEmpty(t, file.Comments)
	assert.Equal(t, "// sample", file.Comments[0].Text)
	assert.Equal(t, 1, file.Comments[0].Line)
}

func TestExtractFileSpansPointIntoSource(t *testing.T) {
	t.Parallel()
	file := ExtractFile("Sample.java", []byte(extractFixture))
	require.NotEmpty(t, file.Trees)

	tree := file.Trees[0]
	assert.Equal(t, "a != null && a.equals(b)", tree.Text(tree.Root))
	assert.Equal(t, 4, tree.Root.Span().Start.Line)
}

func TestExtractFileSkipsUnparseableRegions(t *testing.T) {
	t.Parallel()
	src := `
class Skips {
    void run() {
        Object o = new Object();
        if (o instanceof String) {
            o = other;
        }
    }
}
`
	file := ExtractFile("Skips.java", []byte(src))
	require.Len(t, file.Trees, 1)
	assert.Equal(t, "other", file.Trees[0].Root.String())
}

func TestExtractFileEmptySource(t *testing.T) {
	t.Parallel()
	file := ExtractFile("Empty.java", nil)
	assert.Empty(t, file.Trees)
	assert.Empty(t, file.Comments)
}
