package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		target  string
		objects bool
	}{
		{"6", false},
		{"1.6", false},
		{"7", true},
		{"1.7", true},
		{"8", true},
		{"1.8", true},
		{"11", true},
		{"17", true},
		{"", true}, // default target
	}
	for _, tc := range tests {
		level, err := Parse(tc.target)
		require.NoError(t, err, tc.target)
		assert.Equal(t, tc.objects, level.SupportsObjectsEquals(), "target %q", tc.target)
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	for _, target := range []string{"not-a-release", "1.x"} {
		_, err := Parse(target)
		assert.Error(t, err, target)
	}
}

func TestParseKeepsSpelling(t *testing.T) {
	t.Parallel()
	level, err := Parse("1.8")
	require.NoError(t, err)
	assert.Equal(t, "1.8", level.String())
}

func TestAtLeast(t *testing.T) {
	t.Parallel()
	level, err := Parse("11")
	require.NoError(t, err)
	assert.True(t, level.AtLeast("7"))
	assert.True(t, level.AtLeast("1.8"))
	assert.True(t, level.AtLeast("11"))
	assert.False(t, level.AtLeast("17"))
}
