package templating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectiveStripProcessor(t *testing.T) {
	p := NewDirectiveStripProcessor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean output untouched", "Vortex (BGX)\n", "Vortex (BGX)\n"},
		{"complete token removed", "a {{leftover}} b", "a  b"},
		{"stray opening delimiter removed", "a {{ b", "a  b"},
		{"stray closing delimiter removed", "a }} b", "a  b"},
		{"mixed", "a {{x}} b {{ c", "a  b  c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.Process(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRegexReplaceProcessor(t *testing.T) {
	p, err := NewRegexReplaceProcessor(`[ ]+$`, "")
	require.NoError(t, err)

	out, err := p.Process("line one   \nline two\nline three  ")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\nline three", out)
}

func TestRegexReplaceProcessor_AnchorsApplyPerLine(t *testing.T) {
	p, err := NewRegexReplaceProcessor(`^[ ]+`, "  ")
	require.NoError(t, err)

	out, err := p.Process("    a\n      b\nc")
	require.NoError(t, err)
	assert.Equal(t, "  a\n  b\nc", out)
}

func TestRegexReplaceProcessor_InvalidPattern(t *testing.T) {
	_, err := NewRegexReplaceProcessor("[", "")
	require.Error(t, err)
}

func TestNewPostProcessor(t *testing.T) {
	p, err := NewPostProcessor(PostProcessorConfig{Type: PostProcessorTypeDirectiveStrip})
	require.NoError(t, err)
	assert.IsType(t, &DirectiveStripProcessor{}, p)

	p, err = NewPostProcessor(PostProcessorConfig{
		Type:   PostProcessorTypeRegexReplace,
		Params: map[string]string{"pattern": "a", "replace": "b"},
	})
	require.NoError(t, err)
	assert.IsType(t, &RegexReplaceProcessor{}, p)
}

func TestNewPostProcessor_MissingParams(t *testing.T) {
	_, err := NewPostProcessor(PostProcessorConfig{Type: PostProcessorTypeRegexReplace})
	require.Error(t, err)

	_, err = NewPostProcessor(PostProcessorConfig{
		Type:   PostProcessorTypeRegexReplace,
		Params: map[string]string{"pattern": "a"},
	})
	require.Error(t, err)
}

func TestNewPostProcessor_UnknownType(t *testing.T) {
	_, err := NewPostProcessor(PostProcessorConfig{Type: "nope"})
	require.Error(t, err)
}
