package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	htmlparser "github.com/yaklabco/htmldom/pkg/parser/html"
)

func TestOutline_PlainStyles(t *testing.T) {
	tree, err := htmlparser.BuildString(`<p class="x">hi</p>`)
	require.NoError(t, err)

	var b strings.Builder
	Outline(&b, tree, NewStyles(false))

	want := "node(1) element: <p class=\"x\">\n" +
		"  node(2) data: \"hi\"\n"
	assert.Equal(t, want, b.String())
}

func TestTableFormatter_Format(t *testing.T) {
	f := NewTableFormatter(NewStyles(false), 80)

	out := f.Format([]TagCount{{Name: "p", Count: 2}, {Name: "b", Count: 1}}, 3, 6)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "TAG"))
	assert.True(t, strings.HasSuffix(lines[0], "COUNT"))
	assert.Equal(t, strings.Repeat("=", len(lines[0])), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "p"))
	assert.True(t, strings.HasSuffix(lines[2], "2"))
	assert.True(t, strings.HasPrefix(lines[4], "(text)"))
	assert.True(t, strings.HasSuffix(lines[5], "6"))
}

func TestTableFormatter_ClampsSeparator(t *testing.T) {
	f := NewTableFormatter(NewStyles(false), 10)

	out := f.Format([]TagCount{{Name: "blockquote", Count: 1}}, 0, 1)

	lines := strings.Split(out, "\n")
	assert.Equal(t, strings.Repeat("=", 10), lines[1])
}

func TestNewTableFormatter_DefaultWidth(t *testing.T) {
	f := NewTableFormatter(NewStyles(false), 0)
	assert.Equal(t, defaultTermWidth, f.termWidth)
}

func TestIsColorEnabled(t *testing.T) {
	var buf strings.Builder
	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	assert.False(t, IsColorEnabled("auto", &buf), "non-terminal writer")
}
