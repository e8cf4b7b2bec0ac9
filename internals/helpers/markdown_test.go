package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdownBasics(t *testing.T) {
	out, err := RenderMarkdown("# Judul\n\nparagraf **tebal**")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Judul</h1>")
	assert.Contains(t, out, "<strong>tebal</strong>")
}

func TestRenderMarkdownHardWraps(t *testing.T) {
	out, err := RenderMarkdown("baris satu\nbaris dua")
	require.NoError(t, err)
	assert.Contains(t, out, "<br>")
}

func TestRenderMarkdownGFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |"
	out, err := RenderMarkdown(src)
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestRenderMarkdownStrikethrough(t *testing.T) {
	out, err := RenderMarkdown("~~coret~~")
	require.NoError(t, err)
	assert.Contains(t, out, "<del>coret</del>")
}

func TestRenderMarkdownFencedCodeClass(t *testing.T) {
	out, err := RenderMarkdown("```go\nfmt.Println(\"hi\")\n```")
	require.NoError(t, err)
	assert.Contains(t, out, `<code class="language-go">`)
}
