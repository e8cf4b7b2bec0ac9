package helper

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// GFM (tabel, strikethrough) + hard wraps: satu newline = <br>,
// sama seperti renderer artikel di sisi web. Fenced code block hanya
// diberi class bahasa, tanpa syntax highlighting.
var articleMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderMarkdown mengubah markdown artikel menjadi HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := articleMarkdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
