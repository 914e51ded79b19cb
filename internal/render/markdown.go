// Package render converts normalized text into markup for the target
// surface. HTML output goes through goldmark; the plain dialect bypasses
// interpretation entirely and is emitted as escaped paragraphs.
package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/pkg/api"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// HTML renders a text body for the given dialect. Markdown is interpreted;
// plain text is escaped and wrapped in paragraph tags. Empty input renders
// nothing.
func HTML(body string, dialect api.Dialect) (template.HTML, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	if dialect == api.DialectPlain {
		var b strings.Builder
		for _, p := range catalog.NormalizeParagraphs(body) {
			b.WriteString("<p>")
			b.WriteString(strings.ReplaceAll(html.EscapeString(p), "\n", "<br>\n"))
			b.WriteString("</p>\n")
		}
		return template.HTML(b.String()), nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// InlineHTML renders a short span (captions, meta lines) without the
// surrounding paragraph element goldmark emits for block content.
func InlineHTML(body string, dialect api.Dialect) (template.HTML, error) {
	out, err := HTML(body, dialect)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	return template.HTML(strings.TrimSpace(s)), nil
}
