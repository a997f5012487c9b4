// Package render converts markdown to sanitized HTML.
package render

import (
	"github.com/gomarkdown/markdown"
	md_html "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Render parses md with GitHub-flavored extensions (tables, strikethrough)
// plus hard line breaks and renders it to HTML. Raw HTML blocks are skipped,
// so embedded scripts never reach the output.
func Render(md []byte) []byte {
	p := parser.NewWithExtensions(
		parser.Tables | parser.FencedCode | parser.Autolink |
			parser.Strikethrough | parser.SpaceHeadings | parser.HeadingIDs |
			parser.HardLineBreak | parser.OrderedListStart,
	)
	doc := p.Parse(md)

	opts := md_html.RendererOptions{
		Flags: md_html.CommonFlags | md_html.SkipHTML,
	}

	return markdown.Render(doc, md_html.NewRenderer(opts))
}
