package web

import (
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	g "maragu.dev/gomponents"
)

// markdownNode renders job copy written in markdown. Raw HTML in the source is dropped.
func markdownNode(src string) g.Node {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML | mdhtml.Safelink | mdhtml.HrefTargetBlank,
	})
	return g.Raw(string(markdown.ToHTML([]byte(src), p, r)))
}
