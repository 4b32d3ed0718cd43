package render

import (
	"bytes"
	"html/template"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// inlinePolicy keeps inline emphasis and links, nothing else.
func inlinePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("em", "strong", "code")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Inline renders src as markdown restricted to inline markup. Block
// elements such as paragraphs are dropped, their text is kept.
func (r *Renderer) Inline(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		log.Printf("Error rendering markdown: %v", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	out := r.policy.SanitizeBytes(buf.Bytes())
	return template.HTML(strings.TrimSpace(string(out)))
}
