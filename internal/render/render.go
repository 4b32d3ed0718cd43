// Package render turns projects and page view models into HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/Mjoel54/klein-portfolio/internal/projects"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names, as registered with gin.
const (
	PageAbout    = "about.html"
	PageProjects = "projects.html"
	PageNotFound = "notfound.html"
)

// Renderer holds the parsed templates. It is safe for concurrent use.
type Renderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{
		md:     goldmark.New(),
		policy: inlinePolicy(),
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"icon":   Icon,
		"inline": r.Inline,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Templates exposes the template set for gin.
func (r *Renderer) Templates() *template.Template {
	return r.tmpl
}

type cardView struct {
	projects.Project
	Source Link
	// LinkLogo is false when the deployed link would repeat the source link.
	LinkLogo bool
}

// Card renders one project as a self-contained list item. The output
// depends only on p.
func (r *Renderer) Card(p projects.Project) (template.HTML, error) {
	view := cardView{
		Project: p,
		Source: Link{
			Href:   p.GitHub.URL,
			Label:  p.GitHub.Label,
			Icon:   IconGitHub,
			NewTab: true,
		},
		LinkLogo: p.Deployed.URL != p.GitHub.URL,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "card", view); err != nil {
		return "", fmt.Errorf("rendering card %s: %w", p.ID, err)
	}
	return template.HTML(buf.String()), nil
}

// Page writes the named page template with data to w.
func (r *Renderer) Page(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
