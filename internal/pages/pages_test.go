package pages

import (
	"bytes"
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Mjoel54/klein-portfolio/internal/projects"
	"github.com/Mjoel54/klein-portfolio/internal/render"
)

var testSite = Site{Name: "Mitchell Klein", URL: "https://mitchellklein.example/"}

// idRenderer renders a card as the project id so order is easy to read.
type idRenderer struct{ calls int }

func (r *idRenderer) Card(p projects.Project) (template.HTML, error) {
	r.calls++
	return template.HTML(p.ID), nil
}

type failingRenderer struct{}

func (failingRenderer) Card(projects.Project) (template.HTML, error) {
	return "", errors.New("boom")
}

func record(id string) projects.Project {
	return projects.Project{
		ID:           id,
		Name:         "Project " + id,
		Description:  "Description of " + id,
		Technologies: []string{"Go"},
		Deployed:     projects.Link{URL: "https://example.com/" + id, Label: "live"},
		GitHub:       projects.Link{URL: "https://github.com/example/" + id, Label: "github"},
		Logo:         projects.Logo{Path: "/logos/" + id + ".svg", Width: 48, Height: 48},
	}
}

func registry(t require.TestingT, ids ...string) *projects.Registry {
	records := make([]projects.Project, len(ids))
	for i, id := range ids {
		records[i] = record(id)
	}
	reg, err := projects.New(records...)
	require.NoError(t, err)
	return reg
}

func TestProjects_KeepsRegistryOrder(t *testing.T) {
	r := &idRenderer{}
	page, err := Projects(testSite, r, registry(t, "c", "a", "b"))
	require.NoError(t, err)

	require.Equal(t, []template.HTML{"c", "a", "b"}, page.Cards)
	assert.Equal(t, 3, r.calls)
	assert.Equal(t, ProjectsHeading, page.Heading)
	assert.Equal(t, ProjectsIntro, page.Intro)
}

func TestProjects_EmptyRegistry(t *testing.T) {
	page, err := Projects(testSite, &idRenderer{}, registry(t))
	require.NoError(t, err)
	require.Empty(t, page.Cards)
	assert.Equal(t, ProjectsHeading, page.Heading)
}

func TestProjects_PropagatesRenderError(t *testing.T) {
	_, err := Projects(testSite, failingRenderer{}, registry(t, "a"))
	require.EqualError(t, err, "boom")
}

func TestProjects_CountAndOrderProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ids := rapid.SliceOfDistinct(rapid.StringMatching(`[a-z]{1,6}`), rapid.ID[string]).Draw(rt, "ids")

		page, err := Projects(testSite, &idRenderer{}, registry(rt, ids...))
		require.NoError(rt, err)
		require.Len(rt, page.Cards, len(ids))
		for i, id := range ids {
			require.Equal(rt, template.HTML(id), page.Cards[i])
		}
	})
}

func TestShell_Navigation(t *testing.T) {
	page, err := Projects(testSite, &idRenderer{}, registry(t))
	require.NoError(t, err)

	require.Len(t, page.Nav, 2)
	assert.False(t, page.Nav[0].Active)
	assert.True(t, page.Nav[1].Active)
	assert.Equal(t, "https://mitchellklein.example/projects", page.Canonical)

	// The shared navigation must not be mutated by building a shell.
	assert.False(t, navigation[1].Active)
}

func TestAbout(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)

	page := About(testSite, r)
	require.Len(t, page.Paragraphs, len(AboutParagraphs))
	assert.Contains(t, string(page.Paragraphs[1]), "<em>Lumi</em>")
	assert.Equal(t, "/about", page.Path)
	assert.Equal(t, SocialLinks, page.Social)
}

func TestProjectsPage_RendersDefaultRegistry(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)

	reg := projects.Default()
	page, err := Projects(testSite, r, reg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, render.PageProjects, page))
	html := buf.String()

	assert.Equal(t, reg.Len(), strings.Count(html, `class="card `))
	assert.Contains(t, html, "<title>Projects - Mitchell Klein</title>")

	for _, p := range reg.All() {
		assert.Equal(t, 1, strings.Count(html, `href="`+p.GitHub.URL+`"`), "github links for %s", p.ID)
	}

	last := -1
	for _, p := range reg.All() {
		idx := strings.Index(html, `data-project="`+p.ID+`"`)
		require.Greater(t, idx, last, "card %s out of order", p.ID)
		last = idx
	}
}

func TestAboutPage_Renders(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, render.PageAbout, About(testSite, r)))
	html := buf.String()

	assert.Contains(t, html, "Sydney-based developer")
	assert.Contains(t, html, `href="https://github.com/Mjoel54"`)
	assert.Contains(t, html, `href="https://www.linkedin.com/in/mitchell-k-598591247/"`)
	assert.Contains(t, html, `aria-current="page"`)
}

func TestNotFoundPage_Renders(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, render.PageNotFound, NotFound(testSite, "/nope")))
	assert.Contains(t, buf.String(), NotFoundHeading)
	assert.NotContains(t, buf.String(), `aria-current="page"`)
}
