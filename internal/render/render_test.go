package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Mjoel54/klein-portfolio/internal/projects"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err, "templates should parse")
	return r
}

func lumi() projects.Project {
	return projects.Project{
		ID:           "x",
		Name:         "Lumi",
		Description:  "Household task manager",
		Technologies: []string{"TypeScript", "React"},
		Deployed:     projects.Link{URL: "https://lumi.example/", Label: "live"},
		GitHub:       projects.Link{URL: "https://github.com/example/lumi", Label: "github"},
		Logo:         projects.Logo{Path: "/logos/lumi.svg", Width: 48, Height: 48},
	}
}

func TestCard_Lumi(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Card(lumi())
	require.NoError(t, err)
	html := string(out)

	assert.Equal(t, 1, strings.Count(html, `class="card `), "one card")
	assert.Contains(t, html, `>Lumi</h2>`)
	assert.Contains(t, html, "Household task manager")
	assert.Equal(t, 2, strings.Count(html, `class="chip `), "two technology chips")
	assert.Less(t, strings.Index(html, ">TypeScript</li>"), strings.Index(html, ">React</li>"))
	assert.Equal(t, 1, strings.Count(html, `href="https://github.com/example/lumi"`), "one github link")
	assert.Contains(t, html, `src="/logos/lumi.svg"`)
	assert.Contains(t, html, `href="https://lumi.example/"`)
	assert.Contains(t, html, `<svg viewBox="0 0 24 24" aria-hidden="true"`)
}

func TestCard_LogoLinkSameAsSource(t *testing.T) {
	r := newRenderer(t)
	p := lumi()
	p.Deployed.URL = p.GitHub.URL

	out, err := r.Card(p)
	require.NoError(t, err)
	html := string(out)
	assert.Equal(t, 1, strings.Count(html, `href="https://github.com/example/lumi"`))
	assert.Equal(t, 1, strings.Count(html, "<a "), "only the link row")
	assert.Contains(t, html, `src="/logos/lumi.svg"`)
}

func TestCard_NoTechnologies(t *testing.T) {
	r := newRenderer(t)
	p := lumi()
	p.Technologies = nil

	out, err := r.Card(p)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `class="chip `)
}

func TestCard_EscapesText(t *testing.T) {
	r := newRenderer(t)
	p := lumi()
	p.Name = "<script>alert(1)</script>"
	p.Technologies = []string{"<b>Go</b>"}

	out, err := r.Card(p)
	require.NoError(t, err)
	html := string(out)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>Go</b>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestCard_AnchorPlaceholder(t *testing.T) {
	r := newRenderer(t)
	p := lumi()
	p.GitHub.URL = "#"

	out, err := r.Card(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="#"`)
}

func TestCard_Pure(t *testing.T) {
	r := newRenderer(t)

	rapid.Check(t, func(rt *rapid.T) {
		p := lumi()
		p.Name = rapid.StringN(1, 40, -1).Draw(rt, "name")
		p.Description = rapid.StringN(1, 120, -1).Draw(rt, "description")
		p.Technologies = rapid.SliceOfN(rapid.StringMatching(`[A-Za-z.+# ]{1,12}`), 0, 8).Draw(rt, "technologies")

		first, err := r.Card(p)
		require.NoError(rt, err)
		second, err := r.Card(p)
		require.NoError(rt, err)
		require.Equal(rt, first, second)
		require.Equal(rt, len(p.Technologies), strings.Count(string(first), `class="chip `))
	})
}

func TestInline(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Household task manager", "Household task manager"},
		{"emphasis", "*Lumi* is great", "<em>Lumi</em> is great"},
		{"strong", "**fast** builds", "<strong>fast</strong> builds"},
		{"code", "uses `go test`", "uses <code>go test</code>"},
		{"raw html dropped", "a <script>alert(1)</script> b", "a alert(1) b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(r.Inline(tt.in)))
		})
	}
}

func TestIcon(t *testing.T) {
	svg := string(Icon(IconGitHub, `h-6 "w-6"`))
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `aria-hidden="true"`)
	assert.Contains(t, svg, `class="h-6 &#34;w-6&#34;"`)

	assert.Empty(t, Icon("unknown", "h-6"))
	for name := range icons {
		assert.NotEmpty(t, Icon(name, ""), "icon %s", name)
	}
}

func TestIcon_FillRule(t *testing.T) {
	tests := []struct {
		name    IconName
		evenOdd bool
	}{
		{IconGitHub, true},
		{IconMail, true},
		{IconLinkedIn, false},
		{IconLink, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			svg := string(Icon(tt.name, ""))
			assert.Equal(t, tt.evenOdd, strings.Contains(svg, `fill-rule="evenodd"`))
		})
	}
}

func TestLinkTemplate(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, "link", Link{
		Href:   "https://github.com/Mjoel54",
		Label:  "Follow on GitHub",
		Icon:   IconGitHub,
		NewTab: true,
	})
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, `href="https://github.com/Mjoel54"`)
	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, "Follow on GitHub")

	buf.Reset()
	err = r.tmpl.ExecuteTemplate(&buf, "link", Link{Href: "#", Label: "Top"})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "target=")
	assert.NotContains(t, buf.String(), "<svg")
}
