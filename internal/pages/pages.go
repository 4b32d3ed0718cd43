// Package pages assembles the view models for every page of the site.
package pages

import (
	"html/template"
	"strings"

	"github.com/Mjoel54/klein-portfolio/internal/projects"
	"github.com/Mjoel54/klein-portfolio/internal/render"
)

// CardRenderer renders one project card.
type CardRenderer interface {
	Card(p projects.Project) (template.HTML, error)
}

// InlineRenderer renders inline markdown.
type InlineRenderer interface {
	Inline(src string) template.HTML
}

// Site carries site-wide settings shared by every page.
type Site struct {
	Name string
	URL  string
}

// Shell is the page chrome consumed by the layout templates.
type Shell struct {
	SiteName    string
	Title       string
	Description string
	Path        string
	Canonical   string
	Nav         []NavItem
}

type NavItem struct {
	Href   string
	Label  string
	Active bool
}

var navigation = []NavItem{
	{Href: "/about", Label: "About"},
	{Href: "/projects", Label: "Projects"},
}

func newShell(site Site, path, title, description string) Shell {
	nav := make([]NavItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Href == path
		nav[i] = item
	}
	var canonical string
	if site.URL != "" {
		canonical = strings.TrimSuffix(site.URL, "/") + path
	}
	return Shell{
		SiteName:    site.Name,
		Title:       title,
		Description: description,
		Path:        path,
		Canonical:   canonical,
		Nav:         nav,
	}
}

type ProjectsPage struct {
	Shell
	Heading string
	Intro   string
	Cards   []template.HTML
}

// Projects renders every project in registry order and places the cards
// under the static heading and intro.
func Projects(site Site, r CardRenderer, reg *projects.Registry) (ProjectsPage, error) {
	all := reg.All()
	cards := make([]template.HTML, 0, len(all))
	for _, p := range all {
		card, err := r.Card(p)
		if err != nil {
			return ProjectsPage{}, err
		}
		cards = append(cards, card)
	}

	return ProjectsPage{
		Shell:   newShell(site, "/projects", ProjectsTitle, ProjectsDescription),
		Heading: ProjectsHeading,
		Intro:   ProjectsIntro,
		Cards:   cards,
	}, nil
}

type AboutPage struct {
	Shell
	Heading    string
	Paragraphs []template.HTML
	Portrait   projects.Logo
	Social     []render.Link
}

func About(site Site, r InlineRenderer) AboutPage {
	paragraphs := make([]template.HTML, len(AboutParagraphs))
	for i, p := range AboutParagraphs {
		paragraphs[i] = r.Inline(p)
	}

	return AboutPage{
		Shell:      newShell(site, "/about", AboutTitle, AboutDescription),
		Heading:    AboutHeading,
		Paragraphs: paragraphs,
		Portrait:   Portrait,
		Social:     append([]render.Link(nil), SocialLinks...),
	}
}

type NotFoundPage struct {
	Shell
	Heading string
	Intro   string
}

func NotFound(site Site, path string) NotFoundPage {
	return NotFoundPage{
		Shell:   newShell(site, path, NotFoundTitle, NotFoundIntro),
		Heading: NotFoundHeading,
		Intro:   NotFoundIntro,
	}
}
