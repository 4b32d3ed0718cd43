package pages

import (
	"github.com/Mjoel54/klein-portfolio/internal/projects"
	"github.com/Mjoel54/klein-portfolio/internal/render"
)

const (
	ProjectsTitle       = "Projects"
	ProjectsDescription = "Things I’ve made trying to put my dent in the universe."
	ProjectsHeading     = "Things I’ve made trying to put my dent in the universe."
	ProjectsIntro       = "I'm excited to share a few projects that represent my ongoing journey of growth and learning. Many of these projects are open-source—if something catches your eye, feel free to dive into the code and offer your ideas for improvement."

	AboutTitle       = "About"
	AboutDescription = "I’m Mitchell Klein, a Sydney-based developer crafting digital solutions."
	AboutHeading     = "I'm Mitchell Klein, a Sydney-based developer crafting digital solutions"

	NotFoundTitle   = "Page not found"
	NotFoundHeading = "Page not found"
	NotFoundIntro   = "Sorry, we couldn’t find the page you’re looking for."
)

// About paragraphs are inline markdown.
var AboutParagraphs = []string{
	`My journey into programming began while coordinating a Learning Management System at ALG, an Australian tertiary education
	provider. Working closely with digital learning tools sparked my interest in the technology behind them and led me to pursue
	development more seriously.`,

	`I recently completed "The Coding Bootcamp" through USYD/EDx, where I strengthened my technical foundation and collaborative
	coding skills. My current project is *Lumi* - home tasker, a full-stack MERN application created in TypeScript designed to
	simplify chore management for busy households—combining my organisational abilities with practical problem-solving.`,

	`What interests me about coding is how similar it is to music theory, my previous area of expertise. Both domains require
	understanding structured rules while bringing multiple components together into a cohesive whole. This perspective gives me
	a unique approach to front-end development, where I apply my high attention to detail and compositional thinking to create
	seamless user interfaces.`,

	`I'm ready to leverage my React and TypeScript expertise, along with my strong problem-solving abilities and eye for detail
	in a junior dev role. My technical skills in modern web development, combined with my background in educational technology,
	position me to make immediate contributions to development teams.`,
}

var Portrait = projects.Logo{Path: "/images/portrait.svg", Width: 512, Height: 512}

var SocialLinks = []render.Link{
	{Href: "https://github.com/Mjoel54", Label: "Follow on GitHub", Icon: render.IconGitHub, NewTab: true},
	{Href: "https://www.linkedin.com/in/mitchell-k-598591247/", Label: "Follow on LinkedIn", Icon: render.IconLinkedIn, NewTab: true},
}
