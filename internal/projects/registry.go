package projects

import (
	_ "embed"
	"fmt"
)

//go:embed projects.yaml
var projectsYAML []byte

var defaultRegistry = mustParse(projectsYAML)

// Registry is an immutable, ordered sequence of projects.
type Registry struct {
	projects []Project
}

// New validates records and returns a registry holding copies of them in
// the given order. Technology tags are trimmed and blank ones dropped. All
// validation problems are reported together.
func New(records ...Project) (*Registry, error) {
	if err := validate(records); err != nil {
		return nil, err
	}
	projects := make([]Project, len(records))
	for i, p := range records {
		p.Technologies = cleanTags(p.Technologies)
		projects[i] = p
	}
	return &Registry{projects: projects}, nil
}

// Default returns the registry compiled into the binary.
func Default() *Registry {
	return defaultRegistry
}

// All returns the projects in display order. The caller owns the result.
func (r *Registry) All() []Project {
	out := make([]Project, len(r.projects))
	for i, p := range r.projects {
		out[i] = p.clone()
	}
	return out
}

// Len returns the number of projects.
func (r *Registry) Len() int {
	return len(r.projects)
}

func mustParse(data []byte) *Registry {
	reg, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("Failed to load projects.yaml: %v", err))
	}
	return reg
}
