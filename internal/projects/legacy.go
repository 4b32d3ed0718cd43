package projects

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// The content file has gone through several revisions. Technologies may be
// a list or one comma-joined string, links may be a bare URL or a
// url/label pair, and logos may be a bare path or a path with dimensions.
// Everything is normalized into Project here so rendering never branches
// on shape.

type rawDocument struct {
	Projects []rawProject `yaml:"projects"`
}

type rawProject struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	Technologies rawTags `yaml:"technologies"`
	DeployedLink rawLink `yaml:"deployedLink"`
	GitHubLink   rawLink `yaml:"githubLink"`
	Logo         rawLogo `yaml:"logo"`
}

type rawTags []string

func (t *rawTags) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var tags []string
		if err := n.Decode(&tags); err != nil {
			return err
		}
		*t = cleanTags(tags)
	case yaml.ScalarNode:
		*t = cleanTags(strings.Split(n.Value, ","))
	default:
		return fmt.Errorf("line %d: technologies must be a list or a comma-separated string", n.Line)
	}
	return nil
}

type rawLink struct {
	URL   string `yaml:"url"`
	Label string `yaml:"label"`
}

func (l *rawLink) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		l.URL = n.Value
	case yaml.MappingNode:
		if err := checkKeys(n, "link", "url", "label"); err != nil {
			return err
		}
		type plain rawLink
		var p plain
		if err := n.Decode(&p); err != nil {
			return err
		}
		*l = rawLink(p)
	default:
		return fmt.Errorf("line %d: link must be a url or a url/label mapping", n.Line)
	}
	return nil
}

type rawLogo struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func (l *rawLogo) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		l.Path = n.Value
	case yaml.MappingNode:
		if err := checkKeys(n, "logo", "path", "width", "height"); err != nil {
			return err
		}
		type plain rawLogo
		var p plain
		if err := n.Decode(&p); err != nil {
			return err
		}
		*l = rawLogo(p)
	default:
		return fmt.Errorf("line %d: logo must be a path or a path/width/height mapping", n.Line)
	}
	return nil
}

// checkKeys rejects mapping keys outside allowed. Node.Decode does not
// inherit KnownFields from the outer decoder.
func checkKeys(n *yaml.Node, what string, allowed ...string) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: unknown %s field %q (want %s)",
				key.Line, what, key.Value, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// Parse decodes a projects document, normalizes every record and builds a
// validated registry from it.
func Parse(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc rawDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding projects: %w", err)
	}

	records := make([]Project, len(doc.Projects))
	for i, raw := range doc.Projects {
		records[i] = raw.normalize()
	}
	return New(records...)
}

func (r rawProject) normalize() Project {
	name := strings.TrimSpace(r.Name)
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = Slug(name)
	}

	logo := Logo{Path: strings.TrimSpace(r.Logo.Path), Width: r.Logo.Width, Height: r.Logo.Height}
	if logo.Width == 0 {
		logo.Width = DefaultLogoWidth
	}
	if logo.Height == 0 {
		logo.Height = DefaultLogoHeight
	}

	return Project{
		ID:           id,
		Name:         name,
		Description:  strings.TrimSpace(r.Description),
		Technologies: []string(r.Technologies),
		Deployed:     r.DeployedLink.normalize(DefaultDeployedLabel),
		GitHub:       r.GitHubLink.normalize(DefaultGitHubLabel),
		Logo:         logo,
	}
}

func (l rawLink) normalize(defaultLabel string) Link {
	label := strings.TrimSpace(l.Label)
	if label == "" {
		label = defaultLabel
	}
	return Link{URL: strings.TrimSpace(l.URL), Label: label}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Slug lowercases s and joins its letter and digit runs with hyphens.
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
