// Package projects holds the compiled-in list of showcased projects.
//
// The list is normalized and validated once, when the package is
// initialized, and is read-only afterwards.
package projects

// Default link labels used when the source gives a bare URL.
const (
	DefaultDeployedLabel = "live"
	DefaultGitHubLabel   = "github"
)

// Default logo dimensions used when the source gives a bare path.
const (
	DefaultLogoWidth  = 48
	DefaultLogoHeight = 48
)

// Project is a single showcased project.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Deployed     Link     `json:"deployed"`
	GitHub       Link     `json:"github"`
	Logo         Logo     `json:"logo"`
}

// Link is an outbound destination with its visible label.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Logo references a static image asset.
type Logo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (p Project) clone() Project {
	p.Technologies = append(make([]string, 0, len(p.Technologies)), p.Technologies...)
	return p
}
