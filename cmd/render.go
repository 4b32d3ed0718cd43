package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Mjoel54/klein-portfolio/internal/config"
	"github.com/Mjoel54/klein-portfolio/internal/pages"
	"github.com/Mjoel54/klein-portfolio/internal/projects"
	"github.com/Mjoel54/klein-portfolio/internal/render"
)

func newRenderCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:       "render about|projects",
		Short:     "Write a page's HTML to stdout",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"about", "projects"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			r, err := render.New()
			if err != nil {
				return err
			}
			site := pages.Site{Name: cfg.SiteName, URL: cfg.SiteURL}

			var (
				name string
				data any
			)
			switch args[0] {
			case "about":
				name, data = render.PageAbout, pages.About(site, r)
			case "projects":
				page, err := pages.Projects(site, r, projects.Default())
				if err != nil {
					return err
				}
				name, data = render.PageProjects, page
			default:
				return fmt.Errorf("unknown page %q", args[0])
			}
			return r.Page(cmd.OutOrStdout(), name, data)
		},
	}
}
