package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Mjoel54/klein-portfolio/internal/config"
	"github.com/Mjoel54/klein-portfolio/internal/projects"
	"github.com/Mjoel54/klein-portfolio/internal/render"
	"github.com/Mjoel54/klein-portfolio/internal/server"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v)
		},
	}
}

func runServe(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	r, err := render.New()
	if err != nil {
		return err
	}

	engine := server.New(cfg, projects.Default(), r)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, engine); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
