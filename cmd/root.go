package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Mjoel54/klein-portfolio/internal/config"
)

var version = "dev"

// NewRootCommand builds the portfolio command tree. Running it without a
// subcommand serves the site.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	config.Bind(v)

	var cfgFile string

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Mitchell Klein's portfolio site",
		Long:         `Serves the About and Projects pages of the portfolio and checks the compiled-in project list.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v)
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (yaml)")
	root.PersistentFlags().IntP("port", "p", 0,
		"port to listen on (default 8080, or $PORT)")
	root.PersistentFlags().String("mode", "",
		"gin mode: debug, release or test")
	_ = v.BindPFlag("port", root.PersistentFlags().Lookup("port"))
	_ = v.BindPFlag("mode", root.PersistentFlags().Lookup("mode"))

	root.AddCommand(
		newServeCommand(v),
		newValidateCommand(),
		newRenderCommand(v),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
