package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ninjasvg/internal/infra/logger"
	"github.com/aalvaropc/ninjasvg/internal/infra/workspacefinder"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "ninjasvg",
		Short:        "ninjasvg — render parameterized SVG templates",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			logRoot := wd
			if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			// Logging is best effort; commands still run without a log file.
			cleanup, _ = logger.Setup(logger.Config{
				Root:    logRoot,
				Debug:   debug,
				Stderr:  c.Name() == "serve",
				Command: c.Name(),
			})
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .ninjasvg/logs/ninjasvg.log")

	cmd.AddCommand(
		renderCmd(),
		moduleCmd(),
		serveCmd(),
		importCmd(),
		listCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
