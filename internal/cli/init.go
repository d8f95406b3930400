package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ninjasvg/internal/infra/fsworkspace"
	"github.com/aalvaropc/ninjasvg/internal/infra/workspacefinder"
	"github.com/aalvaropc/ninjasvg/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a ninjasvg workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			// Re-running init in an existing workspace keeps its configured layout.
			var opts []fsworkspace.Option
			if cfg, err := workspacefinder.LoadConfig(root); err == nil {
				opts = append(opts, fsworkspace.WithConfig(cfg))
			}

			if err := usecase.NewInitWorkspace(fsworkspace.NewInitializer(opts...)).Execute(root, force); err != nil {
				return err
			}
			fmt.Printf("workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing scaffold files")
	return c
}
