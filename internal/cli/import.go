package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/usecase"
)

func importCmd() *cobra.Command {
	var workspace string
	var namespace string

	c := &cobra.Command{
		Use:   "import <dir>",
		Short: "Copy *.svg files from a directory into the template store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := domain.ParseNamespace(namespace)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer func() { _ = ws.close() }()

			keys, err := usecase.NewImportTemplates(ws.templates).Execute(cmd.Context(), ns, args[0])
			if err != nil {
				return err
			}

			if len(keys) == 0 {
				fmt.Println("(no .svg files found)")
				return nil
			}
			for _, k := range keys {
				fmt.Printf("%s/%s\n", ns, k)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&namespace, "namespace", "n", string(domain.NamespaceComponents), "Target namespace: components|modules")
	return c
}
