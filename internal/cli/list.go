package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ninjasvg/internal/domain"
)

func listCmd() *cobra.Command {
	var workspace string
	var namespace string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the inscription ids stored in a namespace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, err := domain.ParseNamespace(namespace)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer func() { _ = ws.close() }()

			keys, err := ws.templates.Keys(cmd.Context(), ns)
			if err != nil {
				return err
			}

			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no templates found)")
				return nil
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(k, domain.TemplateExt))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&namespace, "namespace", "n", string(domain.NamespaceComponents), "Namespace: components|modules")
	return c
}
