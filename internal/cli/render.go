package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ninjasvg/internal/app/svgtemplate"
	"github.com/aalvaropc/ninjasvg/internal/infra/logger"
	"github.com/aalvaropc/ninjasvg/internal/infra/svgraster"
	"github.com/aalvaropc/ninjasvg/internal/infra/svgsanitize"
	"github.com/aalvaropc/ninjasvg/internal/usecase"
)

type renderFlags struct {
	workspace  string
	id         string
	background bool
	sanitize   bool
	save       bool
	png        bool
	size       int
}

func (f *renderFlags) bind(c *cobra.Command) {
	c.Flags().StringVarP(&f.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&f.id, "id", "", "Inscription id of the template (required)")
	c.Flags().BoolVar(&f.background, "background", false, "Prepend the background rectangle layer")
	c.Flags().BoolVar(&f.sanitize, "sanitize", false, "Sanitize the inner markup before wrapping")
	c.Flags().BoolVar(&f.save, "save", false, "Also write the result under the output directory")
	c.Flags().BoolVar(&f.png, "png", false, "Also rasterize the result to a PNG under the output directory")
	c.Flags().IntVar(&f.size, "size", svgraster.DefaultSize, "PNG width and height in pixels")
	_ = c.MarkFlagRequired("id")
}

func renderCmd() *cobra.Command {
	var f renderFlags
	var sets []string
	var valuesArg string
	var format string

	c := &cobra.Command{
		Use:   "render",
		Short: "Render a component (styles inlined, placeholders substituted)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(f.workspace)
			if err != nil {
				return err
			}
			defer func() { _ = ws.close() }()

			values, err := collectValues(ws, valuesArg, sets)
			if err != nil {
				return err
			}

			uc := usecase.NewRenderComponent(ws.templates, usecase.WithLogger(logger.L()))
			comp := uc.Execute(cmd.Context(), f.id, values)

			return emit(os.Stdout, ws, f, format, compose(ws, f, comp), comp)
		},
	}

	f.bind(c)
	c.Flags().StringArrayVar(&sets, "set", nil, "Placeholder value KEY=VALUE (repeatable; only ST<n> keys are used)")
	c.Flags().StringVarP(&valuesArg, "values", "v", "", "Values set name or YAML path")
	c.Flags().StringVar(&format, "format", "svg", "Output format: svg|json")
	return c
}

func moduleCmd() *cobra.Command {
	var f renderFlags

	c := &cobra.Command{
		Use:   "module",
		Short: "Render a module (envelope replaced, no styling or placeholders)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(f.workspace)
			if err != nil {
				return err
			}
			defer func() { _ = ws.close() }()

			uc := usecase.NewRenderModule(ws.templates, usecase.WithLogger(logger.L()))
			mod := uc.Execute(cmd.Context(), f.id)

			return emit(os.Stdout, ws, f, "svg", compose(ws, f, mod), nil)
		},
	}

	f.bind(c)
	return c
}

// compose applies the flags, falling back to the workspace render defaults.
func compose(ws *workspaceCtx, f renderFlags, r svgtemplate.Renderer) string {
	return svgtemplate.Compose(r,
		f.background || ws.cfg.Render.Background,
		svgsanitize.Filter(f.sanitize || ws.cfg.Render.Sanitize),
	)
}

func checkFormat(format string) error {
	switch format {
	case "svg", "", "json":
		return nil
	}
	return fmt.Errorf("unsupported format %q (expected svg|json)", format)
}

func emit(w io.Writer, ws *workspaceCtx, f renderFlags, format, svg string, comp *svgtemplate.Component) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	var savedPath string
	if f.save {
		p, err := ws.artifacts.SaveSVG(f.id, svg)
		if err != nil {
			return err
		}
		savedPath = p
	}

	if f.png {
		data, err := svgraster.PNG(svg, f.size)
		if err != nil {
			return err
		}
		p, err := ws.artifacts.SavePNG(f.id, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "png: %s\n", p)
	}

	return printSVG(w, format, f.id, svg, savedPath, comp)
}

type renderReport struct {
	ID           string              `json:"id"`
	SVG          string              `json:"svg"`
	SavedTo      string              `json:"saved_to,omitempty"`
	StyleElement string              `json:"style_element,omitempty"`
	Rules        map[string][]string `json:"rules,omitempty"`
	Unresolved   []string            `json:"unresolved,omitempty"`
}

func printSVG(w io.Writer, format, id, svg, savedPath string, comp *svgtemplate.Component) error {
	switch format {
	case "svg", "":
		if savedPath != "" {
			fmt.Fprintf(os.Stderr, "saved: %s\n", savedPath)
		}
		_, err := fmt.Fprintln(w, svg)
		return err
	case "json":
		report := renderReport{ID: id, SVG: svg, SavedTo: savedPath}
		if comp != nil {
			report.StyleElement = comp.StyleElement()
			report.Unresolved = comp.Unresolved()
			report.Rules = map[string][]string{}
			for _, r := range comp.Rules().Each() {
				attrs := make([]string, 0, len(r.Declarations))
				for _, d := range r.Declarations {
					attrs = append(attrs, d.Property+":"+d.Value)
				}
				report.Rules[r.Selector] = attrs
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(report)
	default:
		return checkFormat(format)
	}
}
