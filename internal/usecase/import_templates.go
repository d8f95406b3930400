package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

// ImportTemplates copies *.svg files from a directory into a template store.
type ImportTemplates struct {
	writer ports.TemplateWriter
}

func NewImportTemplates(w ports.TemplateWriter) *ImportTemplates {
	return &ImportTemplates{writer: w}
}

// Execute imports every .svg file directly under dir and returns the imported keys, sorted.
func (uc *ImportTemplates) Execute(ctx context.Context, ns domain.Namespace, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "usecase.import_templates",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), domain.TemplateExt) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return keys, err
		}

		path := filepath.Join(dir, e.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			return keys, &domain.OpError{
				Op:   "usecase.import_templates",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}

		key := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())) + domain.TemplateExt
		if err := uc.writer.Put(ctx, ns, key, b); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys, nil
}
