package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/infra/fsstore"
	"github.com/aalvaropc/ninjasvg/internal/infra/outstore"
	"github.com/aalvaropc/ninjasvg/internal/infra/sqlitestore"
	"github.com/aalvaropc/ninjasvg/internal/infra/workspacefinder"
	"github.com/aalvaropc/ninjasvg/internal/infra/yamlvalues"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

type templateBackend interface {
	ports.TemplateStore
	ports.TemplateWriter
	ports.TemplateLister
}

type workspaceCtx struct {
	root string
	cfg  domain.Config

	templates templateBackend
	values    ports.ValuesLoader
	artifacts ports.ArtifactStore

	close func() error
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root: root,
		cfg:  cfg,
		values: yamlvalues.NewLoader(
			root,
			yamlvalues.WithValuesDir(cfg.Paths.ValuesDir),
		),
		artifacts: outstore.NewFileStore(root, cfg),
		close:     func() error { return nil },
	}

	switch cfg.Storage.Backend {
	case domain.BackendSQLite:
		store, err := sqlitestore.Open(resolveDSN(root, cfg.Storage.DSN))
		if err != nil {
			return nil, err
		}
		ws.templates = store
		ws.close = store.Close
	default:
		ws.templates = fsstore.NewFromConfig(root, cfg)
	}

	return ws, nil
}

// resolveDSN anchors relative sqlite paths at the workspace root.
func resolveDSN(root, dsn string) string {
	if dsn == "" || strings.HasPrefix(dsn, "file:") || strings.Contains(dsn, ":memory:") || filepath.IsAbs(dsn) {
		return dsn
	}
	return filepath.Join(root, dsn)
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `ninjasvg init`): %w", wd, err)
	}
	return root, nil
}

// collectValues merges a values file (optional) with --set assignments; --set wins.
func collectValues(ws *workspaceCtx, valuesArg string, sets []string) (domain.Values, error) {
	base := domain.Values{}
	if v := strings.TrimSpace(valuesArg); v != "" {
		if looksLikePath(v) && !filepath.IsAbs(v) {
			v = filepath.Join(ws.root, v)
		}
		loaded, err := ws.values.LoadValues(v)
		if err != nil {
			return nil, err
		}
		base = loaded
	}

	overrides, err := domain.ParseAssignments(sets)
	if err != nil {
		return nil, err
	}
	return base.Merge(overrides), nil
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}
