package fsworkspace

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/infra/logger"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

const (
	gitignoreHeader = "# ninjasvg"
	localValuesFile = "values.local.yaml"
)

// Initializer scaffolds a workspace laid out according to its config.
type Initializer struct {
	cfg domain.Config
}

type Option func(*Initializer)

// WithConfig scaffolds into the directories named by cfg instead of the defaults.
func WithConfig(cfg domain.Config) Option {
	return func(i *Initializer) { i.cfg = cfg }
}

func NewInitializer(opts ...Option) *Initializer {
	i := &Initializer{cfg: domain.DefaultConfig()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	p := i.cfg.Paths

	for _, d := range []string{p.ComponentsDir, p.ModulesDir, p.ValuesDir, p.OutputDir} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return scaffoldError(filepath.Join(root, d), err)
		}
	}
	if err := os.MkdirAll(logger.Dir(root), 0o755); err != nil {
		return scaffoldError(logger.Dir(root), err)
	}

	if err := ensureGitignore(root, i.gitignoreEntries()); err != nil {
		return err
	}

	return fs.WalkDir(templatesFS, "templates", func(src string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		dst := filepath.Join(root, i.target(strings.TrimPrefix(src, "templates/")))
		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, src)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return scaffoldError(filepath.Dir(dst), err)
		}

		// Local overrides stay owner-only.
		mode := fs.FileMode(0o644)
		if path.Base(src) == localValuesFile {
			mode = 0o600
		}
		if err := os.WriteFile(dst, b, mode); err != nil {
			return scaffoldError(dst, err)
		}
		return nil
	})
}

// target maps an embedded path onto the configured directories. The seed
// tree uses the default names.
func (i *Initializer) target(rel string) string {
	first, rest, ok := strings.Cut(rel, "/")
	if !ok {
		return filepath.FromSlash(rel)
	}

	switch first {
	case string(domain.NamespaceComponents):
		first = i.cfg.NamespaceDir(domain.NamespaceComponents)
	case string(domain.NamespaceModules):
		first = i.cfg.NamespaceDir(domain.NamespaceModules)
	case domain.DefaultConfig().Paths.ValuesDir:
		first = i.cfg.Paths.ValuesDir
	}
	return filepath.Join(first, filepath.FromSlash(rest))
}

func (i *Initializer) gitignoreEntries() []string {
	entries := []string{
		path.Clean(filepath.ToSlash(i.cfg.Paths.OutputDir)) + "/",
		logger.StateDir + "/",
		path.Join(filepath.ToSlash(i.cfg.Paths.ValuesDir), localValuesFile),
	}
	if i.cfg.Storage.Backend == domain.BackendSQLite && i.cfg.Storage.DSN != "" {
		entries = append(entries, filepath.ToSlash(i.cfg.Storage.DSN)+"*")
	} else {
		entries = append(entries, "*.db")
	}
	return entries
}

func scaffoldError(p string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: p,
		Err:  err,
	}
}

// ensureGitignore appends the missing entries under a single ninjasvg header.
func ensureGitignore(root string, entries []string) error {
	p := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{gitignoreHeader}, entries...)
			lines = append(lines, "")
			return os.WriteFile(p, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return scaffoldError(p, err)
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader + "\n")
	}
	out.WriteString(strings.Join(missing, "\n"))
	out.WriteByte('\n')

	return os.WriteFile(p, []byte(out.String()), 0o644)
}
