package fsstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

// Store keeps templates as plain files under <root>/<namespace dir>/<key>.
type Store struct {
	rootDir string
	dirs    map[domain.Namespace]string
}

type Option func(*Store)

// WithNamespaceDir overrides the directory used for a namespace.
func WithNamespaceDir(ns domain.Namespace, dir string) Option {
	return func(s *Store) {
		if dir != "" {
			s.dirs[ns] = dir
		}
	}
}

func New(root string, opts ...Option) *Store {
	s := &Store{
		rootDir: root,
		dirs: map[domain.Namespace]string{
			domain.NamespaceComponents: string(domain.NamespaceComponents),
			domain.NamespaceModules:    string(domain.NamespaceModules),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig builds a store using the namespace directories from cfg.
func NewFromConfig(root string, cfg domain.Config) *Store {
	return New(root,
		WithNamespaceDir(domain.NamespaceComponents, cfg.NamespaceDir(domain.NamespaceComponents)),
		WithNamespaceDir(domain.NamespaceModules, cfg.NamespaceDir(domain.NamespaceModules)),
	)
}

var (
	_ ports.TemplateStore  = (*Store)(nil)
	_ ports.TemplateWriter = (*Store)(nil)
	_ ports.TemplateLister = (*Store)(nil)
)

func (s *Store) Read(ctx context.Context, ns domain.Namespace, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path, err := s.path("fsstore.read", ns, key)
	if err != nil {
		return nil, false, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &domain.OpError{
			Op:   "fsstore.read",
			Kind: domain.KindStorage,
			Path: path,
			Err:  err,
		}
	}
	return b, true, nil
}

func (s *Store) Put(ctx context.Context, ns domain.Namespace, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path("fsstore.put", ns, key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.OpError{
			Op:   "fsstore.mkdir",
			Kind: domain.KindStorage,
			Path: filepath.Dir(path),
			Err:  err,
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return &domain.OpError{
			Op:   "fsstore.write",
			Kind: domain.KindStorage,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// Keys lists the *.svg files of a namespace directory, sorted. A missing
// directory is an empty namespace.
func (s *Store) Keys(ctx context.Context, ns domain.Namespace) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, ok := s.dirs[ns]
	if !ok {
		return nil, &domain.OpError{
			Op:   "fsstore.keys",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown namespace %q", ns),
		}
	}

	full := filepath.Join(s.rootDir, dir)
	entries, err := os.ReadDir(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "fsstore.keys",
			Kind: domain.KindStorage,
			Path: full,
			Err:  err,
		}
	}

	// ReadDir sorts by name.
	var keys []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), domain.TemplateExt) {
			continue
		}
		keys = append(keys, e.Name())
	}
	return keys, nil
}

func (s *Store) path(op string, ns domain.Namespace, key string) (string, error) {
	dir, ok := s.dirs[ns]
	if !ok {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown namespace %q", ns),
		}
	}
	if !filepath.IsLocal(key) || filepath.Base(key) != key {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: key,
			Err:  errors.New("key must be a plain file name"),
		}
	}
	return filepath.Join(s.rootDir, dir, key), nil
}
