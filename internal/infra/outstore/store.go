package outstore

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

const defaultOutputDir = "out"

// FileStore writes rendered artifacts under <root>/<output dir>.
type FileStore struct {
	rootDir   string
	outDir    string
	overwrite bool
}

type Option func(*FileStore)

// WithOverwrite replaces existing files instead of picking a new name.
func WithOverwrite(enabled bool) Option {
	return func(s *FileStore) { s.overwrite = enabled }
}

func NewFileStore(root string, cfg domain.Config, opts ...Option) *FileStore {
	outDir := cfg.Paths.OutputDir
	if strings.TrimSpace(outDir) == "" {
		outDir = defaultOutputDir
	}

	s := &FileStore{
		rootDir: root,
		outDir:  outDir,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*FileStore)(nil)

// SaveSVG writes svg to <slug(name)>.svg atomically and returns the path.
// Without overwrite, an existing file gets a _2, _3, ... suffix.
func (s *FileStore) SaveSVG(name string, svg string) (string, error) {
	return s.save(name, domain.TemplateExt, strings.NewReader(svg))
}

// SavePNG writes a rasterized render to <slug(name)>.png.
func (s *FileStore) SavePNG(name string, data []byte) (string, error) {
	return s.save(name, ".png", bytes.NewReader(data))
}

func (s *FileStore) save(name, ext string, r io.Reader) (string, error) {
	dir := filepath.Join(s.rootDir, s.outDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "outstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	slug := slugify(name)
	if slug == "" {
		slug = "render"
	}

	path := filepath.Join(dir, slug+ext)
	if !s.overwrite {
		path = uniquePath(dir, slug, ext)
	}

	if err := atomic.WriteFile(path, r); err != nil {
		return "", &domain.OpError{
			Op:   "outstore.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return path, nil
}

func uniquePath(dir, slug, ext string) string {
	path := filepath.Join(dir, slug+ext)
	for n := 2; fileExists(path); n++ {
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", slug, n, ext))
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
