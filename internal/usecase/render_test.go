package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/ninjasvg/internal/app/svgtemplate"
	"github.com/aalvaropc/ninjasvg/internal/domain"
)

// --- fakes ---

type fakeStore struct {
	files map[domain.Namespace]map[string]string
	err   error
	reads int
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: map[domain.Namespace]map[string]string{}}
}

func (s *fakeStore) Read(_ context.Context, ns domain.Namespace, key string) ([]byte, bool, error) {
	s.reads++
	if s.err != nil {
		return nil, false, s.err
	}
	v, ok := s.files[ns][key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (s *fakeStore) Put(_ context.Context, ns domain.Namespace, key string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.files[ns] == nil {
		s.files[ns] = map[string]string{}
	}
	s.files[ns][key] = string(data)
	return nil
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// --- RenderComponent ---

func TestRenderComponent_RendersStoredTemplate(t *testing.T) {
	store := newFakeStore()
	_ = store.Put(context.Background(), domain.NamespaceComponents, "badge.svg",
		[]byte(`<svg><style type="text/css">.st0{fill:red;}</style><text class="st0">%%ST1%%</text></svg>`))

	uc := NewRenderComponent(store)
	c := uc.Execute(context.Background(), "badge", domain.Values{"ST1": "Alice", "OTHER": "x"})

	want := svgtemplate.OpenTag + `<text fill="red">Alice</text>` + svgtemplate.CloseTag
	if diff := cmp.Diff(want, c.Render()); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderComponent_MissingTemplateIsEmptyEnvelope(t *testing.T) {
	logger, buf := bufferLogger()
	uc := NewRenderComponent(newFakeStore(), WithLogger(logger))

	c := uc.Execute(context.Background(), "ghost", domain.Values{"ST1": "x"})
	if c.Render() != svgtemplate.OpenTag+svgtemplate.CloseTag {
		t.Fatalf("expected bare envelope, got %q", c.Render())
	}
	if !strings.Contains(buf.String(), "template.missing") {
		t.Fatalf("expected missing template to be logged, got %s", buf.String())
	}
}

func TestRenderComponent_StoreErrorDegrades(t *testing.T) {
	logger, buf := bufferLogger()
	store := newFakeStore()
	store.err = errors.New("disk on fire")

	c := NewRenderComponent(store, WithLogger(logger)).Execute(context.Background(), "x", nil)
	if c.InnerSVG() != "" {
		t.Fatalf("expected empty inner markup, got %q", c.InnerSVG())
	}
	if !strings.Contains(buf.String(), "disk on fire") {
		t.Fatalf("expected store error logged, got %s", buf.String())
	}
}

func TestRenderComponent_InvalidIDSkipsStore(t *testing.T) {
	store := newFakeStore()
	c := NewRenderComponent(store).Execute(context.Background(), "../etc/passwd", nil)

	if store.reads != 0 {
		t.Fatalf("expected no store read, got %d", store.reads)
	}
	if c.InnerSVG() != "" {
		t.Fatalf("expected empty component")
	}
}

func TestRenderComponent_IndependentInstances(t *testing.T) {
	store := newFakeStore()
	_ = store.Put(context.Background(), domain.NamespaceComponents, "a.svg", []byte(`<svg><text>%%ST1%%</text></svg>`))
	uc := NewRenderComponent(store)
	values := domain.Values{"ST1": "v"}

	first := uc.Execute(context.Background(), "a", values).Render()
	second := uc.Execute(context.Background(), "a", values).Render()
	if first != second {
		t.Fatalf("expected identical output, got %q vs %q", first, second)
	}
	if store.reads != 2 {
		t.Fatalf("expected a fresh read per render, got %d", store.reads)
	}
}

func TestRenderComponent_LogsUnresolvedPlaceholders(t *testing.T) {
	logger, buf := bufferLogger()
	store := newFakeStore()
	_ = store.Put(context.Background(), domain.NamespaceComponents, "a.svg", []byte(`<text>%%ST99%%</text>`))

	c := NewRenderComponent(store, WithLogger(logger)).Execute(context.Background(), "a", nil)
	if !strings.Contains(c.InnerSVG(), "%%ST99%%") {
		t.Fatalf("expected unmatched token kept, got %q", c.InnerSVG())
	}
	if !strings.Contains(buf.String(), "component.unresolved_placeholders") {
		t.Fatalf("expected unresolved tokens logged, got %s", buf.String())
	}
}

// --- RenderModule ---

func TestRenderModule_StripsEnvelopeOnly(t *testing.T) {
	store := newFakeStore()
	_ = store.Put(context.Background(), domain.NamespaceModules, "frame.svg", []byte(`<svg viewBox="0 0 5 5"><rect class="st0"/></svg>`))
	_ = store.Put(context.Background(), domain.NamespaceComponents, "frame.svg", []byte(`<svg>wrong namespace</svg>`))

	m := NewRenderModule(store).Execute(context.Background(), "frame")
	want := svgtemplate.OpenTag + `<rect class="st0"/>` + svgtemplate.CloseTag
	if m.Render() != want {
		t.Fatalf("unexpected render: %q", m.Render())
	}
}

func TestRenderModule_Missing(t *testing.T) {
	m := NewRenderModule(newFakeStore()).Execute(context.Background(), "none")
	if m.Render() != svgtemplate.OpenTag+svgtemplate.CloseTag {
		t.Fatalf("expected bare envelope, got %q", m.Render())
	}
}

// --- ImportTemplates ---

func TestImportTemplates_ImportsSVGFiles(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"b.svg":     "<svg>b</svg>",
		"a.SVG":     "<svg>a</svg>",
		"notes.txt": "skip",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.svg"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	store := newFakeStore()
	keys, err := NewImportTemplates(store).Execute(context.Background(), domain.NamespaceModules, dir)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if diff := cmp.Diff([]string{"a.svg", "b.svg"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if store.files[domain.NamespaceModules]["a.svg"] != "<svg>a</svg>" {
		t.Fatalf("expected a.svg stored, got %v", store.files)
	}
}

func TestImportTemplates_MissingDir(t *testing.T) {
	_, err := NewImportTemplates(newFakeStore()).Execute(context.Background(), domain.NamespaceModules, filepath.Join(t.TempDir(), "nope"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
