package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/ninjasvg/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "templates.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutRead_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, domain.NamespaceComponents, "a.svg", []byte("<svg>1</svg>")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Put(ctx, domain.NamespaceComponents, "a.svg", []byte("<svg>2</svg>")); err != nil {
		t.Fatalf("Put overwrite error: %v", err)
	}

	b, ok, err := s.Read(ctx, domain.NamespaceComponents, "a.svg")
	if err != nil || !ok {
		t.Fatalf("Read: ok=%v err=%v", ok, err)
	}
	if string(b) != "<svg>2</svg>" {
		t.Fatalf("expected latest content, got %q", b)
	}
}

func TestRead_MissingIsAbsent(t *testing.T) {
	s := openTestStore(t)
	b, ok, err := s.Read(context.Background(), domain.NamespaceModules, "none.svg")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ok || b != nil {
		t.Fatalf("expected absent, got ok=%v b=%q", ok, b)
	}
}

func TestNamespacesAreIsolated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, domain.NamespaceModules, "x.svg", []byte("m")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if _, ok, _ := s.Read(ctx, domain.NamespaceComponents, "x.svg"); ok {
		t.Fatalf("expected key to be scoped by namespace")
	}
}

func TestKeysSorted(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, k := range []string{"b.svg", "a.svg", "c.svg"} {
		if err := s.Put(ctx, domain.NamespaceComponents, k, []byte(k)); err != nil {
			t.Fatalf("Put %s: %v", k, err)
		}
	}

	keys, err := s.Keys(ctx, domain.NamespaceComponents)
	if err != nil {
		t.Fatalf("Keys error: %v", err)
	}
	if diff := cmp.Diff([]string{"a.svg", "b.svg", "c.svg"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownNamespace(t *testing.T) {
	s := openTestStore(t)
	err := s.Put(context.Background(), domain.Namespace("x"), "a.svg", nil)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}
