package yamlvalues

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/ninjasvg/internal/domain"
)

func TestLoadValues_MergesOverrides(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	dir := filepath.Join(root, "values")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "launch.yaml"), []byte("values:\n  ST1: Alice\n  ST2: \"#FF0000\"\n  ST3: 42\n"), 0o644); err != nil {
		t.Fatalf("write launch: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "values.local.yaml"), []byte("values:\n  ST1: Bob\n"), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}

	l := NewLoader(root)
	v, err := l.LoadValues("launch")
	if err != nil {
		t.Fatalf("LoadValues error: %v", err)
	}

	if v["ST1"] != "Bob" {
		t.Fatalf("expected ST1=Bob override, got=%s", v["ST1"])
	}
	if v["ST2"] != "#FF0000" {
		t.Fatalf("expected ST2, got=%s", v["ST2"])
	}
	if v["ST3"] != "42" {
		t.Fatalf("expected numeric scalar kept as text, got=%s", v["ST3"])
	}
}

func TestLoadValues_ByPath(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "custom.yml")
	if err := os.WriteFile(path, []byte("values:\n  ST9: x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	v, err := NewLoader("/nonexistent").LoadValues(path)
	if err != nil {
		t.Fatalf("LoadValues error: %v", err)
	}
	if v["ST9"] != "x" {
		t.Fatalf("expected ST9=x, got %v", v)
	}
}

func TestLoadValues_Missing(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadValues("nope")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadValues_RejectsNonScalar(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(path, []byte("values:\n  ST1:\n    - a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewLoader(tmp).LoadValues(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadValues_EmptyFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "empty.yaml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	v, err := NewLoader(tmp).LoadValues(path)
	if err != nil {
		t.Fatalf("LoadValues error: %v", err)
	}
	if len(v) != 0 {
		t.Fatalf("expected no values, got %v", v)
	}
}
