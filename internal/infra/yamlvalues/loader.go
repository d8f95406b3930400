package yamlvalues

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	rootDir       string
	valuesDir     string
	overridesFile string
}

type Option func(*Loader)

func WithValuesDir(dir string) Option {
	return func(l *Loader) { l.valuesDir = dir }
}

func WithOverridesFile(name string) Option {
	return func(l *Loader) { l.overridesFile = name }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:       root,
		valuesDir:     "values",
		overridesFile: "values.local.yaml",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ValuesLoader = (*Loader)(nil)

// LoadValues accepts either a values set name (e.g., "launch") or a full path to a YAML file.
func (l *Loader) LoadValues(nameOrPath string) (domain.Values, error) {
	var path string
	if strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") || strings.Contains(nameOrPath, string(filepath.Separator)) {
		path = filepath.Clean(nameOrPath)
	} else {
		path = filepath.Join(l.rootDir, l.valuesDir, nameOrPath+".yaml")
	}

	base, err := readValues(path)
	if err != nil {
		return nil, err
	}

	// Local overrides are optional; they win over base values.
	overridesPath := filepath.Join(filepath.Dir(path), l.overridesFile)
	if filepath.Clean(overridesPath) == path {
		return base, nil
	}
	overrides, err := readValuesOptional(overridesPath)
	if err != nil {
		return nil, err
	}

	return base.Merge(overrides), nil
}

// yamlValues accepts scalars of any YAML type; they are kept as written.
type yamlValues struct {
	Values map[string]yaml.Node `yaml:"values"`
}

func readValues(path string) (domain.Values, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlvalues.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlValues
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlvalues.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	out := domain.Values{}
	for k, node := range y.Values {
		if node.Kind != yaml.ScalarNode {
			return nil, &domain.OpError{
				Op:   "yamlvalues.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("values.%s must be a scalar", k),
			}
		}
		out[k] = node.Value
	}
	return out, nil
}

func readValuesOptional(path string) (domain.Values, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Values{}, nil
		}
		return nil, &domain.OpError{
			Op:   "yamlvalues.overrides",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	v, err := readValues(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load value overrides: %w", err)
	}
	return v, nil
}
