package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Namespace partitions template storage.
type Namespace string

const (
	NamespaceComponents Namespace = "ninja_components"
	NamespaceModules    Namespace = "ninja_modules"
)

// TemplateExt is appended to an inscription id to form the storage key.
const TemplateExt = ".svg"

func (ns Namespace) Valid() bool {
	return ns == NamespaceComponents || ns == NamespaceModules
}

// ParseNamespace accepts the full namespace name or the short forms
// "components" and "modules".
func ParseNamespace(s string) (Namespace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(NamespaceComponents), "components", "component":
		return NamespaceComponents, nil
	case string(NamespaceModules), "modules", "module":
		return NamespaceModules, nil
	}
	return "", &OpError{
		Op:   "domain.parse_namespace",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("unknown namespace %q", s),
	}
}

// TemplateKey returns the storage key for an inscription id.
func TemplateKey(inscriptionID string) string {
	return inscriptionID + TemplateExt
}

// Values is the caller-supplied key/value map used for placeholder substitution.
type Values map[string]string

// ParseAssignments turns KEY=VALUE pairs into Values. Later pairs win.
func ParseAssignments(pairs []string) (Values, error) {
	out := Values{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, &OpError{
				Op:   "domain.parse_assignments",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("expected KEY=VALUE, got %q", p),
			}
		}
		out[k] = v
	}
	return out, nil
}

// Merge returns a copy of base overlaid with each override in order.
func (v Values) Merge(overrides ...Values) Values {
	out := Values{}
	for k, val := range v {
		out[k] = val
	}
	for _, o := range overrides {
		for k, val := range o {
			out[k] = val
		}
	}
	return out
}

var errEmptyID = errors.New("inscription id is empty")

// ValidateID rejects ids that cannot address a single stored template.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &OpError{Op: "domain.validate_id", Kind: KindInvalidConfig, Err: errEmptyID}
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return &OpError{
			Op:   "domain.validate_id",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("inscription id %q contains path elements", id),
		}
	}
	return nil
}
