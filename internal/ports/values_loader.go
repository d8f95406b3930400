package ports

import "github.com/aalvaropc/ninjasvg/internal/domain"

// ValuesLoader loads a placeholder values map from a source (e.g., filesystem).
type ValuesLoader interface {
	LoadValues(nameOrPath string) (domain.Values, error)
}
