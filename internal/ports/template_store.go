package ports

import (
	"context"

	"github.com/aalvaropc/ninjasvg/internal/domain"
)

// TemplateStore reads raw template bytes by namespace and key.
// A missing key is reported as ok=false with a nil error.
type TemplateStore interface {
	Read(ctx context.Context, ns domain.Namespace, key string) (data []byte, ok bool, err error)
}

// TemplateWriter stores template bytes, replacing any existing entry.
type TemplateWriter interface {
	Put(ctx context.Context, ns domain.Namespace, key string, data []byte) error
}

// TemplateLister enumerates the keys of a namespace in sorted order.
type TemplateLister interface {
	Keys(ctx context.Context, ns domain.Namespace) ([]string, error)
}
