package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

type Option func(*renderDeps)

type renderDeps struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report missing or unreadable templates.
func WithLogger(l *slog.Logger) Option {
	return func(d *renderDeps) {
		if l != nil {
			d.logger = l
		}
	}
}

func newRenderDeps(opts []Option) renderDeps {
	d := renderDeps{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// loadTemplate reads <id>.svg from ns. Any failure degrades to an empty
// template; it is logged, never returned.
func loadTemplate(ctx context.Context, store ports.TemplateStore, logger *slog.Logger, ns domain.Namespace, id string) string {
	if err := domain.ValidateID(id); err != nil {
		logger.Warn("template.invalid_id", "namespace", ns, "id", id, "error", err)
		return ""
	}

	key := domain.TemplateKey(id)
	b, ok, err := store.Read(ctx, ns, key)
	if err != nil {
		logger.Warn("template.read_failed", "namespace", ns, "key", key, "error", err)
		return ""
	}
	if !ok {
		logger.Info("template.missing", "namespace", ns, "key", key)
		return ""
	}
	return string(b)
}
