package usecase

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/ninjasvg/internal/app/svgtemplate"
	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

// RenderComponent builds styled, parameterized components from the
// ninja_components namespace.
type RenderComponent struct {
	store  ports.TemplateStore
	logger *slog.Logger
}

func NewRenderComponent(store ports.TemplateStore, opts ...Option) *RenderComponent {
	d := newRenderDeps(opts)
	return &RenderComponent{store: store, logger: d.logger}
}

// Execute always returns a component: a missing or unreadable template yields
// one that renders as the bare envelope.
func (uc *RenderComponent) Execute(ctx context.Context, id string, values domain.Values) *svgtemplate.Component {
	raw := loadTemplate(ctx, uc.store, uc.logger, domain.NamespaceComponents, id)
	c := svgtemplate.NewComponent(id, raw, values)

	if unresolved := c.Unresolved(); len(unresolved) > 0 {
		uc.logger.Debug("component.unresolved_placeholders", "id", id, "tokens", unresolved)
	}
	return c
}
