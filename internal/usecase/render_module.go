package usecase

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/ninjasvg/internal/app/svgtemplate"
	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

// RenderModule builds plain modules from the ninja_modules namespace.
type RenderModule struct {
	store  ports.TemplateStore
	logger *slog.Logger
}

func NewRenderModule(store ports.TemplateStore, opts ...Option) *RenderModule {
	d := newRenderDeps(opts)
	return &RenderModule{store: store, logger: d.logger}
}

func (uc *RenderModule) Execute(ctx context.Context, id string) *svgtemplate.Module {
	raw := loadTemplate(ctx, uc.store, uc.logger, domain.NamespaceModules, id)
	return svgtemplate.NewModule(id, raw)
}
