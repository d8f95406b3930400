package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aalvaropc/ninjasvg/internal/app/svgtemplate"
	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/infra/svgraster"
	"github.com/aalvaropc/ninjasvg/internal/infra/svgsanitize"
)

const (
	contentTypeSVG = "image/svg+xml; charset=utf-8"
	maxPNGSize     = 4096
)

// ComponentRenderer is satisfied by usecase.RenderComponent.
type ComponentRenderer interface {
	Execute(ctx context.Context, id string, values domain.Values) *svgtemplate.Component
}

// ModuleRenderer is satisfied by usecase.RenderModule.
type ModuleRenderer interface {
	Execute(ctx context.Context, id string) *svgtemplate.Module
}

type Options struct {
	Background bool
	Sanitize   bool
}

// Handler serves rendered SVGs.
type Handler struct {
	components ComponentRenderer
	modules    ModuleRenderer
	logger     *slog.Logger
	opts       Options
}

func New(components ComponentRenderer, modules ModuleRenderer, logger *slog.Logger, opts Options) *Handler {
	return &Handler{
		components: components,
		modules:    modules,
		logger:     logger,
		opts:       opts,
	}
}

// Router mounts the routes on a fresh chi router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	h.RegisterHTTP(r)
	return r
}

// RegisterHTTP registers the endpoints on an existing router.
func (h *Handler) RegisterHTTP(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
	r.Get("/components/{id}", h.handleComponent)
	r.Get("/modules/{id}", h.handleModule)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// handleComponent renders /components/{id}[.svg|.png]; query parameters become the values map.
func (h *Handler) handleComponent(w http.ResponseWriter, r *http.Request) {
	id, asPNG := inscriptionID(r)
	if err := domain.ValidateID(id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	values := domain.Values{}
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			values[k] = vs[0]
		}
	}

	c := h.components.Execute(r.Context(), id, values)
	h.write(w, r, c, asPNG)
}

func (h *Handler) handleModule(w http.ResponseWriter, r *http.Request) {
	id, asPNG := inscriptionID(r)
	if err := domain.ValidateID(id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m := h.modules.Execute(r.Context(), id)
	h.write(w, r, m, asPNG)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, rendered svgtemplate.Renderer, asPNG bool) {
	doc := svgtemplate.Compose(rendered, h.background(r), svgsanitize.Filter(h.opts.Sanitize))

	w.Header().Set("X-Content-Type-Options", "nosniff")
	if !asPNG {
		w.Header().Set("Content-Type", contentTypeSVG)
		_, _ = w.Write([]byte(doc))
		return
	}

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if size > maxPNGSize {
		size = maxPNGSize
	}
	data, err := svgraster.PNG(doc, size)
	if err != nil {
		h.logger.Warn("http.rasterize_failed", "path", r.URL.Path, "err", err)
		http.Error(w, "rasterize failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (h *Handler) background(r *http.Request) bool {
	switch strings.ToLower(r.URL.Query().Get("bg")) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return h.opts.Background
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// inscriptionID strips a .svg or .png suffix; the flag reports a PNG request.
func inscriptionID(r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "id")
	if id, ok := strings.CutSuffix(raw, ".png"); ok {
		return id, true
	}
	return strings.TrimSuffix(raw, domain.TemplateExt), false
}
