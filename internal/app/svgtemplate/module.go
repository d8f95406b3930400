package svgtemplate

// Module is the plain variant for templates without styling or placeholders:
// only the envelope is stripped before re-wrapping.
type Module struct {
	id    string
	inner string
}

func NewModule(id, raw string) *Module {
	return &Module{id: id, inner: StripEnvelope(raw)}
}

func (m *Module) ID() string { return m.id }

func (m *Module) InnerSVG() string { return m.inner }

func (m *Module) BackgroundRectangle() string { return BackgroundRectangle }

func (m *Module) Render() string { return Wrap(m.inner) }

func (m *Module) RenderWithBackground() string {
	return Wrap(BackgroundRectangle + m.inner)
}

func (m *Module) String() string { return m.Render() }
