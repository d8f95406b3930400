package svgtemplate

// Renderer is implemented by Component and Module.
type Renderer interface {
	InnerSVG() string
	Render() string
	RenderWithBackground() string
}

// Compose renders r as a complete document. A non-nil filter rewrites the
// inner markup before the background layer and the envelope are added.
func Compose(r Renderer, background bool, filter func(string) string) string {
	if filter == nil {
		if background {
			return r.RenderWithBackground()
		}
		return r.Render()
	}

	inner := filter(r.InnerSVG())
	if background {
		inner = BackgroundRectangle + inner
	}
	return Wrap(inner)
}
