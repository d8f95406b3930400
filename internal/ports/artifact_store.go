package ports

// ArtifactStore persists rendered output.
type ArtifactStore interface {
	SaveSVG(name string, svg string) (path string, err error)
	SavePNG(name string, data []byte) (path string, err error)
}
