package ports

import "github.com/aalvaropc/ninjasvg/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
