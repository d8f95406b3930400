package domain

// Config represents the ninjasvg configuration loaded from ninjasvg.yaml.
type Config struct {
	Storage StorageConfig
	Paths   PathsConfig
	Server  ServerConfig
	Render  RenderConfig
}

type StorageConfig struct {
	// Backend is "fs" or "sqlite".
	Backend string
	// DSN is the sqlite data source, relative paths resolve against the workspace root.
	DSN string
}

type PathsConfig struct {
	ComponentsDir string
	ModulesDir    string
	ValuesDir     string
	OutputDir     string
}

type ServerConfig struct {
	Addr string
}

type RenderConfig struct {
	Background bool
	Sanitize   bool
}

const (
	BackendFS     = "fs"
	BackendSQLite = "sqlite"
)

// DefaultConfig provides sane defaults if ninjasvg.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendFS,
			DSN:     "ninjasvg.db",
		},
		Paths: PathsConfig{
			ComponentsDir: string(NamespaceComponents),
			ModulesDir:    string(NamespaceModules),
			ValuesDir:     "values",
			OutputDir:     "out",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// NamespaceDir maps a storage namespace to its configured directory.
func (c Config) NamespaceDir(ns Namespace) string {
	switch ns {
	case NamespaceComponents:
		return c.Paths.ComponentsDir
	case NamespaceModules:
		return c.Paths.ModulesDir
	default:
		return string(ns)
	}
}

// WorkspaceSpec describes where a workspace is scaffolded.
type WorkspaceSpec struct {
	Root string
}
