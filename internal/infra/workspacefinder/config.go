package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFileName marks a workspace root.
const ConfigFileName = "ninjasvg.yaml"

// LoadConfig loads ninjasvg.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	s := y.Ninjasvg
	if s.Storage.Backend != "" {
		switch s.Storage.Backend {
		case domain.BackendFS, domain.BackendSQLite:
			cfg.Storage.Backend = s.Storage.Backend
		default:
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("unknown storage backend %q (expected fs|sqlite)", s.Storage.Backend),
			}
		}
	}
	if s.Storage.DSN != "" {
		cfg.Storage.DSN = s.Storage.DSN
	}
	if s.Paths.ComponentsDir != "" {
		cfg.Paths.ComponentsDir = s.Paths.ComponentsDir
	}
	if s.Paths.ModulesDir != "" {
		cfg.Paths.ModulesDir = s.Paths.ModulesDir
	}
	if s.Paths.ValuesDir != "" {
		cfg.Paths.ValuesDir = s.Paths.ValuesDir
	}
	if s.Paths.OutputDir != "" {
		cfg.Paths.OutputDir = s.Paths.OutputDir
	}
	if s.Server.Addr != "" {
		cfg.Server.Addr = s.Server.Addr
	}
	if s.Render.Background != nil {
		cfg.Render.Background = *s.Render.Background
	}
	if s.Render.Sanitize != nil {
		cfg.Render.Sanitize = *s.Render.Sanitize
	}

	return cfg, nil
}

type yamlConfig struct {
	Ninjasvg struct {
		Storage struct {
			Backend string `yaml:"backend"`
			DSN     string `yaml:"dsn"`
		} `yaml:"storage"`

		Paths struct {
			ComponentsDir string `yaml:"components_dir"`
			ModulesDir    string `yaml:"modules_dir"`
			ValuesDir     string `yaml:"values_dir"`
			OutputDir     string `yaml:"output_dir"`
		} `yaml:"paths"`

		Server struct {
			Addr string `yaml:"addr"`
		} `yaml:"server"`

		Render struct {
			Background *bool `yaml:"background"`
			Sanitize   *bool `yaml:"sanitize"`
		} `yaml:"render"`
	} `yaml:"ninjasvg"`
}
