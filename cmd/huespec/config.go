package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/palette"
	"github.com/huespec/huespec/pkg/scale"
)

// ProjectConfig holds the contents of .huespec/config.yaml. Tunables
// start from their documented defaults; the file only needs to name the
// keys it overrides.
type ProjectConfig struct {
	Formats []string        `yaml:"formats"`
	Output  string          `yaml:"output"`
	Palette palette.Options `yaml:"palette"`
	Scale   scale.Options   `yaml:"scale"`
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Formats: []string{"css", "json"},
		Output:  ".",
		Palette: palette.DefaultOptions(),
		Scale:   scale.DefaultOptions(),
	}
}

// loadProjectConfig reads .huespec/config.yaml from dir. A missing file
// is not an error; the defaults apply.
func loadProjectConfig(dir string) (ProjectConfig, error) {
	cfg := defaultProjectConfig()

	path := filepath.Join(dir, ".huespec", "config.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = defaultProjectConfig().Formats
	}
	if cfg.Output == "" {
		cfg.Output = "."
	}
	return cfg, nil
}

// options maps the config onto pipeline options.
func (c ProjectConfig) options() model.Options {
	return model.Options{Palette: c.Palette, Scale: c.Scale}
}
