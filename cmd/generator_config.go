package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hydrowx/wxgen/wg"
)

// LoadConfig reads the generator YAML over the fitted defaults, so a config
// file only has to override what differs from the packaged Frio parameter
// set, and validates the merged result.
func LoadConfig(path string) (*wg.Config, error) {
	cfg := wg.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
